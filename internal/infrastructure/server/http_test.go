package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/application/assistant"
	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/infrastructure/ai"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cache"
	"github.com/dc25-uiux/uxai/internal/infrastructure/metrics"
	"github.com/dc25-uiux/uxai/internal/infrastructure/server"
)

type staticHealth struct {
	report domain.HealthReport
	err    error
}

func (h staticHealth) Run(context.Context) (domain.HealthReport, error) { return h.report, h.err }

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, health server.HealthChecker) (http.Handler, *assistant.Service) {
	t.Helper()
	registry := prometheus.NewRegistry()
	svc, err := assistant.New(domain.AssistantConfig{
		DefaultProvider: domain.ModeOpenRouter,
		FallbackToRules: true,
		CacheEnabled:    true,
		MaxCacheSize:    5,
	}, nil, assistant.Dependencies{
		Factory:  ai.NewFactory(domain.ProviderSettings{}),
		Rules:    ai.RuleEngine{},
		Cache:    cache.NewMemoryCache(5),
		Recorder: metrics.NewRecorder(registry),
	})
	require.NoError(t, err)

	srv := server.NewHTTPServer(server.Options{
		Assistant: svc,
		Health:    health,
		Gatherer:  registry,
	})
	return srv.Handler(), svc
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRecommendEndpoint(t *testing.T) {
	h, _ := newTestServer(t, nil)

	rec, env := do(t, h, http.MethodPost, "/api/v1/recommend", map[string]any{"description": "нужна кнопка"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AssistantResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, domain.ProviderFallback, resp.Provider)
	assert.Equal(t, []string{"Button"}, resp.Recommendation.Components)
	assert.False(t, resp.Cached)

	_, env = do(t, h, http.MethodPost, "/api/v1/recommend", map[string]any{"description": "нужна кнопка"})
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, resp.Cached)
}

func TestRecommendEndpoint_BadRequests(t *testing.T) {
	h, _ := newTestServer(t, nil)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/recommend", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/recommend", map[string]any{"description": "x", "provider": "gemini"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuxiliaryEndpointsWithoutProvider(t *testing.T) {
	h, _ := newTestServer(t, nil)

	_, env := do(t, h, http.MethodPost, "/api/v1/analyze", map[string]any{"code": "const a = 1"})
	assert.JSONEq(t, `{"analysis":"`+domain.MsgAnalyzeFailed+`"}`, string(env.Data))

	_, env = do(t, h, http.MethodPost, "/api/v1/generate", map[string]any{"description": "card"})
	assert.JSONEq(t, `{"code":"`+domain.MsgGenerateFailed+`"}`, string(env.Data))

	_, env = do(t, h, http.MethodPost, "/api/v1/improve", map[string]any{"component": "Button"})
	assert.JSONEq(t, `{"suggestions":["`+domain.MsgImprovementsFailed+`"]}`, string(env.Data))
}

func TestCacheEndpoints(t *testing.T) {
	h, svc := newTestServer(t, nil)
	svc.Recommend(context.Background(), domain.RecommendationRequest{Description: "таблица"})

	_, env := do(t, h, http.MethodGet, "/api/v1/cache/stats", nil)
	assert.JSONEq(t, `{"size":1,"maxSize":5}`, string(env.Data))

	_, env = do(t, h, http.MethodDelete, "/api/v1/cache", nil)
	assert.JSONEq(t, `{"size":0,"maxSize":5}`, string(env.Data))
}

func TestConfigPatchEndpoint(t *testing.T) {
	h, svc := newTestServer(t, nil)

	rec, _ := do(t, h, http.MethodPatch, "/api/v1/config", map[string]any{"maxCacheSize": 2, "cacheEnabled": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.Config().MaxCacheSize)
	assert.False(t, svc.Config().CacheEnabled)
	assert.Equal(t, domain.ModeOpenRouter, svc.Config().DefaultProvider)

	rec, _ = do(t, h, http.MethodPatch, "/api/v1/config", map[string]any{"maxCacheSize": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 2, svc.Config().MaxCacheSize)
}

func TestComponentsEndpoints(t *testing.T) {
	h, _ := newTestServer(t, nil)

	rec, _ := do(t, h, http.MethodPut, "/api/v1/components", map[string]any{"components": []string{"Button", "Tooltip"}})
	require.Equal(t, http.StatusOK, rec.Code)

	_, env := do(t, h, http.MethodGet, "/api/v1/components", nil)
	assert.JSONEq(t, `{"components":["Button","Tooltip"]}`, string(env.Data))
}

func TestHealthEndpoint(t *testing.T) {
	healthy := staticHealth{report: domain.HealthReport{Checks: []domain.HealthCheck{{Name: "Config file", Status: domain.HealthOK}}}}
	h, _ := newTestServer(t, healthy)
	rec, _ := do(t, h, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	h, _ = newTestServer(t, staticHealth{err: errors.New("bad yaml")})
	rec, _ = do(t, h, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, svc := newTestServer(t, nil)
	svc.Recommend(context.Background(), domain.RecommendationRequest{Description: "форма"})

	rec, _ := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `uxai_recommendations_total{cached="false",provider="fallback"} 1`)
}
