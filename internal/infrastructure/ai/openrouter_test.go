package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/domain"
)

var testComponents = []string{"Button", "Input", "Label", "Table", "Pagination", "Dialog"}

func openRouterServer(t *testing.T, content string, status int, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer or-key", r.Header.Get("Authorization"))
		assert.Equal(t, openRouterTitle, r.Header.Get("X-Title"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultOpenRouterModel, req.Model)
		require.Len(t, req.Messages, 2)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestOpenRouter(url string) *OpenRouter {
	return NewOpenRouter("or-key", domain.EndpointSettings{BaseURL: url}, testComponents, http.DefaultClient)
}

func TestOpenRouterRecommend(t *testing.T) {
	content := "```json\n" + `{"components":["Input","Label"],"architecture":"molecule","reasoning":"form","alternatives":["Select"],"codeExample":"<Input />","confidence":0.99,"patterns":["x"]}` + "\n```"
	srv := openRouterServer(t, content, http.StatusOK, nil)

	rec, err := newTestOpenRouter(srv.URL).Recommend(context.Background(), domain.RecommendationRequest{
		Description: "login form",
		Preferences: &domain.Preferences{Complexity: "simple"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Input", "Label"}, rec.Components)
	assert.Equal(t, domain.ArchitectureMolecule, rec.Architecture)
	assert.InDelta(t, 0.95, rec.Confidence, 1e-9)
	assert.Nil(t, rec.Patterns)
}

func TestOpenRouterRecommendFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		status  int
		target  error
	}{
		{"outside whitelist", `{"components":["Button","HoloButton"],"architecture":"atom","confidence":0.9}`, http.StatusOK, ErrOutsideWhitelist},
		{"malformed json", `not json at all`, http.StatusOK, nil},
		{"server error", "", http.StatusInternalServerError, nil},
		{"empty content", "", http.StatusOK, ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := openRouterServer(t, tt.content, tt.status, nil)
			_, err := newTestOpenRouter(srv.URL).Recommend(context.Background(), domain.RecommendationRequest{Description: "button"})
			require.Error(t, err)
			var perr *ProviderError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, domain.ProviderOpenRouter, perr.Provider)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestOpenRouterMissingKeyFailsFast(t *testing.T) {
	var calls int32
	srv := openRouterServer(t, "{}", http.StatusOK, &calls)

	client := NewOpenRouter("", domain.EndpointSettings{BaseURL: srv.URL}, testComponents, http.DefaultClient)
	_, err := client.Recommend(context.Background(), domain.RecommendationRequest{Description: "button"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	_, err = client.AnalyzeCode(context.Background(), "<div/>")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestOpenRouterSuggestImprovementsSplitsLines(t *testing.T) {
	srv := openRouterServer(t, "1. Add aria-label\n\n2. Memoize handlers\n", http.StatusOK, nil)

	got, err := newTestOpenRouter(srv.URL).SuggestImprovements(context.Background(), "Button")
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Add aria-label", "2. Memoize handlers"}, got)
}

func TestRenderUserPrompt(t *testing.T) {
	got, err := renderUserPrompt(domain.RecommendationRequest{
		Description: "login",
		Context:     "admin panel",
		Preferences: &domain.Preferences{Style: "minimal", Framework: "react"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Запрос: login\nКонтекст: admin panel\nПредпочтения:\n- Стиль: minimal\n- Фреймворк: react", got)

	got, err = renderUserPrompt(domain.RecommendationRequest{Description: "login"})
	require.NoError(t, err)
	assert.Equal(t, "Запрос: login", got)
}
