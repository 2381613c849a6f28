// Package assistant orchestrates component recommendations.
//
// A request flows through the response cache, then one external provider
// chosen by the configured mode, and finally the keyword rule engine when the
// provider is absent or fails. Every call ends with a recommendation.
package assistant

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// Dependencies collects the adapters the orchestrator works with.
// Factory, Rules and Cache are required; the rest are optional.
type Dependencies struct {
	Factory  ports.ProviderFactory
	Rules    ports.RuleEngine
	Cache    ports.ResponseCache
	History  ports.HistoryRepository
	Recorder ports.Recorder
	Logger   ports.Logger

	// Coin decides hybrid dispatch; true selects OpenRouter.
	Coin func() bool
	// Clock stamps responses and cache entries.
	Clock func() time.Time
}

// Service is one assistant instance. It is safe for concurrent use.
type Service struct {
	deps Dependencies

	mu         sync.RWMutex
	cfg        domain.AssistantConfig
	components []string
	openRouter ports.OpenRouterClient
	kiloCode   ports.KiloCodeClient
}

// New validates the configuration and builds the provider clients.
func New(cfg domain.AssistantConfig, components []string, deps Dependencies) (*Service, error) {
	if deps.Factory == nil || deps.Rules == nil || deps.Cache == nil {
		return nil, errors.New("assistant.Service dependencies not satisfied")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	if deps.Coin == nil {
		deps.Coin = func() bool { return rand.Intn(2) == 0 }
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if len(components) == 0 {
		components = domain.DefaultComponents
	}

	s := &Service{
		deps:       deps,
		cfg:        cfg,
		components: append([]string(nil), components...),
	}
	s.deps.Cache.Resize(cfg.MaxCacheSize)
	s.rebuildClientsLocked()
	return s, nil
}

// Recommend answers using the configured provider mode.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendationRequest) domain.AssistantResponse {
	s.mu.RLock()
	mode := s.cfg.DefaultProvider
	s.mu.RUnlock()
	return s.RecommendWith(ctx, req, mode)
}

// RecommendWith answers using mode instead of the configured provider mode.
// Cached answers are returned regardless of the mode that produced them.
func (s *Service) RecommendWith(ctx context.Context, req domain.RecommendationRequest, mode domain.ProviderMode) domain.AssistantResponse {
	s.mu.RLock()
	cacheEnabled := s.cfg.CacheEnabled
	openRouter, kiloCode := s.openRouter, s.kiloCode
	s.mu.RUnlock()

	key := req.CacheKey()
	if cacheEnabled {
		if entry, ok := s.deps.Cache.Get(key); ok {
			resp := entry.Response
			resp.Recommendation = resp.Recommendation.Clone()
			resp.Cached = true
			s.deps.Logger.Debug("cache hit", map[string]interface{}{"provider": resp.Provider})
			s.record(resp.Provider, true)
			return resp
		}
	}

	provider := s.selectProvider(mode, openRouter != nil, kiloCode != nil)

	var (
		rec domain.Recommendation
		err error
	)
	switch provider {
	case domain.ProviderOpenRouter:
		rec, err = openRouter.Recommend(ctx, req)
	case domain.ProviderKiloCode:
		rec, err = kiloCode.Recommend(ctx, req)
	default:
		rec = s.deps.Rules.Fallback(req.Description)
	}
	if err != nil {
		s.deps.Logger.Warn("provider failed, using rule fallback", map[string]interface{}{
			"provider": provider,
			"error":    err.Error(),
		})
		if s.deps.Recorder != nil {
			s.deps.Recorder.ProviderFailure(provider)
		}
		provider = domain.ProviderFallback
		rec = s.deps.Rules.Fallback(req.Description)
	}

	resp := domain.AssistantResponse{
		Recommendation: rec,
		Provider:       provider,
		Timestamp:      s.deps.Clock(),
	}

	if cacheEnabled {
		stored := resp
		stored.Recommendation = rec.Clone()
		s.deps.Cache.Set(domain.CacheEntry{Key: key, Response: stored, CreatedAt: resp.Timestamp})
	}

	s.saveHistory(req, resp)
	s.record(provider, false)
	return resp
}

func (s *Service) selectProvider(mode domain.ProviderMode, hasOpenRouter, hasKiloCode bool) domain.Provider {
	if mode == domain.ModeHybrid {
		if s.deps.Coin() {
			mode = domain.ModeOpenRouter
		} else {
			mode = domain.ModeKiloCode
		}
	}
	switch {
	case mode == domain.ModeOpenRouter && hasOpenRouter:
		return domain.ProviderOpenRouter
	case mode == domain.ModeKiloCode && hasKiloCode:
		return domain.ProviderKiloCode
	default:
		return domain.ProviderFallback
	}
}

func (s *Service) saveHistory(req domain.RecommendationRequest, resp domain.AssistantResponse) {
	if s.deps.History == nil {
		return
	}
	err := s.deps.History.Save(domain.HistoryRecord{
		Timestamp:   resp.Timestamp,
		Description: req.Description,
		Provider:    resp.Provider,
		Components:  resp.Recommendation.Components,
		Confidence:  resp.Recommendation.Confidence,
	})
	if err != nil {
		s.deps.Logger.Error("history save failed", err, nil)
	}
}

func (s *Service) record(provider domain.Provider, cached bool) {
	if s.deps.Recorder != nil {
		s.deps.Recorder.Recommendation(provider, cached)
	}
}

// AnalyzeCode asks OpenRouter for a free-form analysis of code.
func (s *Service) AnalyzeCode(ctx context.Context, code string) string {
	client := s.openRouterClient()
	if client == nil {
		return domain.MsgAnalyzeFailed
	}
	out, err := client.AnalyzeCode(ctx, code)
	if err != nil {
		s.auxFailed("analyze", domain.ProviderOpenRouter, err)
		return domain.MsgAnalyzeFailed
	}
	return out
}

// GenerateComponent asks OpenRouter for component source code.
func (s *Service) GenerateComponent(ctx context.Context, description string, props map[string]any) string {
	client := s.openRouterClient()
	if client == nil {
		return domain.MsgGenerateFailed
	}
	out, err := client.GenerateComponent(ctx, description, props)
	if err != nil {
		s.auxFailed("generate", domain.ProviderOpenRouter, err)
		return domain.MsgGenerateFailed
	}
	return out
}

// SuggestImprovements asks OpenRouter for improvement ideas for a component.
func (s *Service) SuggestImprovements(ctx context.Context, component string) []string {
	client := s.openRouterClient()
	if client == nil {
		return []string{domain.MsgImprovementsFailed}
	}
	out, err := client.SuggestImprovements(ctx, component)
	if err != nil {
		s.auxFailed("improve", domain.ProviderOpenRouter, err)
		return []string{domain.MsgImprovementsFailed}
	}
	return out
}

// AnalyzeCodebase asks KiloCode for codebase level suggestions.
func (s *Service) AnalyzeCodebase(ctx context.Context, codebase string) []string {
	client := s.kiloCodeClient()
	if client == nil {
		return []string{domain.MsgCodebaseFailed}
	}
	out, err := client.AnalyzeCodebase(ctx, codebase)
	if err != nil {
		s.auxFailed("analyze codebase", domain.ProviderKiloCode, err)
		return []string{domain.MsgCodebaseFailed}
	}
	return out
}

// SuggestRefactoring asks KiloCode for refactoring ideas.
func (s *Service) SuggestRefactoring(ctx context.Context, component, code string) []string {
	client := s.kiloCodeClient()
	if client == nil {
		return []string{domain.MsgRefactorFailed}
	}
	out, err := client.SuggestRefactoring(ctx, component, code)
	if err != nil {
		s.auxFailed("refactor", domain.ProviderKiloCode, err)
		return []string{domain.MsgRefactorFailed}
	}
	return out
}

// GenerateTests asks KiloCode for a test file for a component.
func (s *Service) GenerateTests(ctx context.Context, component string, props map[string]any) string {
	client := s.kiloCodeClient()
	if client == nil {
		return domain.MsgTestsFailed
	}
	out, err := client.GenerateTests(ctx, component, props)
	if err != nil {
		s.auxFailed("generate tests", domain.ProviderKiloCode, err)
		return domain.MsgTestsFailed
	}
	return out
}

// OptimizePerformance asks KiloCode for performance suggestions.
func (s *Service) OptimizePerformance(ctx context.Context, component, code string) []string {
	client := s.kiloCodeClient()
	if client == nil {
		return []string{domain.MsgOptimizeFailed}
	}
	out, err := client.OptimizePerformance(ctx, component, code)
	if err != nil {
		s.auxFailed("optimize", domain.ProviderKiloCode, err)
		return []string{domain.MsgOptimizeFailed}
	}
	return out
}

func (s *Service) auxFailed(op string, provider domain.Provider, err error) {
	s.deps.Logger.Warn("auxiliary call failed", map[string]interface{}{
		"op":       op,
		"provider": provider,
		"error":    err.Error(),
	})
	if s.deps.Recorder != nil {
		s.deps.Recorder.ProviderFailure(provider)
	}
}

func (s *Service) openRouterClient() ports.OpenRouterClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.openRouter
}

func (s *Service) kiloCodeClient() ports.KiloCodeClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kiloCode
}

// ClearCache drops every cached response.
func (s *Service) ClearCache() {
	s.deps.Cache.Clear()
}

// CacheStats reports the cache occupancy against the configured bound.
func (s *Service) CacheStats() domain.CacheStats {
	s.mu.RLock()
	maxSize := s.cfg.MaxCacheSize
	s.mu.RUnlock()
	return domain.CacheStats{Size: s.deps.Cache.Len(), MaxSize: maxSize}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() domain.AssistantConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// UpdateConfig merges the set fields of patch into the configuration.
// An invalid result is rejected and the previous configuration stays active.
func (s *Service) UpdateConfig(patch domain.ConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg.Apply(patch)
	if err := next.Validate(); err != nil {
		return err
	}
	keysChanged := next.OpenRouterAPIKey != s.cfg.OpenRouterAPIKey || next.KiloCodeAPIKey != s.cfg.KiloCodeAPIKey
	s.cfg = next
	s.deps.Cache.Resize(next.MaxCacheSize)
	if keysChanged {
		s.rebuildClientsLocked()
	}
	s.deps.Logger.Info("assistant config updated", map[string]interface{}{
		"provider":       next.DefaultProvider,
		"cache_enabled":  next.CacheEnabled,
		"max_cache_size": next.MaxCacheSize,
	})
	return nil
}

// UpdateAvailableComponents replaces the whitelist and rebuilds the clients.
// Calls already in flight finish with the clients they started with.
func (s *Service) UpdateAvailableComponents(components []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = append([]string(nil), components...)
	s.rebuildClientsLocked()
}

// AvailableComponents returns a copy of the whitelist.
func (s *Service) AvailableComponents() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.components...)
}

func (s *Service) rebuildClientsLocked() {
	s.openRouter = s.deps.Factory.OpenRouter(s.cfg.OpenRouterAPIKey, s.components)
	s.kiloCode = s.deps.Factory.KiloCode(s.cfg.KiloCodeAPIKey, s.components)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
