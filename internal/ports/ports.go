// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The assistant orchestrator depends only on these
// abstractions; concrete HTTP clients, caches and stores live in the
// infrastructure layer.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Recommender, ResponseCache)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/dc25-uiux/uxai/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.uxai/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ProjectInspector summarizes the project in a directory.
type ProjectInspector interface {
	Inspect(ctx context.Context, dir string) (domain.ProjectSnapshot, error)
}

// Recommender is the contract shared by both external provider clients.
type Recommender interface {
	Name() domain.Provider
	Recommend(context.Context, domain.RecommendationRequest) (domain.Recommendation, error)
}

// RuleEngine produces a recommendation without any external call.
type RuleEngine interface {
	Fallback(description string) domain.Recommendation
}

// CodeAssistant exposes the free-form helpers only provider A offers.
type CodeAssistant interface {
	AnalyzeCode(ctx context.Context, code string) (string, error)
	GenerateComponent(ctx context.Context, description string, props map[string]any) (string, error)
	SuggestImprovements(ctx context.Context, component string) ([]string, error)
}

// CodebaseAdvisor exposes the extra endpoints of provider B.
type CodebaseAdvisor interface {
	AnalyzeCodebase(ctx context.Context, codebase string) ([]string, error)
	SuggestRefactoring(ctx context.Context, component, code string) ([]string, error)
	GenerateTests(ctx context.Context, component string, props map[string]any) (string, error)
	OptimizePerformance(ctx context.Context, component, code string) ([]string, error)
}

// ProviderFactory builds provider clients for a credential set and whitelist.
// A nil result means the provider is not configured.
type ProviderFactory interface {
	OpenRouter(apiKey string, components []string) OpenRouterClient
	KiloCode(apiKey string, components []string) KiloCodeClient
}

// OpenRouterClient is provider A.
type OpenRouterClient interface {
	Recommender
	CodeAssistant
}

// KiloCodeClient is provider B.
type KiloCodeClient interface {
	Recommender
	CodebaseAdvisor
}

// ResponseCache is the bounded, insertion-ordered response store.
type ResponseCache interface {
	Get(key string) (domain.CacheEntry, bool)
	Set(entry domain.CacheEntry)
	Clear()
	Len() int
	Resize(size int)
	Entries() []domain.CacheEntry
}

// HistoryRepository persists produced recommendations.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
}

// Recorder receives orchestration events for metrics.
type Recorder interface {
	Recommendation(provider domain.Provider, cached bool)
	ProviderFailure(provider domain.Provider)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
