package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dc25-uiux/uxai/internal/application/assistant"
	"github.com/dc25-uiux/uxai/internal/application/doctor"
	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/infrastructure/ai"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cache"
	"github.com/dc25-uiux/uxai/internal/infrastructure/config"
	"github.com/dc25-uiux/uxai/internal/infrastructure/history"
	"github.com/dc25-uiux/uxai/internal/infrastructure/metrics"
	"github.com/dc25-uiux/uxai/internal/infrastructure/project"
	"github.com/dc25-uiux/uxai/internal/pkg/logger"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	Assistant     *assistant.Service
	ConfigLoader  *config.FileLoader
	DoctorService *doctor.Service
	HistoryStore  ports.HistoryRepository
	Inspector     ports.ProjectInspector
	Registry      *prometheus.Registry
	Logger        ports.Logger

	closers []func() error
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(registry)

	c := &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Registry:     registry,
		Logger:       log,
		Inspector:    project.NewCollector(),
	}

	if cfg.History.Enabled {
		store, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			// history is optional; recommendations still work without it
			log.Warn("history store unavailable", map[string]interface{}{"path": cfg.History.Path, "error": err.Error()})
		} else {
			c.HistoryStore = store
			c.closers = append(c.closers, store.Close)
		}
	}

	svc, err := assistant.New(cfg.Assistant, cfg.EffectiveComponents(), assistant.Dependencies{
		Factory:  ai.NewFactory(cfg.Providers),
		Rules:    ai.RuleEngine{},
		Cache:    cache.NewMemoryCache(cfg.Assistant.MaxCacheSize),
		History:  c.HistoryStore,
		Recorder: recorder,
		Logger:   log,
	})
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Assistant = svc

	c.DoctorService = &doctor.Service{
		ConfigProvider: cfgLoader,
		HistoryStore:   c.HistoryStore,
	}
	return c, nil
}

// Close releases resources held by adapters.
func (c *Container) Close() error {
	var first error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}
