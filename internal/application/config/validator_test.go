package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dc25-uiux/uxai/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Assistant: domain.AssistantConfig{
			DefaultProvider: domain.ModeHybrid,
			FallbackToRules: true,
			CacheEnabled:    true,
			MaxCacheSize:    10,
		},
		Providers: domain.ProviderSettings{
			OpenRouter: domain.EndpointSettings{BaseURL: "https://openrouter.ai/api/v1"},
		},
		Components: []string{"Button", "Input"},
		Server:     domain.ServerSettings{Addr: "127.0.0.1:8080"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{"valid", func(*domain.Config) {}, false},
		{"bad mode", func(c *domain.Config) { c.Assistant.DefaultProvider = "random" }, true},
		{"zero cache", func(c *domain.Config) { c.Assistant.MaxCacheSize = 0 }, true},
		{"relative url", func(c *domain.Config) { c.Providers.KiloCode.BaseURL = "api/v1" }, true},
		{"duplicate component", func(c *domain.Config) { c.Components = []string{"Button", "Button"} }, true},
		{"history without path", func(c *domain.Config) { c.History.Enabled = true }, true},
		{"bad addr", func(c *domain.Config) { c.Server.Addr = "8080" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWarningsForMissingKeys(t *testing.T) {
	cfg := validConfig()
	assert.Len(t, Warnings(cfg), 1)

	cfg.Assistant.OpenRouterAPIKey = "a"
	cfg.Assistant.KiloCodeAPIKey = "b"
	assert.Empty(t, Warnings(cfg))

	cfg.Assistant.FallbackToRules = false
	assert.Len(t, Warnings(cfg), 1)
}
