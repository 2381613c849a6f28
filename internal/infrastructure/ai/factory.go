package ai

import (
	"net/http"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// Factory builds provider clients sharing one HTTP client.
type Factory struct {
	httpClient *http.Client
	settings   domain.ProviderSettings
}

func NewFactory(settings domain.ProviderSettings) *Factory {
	return NewFactoryWithClient(settings, &http.Client{Timeout: domain.DefaultHTTPClientTimeout})
}

func NewFactoryWithClient(settings domain.ProviderSettings, client *http.Client) *Factory {
	return &Factory{httpClient: client, settings: settings}
}

// OpenRouter returns nil when no key is configured.
func (f *Factory) OpenRouter(apiKey string, components []string) ports.OpenRouterClient {
	if apiKey == "" {
		return nil
	}
	return NewOpenRouter(apiKey, f.settings.OpenRouter, components, f.httpClient)
}

// KiloCode returns nil when no key is configured.
func (f *Factory) KiloCode(apiKey string, components []string) ports.KiloCodeClient {
	if apiKey == "" {
		return nil
	}
	return NewKiloCode(apiKey, f.settings.KiloCode, components, f.httpClient)
}

var _ ports.ProviderFactory = (*Factory)(nil)
