package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/dc25-uiux/uxai/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := cfg.Assistant.Validate(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}
	if err := validateEndpoint("providers.openrouter", cfg.Providers.OpenRouter); err != nil {
		return err
	}
	if err := validateEndpoint("providers.kilocode", cfg.Providers.KiloCode); err != nil {
		return err
	}
	if err := validateComponents(cfg.Components); err != nil {
		return err
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}
	if cfg.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
			return fmt.Errorf("server.addr invalid: %w", err)
		}
	}
	return nil
}

// Warnings lists non-fatal issues, such as a fixed provider without credentials.
func Warnings(cfg domain.Config) []string {
	var out []string
	a := cfg.Assistant
	switch {
	case a.DefaultProvider == domain.ModeOpenRouter && a.OpenRouterAPIKey == "":
		out = append(out, fmt.Sprintf("openrouter selected but %s is not set; rule fallback will answer", cfg.Providers.OpenRouter.AuthEnvVar))
	case a.DefaultProvider == domain.ModeKiloCode && a.KiloCodeAPIKey == "":
		out = append(out, fmt.Sprintf("kilocode selected but %s is not set; rule fallback will answer", cfg.Providers.KiloCode.AuthEnvVar))
	case a.DefaultProvider == domain.ModeHybrid && (a.OpenRouterAPIKey == "" || a.KiloCodeAPIKey == ""):
		out = append(out, "hybrid mode with a missing key; some requests will use the rule fallback")
	}
	if !a.FallbackToRules {
		out = append(out, "fallback_to_rules is off; the rule engine still answers when providers fail")
	}
	return out
}

func validateEndpoint(name string, ep domain.EndpointSettings) error {
	if ep.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(ep.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s.base_url must be an absolute URL, got %q", name, ep.BaseURL)
	}
	return nil
}

func validateComponents(components []string) error {
	seen := make(map[string]struct{}, len(components))
	for _, c := range components {
		if c == "" {
			return fmt.Errorf("components: entry cannot be empty")
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("components: duplicate entry %s", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
