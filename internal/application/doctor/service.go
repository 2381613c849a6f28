package doctor

import (
	"context"
	"errors"
	"fmt"

	configapp "github.com/dc25-uiux/uxai/internal/application/config"
	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryRepository
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	if s.ConfigProvider == nil {
		return domain.HealthReport{}, errors.New("doctor.Service dependencies not satisfied")
	}
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded %s", cfg.ConfigFormatVersion)))

	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	} else {
		checks = append(checks, ok("Config values", fmt.Sprintf("provider mode %s", cfg.Assistant.DefaultProvider)))
	}

	checks = append(checks,
		keyCheck("OpenRouter key", cfg.Assistant.OpenRouterAPIKey, cfg.Providers.OpenRouter.AuthEnvVar),
		keyCheck("KiloCode key", cfg.Assistant.KiloCodeAPIKey, cfg.Providers.KiloCode.AuthEnvVar),
		ok("Components", fmt.Sprintf("%d available", len(cfg.EffectiveComponents()))),
	)

	switch {
	case !cfg.History.Enabled:
		checks = append(checks, warn("History", "disabled"))
	case s.HistoryStore == nil:
		checks = append(checks, warn("History", "store not initialized"))
	default:
		if _, err := s.HistoryStore.Records(1, ""); err != nil {
			checks = append(checks, fail("History", err.Error()))
		} else {
			checks = append(checks, ok("History", cfg.History.Path))
		}
	}

	for _, w := range configapp.Warnings(cfg) {
		checks = append(checks, warn("Provider mode", w))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func keyCheck(name, value, envVar string) domain.HealthCheck {
	if value == "" {
		return warn(name, fmt.Sprintf("%s missing", envVar))
	}
	return ok(name, fmt.Sprintf("detected in %s", envVar))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
