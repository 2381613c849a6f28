package doctor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/application/doctor"
	"github.com/dc25-uiux/uxai/internal/domain"
)

type staticConfig struct {
	cfg domain.Config
	err error
}

func (s staticConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubHistory struct{ err error }

func (h stubHistory) Save(domain.HistoryRecord) error { return nil }
func (h stubHistory) Records(int, string) ([]domain.HistoryRecord, error) {
	return nil, h.err
}
func (h stubHistory) Clear() error { return nil }

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Assistant: domain.AssistantConfig{
			OpenRouterAPIKey: "key",
			DefaultProvider:  domain.ModeOpenRouter,
			FallbackToRules:  true,
			CacheEnabled:     true,
			MaxCacheSize:     100,
		},
		Providers: domain.ProviderSettings{
			OpenRouter: domain.EndpointSettings{AuthEnvVar: "OPENROUTER_API_KEY"},
			KiloCode:   domain.EndpointSettings{AuthEnvVar: "KILOCODE_API_KEY"},
		},
		History: domain.HistorySettings{Enabled: true, Path: "/tmp/history.db"},
	}
}

func statusOf(report domain.HealthReport, name string) domain.HealthStatus {
	for _, c := range report.Checks {
		if c.Name == name {
			return c.Status
		}
	}
	return ""
}

func TestService_Run(t *testing.T) {
	svc := &doctor.Service{ConfigProvider: staticConfig{cfg: validConfig()}, HistoryStore: stubHistory{}}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Healthy())
	assert.Equal(t, domain.HealthOK, statusOf(report, "Config values"))
	assert.Equal(t, domain.HealthOK, statusOf(report, "OpenRouter key"))
	assert.Equal(t, domain.HealthWarn, statusOf(report, "KiloCode key"))
	assert.Equal(t, domain.HealthOK, statusOf(report, "History"))
}

func TestService_RunReportsFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Assistant.MaxCacheSize = 0
	svc := &doctor.Service{
		ConfigProvider: staticConfig{cfg: cfg},
		HistoryStore:   stubHistory{err: errors.New("database is locked")},
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Healthy())
	assert.Equal(t, domain.HealthError, statusOf(report, "Config values"))
	assert.Equal(t, domain.HealthError, statusOf(report, "History"))
}

func TestService_RunConfigLoadError(t *testing.T) {
	svc := &doctor.Service{ConfigProvider: staticConfig{err: errors.New("bad yaml")}}

	report, err := svc.Run(context.Background())
	require.Error(t, err)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, domain.HealthError, report.Checks[0].Status)
}

func TestService_RunMissingDependencies(t *testing.T) {
	_, err := (&doctor.Service{}).Run(context.Background())
	require.Error(t, err)
}
