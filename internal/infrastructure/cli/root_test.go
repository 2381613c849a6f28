package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/app"
	"github.com/dc25-uiux/uxai/internal/application/assistant"
	"github.com/dc25-uiux/uxai/internal/application/doctor"
	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/infrastructure/ai"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cache"
	"github.com/dc25-uiux/uxai/internal/infrastructure/config"
	"github.com/dc25-uiux/uxai/internal/infrastructure/history"
	"github.com/dc25-uiux/uxai/internal/infrastructure/project"
	"github.com/dc25-uiux/uxai/internal/pkg/logger"
)

func newTestContainer(t *testing.T) *app.Container {
	t.Helper()
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("KILOCODE_API_KEY", "")

	dir := t.TempDir()
	loader := config.NewFileLoader(filepath.Join(dir, "config.yaml"))
	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)
	cfg.History.Path = filepath.Join(dir, "history.db")
	require.NoError(t, loader.Save(cfg))

	store, err := history.NewSQLiteStore(cfg.History.Path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc, err := assistant.New(cfg.Assistant, cfg.EffectiveComponents(), assistant.Dependencies{
		Factory: ai.NewFactory(cfg.Providers),
		Rules:   ai.RuleEngine{},
		Cache:   cache.NewMemoryCache(cfg.Assistant.MaxCacheSize),
		History: store,
		Logger:  logger.Nop(),
	})
	require.NoError(t, err)

	return &app.Container{
		Config:        cfg,
		Assistant:     svc,
		ConfigLoader:  loader,
		DoctorService: &doctor.Service{ConfigProvider: loader, HistoryStore: store},
		HistoryStore:  store,
		Inspector:     project.NewCollector(),
		Logger:        logger.Nop(),
	}
}

func run(t *testing.T, container *app.Container, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(container)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRecommendCommandJSON(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "", "recommend", "нужна", "таблица", "--json")
	require.NoError(t, err)

	var resp domain.AssistantResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, domain.ProviderFallback, resp.Provider)
	assert.Equal(t, []string{"Table", "Pagination"}, resp.Recommendation.Components)
}

func TestRecommendCommandRejectsUnknownProvider(t *testing.T) {
	container := newTestContainer(t)
	_, err := run(t, container, "", "recommend", "x", "--provider", "gemini")
	require.Error(t, err)
}

func TestBareDescriptionRunsRecommend(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "", "форма входа")
	require.NoError(t, err)
	assert.Contains(t, out, "Provider: fallback")
	assert.Contains(t, out, "Components: Input, Label")
}

func TestRecommendDetectsProject(t *testing.T) {
	container := newTestContainer(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"dependencies":{"vue":"^3"}}`), 0o644))

	out, err := run(t, container, "", "recommend", "таблица", "--detect="+dir, "--json")
	require.NoError(t, err)
	var resp domain.AssistantResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, domain.ProviderFallback, resp.Provider)

	_, err = run(t, container, "", "recommend", "таблица", "--detect="+filepath.Join(dir, "package.json"))
	require.Error(t, err)

	container.Inspector = nil
	_, err = run(t, container, "", "advise", "codebase")
	require.Error(t, err)
}

func TestHistoryCommands(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No history recorded yet.")

	_, err = run(t, container, "", "recommend", "кнопка отправки")
	require.NoError(t, err)

	out, err = run(t, container, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "fallback")
	assert.Contains(t, out, "кнопка отправки")

	out, err = run(t, container, "", "history", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Fallback rate: 100.0%")
	assert.Contains(t, out, "Button (1)")

	out, err = run(t, container, "n\n", "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	_, err = run(t, container, "", "history", "clear", "--yes")
	require.NoError(t, err)
	out, err = run(t, container, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No history recorded yet.")
}

func TestComponentsCommands(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "", "components", "add", "Tooltip")
	require.NoError(t, err)
	assert.Contains(t, out, "components available")
	assert.Contains(t, container.Assistant.AvailableComponents(), "Tooltip")

	reloaded, err := container.ConfigLoader.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, reloaded.Components, "Tooltip")

	_, err = run(t, container, "", "components", "add", "Tooltip")
	require.Error(t, err)

	_, err = run(t, container, "", "components", "remove", "Tooltip")
	require.NoError(t, err)
	out, err = run(t, container, "", "components", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Tooltip")
	assert.Contains(t, out, "Button")
}

func TestConfigCommands(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")

	_, err = run(t, container, "", "config", "set", "assistant.max_cache_size", "5")
	require.NoError(t, err)
	out, err = run(t, container, "", "config", "get", "--key", "assistant.max_cache_size")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	_, err = run(t, container, "", "config", "set", "assistant.default_provider", "gemini")
	require.Error(t, err)

	out, err = run(t, container, "", "config", "diff")
	require.NoError(t, err)
	assert.Contains(t, out, "MaxCacheSize")
}

func TestAuxiliaryCommandsWithoutKeys(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "export const A = () => null\n", "analyze", "-")
	require.NoError(t, err)
	assert.Contains(t, out, domain.MsgAnalyzeFailed)

	out, err = run(t, container, "", "generate", "карточка", "--prop", "title=Hi")
	require.NoError(t, err)
	assert.Contains(t, out, domain.MsgGenerateFailed)

	out, err = run(t, container, "", "advise", "tests", "Button")
	require.NoError(t, err)
	assert.Contains(t, out, domain.MsgTestsFailed)

	out, err = run(t, container, "", "advise", "codebase")
	require.NoError(t, err)
	assert.Contains(t, out, domain.MsgCodebaseFailed)

	_, err = run(t, container, "", "analyze", "-")
	require.Error(t, err)
}

func TestDoctorAndVersion(t *testing.T) {
	container := newTestContainer(t)

	out, err := run(t, container, "", "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Config file")
	assert.Contains(t, out, "[WARN] OpenRouter key")

	out, err = run(t, container, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "uxai version")
}
