package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectReactProject(t *testing.T) {
	dir := t.TempDir()
	pkg := `{
  "name": "shop",
  "dependencies": {"react": "^18.2.0", "@radix-ui/react-dialog": "^1.0.0", "lodash": "^4"},
  "devDependencies": {"typescript": "^5", "tailwindcss": "^3"}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("X=1"), 0o600))

	snapshot, err := NewCollector().Inspect(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "shop", snapshot.Name)
	assert.Equal(t, "react", snapshot.Framework)
	assert.Equal(t, "typescript", snapshot.Language)
	assert.Equal(t, []string{"@radix-ui/react-dialog", "react", "tailwindcss"}, snapshot.Dependencies)
	assert.ElementsMatch(t, []string{"package.json", "src/"}, snapshot.Files)
	assert.Empty(t, snapshot.GitBranch)

	summary := snapshot.Summary()
	assert.Contains(t, summary, "framework: react")
	assert.Contains(t, summary, "dependencies: @radix-ui/react-dialog, react, tailwindcss")
}

func TestInspectWithoutPackageJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

	snapshot, err := NewCollector().Inspect(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Framework)
	assert.Equal(t, []string{"index.html"}, snapshot.Files)
}

func TestInspectDetectsVue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"dependencies":{"vue":"^3"}}`), 0o644))

	snapshot, err := NewCollector().Inspect(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "vue", snapshot.Framework)
	assert.Equal(t, "javascript", snapshot.Language)
}

func TestInspectRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewCollector().Inspect(context.Background(), file)
	require.Error(t, err)
}

func TestInspectInvalidPackageJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{`), 0o644))

	_, err := NewCollector().Inspect(context.Background(), dir)
	require.Error(t, err)
}
