package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dc25-uiux/uxai/internal/domain"
)

func TestCheckWhitelist(t *testing.T) {
	available := []string{"Button", "Input", "Label"}

	assert.NoError(t, checkWhitelist(domain.Recommendation{Components: []string{"Button", "Label"}}, available))
	assert.ErrorIs(t, checkWhitelist(domain.Recommendation{Components: []string{"Button", "MagicGrid"}}, available), ErrOutsideWhitelist)
	assert.ErrorIs(t, checkWhitelist(domain.Recommendation{}, available), ErrOutsideWhitelist)
	assert.ErrorIs(t, checkWhitelist(domain.Recommendation{Components: []string{"Button"}}, nil), ErrOutsideWhitelist)
}

func TestNormalizeClampsConfidence(t *testing.T) {
	assert.InDelta(t, 0.8, normalize(domain.Recommendation{}).Confidence, 1e-9)
	assert.InDelta(t, 0.95, normalize(domain.Recommendation{Confidence: 0.99}).Confidence, 1e-9)
	assert.InDelta(t, 0.6, normalize(domain.Recommendation{Confidence: 0.6}).Confidence, 1e-9)
	assert.Equal(t, domain.ArchitectureAtom, normalize(domain.Recommendation{Architecture: "page"}).Architecture)
}

func TestPatternsAndPractices(t *testing.T) {
	comps := []string{"Table", "Pagination", "Button"}
	assert.Equal(t, []string{"Data Display Pattern: Используйте Table с Pagination для отображения данных"}, suggestPatterns(comps))

	practices := suggestBestPractices(comps)
	assert.Len(t, practices, 7)
	assert.Equal(t, "Используйте TypeScript интерфейсы для пропсов", practices[0])
	assert.Contains(t, practices, "Table: Добавляйте пагинацию для больших данных")
}
