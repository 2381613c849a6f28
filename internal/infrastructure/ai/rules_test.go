package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/domain"
)

func TestFallbackKeywordPriority(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
		tier        domain.Architecture
		confidence  float64
	}{
		{"russian button", "кнопка для входа", []string{"Button"}, domain.ArchitectureAtom, 0.7},
		{"english button wins over form", "Submit BUTTON inside a form input", []string{"Button"}, domain.ArchitectureAtom, 0.7},
		{"form", "форма с email и паролем", []string{"Input", "Label"}, domain.ArchitectureMolecule, 0.7},
		{"table", "таблица пользователей", []string{"Table", "Pagination"}, domain.ArchitectureOrganism, 0.7},
		{"data", "show some данные", []string{"Table", "Pagination"}, domain.ArchitectureOrganism, 0.7},
		{"no match", "landing hero", []string{"Button", "Input"}, domain.ArchitectureAtom, 0.5},
		{"empty", "", []string{"Button", "Input"}, domain.ArchitectureAtom, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.description)
			assert.Equal(t, tt.want, got.Components)
			assert.Equal(t, tt.tier, got.Architecture)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
			assert.NotEmpty(t, got.Reasoning)
			assert.NotEmpty(t, got.CodeExample)
		})
	}
}

func TestFallbackIsDeterministicAndIsolated(t *testing.T) {
	first := Fallback("кнопка для входа")
	second := Fallback("кнопка для входа")
	require.Equal(t, first, second)
	assert.Contains(t, first.Components, "Button")

	first.Components[0] = "Mutated"
	assert.Equal(t, []string{"Button"}, Fallback("кнопка для входа").Components)
}
