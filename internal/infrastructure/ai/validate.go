package ai

import (
	"fmt"
	"slices"

	"github.com/dc25-uiux/uxai/internal/domain"
)

// checkWhitelist rejects a recommendation that names any component outside
// available, or none at all.
func checkWhitelist(rec domain.Recommendation, available []string) error {
	if len(rec.Components) == 0 {
		return fmt.Errorf("%w: no components suggested", ErrOutsideWhitelist)
	}
	var unknown []string
	for _, comp := range rec.Components {
		if !slices.Contains(available, comp) {
			unknown = append(unknown, comp)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %v", ErrOutsideWhitelist, unknown)
	}
	return nil
}

// normalize clamps confidence and repairs an unknown tier.
func normalize(rec domain.Recommendation) domain.Recommendation {
	if rec.Confidence <= 0 {
		rec.Confidence = domain.DefaultProviderConfidence
	}
	rec.Confidence = min(rec.Confidence, domain.MaxProviderConfidence)
	if !rec.Architecture.Valid() {
		rec.Architecture = domain.ArchitectureAtom
	}
	return rec
}

// suggestPatterns lists composition patterns for known component pairs.
func suggestPatterns(components []string) []string {
	pairs := []struct {
		a, b    string
		pattern string
	}{
		{"Button", "Input", "Form Pattern: Используйте Button и Input для создания форм"},
		{"Dialog", "Button", "Modal Pattern: Используйте Dialog с Button для модальных окон"},
		{"Table", "Pagination", "Data Display Pattern: Используйте Table с Pagination для отображения данных"},
		{"SearchBar", "FilterGroup", "Search Pattern: Используйте SearchBar с FilterGroup для поиска и фильтрации"},
	}

	var patterns []string
	for _, p := range pairs {
		if slices.Contains(components, p.a) && slices.Contains(components, p.b) {
			patterns = append(patterns, p.pattern)
		}
	}
	return patterns
}

var componentPractices = []struct {
	component string
	practices []string
}{
	{"Button", []string{
		"Button: Используйте варианты (primary, secondary, outline)",
		"Button: Добавляйте состояния loading и disabled",
	}},
	{"Input", []string{
		"Input: Всегда добавляйте Label для доступности",
		"Input: Используйте валидацию и обработку ошибок",
	}},
	{"Dialog", []string{
		"Dialog: Управляйте состоянием открытия/закрытия",
		"Dialog: Добавляйте обработку клавиши Escape",
	}},
	{"Table", []string{
		"Table: Используйте сортировку и фильтрацию",
		"Table: Добавляйте пагинацию для больших данных",
	}},
}

// suggestBestPractices returns the general practices followed by the ones
// specific to components.
func suggestBestPractices(components []string) []string {
	practices := []string{
		"Используйте TypeScript интерфейсы для пропсов",
		"Применяйте принципы Atomic Design",
		"Используйте Tailwind CSS для стилизации",
	}
	for _, cp := range componentPractices {
		if slices.Contains(components, cp.component) {
			practices = append(practices, cp.practices...)
		}
	}
	return practices
}
