package ai

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/dc25-uiux/uxai/internal/domain"
)

const recommendSystemTemplate = `Ты - эксперт по React компонентам и UI/UX дизайну.
Твоя задача - анализировать запросы пользователей и рекомендовать подходящие компоненты из библиотеки DC25 UI/UX.

Доступные компоненты:
{{range .Components}}- {{.}}
{{end}}
Принципы Atomic Design:
- Atoms: Базовые элементы (Button, Input, Label, Badge)
- Molecules: Простые комбинации (SearchBar, FilterGroup, ComponentCard)
- Organisms: Сложные секции (Header, Footer, ComponentGrid)

Всегда отвечай в формате JSON:
{
  "components": ["список", "рекомендуемых", "компонентов"],
  "architecture": "atom|molecule|organism",
  "reasoning": "объяснение выбора",
  "alternatives": ["альтернативные", "варианты"],
  "codeExample": "пример кода компонента",
  "confidence": 0.95
}

Используй только доступные компоненты из списка выше.`

const recommendUserTemplate = `Запрос: {{.Description}}
{{- if .Context}}
Контекст: {{.Context}}{{end}}
{{- with .Preferences}}{{if not .Empty}}
Предпочтения:
{{- if .Complexity}}
- Сложность: {{.Complexity}}{{end}}
{{- if .Style}}
- Стиль: {{.Style}}{{end}}
{{- if .Framework}}
- Фреймворк: {{.Framework}}{{end}}
{{- end}}{{end}}`

const generateSystemPrompt = `Ты эксперт по React компонентам. Генерируй TypeScript React компоненты в стиле DC25 UI/UX библиотеки.

Используй:
- TypeScript интерфейсы для пропсов
- Tailwind CSS для стилизации
- Компоненты из shadcn/ui
- Функциональные компоненты с хуками

Формат ответа: только код компонента без объяснений.`

const (
	analyzeSystemPrompt      = "Ты эксперт по React коду. Анализируй предоставленный код и дай рекомендации по улучшению."
	improvementsSystemPrompt = "Ты эксперт по React компонентам. Предлагай улучшения для компонентов."
)

// renderSystemPrompt lists the whitelist for the recommendation call.
func renderSystemPrompt(components []string) (string, error) {
	return executeTemplate(recommendSystemTemplate, struct{ Components []string }{components})
}

// renderUserPrompt expands description, context and preferences.
func renderUserPrompt(req domain.RecommendationRequest) (string, error) {
	return executeTemplate(recommendUserTemplate, req)
}

func executeTemplate(raw string, data any) (string, error) {
	tmpl, err := template.New("prompt").Parse(raw)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
