package ai

import (
	"strings"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// keywordRule maps description keywords to a canned recommendation.
type keywordRule struct {
	keywords []string
	result   domain.Recommendation
}

// Rules are checked in order; the first match wins.
var fallbackRules = []keywordRule{
	{
		keywords: []string{"кнопка", "button"},
		result: domain.Recommendation{
			Components:   []string{"Button"},
			Architecture: domain.ArchitectureAtom,
			Reasoning:    "Компонент кнопки для взаимодействия с пользователем",
			Alternatives: []string{"Badge", "Toggle"},
			CodeExample:  `<Button variant="default">Нажми меня</Button>`,
			Confidence:   0.7,
		},
	},
	{
		keywords: []string{"поле", "input", "форма"},
		result: domain.Recommendation{
			Components:   []string{"Input", "Label"},
			Architecture: domain.ArchitectureMolecule,
			Reasoning:    "Компоненты для создания формы ввода",
			Alternatives: []string{"Textarea", "Select"},
			CodeExample: `<Label htmlFor="email">Email</Label>
<Input id="email" type="email" placeholder="Введите email" />`,
			Confidence: 0.7,
		},
	},
	{
		keywords: []string{"таблица", "table", "данные"},
		result: domain.Recommendation{
			Components:   []string{"Table", "Pagination"},
			Architecture: domain.ArchitectureOrganism,
			Reasoning:    "Компоненты для отображения данных в таблице",
			Alternatives: []string{"Card", "List"},
			CodeExample: `<Table>
  <TableHeader>
    <TableRow>
      <TableHead>Название</TableHead>
      <TableHead>Статус</TableHead>
    </TableRow>
  </TableHeader>
</Table>`,
			Confidence: 0.7,
		},
	},
}

var defaultRecommendation = domain.Recommendation{
	Components:   []string{"Button", "Input"},
	Architecture: domain.ArchitectureAtom,
	Reasoning:    "Базовые компоненты для начала разработки",
	Alternatives: []string{"Badge", "Label"},
	CodeExample:  `<Button>Начните здесь</Button>`,
	Confidence:   0.5,
}

// Fallback returns a keyword-based recommendation. It never fails and has
// no state: equal descriptions yield equal results.
func Fallback(description string) domain.Recommendation {
	text := strings.ToLower(description)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.result.Clone()
			}
		}
	}
	return defaultRecommendation.Clone()
}

// RuleEngine adapts Fallback to ports.RuleEngine.
type RuleEngine struct{}

func (RuleEngine) Fallback(description string) domain.Recommendation {
	return Fallback(description)
}

var _ ports.RuleEngine = RuleEngine{}
