package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/meal"
)

// RenderResult formats a nutrition result as a bordered panel.
func RenderResult(res domain.MacroResult, src domain.ResultSource) string {
	rows := []string{
		titleStyle.Render(fmt.Sprintf("%d kcal", res.Calories)) +
			secondaryStyle.Render(fmt.Sprintf("  %d kJ", res.Kilojoules)),
		macroRow("Protein", res.Protein),
		macroRow("Carbs", res.Carbs),
		macroRow("Fat", res.Fat),
	}
	if src == domain.SourceFallback {
		rows = append(rows, secondaryStyle.Render("calculated offline"))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func macroRow(name string, m domain.Macro) string {
	return primaryStyle.Render(fmt.Sprintf("%-8s %4dg", name, m.Grams)) +
		secondaryStyle.Render(fmt.Sprintf("  (%d - %d)", m.Min, m.Max))
}

// RenderMeal formats a loaded meal record as key/value lines.
func RenderMeal(id string, fields []meal.Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Key))
	}

	rows := []string{titleStyle.Render("Meal " + id)}
	for _, f := range fields {
		rows = append(rows, secondaryStyle.Render(fmt.Sprintf("%-*s  ", width, f.Key))+primaryStyle.Render(f.Value))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}
