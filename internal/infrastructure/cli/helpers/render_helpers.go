package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dc25-uiux/uxai/internal/domain"
)

// RenderResponse prints a recommendation in a human readable format.
func RenderResponse(out io.Writer, resp domain.AssistantResponse) {
	rec := resp.Recommendation
	fmt.Fprintf(out, "Provider: %s", resp.Provider)
	if resp.Cached {
		fmt.Fprint(out, " (cached)")
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Components: %s\n", strings.Join(rec.Components, ", "))
	fmt.Fprintf(out, "Architecture: %s\n", rec.Architecture)
	fmt.Fprintf(out, "Confidence: %.0f%%\n", rec.Confidence*100)
	if rec.Reasoning != "" {
		fmt.Fprintf(out, "\n%s\n", rec.Reasoning)
	}
	if len(rec.Alternatives) > 0 {
		fmt.Fprintf(out, "\nAlternatives: %s\n", strings.Join(rec.Alternatives, ", "))
	}
	renderList(out, "Patterns", rec.Patterns)
	renderList(out, "Best practices", rec.BestPractices)
	if rec.CodeExample != "" {
		fmt.Fprintf(out, "\nExample:\n%s\n", indent(rec.CodeExample))
	}
}

// RenderJSON writes v as indented JSON.
func RenderJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderList prints one bullet per line.
func RenderList(out io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(out, " - %s\n", item)
	}
}

// RenderHealthReport prints one line per diagnostic check.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

func renderList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	RenderList(out, items)
}

func indent(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
