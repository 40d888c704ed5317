package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// kindOrder fixes the section order for text output and summary lines.
var kindOrder = []string{"command", "agent", "skill"}

var titleCaser = cases.Title(language.English)

// RenderText writes the human-readable inventory report.
func (r *Report) RenderText(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Component Inspection Report ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Components: %d\n", r.Summary.TotalComponents)
	for _, kind := range kindOrder {
		if count := r.Summary.ByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %ss: %d\n", titleCaser.String(kind), count)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Components with Issues: %d\n", r.Summary.ComponentsWithIssues)

	for _, kind := range kindOrder {
		var section []Component
		for _, c := range r.Components {
			if c.Kind == kind {
				section = append(section, c)
			}
		}
		if len(section) == 0 {
			continue
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "--- %sS ---\n", strings.ToUpper(kind))
		for _, c := range section {
			renderComponent(w, c)
		}
	}
}

func renderComponent(w io.Writer, c Component) {
	marker := "✓"
	if len(c.Issues) > 0 {
		marker = "✗"
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", marker, c.Name)
	fmt.Fprintf(w, "  Path: %s\n", c.Path)
	if desc, ok := c.Metadata["description"].(string); ok && desc != "" {
		fmt.Fprintf(w, "  Description: %s\n", truncate(desc, 70))
	}
	if version, ok := c.Metadata["version"].(string); ok && version != "" {
		fmt.Fprintf(w, "  Version: %s\n", version)
	}
	if len(c.Issues) > 0 {
		fmt.Fprintln(w, "  Issues:")
		for _, issue := range c.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
	}
}

// RenderJSON writes the indented JSON report followed by a newline.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
