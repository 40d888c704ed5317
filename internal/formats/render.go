package formats

import (
	"encoding/json"
	"fmt"
	"io"
)

// RenderText writes a human-readable listing of issues grouped per file
// position. Callers print their own success line when the slice is empty.
func RenderText(w io.Writer, issues []Issue) {
	fmt.Fprintf(w, "FORMAT ERRORS (%d):\n", len(issues))
	for _, issue := range issues {
		if issue.Line > 0 {
			fmt.Fprintf(w, "\n%s:%d\n  %s\n", issue.File, issue.Line, issue.Message)
		} else {
			fmt.Fprintf(w, "\n%s\n  %s\n", issue.File, issue.Message)
		}
	}
}

// RenderJSON writes the machine-readable report.
func RenderJSON(w io.Writer, issues []Issue) error {
	if issues == nil {
		issues = []Issue{}
	}
	report := struct {
		Clean      bool    `json:"clean"`
		IssueCount int     `json:"issue_count"`
		Issues     []Issue `json:"issues"`
	}{
		Clean:      len(issues) == 0,
		IssueCount: len(issues),
		Issues:     issues,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
