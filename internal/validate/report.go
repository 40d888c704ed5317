package validate

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report partitions findings into errors and warnings while preserving
// discovery order within each partition.
type Report struct {
	Errors   []Finding
	Warnings []Finding
}

// NewReport returns an empty report. The slices are non-nil so JSON output
// renders them as empty arrays.
func NewReport() *Report {
	return &Report{Errors: []Finding{}, Warnings: []Finding{}}
}

// Add routes each finding to the matching partition.
func (r *Report) Add(findings ...Finding) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			r.Errors = append(r.Errors, f)
		} else {
			r.Warnings = append(r.Warnings, f)
		}
	}
}

// Valid reports whether the plugin passed, meaning no errors were found.
// Warnings do not affect validity.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Empty reports whether the run produced no findings at all.
func (r *Report) Empty() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// RenderText writes the numbered human-readable listing. The caller prints
// its own success line when the report is empty.
func (r *Report) RenderText(w io.Writer) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		renderFindings(w, r.Errors)
	}
	if len(r.Warnings) > 0 {
		if len(r.Errors) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		renderFindings(w, r.Warnings)
	}
}

func renderFindings(w io.Writer, findings []Finding) {
	for i, f := range findings {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, f.Component)
		fmt.Fprintf(w, "   Type: %s\n", f.Kind)
		fmt.Fprintf(w, "   %s\n", f.Message)
		if f.Reference != "" {
			fmt.Fprintf(w, "   Reference: %s\n", f.Reference)
		}
	}
}

// jsonReport is the machine-readable shape of a report.
type jsonReport struct {
	Compliant    bool      `json:"compliant"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	Errors       []Finding `json:"errors"`
	Warnings     []Finding `json:"warnings"`
}

// MarshalJSON renders the report with its derived counts and compliance
// flag, keeping every finding field intact.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := jsonReport{
		Compliant:    r.Valid(),
		ErrorCount:   len(r.Errors),
		WarningCount: len(r.Warnings),
		Errors:       r.Errors,
		Warnings:     r.Warnings,
	}
	if out.Errors == nil {
		out.Errors = []Finding{}
	}
	if out.Warnings == nil {
		out.Warnings = []Finding{}
	}
	return json.Marshal(out)
}

// RenderJSON writes the indented JSON report followed by a newline.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
