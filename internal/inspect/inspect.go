// Package inspect builds a component inventory for a plugin: every
// command, agent, and skill with its metadata and any schema issues. It
// reuses the validate package's discovery and field checks, so the issue
// list here never drifts from what validation reports.
package inspect

import (
	"errors"
	"fmt"
	"os"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/frontmatter"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/validate"
)

// Component is one inventoried plugin component.
type Component struct {
	Name     string         `json:"name"`
	Path     string         `json:"path"`
	Kind     string         `json:"type"`
	Metadata map[string]any `json:"metadata"`
	Issues   []string       `json:"issues"`
}

// Summary aggregates counts across the inventory.
type Summary struct {
	TotalComponents      int            `json:"total_components"`
	ByKind               map[string]int `json:"by_type"`
	ComponentsWithIssues int            `json:"components_with_issues"`
	IssuesByKind         map[string]int `json:"issues_by_type"`
}

// Report is the full inspection result.
type Report struct {
	Summary    Summary     `json:"summary"`
	Components []Component `json:"components"`
}

// RootError reports an inspection target that is missing or not a
// directory. It maps to a findings exit, not an internal failure.
type RootError struct {
	Root   string
	Reason string
}

func (e *RootError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Root)
}

// Run inventories the plugin rooted at root. Issues on a component do not
// make Run fail; only an unusable root or an environment failure does.
func Run(root string) (*Report, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, &RootError{Root: root, Reason: "plugin path does not exist"}
	case err != nil:
		return nil, fmt.Errorf("inspecting plugin root %s: %w", root, err)
	case !info.IsDir():
		return nil, &RootError{Root: root, Reason: "plugin path is not a directory"}
	}

	files, _ := validate.ListComponents(root)
	rep := &Report{Components: []Component{}}
	for _, cf := range files {
		rep.Components = append(rep.Components, inventory(cf))
	}
	rep.Summary = summarize(rep.Components)
	return rep, nil
}

// inventory reads one discovered component and records its metadata and
// schema issues.
func inventory(cf validate.ComponentFile) Component {
	comp := Component{
		Name:     cf.Name,
		Path:     cf.RelPath,
		Kind:     string(cf.Category),
		Metadata: map[string]any{},
		Issues:   []string{},
	}

	if cf.Missing {
		comp.Issues = append(comp.Issues, "Missing SKILL.md file")
		return comp
	}

	data, err := os.ReadFile(cf.AbsPath)
	if err != nil {
		comp.Issues = append(comp.Issues, fmt.Sprintf("Error reading file: %v", err))
		return comp
	}

	fm, _, err := frontmatter.Extract(string(data))
	if err != nil || fm == nil {
		comp.Issues = append(comp.Issues, "Missing or invalid YAML frontmatter")
		return comp
	}

	comp.Metadata = sanitize(fm).(map[string]any)
	for _, f := range validate.CheckComponent(cf.Category, cf.RelPath, fm) {
		if f.Severity == validate.SeverityError {
			comp.Issues = append(comp.Issues, f.Message)
		}
	}
	return comp
}

func summarize(components []Component) Summary {
	s := Summary{
		TotalComponents: len(components),
		ByKind:          map[string]int{},
		IssuesByKind:    map[string]int{},
	}
	for _, c := range components {
		s.ByKind[c.Kind]++
		if len(c.Issues) > 0 {
			s.ComponentsWithIssues++
			s.IssuesByKind[c.Kind] += len(c.Issues)
		}
	}
	return s
}

// sanitize makes YAML-decoded values JSON-marshalable. yaml.v3 produces
// map[any]any for mappings with non-string keys; JSON needs string keys.
func sanitize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[k] = sanitize(item)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = sanitize(item)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, item := range val {
			a[i] = sanitize(item)
		}
		return a
	default:
		return val
	}
}
