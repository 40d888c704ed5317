// Package frontmatter extracts the YAML metadata block from Markdown
// documents. Commands, agents, and skills all declare their fields in a
// frontmatter block delimited by "---" lines at the top of the file.
package frontmatter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const delimiter = "---"

// ErrUnterminated reports an opening "---" line with no closing "---"
// anywhere after it. This is distinct from a document with no frontmatter
// at all, which is not an error.
var ErrUnterminated = errors.New("missing closing --- delimiter for frontmatter")

// SyntaxError reports a frontmatter block that is present but does not
// parse as a YAML mapping.
type SyntaxError struct {
	Line int   // 1-based line within the block, 0 when unknown
	Err  error // underlying parser error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid YAML in frontmatter at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid YAML in frontmatter: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Extract splits a document into its frontmatter mapping and body.
//
// A document with fewer than three lines, or whose first trimmed line is
// not "---", has no frontmatter: Extract returns (nil, doc, nil). An
// opening delimiter without a closing one returns ErrUnterminated. A block
// that fails to parse, or parses to something other than a mapping,
// returns a *SyntaxError. An empty block (explicit null) is normalized to
// an empty mapping.
func Extract(doc string) (map[string]any, string, error) {
	lines := strings.Split(doc, "\n")

	if len(lines) < 3 || strings.TrimSpace(lines[0]) != delimiter {
		return nil, doc, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, doc, ErrUnterminated
	}

	block := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		after := strings.Join(lines[1:], "\n")
		return nil, after, &SyntaxError{Line: lineOf(err), Err: err}
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, body, nil
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// lineOf pulls the 1-based line number out of a yaml/v3 error message.
// The library reports positions only inside its error text, both for
// scanner errors ("yaml: line 2: ...") and type errors.
func lineOf(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
