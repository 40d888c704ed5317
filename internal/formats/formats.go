// Package formats checks the mechanical hygiene of plugin files:
// well-formed YAML frontmatter delimiters, trailing whitespace, final
// newlines, and JSON syntax in the config files. It reports positions,
// not schema problems; the validate package owns field semantics.
package formats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/frontmatter"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/validate"
)

// Issue is one format problem at a position in a file. Line is 1-based; 0
// means the issue concerns the file as a whole.
type Issue struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"error"`
}

// Options selects which file classes to check. The zero value checks
// nothing; callers enable the classes they want.
type Options struct {
	Markdown bool
	JSON     bool
}

// jsonFiles are the config files checked for JSON syntax, in report order.
var jsonFiles = []string{
	".claude-plugin/plugin.json",
	".mcp.json",
	"hooks/hooks.json",
}

// Check scans the plugin rooted at root and returns every format issue in
// deterministic order: markdown components first, then config files. A
// non-nil error means the checker itself failed.
func Check(root string, opts Options) ([]Issue, error) {
	issues := []Issue{}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return append(issues, Issue{File: root, Message: "Path does not exist"}), nil
	case err != nil:
		return nil, fmt.Errorf("inspecting plugin root %s: %w", root, err)
	case !info.IsDir():
		return append(issues, Issue{File: root, Message: "Path is not a directory"}), nil
	}

	if opts.Markdown {
		files, _ := validate.ListComponents(root)
		for _, cf := range files {
			if cf.Missing {
				continue
			}
			data, err := os.ReadFile(cf.AbsPath)
			if err != nil {
				issues = append(issues, Issue{File: cf.RelPath, Message: fmt.Sprintf("Error reading file: %v", err)})
				continue
			}
			issues = append(issues, checkMarkdown(cf.RelPath, string(data))...)
		}
	}

	if opts.JSON {
		for _, rel := range jsonFiles {
			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				issues = append(issues, Issue{File: rel, Message: fmt.Sprintf("Error reading file: %v", err)})
				continue
			}
			issues = append(issues, checkJSON(rel, data)...)
		}
	}

	return issues, nil
}

// checkMarkdown verifies frontmatter delimiters and whitespace hygiene of
// one markdown document.
func checkMarkdown(rel, content string) []Issue {
	var issues []Issue

	_, _, err := frontmatter.Extract(content)
	var syntaxErr *frontmatter.SyntaxError
	switch {
	case errors.Is(err, frontmatter.ErrUnterminated):
		issues = append(issues, Issue{File: rel, Line: 1,
			Message: "Missing closing --- delimiter for frontmatter"})
	case errors.As(err, &syntaxErr):
		line := 1
		if syntaxErr.Line > 0 {
			// Block-relative line; the opening delimiter is file line 1.
			line = syntaxErr.Line + 1
		}
		issues = append(issues, Issue{File: rel, Line: line,
			Message: "Invalid YAML in frontmatter: " + oneLine(syntaxErr.Err)})
	}

	lines := strings.Split(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		issues = append(issues, Issue{File: rel, Line: len(lines),
			Message: "Missing final newline at end of file"})
	}
	for i, line := range lines {
		if line != "" && strings.TrimRight(line, " \t") != line {
			issues = append(issues, Issue{File: rel, Line: i + 1,
				Message: "Line contains trailing whitespace"})
		}
	}
	return issues
}

// checkJSON verifies that data parses as JSON, reporting the failure
// position when the decoder exposes one.
func checkJSON(rel string, data []byte) []Issue {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		return nil
	}

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := lineColumn(data, syn.Offset)
		return []Issue{{File: rel, Line: line,
			Message: fmt.Sprintf("Invalid JSON: %v (column %d)", err, col)}}
	}
	return []Issue{{File: rel, Message: fmt.Sprintf("Invalid JSON: %v", err)}}
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte("\n")) + 1
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = int(offset) - i
	} else {
		col = int(offset) + 1
	}
	return line, col
}

// oneLine collapses an error message onto a single line.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
