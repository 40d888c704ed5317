package frontmatter

import (
	"errors"
	"testing"
)

func TestExtract_Valid(t *testing.T) {
	doc := `---
description: Run the test suite
model: sonnet
---
# Body

Some content.`

	fields, body, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if fields["description"] != "Run the test suite" {
		t.Errorf("description = %v, want %q", fields["description"], "Run the test suite")
	}
	if fields["model"] != "sonnet" {
		t.Errorf("model = %v, want %q", fields["model"], "sonnet")
	}
	if body != "# Body\n\nSome content." {
		t.Errorf("body = %q", body)
	}
}

func TestExtract_TypedValues(t *testing.T) {
	doc := `---
allowed-tools:
  - Read
  - Bash
disable-model-invocation: false
priority: 3
---
body`

	fields, _, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	tools, ok := fields["allowed-tools"].([]any)
	if !ok {
		t.Fatalf("allowed-tools = %T, want []any", fields["allowed-tools"])
	}
	if len(tools) != 2 || tools[0] != "Read" || tools[1] != "Bash" {
		t.Errorf("allowed-tools = %v", tools)
	}
	if fields["disable-model-invocation"] != false {
		t.Errorf("disable-model-invocation = %v, want false", fields["disable-model-invocation"])
	}
	if fields["priority"] != 3 {
		t.Errorf("priority = %v (%T), want 3", fields["priority"], fields["priority"])
	}
}

func TestExtract_NoFrontmatter(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"plain document", "# Just a heading\n\nNo metadata here.\n"},
		{"empty document", ""},
		{"too short", "---\n---"},
		{"delimiter not first", "intro\n---\nkey: value\n---\n"},
		{"horizontal rule only", "# doc\n\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, body, err := Extract(tt.doc)
			if err != nil {
				t.Fatalf("Extract error: %v", err)
			}
			if fields != nil {
				t.Errorf("fields = %v, want nil", fields)
			}
			if body != tt.doc {
				t.Errorf("body = %q, want original document", body)
			}
		})
	}
}

func TestExtract_Unterminated(t *testing.T) {
	doc := "---\ndescription: never closed\nmodel: opus\n"

	fields, body, err := Extract(doc)
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("err = %v, want ErrUnterminated", err)
	}
	if fields != nil {
		t.Errorf("fields = %v, want nil", fields)
	}
	if body != doc {
		t.Errorf("body = %q, want original document", body)
	}
}

func TestExtract_EmptyBlockIsEmptyMap(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"blank block", "---\n\n---\nbody"},
		{"explicit null", "---\nnull\n---\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, body, err := Extract(tt.doc)
			if err != nil {
				t.Fatalf("Extract error: %v", err)
			}
			if fields == nil {
				t.Fatal("fields = nil, want empty map")
			}
			if len(fields) != 0 {
				t.Errorf("fields = %v, want empty map", fields)
			}
			if body != "body" {
				t.Errorf("body = %q, want %q", body, "body")
			}
		})
	}
}

func TestExtract_SyntaxError(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"broken flow sequence", "---\ntools: [Read\n---\nbody"},
		{"top-level list", "---\n- one\n- two\n---\nbody"},
		{"top-level scalar", "---\njust a sentence without structure\n---\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, _, err := Extract(tt.doc)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("err = %T, want *SyntaxError", err)
			}
			if fields != nil {
				t.Errorf("fields = %v, want nil", fields)
			}
		})
	}
}

func TestExtract_SyntaxErrorLine(t *testing.T) {
	doc := "---\ndescription: ok\ntools: [Read\n---\nbody"

	_, _, err := Extract(doc)
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("err = %T, want *SyntaxError", err)
	}
	if syntaxErr.Line == 0 {
		t.Error("Line = 0, want a positive line number")
	}
}

func TestExtract_TrailingDelimiterVariants(t *testing.T) {
	// The closing delimiter may carry surrounding whitespace.
	doc := "---\nname: my-skill\n ---  \nbody"

	fields, body, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if fields["name"] != "my-skill" {
		t.Errorf("name = %v, want %q", fields["name"], "my-skill")
	}
	if body != "body" {
		t.Errorf("body = %q, want %q", body, "body")
	}
}
