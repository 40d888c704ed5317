package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCommandValidPlugin(t *testing.T) {
	root := writePluginFixture(t, `{"name": "test-plugin", "version": "1.0.0"}`)

	stdout, _, err := execute(t, "validate", root)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(stdout, "✓ Plugin validation passed") {
		t.Errorf("output = %q", stdout)
	}
}

func TestValidateCommandFindings(t *testing.T) {
	root := writePluginFixture(t, `{"name": "My_Plugin"}`)

	stdout, _, err := execute(t, "validate", root)
	if !errors.Is(err, errFindings) {
		t.Fatalf("err = %v, want errFindings", err)
	}
	if !strings.Contains(stdout, "ERRORS (1):") {
		t.Errorf("output missing error section:\n%s", stdout)
	}
	if !strings.Contains(stdout, "✗ Plugin validation failed with 1 error(s)") {
		t.Errorf("output missing failure summary:\n%s", stdout)
	}
}

func TestValidateCommandWarningsOnly(t *testing.T) {
	root := writePluginFixture(t, `{"name": "test-plugin"}`)
	cmdDir := filepath.Join(root, "commands")
	if err := os.MkdirAll(cmdDir, 0755); err != nil {
		t.Fatal(err)
	}
	command := strings.Join([]string{
		"---",
		"description: Greets the user",
		"allowed-tools: [Read]",
		`argument-hint: "[name]"`,
		"model: sonnet",
		"disable-model-invocation: false",
		"icon: sparkles",
		"---",
		"",
		"Say hello.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(cmdDir, "greet.md"), []byte(command), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "validate", root)
	if err != nil {
		t.Fatalf("warnings must not fail validation: %v", err)
	}
	if !strings.Contains(stdout, "✓ Plugin validation passed (warnings only)") {
		t.Errorf("output = %q", stdout)
	}
}

func TestValidateCommandJSON(t *testing.T) {
	root := writePluginFixture(t, `{"name": "My_Plugin"}`)

	stdout, _, err := execute(t, "validate", root, "--json")
	if !errors.Is(err, errFindings) {
		t.Fatalf("err = %v, want errFindings", err)
	}

	var report struct {
		Compliant  bool `json:"compliant"`
		ErrorCount int  `json:"error_count"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if report.Compliant {
		t.Error("compliant = true for invalid manifest")
	}
	if report.ErrorCount != 1 {
		t.Errorf("error_count = %d, want 1", report.ErrorCount)
	}
}

func TestComplianceCommand(t *testing.T) {
	root := writePluginFixture(t, `{"name": "test-plugin"}`)

	stdout, _, err := execute(t, "compliance", root)
	if err != nil {
		t.Fatalf("compliance failed: %v", err)
	}
	if !strings.Contains(stdout, "=== Specification Compliance Report ===") {
		t.Errorf("output missing header:\n%s", stdout)
	}
	if !strings.Contains(stdout, "✓ All components are spec compliant") {
		t.Errorf("output missing success line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "code.claude.com") {
		t.Errorf("output missing documentation reference:\n%s", stdout)
	}
}

func TestComplianceCommandJSON(t *testing.T) {
	root := writePluginFixture(t, `{"name": "test-plugin"}`)
	agentDir := filepath.Join(root, "agents")
	if err := os.MkdirAll(agentDir, 0755); err != nil {
		t.Fatal(err)
	}
	agent := "---\nmodel: sonnet\n---\n\nHelps with reviews.\n"
	if err := os.WriteFile(filepath.Join(agentDir, "helper.md"), []byte(agent), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "compliance", root, "--json")
	if !errors.Is(err, errFindings) {
		t.Fatalf("err = %v, want errFindings", err)
	}

	var report struct {
		Compliant     bool   `json:"compliant"`
		ErrorCount    int    `json:"error_count"`
		Documentation string `json:"documentation"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if report.Compliant {
		t.Error("compliant = true for invalid manifest")
	}
	if report.Documentation == "" {
		t.Error("documentation URL missing from JSON report")
	}
}
