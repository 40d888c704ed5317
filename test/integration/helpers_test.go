//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/formats"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/validate"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // isolated $HOME so user config never leaks into tests
	WorkDir string // scratch space for plugins under test
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so config reads and writes are sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// setupValidPlugin creates a complete plugin under workDir: a manifest, one
// component of each kind, a hooks config, and an MCP config. Returns the
// plugin root.
func setupValidPlugin(t *testing.T, workDir string) string {
	t.Helper()

	root := filepath.Join(workDir, "review-toolkit")

	writeManifest(t, root, `{
  "name": "review-toolkit",
  "version": "1.2.0",
  "description": "Code review commands and agents",
  "author": {"name": "Test Author", "email": "author@example.com"},
  "keywords": ["review", "quality"]
}
`)

	writeFile(t, filepath.Join(root, "commands", "review.md"), `---
description: Review the staged changes
allowed-tools: [Read, Grep, Bash]
argument-hint: "[path]"
model: sonnet
disable-model-invocation: false
---

Review the staged changes and summarize any problems found.
`)

	writeFile(t, filepath.Join(root, "agents", "style-checker.md"), `---
description: Checks code style in changed files
tools: [Read, Grep, Glob]
model: haiku
---

Check style rules on every changed file.
`)

	writeFile(t, filepath.Join(root, "skills", "changelog", "SKILL.md"), `---
name: changelog
description: Drafts changelog entries from commit history
---

Draft a changelog entry for the latest release.
`)

	writeFile(t, filepath.Join(root, "hooks", "hooks.json"),
		`{"PostToolUse": ["scripts/format.sh"]}`+"\n")

	writeFile(t, filepath.Join(root, ".mcp.json"), `{
  "mcpServers": {
    "docs": {"command": "node", "args": ["servers/docs.mjs"]}
  }
}
`)

	return root
}

// setupBrokenPlugin creates a plugin exercising several finding classes: a
// non-kebab manifest name, a mistyped manifest field, a command missing
// required fields, an agent with an unsupported field and deprecated
// markup, a skill directory without SKILL.md, and a component directory
// nested in the wrong place.
func setupBrokenPlugin(t *testing.T, workDir string) string {
	t.Helper()

	root := filepath.Join(workDir, "broken")

	writeManifest(t, root, `{"name": "Broken_Plugin", "version": 2}`)

	writeFile(t, filepath.Join(root, "commands", "deploy.md"), `---
description: Deploys the service
---

Deploy to staging.
`)

	writeFile(t, filepath.Join(root, "agents", "reviewer.md"), `---
description: Reviews code
color: purple
---

<IF condition="strict">Be strict about naming.</IF>
`)

	if err := os.MkdirAll(filepath.Join(root, "skills", "release"), 0755); err != nil {
		t.Fatalf("creating skill dir: %v", err)
	}

	writeFile(t, filepath.Join(root, ".claude-plugin", "commands", "misplaced.md"),
		"No frontmatter here.\n")

	return root
}

// writeManifest creates .claude-plugin/plugin.json under the plugin root.
func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	writeFile(t, filepath.Join(root, ".claude-plugin", "plugin.json"), content)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFinding fails unless one of the findings names component and has a
// message containing substr.
func assertFinding(t *testing.T, findings []validate.Finding, component, substr string) {
	t.Helper()
	for _, f := range findings {
		if f.Component == component && strings.Contains(f.Message, substr) {
			return
		}
	}
	t.Errorf("no finding for %s containing %q in:\n%v", component, substr, findings)
}

// assertIssue fails unless one of the format issues names file and has a
// message containing substr.
func assertIssue(t *testing.T, issues []formats.Issue, file, substr string) {
	t.Helper()
	for _, issue := range issues {
		if issue.File == file && strings.Contains(issue.Message, substr) {
			return
		}
	}
	t.Errorf("no issue for %s containing %q in:\n%v", file, substr, issues)
}
