package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/branding"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/manifest"
)

// Options describes the plugin to generate. The caller validates Name and
// Version before handing them over; an empty Version falls back to "1.0.0".
type Options struct {
	Name        string
	Author      string
	Description string
	Version     string
	Components  []string // any of "command", "agent", "skill"
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Name      string   `json:"name"`
	OutputDir string   `json:"output_dir"`
	Files     []string `json:"files"`
	Warnings  []string `json:"warnings,omitempty"`
}

// gitignoreContent keeps everything except the manifest out of version
// control inside .claude-plugin.
const gitignoreContent = "*\n!.gitignore\n!plugin.json\n"

// subdirs are created empty at the plugin root.
var subdirs = []string{"commands", "agents", "skills", "scripts", "docs"}

// componentSeeds maps a component kind to its template and target path.
var componentSeeds = map[string]struct {
	template string
	relPath  string
}{
	"command": {"command.md.tmpl", "commands/example-command.md"},
	"agent":   {"agent.md.tmpl", "agents/example-agent.md"},
	"skill":   {"skill.md.tmpl", "skills/example-skill/SKILL.md"},
}

// templateData holds the variables available to the embedded templates.
type templateData struct {
	Name        string
	Description string
	Version     string
	CLI         string
}

// Generate creates a new plugin tree at outputDir. The directory may exist
// but must be empty. The generated manifest is re-checked against the
// embedded JSON Schema; complaints land in Result.Warnings, never in err.
func Generate(opts Options, outputDir string) (*Result, error) {
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	for _, kind := range opts.Components {
		if _, ok := componentSeeds[kind]; !ok {
			return nil, fmt.Errorf("unknown component kind %q (want command, agent, or skill)", kind)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		Name:      opts.Name,
		OutputDir: outputDir,
	}
	data := templateData{
		Name:        opts.Name,
		Description: opts.Description,
		Version:     opts.Version,
		CLI:         branding.CLIName(),
	}

	for _, dir := range append([]string{".claude-plugin"}, subdirs...) {
		if err := os.MkdirAll(filepath.Join(outputDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", dir, err)
		}
	}

	if err := writeFile(outputDir, ".claude-plugin/.gitignore", []byte(gitignoreContent), result); err != nil {
		return nil, err
	}

	m := &manifest.Manifest{
		Name:        opts.Name,
		Version:     opts.Version,
		Description: opts.Description,
	}
	if opts.Author != "" {
		m.Author = &manifest.Author{Name: opts.Author}
	}
	encoded, err := m.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := writeFile(outputDir, ".claude-plugin/plugin.json", encoded, result); err != nil {
		return nil, err
	}

	readme, err := renderTemplate("readme.md.tmpl", data)
	if err != nil {
		return nil, err
	}
	if err := writeFile(outputDir, "README.md", readme, result); err != nil {
		return nil, err
	}

	for _, kind := range opts.Components {
		seed := componentSeeds[kind]
		content, err := renderTemplate(seed.template, data)
		if err != nil {
			return nil, err
		}
		if err := writeFile(outputDir, seed.relPath, content, result); err != nil {
			return nil, err
		}
	}

	// Validate the generated manifest against the embedded JSON Schema.
	manifestFile := filepath.Join(outputDir, ".claude-plugin", "plugin.json")
	valResult, valErr := manifest.ValidateFile(manifestFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	sort.Strings(result.Files)
	return result, nil
}

// writeFile writes one generated file below root and records its
// slash-separated relative path in the result.
func writeFile(root, rel string, content []byte, result *Result) error {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(abs, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	result.Files = append(result.Files, rel)
	return nil
}

// renderTemplate parses and executes one embedded template.
func renderTemplate(name string, data templateData) ([]byte, error) {
	raw, err := fs.ReadFile(scaffoldFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
