package validate

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/frontmatter"
)

const (
	manifestDirName  = ".claude-plugin"
	manifestFileName = "plugin.json"
	hooksRelPath     = "hooks/hooks.json"
	mcpRelPath       = ".mcp.json"
)

// Run validates the plugin rooted at root and returns the full report:
// structure, manifest, components, and optional config files. A non-nil
// error means the validator itself failed, not that the plugin is invalid.
func Run(root string) (*Report, error) {
	rep := NewReport()
	ok, err := statRoot(root, rep)
	if err != nil || !ok {
		return rep, err
	}

	checkManifestFile(root, rep)
	checkMisplacedDirs(root, rep)
	checkComponentFiles(root, rep, true)
	checkConfigFiles(root, rep)
	return rep, nil
}

// RunComponents validates only the component documents under root,
// skipping the manifest, layout, and config-file checks. The compliance
// command uses it to audit frontmatter against the official field tables.
func RunComponents(root string) (*Report, error) {
	rep := NewReport()
	ok, err := statRoot(root, rep)
	if err != nil || !ok {
		return rep, err
	}

	checkComponentFiles(root, rep, false)
	return rep, nil
}

// statRoot checks the root path itself. A missing or non-directory root is
// a finding and halts the run; a stat failure for any other reason is an
// internal error.
func statRoot(root string, rep *Report) (bool, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		rep.Add(errorf(root, KindStructural, "Plugin directory does not exist: %s", root))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("inspecting plugin root %s: %w", root, err)
	case !info.IsDir():
		rep.Add(errorf(root, KindStructural, "Plugin path is not a directory: %s", root))
		return false, nil
	}
	return true, nil
}

// checkManifestFile verifies the .claude-plugin directory and validates
// the manifest inside it. When the directory itself is missing, the
// manifest file is not separately reported.
func checkManifestFile(root string, rep *Report) {
	dir := filepath.Join(root, manifestDirName)
	info, err := os.Stat(dir)
	switch {
	case err != nil:
		rep.Add(errorf(manifestDirName, KindStructural,
			"Missing required %s directory at the plugin root", manifestDirName))
		return
	case !info.IsDir():
		rep.Add(errorf(manifestDirName, KindStructural,
			"Path %s must be a directory, not a file", manifestDirName))
		return
	}

	rel := path.Join(manifestDirName, manifestFileName)
	data, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		rep.Add(errorf(rel, KindStructural,
			"Missing required manifest file. Create a plugin.json file in the %s directory.", manifestDirName))
		return
	case err != nil:
		rep.Add(errorf(rel, KindStructural, "Error reading manifest file: %v", err))
		return
	}
	rep.Add(CheckManifest(rel, data)...)
}

// checkMisplacedDirs flags component directories nested inside
// .claude-plugin. They belong at the plugin root.
func checkMisplacedDirs(root string, rep *Report) {
	for _, name := range []string{"commands", "agents", "skills", "scripts"} {
		nested := filepath.Join(root, manifestDirName, name)
		if _, err := os.Stat(nested); err != nil {
			continue
		}
		rel := path.Join(manifestDirName, name)
		rep.Add(errorf(rel, KindStructural,
			"Component directory %q is in the wrong location. Move it from %s to the plugin root.", name, rel))
	}
}

// checkComponentFiles validates every discovered component document. When
// reportMissingSkills is set, skill directories without a SKILL.md are
// reported too.
func checkComponentFiles(root string, rep *Report, reportMissingSkills bool) {
	files, findings := ListComponents(root)
	rep.Add(findings...)
	for _, cf := range files {
		if cf.Missing {
			if reportMissingSkills {
				rep.Add(errorf(cf.RelPath, KindMissingField,
					"Skill directory missing required SKILL.md file"))
			}
			continue
		}
		rep.Add(checkComponentFile(cf)...)
	}
}

// checkComponentFile reads one component document and runs the schema and
// deprecation checks on it. Read and parse failures degrade to findings.
func checkComponentFile(cf ComponentFile) []Finding {
	data, err := os.ReadFile(cf.AbsPath)
	if err != nil {
		return []Finding{errorf(cf.RelPath, KindStructural, "Error reading component file: %v", err)}
	}

	fm, body, err := frontmatter.Extract(string(data))
	var syntaxErr *frontmatter.SyntaxError
	switch {
	case errors.Is(err, frontmatter.ErrUnterminated):
		return []Finding{errorf(cf.RelPath, KindStructural,
			"Missing closing --- delimiter for frontmatter")}
	case errors.As(err, &syntaxErr) && syntaxErr.Line > 0:
		// The extractor numbers lines within the YAML block. The opening
		// delimiter occupies file line 1, so shift by one.
		return []Finding{errorf(cf.RelPath, KindStructural,
			"Invalid YAML in frontmatter at line %d: %v", syntaxErr.Line+1, syntaxErr.Err)}
	case err != nil:
		return []Finding{errorf(cf.RelPath, KindStructural,
			"Invalid YAML in frontmatter: %v", err)}
	case fm == nil:
		return []Finding{errorf(cf.RelPath, KindMissingField,
			"%s missing YAML frontmatter. Expected a YAML block between --- markers at the start of the file.",
			componentSchemas[cf.Category].label)}
	}

	findings := CheckComponent(cf.Category, cf.RelPath, fm)
	return append(findings, ScanDeprecated(cf.RelPath, body)...)
}

// checkConfigFiles validates hooks/hooks.json and .mcp.json when present.
// Their absence is not a finding.
func checkConfigFiles(root string, rep *Report) {
	if data, err := readOptional(filepath.Join(root, "hooks", "hooks.json")); err != nil {
		rep.Add(errorf(hooksRelPath, KindStructural, "Error reading hooks config: %v", err))
	} else if data != nil {
		rep.Add(CheckHooksConfig(hooksRelPath, data)...)
	}

	if data, err := readOptional(filepath.Join(root, mcpRelPath)); err != nil {
		rep.Add(errorf(mcpRelPath, KindStructural, "Error reading MCP config: %v", err))
	} else if data != nil {
		rep.Add(CheckMCPConfig(mcpRelPath, data)...)
	}
}

// readOptional reads a file that is allowed to be absent. Missing files
// return nil data and nil error.
func readOptional(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
