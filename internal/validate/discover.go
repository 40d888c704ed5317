package validate

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Category identifies a component kind by the directory it lives in.
type Category string

const (
	CategoryCommand Category = "command"
	CategoryAgent   Category = "agent"
	CategorySkill   Category = "skill"
)

// componentDirs maps each category to its directory under the plugin root,
// in discovery order.
var componentDirs = []struct {
	category Category
	dir      string
}{
	{CategoryCommand, "commands"},
	{CategoryAgent, "agents"},
	{CategorySkill, "skills"},
}

// ComponentFile is one component discovered under a plugin root.
type ComponentFile struct {
	Category Category
	Name     string // file stem for commands and agents, directory name for skills
	RelPath  string // path relative to the plugin root, slash-separated
	AbsPath  string

	// Missing is set for a skill directory that has no SKILL.md. RelPath
	// then names the directory instead of the file.
	Missing bool
}

// ListComponents enumerates the component files under root in
// deterministic order: commands, then agents, then skills, each sorted
// lexicographically. Unreadable directories degrade to structural findings
// rather than aborting discovery.
func ListComponents(root string) ([]ComponentFile, []Finding) {
	var files []ComponentFile
	var findings []Finding

	for _, cd := range componentDirs {
		dir := filepath.Join(root, cd.dir)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			findings = append(findings, errorf(cd.dir, KindStructural,
				"Error reading %s directory: %v", cd.dir, err))
			continue
		}

		for _, entry := range entries {
			if cd.category == CategorySkill {
				if !entry.IsDir() {
					continue
				}
				rel := path.Join(cd.dir, entry.Name(), "SKILL.md")
				abs := filepath.Join(dir, entry.Name(), "SKILL.md")
				if _, err := os.Stat(abs); err != nil {
					files = append(files, ComponentFile{
						Category: CategorySkill,
						Name:     entry.Name(),
						RelPath:  path.Join(cd.dir, entry.Name()),
						AbsPath:  filepath.Join(dir, entry.Name()),
						Missing:  true,
					})
					continue
				}
				files = append(files, ComponentFile{
					Category: CategorySkill,
					Name:     entry.Name(),
					RelPath:  rel,
					AbsPath:  abs,
				})
				continue
			}

			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			files = append(files, ComponentFile{
				Category: cd.category,
				Name:     strings.TrimSuffix(entry.Name(), ".md"),
				RelPath:  path.Join(cd.dir, entry.Name()),
				AbsPath:  filepath.Join(dir, entry.Name()),
			})
		}
	}
	return files, findings
}
