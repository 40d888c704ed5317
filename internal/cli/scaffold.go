package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/branding"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/config"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/scaffold"
	"github.com/spf13/cobra"
)

// Plugin names use the strict kebab pattern; the validator's predicate is
// more permissive, so everything scaffolded here also validates.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	scaffoldOutput     string
	scaffoldAuthor     string
	scaffoldDesc       string
	scaffoldVersion    string
	scaffoldComponents []string
	scaffoldJSON       bool
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <name>",
	Short: "Scaffold a new plugin directory",
	Long: `Scaffold a new Claude Code plugin with the standard layout: manifest,
component directories, README, and optional example components.

Examples:
  ccplugin scaffold my-plugin
  ccplugin scaffold my-plugin --author "Ada Lovelace" --components command,skill`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldOutput, "output", ".", "Parent directory for the new plugin")
	scaffoldCmd.Flags().StringVar(&scaffoldAuthor, "author", "", "Author name recorded in the manifest")
	scaffoldCmd.Flags().StringVar(&scaffoldDesc, "description", "", "Plugin description")
	scaffoldCmd.Flags().StringVar(&scaffoldVersion, "version", "", "Initial version (default: scaffold.version config key)")
	scaffoldCmd.Flags().StringSliceVar(&scaffoldComponents, "components", nil, "Example components to generate: command, agent, skill")
	scaffoldCmd.Flags().BoolVar(&scaffoldJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateName(name); err != nil {
		return err
	}

	version := scaffoldVersion
	if version == "" {
		version = config.Get("scaffold.version")
	}
	if version != "" {
		if _, err := semver.StrictNewVersion(version); err != nil {
			return fmt.Errorf("invalid version %q: %w", version, err)
		}
	}

	outDir := filepath.Join(scaffoldOutput, name)
	result, err := scaffold.Generate(scaffold.Options{
		Name:        name,
		Author:      scaffoldAuthor,
		Description: scaffoldDesc,
		Version:     version,
		Components:  scaffoldComponents,
	}, outDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if useJSON(scaffoldJSON) {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printScaffoldResult(out, result)
	return nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

func printScaffoldResult(out io.Writer, result *scaffold.Result) {
	fmt.Fprintf(out, "✓ Plugin %q scaffolded successfully!\n\n", result.Name)
	fmt.Fprintf(out, "Created at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit .claude-plugin/plugin.json to describe your plugin")
	fmt.Fprintln(out, "  2. Add commands, agents, and skills to their directories")
	fmt.Fprintf(out, "  3. Run '%s validate %s' before publishing\n", branding.CLIName(), result.OutputDir)
}
