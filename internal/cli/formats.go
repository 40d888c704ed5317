package cli

import (
	"fmt"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/formats"
	"github.com/spf13/cobra"
)

var (
	formatsJSONOnly bool
	formatsMDOnly   bool
	formatsJSON     bool
)

var formatsCmd = &cobra.Command{
	Use:   "formats [path]",
	Short: "Check file formats in a plugin",
	Long: `Check the mechanical format of plugin files: YAML frontmatter syntax in
component Markdown, JSON syntax in the config files, trailing whitespace,
and missing final newlines. Schema problems are left to "validate".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormats,
}

func init() {
	formatsCmd.Flags().BoolVar(&formatsJSONOnly, "json-only", false, "Check only JSON config files")
	formatsCmd.Flags().BoolVar(&formatsMDOnly, "md-only", false, "Check only Markdown component files")
	formatsCmd.Flags().BoolVar(&formatsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	if formatsJSONOnly && formatsMDOnly {
		return fmt.Errorf("--json-only and --md-only are mutually exclusive")
	}

	opts := formats.Options{
		Markdown: !formatsJSONOnly,
		JSON:     !formatsMDOnly,
	}

	issues, err := formats.Check(rootArg(args), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if useJSON(formatsJSON) {
		if err := formats.RenderJSON(out, issues); err != nil {
			return err
		}
	} else if len(issues) == 0 {
		fmt.Fprintln(out, "✓ All files have valid format")
	} else {
		formats.RenderText(out, issues)
	}

	if len(issues) > 0 {
		return errFindings
	}
	return nil
}
