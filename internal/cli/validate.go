package cli

import (
	"fmt"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/validate"
	"github.com/spf13/cobra"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a plugin directory",
	Long: `Validate a Claude Code plugin against the official specification:
directory layout, manifest, component frontmatter, hooks and MCP config.

Exit codes: 0 when the plugin is valid, 1 when findings were reported,
2 when validation itself failed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := rootArg(args)

	rep, err := validate.Run(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if useJSON(validateJSON) {
		if err := rep.RenderJSON(out); err != nil {
			return err
		}
	} else if rep.Empty() {
		fmt.Fprintln(out, "✓ Plugin validation passed")
	} else {
		rep.RenderText(out)
		fmt.Fprintln(out)
		if rep.Valid() {
			fmt.Fprintln(out, "✓ Plugin validation passed (warnings only)")
		} else {
			fmt.Fprintf(out, "✗ Plugin validation failed with %d error(s)\n", len(rep.Errors))
		}
	}

	if !rep.Valid() {
		return errFindings
	}
	return nil
}
