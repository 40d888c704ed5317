package cli

import (
	"encoding/json"
	"fmt"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/validate"
	"github.com/spf13/cobra"
)

var complianceJSON bool

var complianceCmd = &cobra.Command{
	Use:   "compliance [path]",
	Short: "Check components against the official specification",
	Long: `Check every command, agent, and skill for specification compliance:
required fields, field types and values, unsupported fields, and deprecated
markup. Structural checks (manifest, directory layout) are left to
"validate"; this view focuses on component schemas.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompliance,
}

func init() {
	complianceCmd.Flags().BoolVar(&complianceJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(complianceCmd)
}

// complianceReport is the JSON shape of a compliance run. It extends the
// shared report with the documentation link the findings refer to.
type complianceReport struct {
	Compliant     bool               `json:"compliant"`
	ErrorCount    int                `json:"error_count"`
	WarningCount  int                `json:"warning_count"`
	Errors        []validate.Finding `json:"errors"`
	Warnings      []validate.Finding `json:"warnings"`
	Documentation string             `json:"documentation"`
}

func runCompliance(cmd *cobra.Command, args []string) error {
	root := rootArg(args)

	rep, err := validate.RunComponents(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if useJSON(complianceJSON) {
		payload := complianceReport{
			Compliant:     rep.Valid(),
			ErrorCount:    len(rep.Errors),
			WarningCount:  len(rep.Warnings),
			Errors:        rep.Errors,
			Warnings:      rep.Warnings,
			Documentation: validate.DocsURL(),
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "=== Specification Compliance Report ===")
		fmt.Fprintln(out)
		if rep.Empty() {
			fmt.Fprintln(out, "✓ All components are spec compliant")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Official Specification Reference:")
			fmt.Fprintf(out, "  %s\n", validate.DocsURL())
		} else {
			rep.RenderText(out)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Official Documentation:")
			fmt.Fprintf(out, "  %s\n", validate.DocsURL())
		}
	}

	if !rep.Valid() {
		return errFindings
	}
	return nil
}
