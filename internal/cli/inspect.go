package cli

import (
	"errors"
	"fmt"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/inspect"
	"github.com/spf13/cobra"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Inventory the components of a plugin",
	Long: `List every command, agent, and skill in a plugin with its metadata and
any schema issues. Inspection is informational: issues are shown but do not
fail the run, so the exit code is 0 unless the plugin path itself is bad.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	root := rootArg(args)

	rep, err := inspect.Run(root)
	if err != nil {
		var rootErr *inspect.RootError
		if errors.As(err, &rootErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), rootErr.Error())
			return errFindings
		}
		return err
	}

	out := cmd.OutOrStdout()
	if useJSON(inspectJSON) {
		return rep.RenderJSON(out)
	}
	rep.RenderText(out)
	return nil
}
