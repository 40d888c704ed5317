package cli

import (
	"errors"
	"fmt"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/branding"
	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// errFindings marks a run that completed but found problems in the plugin.
// The report has already been printed when it is returned; Execute maps it
// to exit code 1, keeping it apart from internal failures (exit 2).
var errFindings = errors.New("plugin has validation findings")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` validates, inspects, and scaffolds Claude Code
plugins: directories of Markdown components (commands, agents, skills) with
YAML frontmatter plus JSON configuration files, checked against the official
plugin specification.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// useJSON reports whether output should be JSON, honoring the per-command
// flag first and the configured default format second.
func useJSON(flag bool) bool {
	return flag || config.Get("output.format") == "json"
}

// rootArg returns the plugin root path argument, defaulting to the current
// directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code: 0 clean, 1 findings, 2 internal failure.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return 1
		}
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2
	}
	return 0
}
