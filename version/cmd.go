package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AddVersionCommand attaches the version command to cmd.
func AddVersionCommand(cmd *cobra.Command, binaryName string) {
	cmd.AddCommand(CommandVersion(binaryName))
}

// CommandVersion prints cmd version
func CommandVersion(binaryName string) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "version",
		Short:   "Prints version of this binary.",
		Aliases: []string{"v"},
		Example: fmt.Sprintf("%s version", binaryName),
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			commit, ts := CommitInfo()

			var sb strings.Builder
			_, _ = sb.WriteString("Version:       " + Version())
			_, _ = sb.WriteString("\n")
			_, _ = sb.WriteString("Git Commit:    " + commit)
			_, _ = sb.WriteString("\n")
			_, _ = sb.WriteString("Git Timestamp: " + ts)
			_, _ = sb.WriteString("\n")

			cmd.Print(sb.String())
		},
	}

	return cmd
}
