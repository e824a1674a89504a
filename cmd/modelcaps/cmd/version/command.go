// Package version provides the version command.
package version

import (
	"github.com/spf13/cobra"
)

// Info is the build information the command prints.
type Info interface {
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}

// NewCommand creates the version command. verbose is read at run time so
// the global -v flag is honoured.
func NewCommand(info Info, verbose func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("modelcaps %s\n", info.Version())
			if verbose != nil && verbose() {
				cmd.Printf("  commit:   %s\n", info.Commit())
				cmd.Printf("  built:    %s\n", info.Date())
				cmd.Printf("  built by: %s\n", info.BuiltBy())
			}
		},
	}
}
