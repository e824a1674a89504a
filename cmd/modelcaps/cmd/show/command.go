// Package show provides the show command for a single model.
package show

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/modelcaps/internal/cmd/output"
	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// AppContext defines the interface that the show command needs from the app.
type AppContext interface {
	Capabilities(path string) (capabilities.Map, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the show command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:     "show <model>",
		GroupID: "core",
		Short:   "Show the capabilities of one model",
		Long: `Show looks a model up in the generated capability table.

The name is matched case-insensitively against canonical ids first. If no id
matches exactly, the first id (in sorted order) that contains the name, or is
contained in it, is used. "claude-3-opus-20240229" therefore finds
"claude-3-opus".`,
		Example: `  modelcaps show gpt-4o
  modelcaps show claude-3-opus-20240229 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Capabilities(input)
			if err != nil {
				return err
			}

			id, d, ok := m.Lookup(args[0])
			if !ok {
				return errors.NewNotFoundError("model", args[0])
			}
			if id != args[0] {
				app.Logger().Debug().Str("query", args[0]).Str("model_id", id).Msg("Resolved model by fuzzy match")
			}

			format := output.DetectFormat(app.OutputFormat())
			if _, err := output.ParseFormat(string(format)); err != nil {
				return err
			}
			return output.FormatDescriptor(cmd.OutOrStdout(), format, id, d)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "capability file to read (default is the configured output path)")

	return cmd
}
