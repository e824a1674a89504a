// Package update provides the update command: fetch the catalog, normalize
// it and write the capability table.
package update

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/modelcaps/internal/appcontext"
)

// Flags holds the update command flags.
type Flags struct {
	URL        string
	Timeout    time.Duration
	OutputPath string
	DryRun     bool
}

// NewCommand creates the update command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "update",
		GroupID: "core",
		Short:   "Fetch the OpenRouter catalog and regenerate the capability table",
		Args:    cobra.NoArgs,
		Long: `Update performs a single GET against the OpenRouter model catalog,
normalizes every record and overwrites the capability table.

Model ids are canonicalized by dropping the provider prefix and any
":variant" suffix, so "openai/gpt-4:free" is stored as "gpt-4" with
provider "openai". When two records share a canonical id the later one wins.

If the catalog cannot be fetched the error is printed, the existing file is
left untouched and the command still exits successfully.`,
		Example: `  modelcaps update                              # Regenerate the default file
  modelcaps update --output-path caps.json      # Write somewhere else
  modelcaps update --dry-run                    # Print the table instead of writing
  modelcaps update --dry-run -o yaml            # Preview as YAML
  modelcaps update --timeout 30s                # Allow a slower upstream`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&flags.URL, "url", "", "catalog endpoint (default from config)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "fetch timeout (default from config, 15s)")
	cmd.Flags().StringVar(&flags.OutputPath, "output-path", "", "output file (default frontend/src/config/model-capabilities.json next to the tool)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "print the table to stdout instead of writing the file")

	return cmd
}
