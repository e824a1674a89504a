// Package list provides the list command for the generated capability table.
package list

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/modelcaps/internal/cmd/output"
	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// AppContext defines the interface that the list command needs from the app.
type AppContext interface {
	Capabilities(path string) (capabilities.Map, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// Flags holds the list command flags.
type Flags struct {
	Input     string
	Provider  string
	Vision    bool
	Modality  string
	Providers bool
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List models in the generated capability table",
		Args:    cobra.NoArgs,
		Example: `  modelcaps list                           # All models
  modelcaps list --provider openai         # One provider
  modelcaps list --vision -o wide          # Vision models with modalities
  modelcaps list --modality audio          # Models accepting audio input
  modelcaps list --providers               # Model counts per provider
  modelcaps list -o json                   # Same shape as the generated file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := app.Capabilities(flags.Input)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if _, err := output.ParseFormat(string(format)); err != nil {
				return err
			}

			filtered := Filter(m, flags)
			app.Logger().Debug().
				Int("total", m.Len()).
				Int("shown", filtered.Len()).
				Msg("Listing model capabilities")

			if flags.Providers {
				return output.FormatProviders(cmd.OutOrStdout(), format, filtered.Providers())
			}
			return output.FormatCapabilities(cmd.OutOrStdout(), format, filtered)
		},
	}

	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "capability file to read (default is the configured output path)")
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", "", "only models from this provider")
	cmd.Flags().BoolVar(&flags.Vision, "vision", false, "only models that accept image input")
	cmd.Flags().StringVar(&flags.Modality, "modality", "", "only models that accept this input modality")
	cmd.Flags().BoolVar(&flags.Providers, "providers", false, "summarize model counts per provider")

	return cmd
}

// Filter applies the list flags to the table.
func Filter(m capabilities.Map, flags *Flags) capabilities.Map {
	provider := strings.ToLower(flags.Provider)
	modality := strings.ToLower(flags.Modality)

	return m.Filter(func(_ string, d capabilities.Descriptor) bool {
		if provider != "" && strings.ToLower(d.Provider) != provider {
			return false
		}
		if flags.Vision && !d.SupportsImage {
			return false
		}
		if modality != "" && !d.HasInput(modality) {
			return false
		}
		return true
	})
}
