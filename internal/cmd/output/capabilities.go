package output

import (
	"io"

	"github.com/agentstation/modelcaps/internal/cmd/table"
	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// FormatCapabilities writes the capability table in the given format.
// Structured formats keep the on-disk shape keyed by model id.
func FormatCapabilities(w io.Writer, format Format, m capabilities.Map) error {
	formatter := NewFormatter(format)
	if format.IsStructured() {
		return formatter.Format(w, m)
	}
	return formatter.Format(w, table.DescriptorsToTableData(m, format == FormatWide))
}

// FormatDescriptor writes a single model.
func FormatDescriptor(w io.Writer, format Format, id string, d capabilities.Descriptor) error {
	formatter := NewFormatter(format)
	if format.IsStructured() {
		return formatter.Format(w, capabilities.Map{id: d})
	}
	return formatter.Format(w, table.DescriptorToTableData(id, d))
}

// FormatProviders writes per-provider counts. Tables are derived from the
// summary fields.
func FormatProviders(w io.Writer, format Format, providers []capabilities.ProviderSummary) error {
	if providers == nil {
		providers = []capabilities.ProviderSummary{}
	}
	return NewFormatter(format).Format(w, providers)
}
