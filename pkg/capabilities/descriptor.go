package capabilities

import (
	"slices"
	"sort"
)

// ModalityImage is the input modality that marks a model as vision capable.
const ModalityImage = "image"

// Descriptor is the normalized capability record of one model.
// Field order is the order written to disk.
type Descriptor struct {
	Provider      string   `json:"provider" yaml:"provider"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	SupportsImage bool     `json:"supports_image" yaml:"supports_image"`
	ContextLength int64    `json:"context_length" yaml:"context_length"`
	Inputs        []string `json:"inputs" yaml:"inputs"`
	Outputs       []string `json:"outputs" yaml:"outputs"`
}

// Map is the capability table keyed by canonical model identifier.
type Map map[string]Descriptor

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m)
}

// Keys returns the identifiers in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the descriptor stored under id.
func (m Map) Get(id string) (Descriptor, bool) {
	d, ok := m[id]
	return d, ok
}

// Filter returns the entries for which keep returns true.
func (m Map) Filter(keep func(id string, d Descriptor) bool) Map {
	out := make(Map)
	for id, d := range m {
		if keep(id, d) {
			out[id] = d
		}
	}
	return out
}

// HasInput reports whether the model accepts the given input modality.
func (d Descriptor) HasInput(modality string) bool {
	return slices.Contains(d.Inputs, modality)
}

// HasOutput reports whether the model produces the given output modality.
func (d Descriptor) HasOutput(modality string) bool {
	return slices.Contains(d.Outputs, modality)
}
