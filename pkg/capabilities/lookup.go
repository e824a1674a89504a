package capabilities

import (
	"sort"
	"strings"
)

// Lookup finds the descriptor for a model name the way the frontend does:
// a case-insensitive exact match first, then the first identifier (in
// sorted order) that contains the name or is contained by it. It returns
// the matched identifier.
func (m Map) Lookup(name string) (string, Descriptor, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", Descriptor{}, false
	}

	if d, ok := m[lower]; ok {
		return lower, d, true
	}

	keys := m.Keys()
	for _, key := range keys {
		if strings.ToLower(key) == lower {
			return key, m[key], true
		}
	}
	for _, key := range keys {
		k := strings.ToLower(key)
		if k == "" {
			continue
		}
		if strings.Contains(lower, k) || strings.Contains(k, lower) {
			return key, m[key], true
		}
	}

	return "", Descriptor{}, false
}

// SupportsVision reports whether the named model accepts image input.
// Unknown models report false.
func (m Map) SupportsVision(name string) bool {
	_, d, ok := m.Lookup(name)
	return ok && d.SupportsImage
}

// ProviderSummary counts the models of one provider.
type ProviderSummary struct {
	Provider string `json:"provider" yaml:"provider"`
	Models   int    `json:"models" yaml:"models"`
	Vision   int    `json:"vision" yaml:"vision"`
}

// Providers summarizes the table per provider, sorted by provider name.
func (m Map) Providers() []ProviderSummary {
	index := make(map[string]*ProviderSummary)
	for _, d := range m {
		s, ok := index[d.Provider]
		if !ok {
			s = &ProviderSummary{Provider: d.Provider}
			index[d.Provider] = s
		}
		s.Models++
		if d.SupportsImage {
			s.Vision++
		}
	}

	out := make([]ProviderSummary, 0, len(index))
	for _, s := range index {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Provider < out[j].Provider
	})
	return out
}
