package capabilities

import (
	"github.com/agentstation/modelcaps/pkg/openrouter"
)

// Report summarizes one normalization pass.
type Report struct {
	// Records is the number of raw records seen.
	Records int
	// Skipped counts records dropped for a missing or empty id.
	Skipped int
	// Overwritten lists canonical ids written more than once, in the order
	// the overwrite happened. The last record always wins.
	Overwritten []string
}

// Normalize builds the capability table from raw catalog records.
func Normalize(models []openrouter.Model) Map {
	m, _ := NormalizeWithReport(models)
	return m
}

// NormalizeWithReport builds the capability table and reports skipped and
// colliding records. It never fails: absent optional fields take defaults.
func NormalizeWithReport(models []openrouter.Model) (Map, Report) {
	m := make(Map, len(models))
	report := Report{Records: len(models)}

	for _, model := range models {
		if model.ID == "" {
			report.Skipped++
			continue
		}

		id, d := Describe(model)
		if _, exists := m[id]; exists {
			report.Overwritten = append(report.Overwritten, id)
		}
		m[id] = d
	}

	return m, report
}

// Describe derives the canonical id and descriptor of a single record.
func Describe(model openrouter.Model) (string, Descriptor) {
	provider, id := ParseModelID(model.ID)

	// Only an absent name falls back; an empty one is kept as sent.
	name := model.Name
	if name == "" && !model.HasName {
		name = id
	}

	d := Descriptor{
		Provider:      provider,
		Name:          name,
		Description:   model.Description,
		ContextLength: model.ContextLength,
		Inputs:        orEmpty(model.Architecture.InputModalities),
		Outputs:       orEmpty(model.Architecture.OutputModalities),
	}
	d.SupportsImage = d.HasInput(ModalityImage)

	return id, d
}

// orEmpty keeps nil lists from encoding as null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
