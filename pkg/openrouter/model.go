package openrouter

// Model represents a model in OpenRouter API format.
// Only the fields consumed downstream are kept; unknown fields are ignored.
// The json tags name the wire fields read by ParseModels.
type Model struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Description   string       `json:"description,omitempty"`
	ContextLength int64        `json:"context_length,omitempty"`
	Architecture  Architecture `json:"architecture"`

	// HasName records that the upstream record carried a non-null name,
	// which may still be empty.
	HasName bool `json:"-"`
}

// Architecture represents the architecture object in OpenRouter format.
type Architecture struct {
	InputModalities  []string `json:"input_modalities"`
	OutputModalities []string `json:"output_modalities"`
}
