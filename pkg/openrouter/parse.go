package openrouter

import (
	"github.com/tidwall/gjson"

	"github.com/agentstation/modelcaps/pkg/errors"
)

// ParseModels decodes a models response body. The body must be valid JSON;
// beyond that nothing about the schema is enforced. A missing or non-array
// "data" yields an empty slice, and fields with an unexpected type read as
// their zero value.
func ParseModels(body []byte) ([]Model, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.NewParseError("json", "response", "response body is not valid JSON", nil)
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return []Model{}, nil
	}

	records := data.Array()
	models := make([]Model, 0, len(records))
	for _, record := range records {
		models = append(models, parseModel(record))
	}
	return models, nil
}

func parseModel(r gjson.Result) Model {
	arch := r.Get("architecture")
	name := r.Get("name")
	return Model{
		ID:            stringField(r.Get("id")),
		Name:          stringField(name),
		HasName:       name.Exists() && name.Type != gjson.Null,
		Description:   stringField(r.Get("description")),
		ContextLength: intField(r.Get("context_length")),
		Architecture: Architecture{
			InputModalities:  stringList(arch.Get("input_modalities")),
			OutputModalities: stringList(arch.Get("output_modalities")),
		},
	}
}

func stringField(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

func intField(r gjson.Result) int64 {
	if r.Type != gjson.Number {
		return 0
	}
	return r.Int()
}

// stringList returns the string elements of an array in order.
// Anything that is not an array reads as an empty list.
func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return []string{}
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.String {
			out = append(out, item.Str)
		}
	}
	return out
}
