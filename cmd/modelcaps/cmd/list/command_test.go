package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelcaps/internal/appcontext"
	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/errors"
)

func table() capabilities.Map {
	return capabilities.Map{
		"gpt-4o":      {Provider: "openai", Name: "GPT-4o", SupportsImage: true, Inputs: []string{"text", "image"}},
		"gpt-4":       {Provider: "openai", Name: "GPT-4", Inputs: []string{"text"}},
		"gemini-pro":  {Provider: "google", Name: "Gemini", SupportsImage: true, Inputs: []string{"text", "image", "audio"}},
		"llama-3-70b": {Provider: "meta-llama", Name: "Llama 3", Inputs: []string{"text"}},
	}
}

func run(t *testing.T, app *appcontext.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	// GroupID requires a parent that declares the group
	cmd.GroupID = ""
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  []string
	}{
		{"no filters", Flags{}, []string{"gemini-pro", "gpt-4", "gpt-4o", "llama-3-70b"}},
		{"provider is case insensitive", Flags{Provider: "OpenAI"}, []string{"gpt-4", "gpt-4o"}},
		{"vision", Flags{Vision: true}, []string{"gemini-pro", "gpt-4o"}},
		{"modality", Flags{Modality: "audio"}, []string{"gemini-pro"}},
		{"combined", Flags{Provider: "openai", Vision: true}, []string{"gpt-4o"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := tt.flags
			assert.Equal(t, tt.want, Filter(table(), &flags).Keys())
		})
	}
}

func TestListCommand(t *testing.T) {
	var requested string
	app := &appcontext.Mock{
		CapabilitiesFunc: func(path string) (capabilities.Map, error) {
			requested = path
			return table(), nil
		},
		OutputFormatFunc: func() string { return "json" },
	}

	out, err := run(t, app, "--vision", "--input", "caps.json")
	require.NoError(t, err)
	assert.Equal(t, "caps.json", requested)

	var got capabilities.Map
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"gemini-pro", "gpt-4o"}, got.Keys())
}

func TestListProviders(t *testing.T) {
	app := &appcontext.Mock{
		CapabilitiesFunc: func(string) (capabilities.Map, error) { return table(), nil },
		OutputFormatFunc: func() string { return "table" },
	}

	out, err := run(t, app, "--providers")
	require.NoError(t, err)
	assert.Contains(t, out, "meta-llama")
	assert.Contains(t, out, "openai")
}

func TestListMissingFile(t *testing.T) {
	app := &appcontext.Mock{
		CapabilitiesFunc: func(path string) (capabilities.Map, error) {
			return nil, errors.NewNotFoundError("capabilities file", "caps.json")
		},
	}

	_, err := run(t, app)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListInvalidFormat(t *testing.T) {
	app := &appcontext.Mock{OutputFormatFunc: func() string { return "xml" }}
	_, err := run(t, app)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
