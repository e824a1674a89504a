package show

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelcaps/internal/appcontext"
	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/errors"
)

func run(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	app := &appcontext.Mock{
		CapabilitiesFunc: func(string) (capabilities.Map, error) {
			return capabilities.Map{
				"claude-3-opus": {Provider: "anthropic", Name: "Claude 3 Opus", SupportsImage: true, ContextLength: 200000},
			}, nil
		},
		OutputFormatFunc: func() string { return format },
	}

	cmd := NewCommand(app)
	cmd.GroupID = ""
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "table", "claude-3-opus-20240229")
	require.NoError(t, err)
	assert.Contains(t, out, "Claude 3 Opus")
	assert.Contains(t, out, "200,000")

	out, err = run(t, "json", "CLAUDE-3-OPUS")
	require.NoError(t, err)
	assert.Contains(t, out, `"claude-3-opus": {`)
}

func TestShowUnknownModel(t *testing.T) {
	_, err := run(t, "table", "mistral-large")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestShowRequiresArgument(t *testing.T) {
	_, err := run(t, "table")
	require.Error(t, err)
}
