package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelcaps/internal/appcontext"
)

func TestVersionCommand(t *testing.T) {
	info := &appcontext.Mock{VersionFunc: func() string { return "1.2.3" }}

	tests := []struct {
		name    string
		verbose bool
		want    []string
		absent  []string
	}{
		{"short", false, []string{"modelcaps 1.2.3\n"}, []string{"commit:"}},
		{"verbose", true, []string{"modelcaps 1.2.3\n", "commit:   unknown", "built by: test"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand(info, func() bool { return tt.verbose })
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs([]string{})
			require.NoError(t, cmd.Execute())

			for _, s := range tt.want {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}
