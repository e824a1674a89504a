package modelcaps_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelcaps"
	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/errors"
	"github.com/agentstation/modelcaps/pkg/logging"
	"github.com/agentstation/modelcaps/pkg/openrouter"
)

const catalogBody = `{
  "data": [
    {
      "id": "openai/gpt-4o",
      "name": "OpenAI: GPT-4o",
      "description": "Omni model",
      "context_length": 128000,
      "architecture": {"input_modalities": ["text", "image"], "output_modalities": ["text"]}
    },
    {"id": "anthropic/claude-3"},
    {"id": "", "name": "nameless"},
    {"id": "openai/gpt-4o:extended", "name": "GPT-4o (extended)", "context_length": 64000}
  ]
}`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	logging.CaptureLoggingForTest(t)
	server := serve(t, http.StatusOK, catalogBody)
	path := filepath.Join(t.TempDir(), "frontend", "src", "config", "model-capabilities.json")

	u, err := modelcaps.New(
		modelcaps.WithCatalogURL(server.URL),
		modelcaps.WithOutputPath(path),
		modelcaps.WithRunID("run-1"),
	)
	require.NoError(t, err)

	result, err := u.Update(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 2, result.Entries)
	assert.Equal(t, 1, result.Report.Skipped)
	assert.Equal(t, []string{"gpt-4o"}, result.Report.Overwritten)
	assert.Equal(t, []string{"claude-3", "gpt-4o"}, result.Changes.Added)

	written, err := capabilities.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, written.Len())

	gpt := written["gpt-4o"]
	assert.Equal(t, "GPT-4o (extended)", gpt.Name, "later record wins")
	assert.Equal(t, int64(64000), gpt.ContextLength)
	assert.False(t, gpt.SupportsImage)
	assert.Equal(t, []string{}, gpt.Inputs)

	claude := written["claude-3"]
	assert.Equal(t, "anthropic", claude.Provider)
	assert.Equal(t, "claude-3", claude.Name)
}

func TestUpdateFetchFailureLeavesFileUntouched(t *testing.T) {
	logging.CaptureLoggingForTest(t)

	refused := httptest.NewServer(http.NotFoundHandler())
	refusedURL := refused.URL
	refused.Close()

	tests := []struct {
		name string
		url  string
		kind errors.FetchKind
	}{
		{"connection refused", refusedURL, errors.FetchKindConnection},
		{"server error", serve(t, http.StatusInternalServerError, "boom").URL, errors.FetchKindStatus},
		{"malformed body", serve(t, http.StatusOK, "<html>").URL, errors.FetchKindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			existing := filepath.Join(dir, "existing.json")
			original := []byte(`{"keep": {"provider": "me"}}`)
			require.NoError(t, os.WriteFile(existing, original, 0o644))

			u, err := modelcaps.New(modelcaps.WithCatalogURL(tt.url), modelcaps.WithOutputPath(existing))
			require.NoError(t, err)
			_, err = u.Update(context.Background())
			require.Error(t, err)
			assert.True(t, errors.IsFetchFailure(err))

			var fetchErr *errors.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.kind, fetchErr.Kind)

			data, err := os.ReadFile(existing)
			require.NoError(t, err)
			assert.Equal(t, original, data)

			fresh := filepath.Join(dir, "fresh", "caps.json")
			u, err = modelcaps.New(modelcaps.WithCatalogURL(tt.url), modelcaps.WithOutputPath(fresh))
			require.NoError(t, err)
			_, err = u.Update(context.Background())
			require.Error(t, err)
			assert.NoFileExists(t, fresh)
		})
	}
}

func TestUpdateTimeout(t *testing.T) {
	logging.CaptureLoggingForTest(t)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	path := filepath.Join(t.TempDir(), "caps.json")
	u, err := modelcaps.New(
		modelcaps.WithCatalogURL(server.URL),
		modelcaps.WithTimeout(50*time.Millisecond),
		modelcaps.WithOutputPath(path),
	)
	require.NoError(t, err)

	_, err = u.Update(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err))
	assert.NoFileExists(t, path)
}

type staticFetcher []openrouter.Model

func (f staticFetcher) ListModels(context.Context) ([]openrouter.Model, error) {
	return f, nil
}

func TestUpdateChangesAndHooks(t *testing.T) {
	logging.CaptureLoggingForTest(t)
	path := filepath.Join(t.TempDir(), "caps.json")
	require.NoError(t, capabilities.Save(capabilities.Map{
		"old-model": {Provider: "x", Name: "old-model", Inputs: []string{}, Outputs: []string{}},
		"gpt-4":     {Provider: "openai", Name: "GPT-4", Inputs: []string{}, Outputs: []string{}},
		"same":      {Provider: "p", Name: "same", Inputs: []string{}, Outputs: []string{}},
	}, capabilities.WithPath(path)))

	u, err := modelcaps.New(
		modelcaps.WithFetcher(staticFetcher{
			{ID: "openai/gpt-4", Name: "GPT-4 Turbo"},
			{ID: "p/same"},
			{ID: "new/model"},
		}),
		modelcaps.WithOutputPath(path),
	)
	require.NoError(t, err)

	var added, updated, removed []string
	u.OnEntryAdded(func(id string, _ capabilities.Descriptor) { added = append(added, id) })
	u.OnEntryUpdated(func(id string, old, new capabilities.Descriptor) {
		assert.Equal(t, "GPT-4", old.Name)
		assert.Equal(t, "GPT-4 Turbo", new.Name)
		updated = append(updated, id)
	})
	u.OnEntryRemoved(func(id string, _ capabilities.Descriptor) { removed = append(removed, id) })

	result, err := u.Update(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"model"}, added)
	assert.Equal(t, []string{"gpt-4"}, updated)
	assert.Equal(t, []string{"old-model"}, removed)
	assert.Equal(t, modelcaps.Changes{
		Added:   []string{"model"},
		Updated: []string{"gpt-4"},
		Removed: []string{"old-model"},
	}, result.Changes)
	assert.False(t, result.Changes.Empty())
}

func TestUpdateWriterLeavesFileUntouched(t *testing.T) {
	logging.CaptureLoggingForTest(t)
	path := filepath.Join(t.TempDir(), "caps.json")

	var buf bytes.Buffer
	u, err := modelcaps.New(
		modelcaps.WithFetcher(staticFetcher{{ID: "openai/gpt-4"}}),
		modelcaps.WithOutputPath(path),
		modelcaps.WithWriter(&buf),
	)
	require.NoError(t, err)

	result, err := u.Update(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Path)
	assert.Contains(t, buf.String(), `"gpt-4": {`)
	assert.NoFileExists(t, path)
}

func TestUpdateWriterDiffsAgainstExistingFile(t *testing.T) {
	logging.CaptureLoggingForTest(t)
	path := filepath.Join(t.TempDir(), "caps.json")
	existing := []byte(`{"old-model": {"provider": "me", "name": "old-model", "inputs": [], "outputs": []}}`)
	require.NoError(t, os.WriteFile(path, existing, 0o644))

	u, err := modelcaps.New(
		modelcaps.WithFetcher(staticFetcher{{ID: "openai/gpt-4"}}),
		modelcaps.WithOutputPath(path),
		modelcaps.WithWriter(&bytes.Buffer{}),
	)
	require.NoError(t, err)

	result, err := u.Update(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4"}, result.Changes.Added)
	assert.Equal(t, []string{"old-model"}, result.Changes.Removed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, data)
}

func TestUpdateLogsRunID(t *testing.T) {
	logs := logging.CaptureLoggingForTest(t)

	u, err := modelcaps.New(
		modelcaps.WithFetcher(staticFetcher{{ID: "a/b"}}),
		modelcaps.WithWriter(&bytes.Buffer{}),
		modelcaps.WithRunID("abc-123"),
	)
	require.NoError(t, err)

	_, err = u.Update(context.Background())
	require.NoError(t, err)
	logs.AssertContains(t, `"run_id":"abc-123"`)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := modelcaps.New(modelcaps.WithTimeout(0))
	assert.True(t, errors.IsValidationError(err))

	_, err = modelcaps.New(modelcaps.WithFetcher(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = modelcaps.New(modelcaps.WithCatalogURL(""))
	assert.True(t, errors.IsValidationError(err))

	_, err = modelcaps.New(modelcaps.WithFormat(capabilities.Format(42)))
	assert.True(t, errors.IsValidationError(err))
}

func TestDefaultOutputPath(t *testing.T) {
	toolDir, err := modelcaps.ToolDir()
	require.NoError(t, err)
	assert.DirExists(t, toolDir)

	path, err := modelcaps.DefaultOutputPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(toolDir), "frontend", "src", "config", "model-capabilities.json"), path)

	u, err := modelcaps.New(modelcaps.WithFetcher(staticFetcher{}))
	require.NoError(t, err)
	assert.Equal(t, path, u.OutputPath())
}
