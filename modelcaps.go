// Package modelcaps regenerates the frontend model capability table from
// the public OpenRouter model catalog.
//
// A run performs one GET against the catalog, normalizes every record into
// a capability descriptor keyed by canonical model id, and overwrites the
// generated JSON file. A failed fetch leaves the previous file untouched.
//
//	u, err := modelcaps.New(modelcaps.WithOutputPath("caps.json"))
//	if err != nil {
//		return err
//	}
//	result, err := u.Update(ctx)
package modelcaps

import (
	"context"
	"fmt"

	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/openrouter"
)

// Fetcher retrieves the raw catalog records.
type Fetcher interface {
	ListModels(ctx context.Context) ([]openrouter.Model, error)
}

// Compile-time interface check.
var _ Fetcher = (*openrouter.Client)(nil)

// Result describes one completed update.
type Result struct {
	// RunID tags every log line of the run.
	RunID string
	// Path is the file written, empty for writer targets.
	Path string
	// Entries is the number of descriptors written.
	Entries int
	// Report covers skipped and colliding records.
	Report capabilities.Report
	// Changes compares the new table with the previous file.
	Changes Changes
	// Table is the normalized table that was written.
	Table capabilities.Map
}

// Updater regenerates the capability table.
type Updater struct {
	config *config
	hooks  *hooks
}

// New creates an Updater with the given options.
func New(opts ...Option) (*Updater, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if cfg.fetcher == nil {
		cfg.fetcher = openrouter.NewClient(
			openrouter.WithURL(cfg.catalogURL),
			openrouter.WithTimeout(cfg.timeout),
		)
	}

	if cfg.outputPath == "" {
		path, err := DefaultOutputPath()
		if err != nil {
			return nil, err
		}
		cfg.outputPath = path
	}

	return &Updater{config: cfg, hooks: newHooks()}, nil
}

// OutputPath returns the generated file location. With a writer target
// the file is only read for change detection.
func (u *Updater) OutputPath() string {
	return u.config.outputPath
}

// OnEntryAdded registers a callback for ids absent from the previous file.
func (u *Updater) OnEntryAdded(fn EntryAddedHook) {
	u.hooks.OnEntryAdded(fn)
}

// OnEntryUpdated registers a callback for ids whose descriptor changed.
func (u *Updater) OnEntryUpdated(fn EntryUpdatedHook) {
	u.hooks.OnEntryUpdated(fn)
}

// OnEntryRemoved registers a callback for ids no longer in the catalog.
func (u *Updater) OnEntryRemoved(fn EntryRemovedHook) {
	u.hooks.OnEntryRemoved(fn)
}
