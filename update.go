package modelcaps

import (
	"context"
	"time"

	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/errors"
	"github.com/agentstation/modelcaps/pkg/logging"
)

// Update fetches the catalog, normalizes it and writes the table.
//
// A fetch failure is returned as an *errors.FetchError before anything is
// written, so the previous file survives. Callers decide whether that is
// fatal; the command line reports it and exits successfully.
func (u *Updater) Update(ctx context.Context) (*Result, error) {
	ctx = logging.WithRunID(ctx, u.config.runID)
	ctx = logging.WithOperation(ctx, "update")
	logger := logging.FromContext(ctx)
	start := time.Now()

	logger.Info().Msg("Fetching model catalog")
	models, err := u.config.fetcher.ListModels(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Catalog fetch failed, output left unchanged")
		return nil, err
	}

	table, report := capabilities.NormalizeWithReport(models)
	if report.Skipped > 0 {
		logger.Warn().Int("skipped", report.Skipped).Msg("Skipped records without an id")
	}
	for _, id := range report.Overwritten {
		logger.Debug().Str("model_id", id).Msg("Duplicate canonical id, later record kept")
	}

	result := &Result{
		RunID:   logging.RunID(ctx),
		Entries: table.Len(),
		Report:  report,
		Table:   table,
	}

	previous := u.previous(ctx)
	result.Changes = u.hooks.diff(previous, table)

	if u.config.writer != nil {
		if err := capabilities.Save(table,
			capabilities.WithWriter(u.config.writer),
			capabilities.WithFormat(u.config.format),
		); err != nil {
			return nil, err
		}
		logger.Info().Int("entries", result.Entries).Msg("Wrote model capabilities to writer")
		return result, nil
	}

	result.Path = u.config.outputPath
	if err := capabilities.Save(table,
		capabilities.WithPath(u.config.outputPath),
		capabilities.WithFormat(u.config.format),
	); err != nil {
		logger.Error().Err(err).Str("path", u.config.outputPath).Msg("Failed to write capabilities")
		return nil, err
	}

	logger.Info().
		Int("entries", result.Entries).
		Int("added", len(result.Changes.Added)).
		Int("updated", len(result.Changes.Updated)).
		Int("removed", len(result.Changes.Removed)).
		Str("path", result.Path).
		Dur("elapsed", time.Since(start)).
		Msg("Wrote model capabilities")

	return result, nil
}

// previous loads the existing table for change detection. A missing or
// unreadable file counts as empty.
func (u *Updater) previous(ctx context.Context) capabilities.Map {
	if u.config.outputPath == "" || u.config.format != capabilities.FormatJSON {
		return nil
	}
	m, err := capabilities.Load(u.config.outputPath)
	if err != nil {
		if !errors.IsNotFound(err) {
			logging.FromContext(ctx).Warn().Err(err).
				Str("path", u.config.outputPath).
				Msg("Ignoring unreadable previous capabilities file")
		}
		return nil
	}
	return m
}
