package update

import (
	"context"
	"fmt"
	"io"

	"github.com/agentstation/modelcaps"
	"github.com/agentstation/modelcaps/internal/appcontext"
	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// Execute runs one update. A fetch failure is reported on stderr and is
// not returned, so the process exits successfully with the previous file
// intact. Any other failure is returned.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags, stdout, stderr io.Writer) error {
	updater, err := app.Updater(buildOptions(app, flags, stdout)...)
	if err != nil {
		return err
	}

	result, err := updater.Update(ctx)
	if err != nil {
		if errors.IsFetchFailure(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			if hint := fetchHint(err); hint != "" {
				fmt.Fprintf(stderr, "   %s\n", hint)
			}
			return nil
		}
		return err
	}

	if flags.DryRun {
		printChanges(stderr, result)
		return nil
	}

	fmt.Fprintf(stdout, "✅ Updated %d models in %s\n", result.Entries, result.Path)
	if !result.Changes.Empty() {
		printChanges(stdout, result)
	}
	return nil
}

// fetchHint suggests what to do about a failed fetch.
func fetchHint(err error) string {
	switch {
	case errors.IsRateLimited(err):
		return "The catalog is rate limited; try again later."
	case errors.IsProviderUnavailable(err):
		return "The catalog server is unavailable; the previous file was kept."
	case errors.IsTimeout(err):
		return "The request timed out; raise --timeout for slow networks."
	default:
		return ""
	}
}

// buildOptions converts flags into updater options.
func buildOptions(app appcontext.Interface, flags *Flags, stdout io.Writer) []modelcaps.Option {
	var opts []modelcaps.Option

	if flags.URL != "" {
		opts = append(opts, modelcaps.WithCatalogURL(flags.URL))
	}
	if flags.Timeout != 0 {
		opts = append(opts, modelcaps.WithTimeout(flags.Timeout))
	}
	if flags.OutputPath != "" {
		opts = append(opts, modelcaps.WithOutputPath(flags.OutputPath))
	}

	if flags.DryRun {
		format, ok := capabilities.ParseFormat(app.OutputFormat())
		if !ok {
			// table and wide have no file encoding; preview as JSON
			format = capabilities.FormatJSON
		}
		opts = append(opts, modelcaps.WithWriter(stdout), modelcaps.WithFormat(format))
	}

	return opts
}

// printChanges summarizes how the table differs from the previous file.
func printChanges(w io.Writer, result *modelcaps.Result) {
	fmt.Fprintf(w, "   %d added, %d updated, %d removed", len(result.Changes.Added), len(result.Changes.Updated), len(result.Changes.Removed))
	if result.Report.Skipped > 0 {
		fmt.Fprintf(w, ", %d records without id skipped", result.Report.Skipped)
	}
	if n := len(result.Report.Overwritten); n > 0 {
		fmt.Fprintf(w, ", %d duplicate ids", n)
	}
	fmt.Fprintln(w)
}
