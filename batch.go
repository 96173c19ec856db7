package meristem

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult carries the outcome of analyzing one file in a batch. Either
// Record or Err is set, never both.
type BatchResult struct {
	Path   string
	Record *FeatureRecord
	Err    error
}

// AnalyzeAll analyzes every path with a bounded worker pool and returns
// one result per path, in input order. A failing file reports its error
// in its own slot; it never cancels the siblings. Cancelling ctx stops
// scheduling of not-yet-started files.
func AnalyzeAll(ctx context.Context, paths []string, opts Options, workers int) []BatchResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]BatchResult, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for index, path := range paths {
		results[index].Path = path

		if err := ctx.Err(); err != nil {
			results[index].Err = err

			continue
		}

		group.Go(func() error {
			slog.Debug("meristem.AnalyzeAll", "path", path, "stage", "start")

			record, err := Analyze(path, opts)
			if err != nil {
				slog.Debug("meristem.AnalyzeAll", "path", path, "error", err)

				results[index].Err = err

				return nil
			}

			results[index].Record = record

			return nil
		})
	}

	//nolint:errcheck // workers never return errors, failures land in results
	_ = group.Wait()

	return results
}
