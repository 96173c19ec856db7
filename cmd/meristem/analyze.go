//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/meristem"
)

var (
	errNoInput     = errors.New("expected at least one audio file")
	errInvalidMode = errors.New("must be essential, full, or custom")
	errAllFailed   = errors.New("no file could be analyzed")
)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Extract audio features from one or more tracks",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Feature set: essential, full, custom",
				Value:   "essential",
			},
			&cli.StringFlag{
				Name:    "features",
				Aliases: []string{"F"},
				Usage:   "Comma-separated feature names (implies --mode custom)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Parallel decode workers (0 = number of CPUs)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return errNoInput
			}

			opts, err := parseAnalyzeOptions(cmd)
			if err != nil {
				return err
			}

			results, err := analyzeAll(ctx, cmd.Args().Slice(), opts, int(cmd.Int("workers")))
			if err != nil {
				return err
			}

			return outputRecords(results, cmd.String("format"))
		},
	}
}

func parseAnalyzeOptions(cmd *cli.Command) (meristem.Options, error) {
	opts := meristem.DefaultOptions()

	switch cmd.String("mode") {
	case "essential":
		opts.Mode = meristem.ModeEssential
	case "full":
		opts.Mode = meristem.ModeFull
	case "custom":
		opts.Mode = meristem.ModeCustom
	default:
		return opts, fmt.Errorf("--mode: %w", errInvalidMode)
	}

	if raw := cmd.String("features"); raw != "" {
		opts.Mode = meristem.ModeCustom

		for name := range strings.SplitSeq(raw, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				opts.Features = append(opts.Features, name)
			}
		}
	}

	return opts, nil
}

// analyzeAll runs the batch and keeps the successful results, path included
// so callers can reach the source file. It fails only when every file
// failed; partial batches report per-file errors and carry on.
func analyzeAll(
	ctx context.Context,
	paths []string,
	opts meristem.Options,
	workers int,
) ([]meristem.BatchResult, error) {
	results := meristem.AnalyzeAll(ctx, paths, opts, workers)

	kept := make([]meristem.BatchResult, 0, len(results))

	var firstErr error

	for _, result := range results {
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
			}

			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", result.Path, result.Err)

			continue
		}

		kept = append(kept, result)
	}

	if len(kept) == 0 {
		if firstErr != nil {
			return nil, fmt.Errorf("%w: %w", errAllFailed, firstErr)
		}

		return nil, errAllFailed
	}

	return kept, nil
}

func collectRecords(results []meristem.BatchResult) []*meristem.FeatureRecord {
	records := make([]*meristem.FeatureRecord, 0, len(results))
	for _, result := range results {
		records = append(records, result.Record)
	}

	return records
}
