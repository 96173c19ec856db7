//nolint:wrapcheck
package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/meristem"
)

var errCompareInput = errors.New(
	"expected a candidate plus at least one reference file, or --profile")

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Grade a candidate track against a reference track or profile",
		ArgsUsage: "<candidate> [reference]...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Compare against a saved profile instead of reference files",
			},
			&cli.BoolFlag{
				Name:    "recommendations",
				Aliases: []string{"r"},
				Usage:   "Print presentation-ready recommendations instead of raw verdicts",
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
			profilePath := cmd.String("profile")
			if cmd.NArg() < 1 || (cmd.NArg() < 2 && profilePath == "") {
				return errCompareInput
			}

			opts := meristem.Options{Mode: meristem.ModeFull}

			candidate, err := meristem.Analyze(cmd.Args().First(), opts)
			if err != nil {
				return err
			}

			reference, err := buildReference(ctx, cmd, profilePath, opts)
			if err != nil {
				return err
			}

			comparison := meristem.Compare(candidate, reference)

			if cmd.Bool("recommendations") {
				return outputRecommendations(
					candidate.Track, meristem.Recommendations(comparison), cmd.String("format"))
			}

			return outputComparison(candidate.Track, comparison, cmd.String("format"))
		},
	}
}

// buildReference resolves the comparison target: a saved profile, a single
// reference track, or a profile aggregated over several reference tracks.
func buildReference(
	ctx context.Context,
	cmd *cli.Command,
	profilePath string,
	opts meristem.Options,
) (meristem.Reference, error) {
	if profilePath != "" {
		return loadProfile(profilePath)
	}

	results, err := analyzeAll(ctx, cmd.Args().Tail(), opts, int(cmd.Int("workers")))
	if err != nil {
		return nil, err
	}

	references := collectRecords(results)

	if len(references) == 1 {
		return references[0], nil
	}

	return meristem.Aggregate(references), nil
}
