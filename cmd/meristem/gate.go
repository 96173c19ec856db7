//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/meristem"
	"github.com/farcloser/meristem/internal/gatekeeper"
)

var errGateInput = errors.New("expected a candidate plus at least one reference file")

func gateCommand() *cli.Command {
	return &cli.Command{
		Name:      "gate",
		Usage:     "Flag a candidate that falls outside a reference group's envelope",
		ArgsUsage: "<candidate> <reference>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 2 {
				return errGateInput
			}

			candidate, err := gatekeeper.ExtractGoldenSubset(cmd.Args().First())
			if err != nil {
				return err
			}

			refs, err := goldenSubsets(cmd.Args().Tail())
			if err != nil {
				return err
			}

			model, err := gatekeeper.Fit(refs)
			if err != nil {
				return err
			}

			return outputGateReport(model.Check(candidate), cmd.String("format"))
		},
	}
}

func goldenSubsets(paths []string) ([]*meristem.FeatureRecord, error) {
	records := make([]*meristem.FeatureRecord, 0, len(paths))

	for _, path := range paths {
		record, err := gatekeeper.ExtractGoldenSubset(path)
		if err != nil {
			return nil, fmt.Errorf("reference %s: %w", path, err)
		}

		records = append(records, record)
	}

	return records, nil
}
