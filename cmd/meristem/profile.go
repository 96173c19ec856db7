//nolint:wrapcheck
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/meristem"
)

var errProfileInput = errors.New("expected at least two audio files to build a profile")

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "Aggregate a group of tracks into a reference profile",
		ArgsUsage: "<file> <file>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "save",
				Aliases: []string{"s"},
				Usage:   "Write the profile as JSON to this path",
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
			if cmd.NArg() < 2 {
				return errProfileInput
			}

			opts := meristem.Options{Mode: meristem.ModeFull}

			results, err := analyzeAll(ctx, cmd.Args().Slice(), opts, int(cmd.Int("workers")))
			if err != nil {
				return err
			}

			records := collectRecords(results)
			profile := meristem.Aggregate(records)

			if path := cmd.String("save"); path != "" {
				if err := saveProfile(profile, path); err != nil {
					return err
				}
			}

			return outputProfile(profile, len(records), cmd.String("format"))
		},
	}
}

func saveProfile(profile meristem.Profile, path string) error {
	payload, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil { //nolint:gosec // report file
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}

func loadProfile(path string) (meristem.Profile, error) {
	payload, err := os.ReadFile(path) //nolint:gosec // CLI reads user-specified profile
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile meristem.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	return profile, nil
}
