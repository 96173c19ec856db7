//nolint:wrapcheck
package main

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/meristem"
	"github.com/farcloser/meristem/internal/gatekeeper"
	"github.com/farcloser/meristem/internal/tags"
)

func outputRecords(results []meristem.BatchResult, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := make([]*format.Data, 0, len(results))

	for _, result := range results {
		record := result.Record

		meta := make(map[string]any, len(record.Features)+1)

		for name, value := range record.Features {
			if value.Categorical() {
				meta[name] = value.Label

				continue
			}

			meta[name] = value.Number
		}

		info := tags.Read(result.Path)

		object := info.Title
		if info.Artist != "" {
			object = info.Artist + " - " + info.Title
		}

		data = append(data, &format.Data{
			Object: object,
			Meta:   meta,
		})
	}

	return formatter.PrintAll(data, os.Stdout)
}

func outputProfile(profile meristem.Profile, trackCount int, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	meta := make(map[string]any, len(profile))

	for name, stats := range profile {
		if stats.Categorical() {
			meta[name] = stats.Mode

			continue
		}

		meta[name] = fmt.Sprintf("mean %.3f (std %.3f, min %.3f, median %.3f, max %.3f)",
			stats.Mean, stats.Std, stats.Min, stats.Median, stats.Max)
	}

	data := &format.Data{
		Object: fmt.Sprintf("profile of %d tracks", trackCount),
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

func outputComparison(track string, comparison *meristem.Comparison, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	meta := make(map[string]any, len(comparison.Verdicts))

	for _, verdict := range comparison.Verdicts {
		meta[verdict.Feature] = fmt.Sprintf("[%s] %s", verdict.Status, verdict.Message)
	}

	data := &format.Data{
		Object: track,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

func outputRecommendations(track string, recs []meristem.Recommendation, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	meta := make(map[string]any, len(recs))

	for _, rec := range recs {
		meta[rec.Category] = fmt.Sprintf("[%s] %s", rec.Status, rec.Suggestion)
	}

	data := &format.Data{
		Object: track,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

func outputGateReport(report *gatekeeper.Report, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	meta := map[string]any{
		"nearest_reference": report.NearestReference,
	}

	deviations := make([]any, 0, len(report.Deviations))
	for _, deviation := range report.Deviations {
		deviations = append(deviations, fmt.Sprintf("%s: z=%.2f (weighted %.2f)",
			deviation.Feature, deviation.Z, deviation.Weighted))
	}

	meta["deviations"] = deviations

	if len(report.Alerts) > 0 {
		alerts := make([]any, 0, len(report.Alerts))
		for _, alert := range report.Alerts {
			alerts = append(alerts, fmt.Sprintf("[%s] %s", alert.Status, alert.Message))
		}

		meta["alerts"] = alerts
	}

	data := &format.Data{
		Object: report.Track,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
