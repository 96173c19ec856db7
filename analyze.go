package meristem

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/farcloser/meristem/internal/decode"
	"github.com/farcloser/meristem/internal/feature"
)

/*
Usage:

record, err := meristem.Analyze("track.wav", meristem.DefaultOptions())

// Full descriptor set
opts := meristem.DefaultOptions()
opts.Mode = meristem.ModeFull
record, err := meristem.Analyze("track.flac", opts)

// Only specific descriptors
opts := meristem.Options{Mode: meristem.ModeCustom, Features: []string{"loudness", "true_peak"}}
record, err := meristem.Analyze("track.mp3", opts)

// Group profile and comparison
profile := meristem.Aggregate(records)
comparison := meristem.Compare(candidate, profile)
for _, rec := range meristem.Recommendations(comparison) {
    fmt.Printf("[%s] %s\n", rec.Status, rec.Suggestion)
}
*/

// Mode selects which descriptor set Analyze computes.
type Mode int

const (
	// ModeEssential computes a fixed small set tuned for fast pairwise
	// comparison: tempo, energy, loudness, brightness, dynamic range and
	// RMS, plus a placeholder "Unknown" key.
	ModeEssential Mode = iota

	// ModeFull computes the complete descriptor set.
	ModeFull

	// ModeCustom computes only Options.Features, nothing implicit.
	// Unrecognized names are skipped.
	ModeCustom
)

func (m Mode) String() string {
	switch m {
	case ModeEssential:
		return "essential"
	case ModeFull:
		return "full"
	case ModeCustom:
		return "custom"
	}

	return "unknown"
}

// Options configures the analysis.
type Options struct {
	Mode Mode

	// Features is the descriptor list for ModeCustom; ignored otherwise.
	Features []string
}

// DefaultOptions returns essential-mode options.
func DefaultOptions() Options {
	return Options{Mode: ModeEssential}
}

// FeatureNames returns the full descriptor vocabulary in canonical order.
func FeatureNames() []string {
	names := make([]string, len(feature.Order))
	copy(names, feature.Order)

	return names
}

// Analyze decodes an audio file and extracts its feature record. Decode
// failures surface as typed errors carrying the cause; per-descriptor
// failures never do — each descriptor degrades to its neutral default
// instead.
func Analyze(path string, opts Options) (*FeatureRecord, error) {
	sig, err := decode.File(path)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	analysis := feature.NewAnalysis(sig)

	var names []string

	switch opts.Mode {
	case ModeFull:
		names = feature.Order
	case ModeCustom:
		names = opts.Features
	default:
		names = feature.Essential
	}

	raw := feature.Extract(analysis, names)

	record := &FeatureRecord{
		Track:    filepath.Base(path),
		Features: make(map[string]Value, len(raw)+1),
	}

	for name, v := range raw {
		record.Features[name] = sanitize(name, Value{Number: v.Number, Label: v.Label})
	}

	// Essential mode skips key detection entirely.
	if opts.Mode == ModeEssential {
		record.Features["key"] = Cat("Unknown")
	}

	return record, nil
}

// sanitize replaces non-finite numbers with a safe zero so downstream
// aggregation and comparison never see NaN or infinity.
func sanitize(name string, v Value) Value {
	if v.Categorical() {
		return v
	}

	if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
		slog.Warn("feature produced a non-finite value, substituting 0",
			"feature", name,
			"value", v.Number)

		return Value{}
	}

	return v
}
