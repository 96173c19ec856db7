package feature

import (
	"log/slog"
	"sort"
)

// extractFunc computes one or more descriptor values. Extractors never fail:
// degenerate input (silence, too-short signals) yields the descriptor's
// neutral default instead.
type extractFunc func(a *Analysis, prior map[string]Value) map[string]Value

// spec registers a descriptor. Dependencies are computed first and passed
// via the prior map without being emitted unless requested themselves; also
// lists companion descriptors emitted alongside this one.
type spec struct {
	deps    []string
	also    []string
	extract extractFunc
}

var registry = map[string]spec{
	"bpm":                      {extract: extractBPM},
	"energy":                   {extract: extractEnergy},
	"loudness":                 {extract: extractLoudness},
	"spectral_centroid":        {extract: extractCentroid},
	"rms":                      {extract: extractRMS},
	"zero_crossing_rate":       {extract: extractZCR},
	"dynamic_range":            {extract: extractDynamicRange},
	"spectral_rolloff":         {extract: extractRolloff},
	"spectral_flatness":        {extract: extractFlatness},
	"low_energy":               {extract: extractBandEnergy},
	"mid_energy":               {extract: extractBandEnergy},
	"high_energy":              {extract: extractBandEnergy},
	"key":                      {extract: extractKey},
	"key_confidence":           {also: []string{"key"}, extract: extractKey},
	"danceability":             {deps: []string{"bpm"}, extract: extractDanceability},
	"beat_strength":            {extract: extractBeatStrength},
	"sub_bass_presence":        {extract: extractSubBass},
	"stereo_width":             {extract: extractStereoWidth},
	"valence":                  {extract: extractValence},
	"loudness_range":           {extract: extractLoudnessRange},
	"true_peak":                {extract: extractTruePeak},
	"crest_factor":             {extract: extractCrestFactor},
	"spectral_contrast":        {extract: extractContrast},
	"transient_energy":         {extract: extractTransientEnergy},
	"harmonic_to_noise_ratio":  {extract: extractHNR},
	"harmonic_complexity":      {extract: extractHarmonicComplexity},
	"melodic_range":            {extract: extractMelodicRange},
	"rhythmic_density":         {extract: extractRhythmicDensity},
	"arrangement_density":      {extract: extractArrangementDensity},
	"repetition_score":         {extract: extractRepetition},
	"frequency_occupancy":      {extract: extractFrequencyOccupancy},
	"timbral_diversity":        {extract: extractTimbralDiversity},
	"vocal_instrumental_ratio": {extract: extractVocalRatio},
	"energy_curve":             {extract: extractEnergyCurve},
	"call_response_presence":   {extract: extractCallResponse},
}

// Order is the canonical descriptor order used in records and reports.
var Order = []string{
	"bpm",
	"energy",
	"loudness",
	"spectral_centroid",
	"rms",
	"zero_crossing_rate",
	"dynamic_range",
	"spectral_rolloff",
	"spectral_flatness",
	"low_energy",
	"mid_energy",
	"high_energy",
	"key",
	"key_confidence",
	"danceability",
	"beat_strength",
	"sub_bass_presence",
	"stereo_width",
	"valence",
	"loudness_range",
	"true_peak",
	"crest_factor",
	"spectral_contrast",
	"transient_energy",
	"harmonic_to_noise_ratio",
	"harmonic_complexity",
	"melodic_range",
	"rhythmic_density",
	"arrangement_density",
	"repetition_score",
	"frequency_occupancy",
	"timbral_diversity",
	"vocal_instrumental_ratio",
	"energy_curve",
	"call_response_presence",
}

// Essential is the fast-path descriptor set. Key detection is skipped in
// this mode and the key reads "Unknown".
var Essential = []string{
	"bpm",
	"energy",
	"loudness",
	"spectral_centroid",
	"dynamic_range",
	"rms",
}

// Known reports whether a descriptor name is registered.
func Known(name string) bool {
	_, ok := registry[name]

	return ok
}

// Names returns all registered descriptor names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Extract computes the named descriptors in order. Companion descriptors
// (key_confidence always carries key along) land in the result too; bare
// dependencies do not. Unrecognized names are logged and skipped.
func Extract(a *Analysis, names []string) map[string]Value {
	prior := make(map[string]Value)
	out := make(map[string]Value, len(names))

	for _, name := range names {
		if !Known(name) {
			slog.Warn("skipping unrecognized feature", "feature", name)

			continue
		}

		compute(a, name, prior)

		out[name] = prior[name]

		for _, extra := range registry[name].also {
			out[extra] = prior[extra]
		}
	}

	return out
}

// compute resolves dependencies, runs the extractor, and memoizes every
// value it produces in prior.
func compute(a *Analysis, name string, prior map[string]Value) {
	if _, ok := prior[name]; ok {
		return
	}

	s := registry[name]

	for _, dep := range s.deps {
		compute(a, dep, prior)
	}

	for k, v := range s.extract(a, prior) {
		prior[k] = v
	}
}
