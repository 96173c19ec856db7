package feature

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// extractStereoWidth maps inter-channel correlation to width: identical
// channels (or mono sources) read 0, decorrelated channels read toward 1.
func extractStereoWidth(a *Analysis, _ map[string]Value) map[string]Value {
	if a.Right == nil || len(a.Left) != len(a.Right) || len(a.Left) < 2 {
		return map[string]Value{"stereo_width": {}}
	}

	correlation := stat.Correlation(a.Left, a.Right, nil)
	if math.IsNaN(correlation) {
		return map[string]Value{"stereo_width": {Number: 0.5}}
	}

	return map[string]Value{"stereo_width": {Number: clamp01(1 - math.Abs(correlation))}}
}

// extractValence estimates emotional positivity from tempo, brightness,
// energy and mode. Descriptors already computed for this record are read
// from prior; absent ones fall back to neutral values rather than forcing
// extra computation.
func extractValence(a *Analysis, prior map[string]Value) map[string]Value {
	bpm := 120.0
	if v, ok := prior["bpm"]; ok {
		bpm = v.Number
	}

	centroid := 2000.0
	if v, ok := prior["spectral_centroid"]; ok {
		centroid = v.Number
	}

	energy := 0.5
	if v, ok := prior["energy"]; ok {
		energy = v.Number
	}

	modeScore := 0.3
	if v, ok := prior["key"]; ok && strings.Contains(v.Label, "Major") {
		modeScore = 0.7
	}

	tempoScore := math.Min(1, bpm/140)
	brightnessScore := math.Min(1, centroid/3000)
	energyScore := math.Min(1, energy*2)

	valence := tempoScore*0.25 + brightnessScore*0.25 + energyScore*0.25 + modeScore*0.25

	return map[string]Value{"valence": {Number: clamp01(valence)}}
}
