package feature

import (
	"github.com/farcloser/meristem/internal/dsp"
)

// extractMelodicRange spans the pitch track from lowest to highest detected
// note, in semitones. Tracks with no detectable pitch default to one
// octave.
func extractMelodicRange(a *Analysis, _ map[string]Value) map[string]Value {
	pitches := a.Pitch()

	var low, high float64

	found := false

	for _, hz := range pitches {
		if hz <= 0 {
			continue
		}

		midi := dsp.HzToMidi(hz)

		if !found {
			low, high = midi, midi
			found = true

			continue
		}

		if midi < low {
			low = midi
		}

		if midi > high {
			high = midi
		}
	}

	if !found {
		return map[string]Value{"melodic_range": {Number: 12}}
	}

	return map[string]Value{"melodic_range": {Number: high - low}}
}
