package feature

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/meristem/internal/dsp"
)

const (
	minBPM = 60
	maxBPM = 200
)

func extractBPM(a *Analysis, _ map[string]Value) map[string]Value {
	bpm := dsp.EstimateTempo(a.OnsetEnvelope(), a.FrameRate(), minBPM, maxBPM)

	return map[string]Value{"bpm": {Number: bpm}}
}

func extractBeatStrength(a *Analysis, _ map[string]Value) map[string]Value {
	env := a.OnsetEnvelope()
	if len(env) == 0 {
		return map[string]Value{"beat_strength": {}}
	}

	return map[string]Value{"beat_strength": {Number: stat.Mean(env, nil)}}
}

// extractDanceability blends beat strength, tempo proximity to 120 BPM and
// rhythm regularity into a 0-1 score.
func extractDanceability(a *Analysis, prior map[string]Value) map[string]Value {
	env := a.OnsetEnvelope()
	if len(env) == 0 {
		return map[string]Value{"danceability": {Number: 0.5}}
	}

	beatStrength := stat.Mean(env, nil)

	bpm := prior["bpm"].Number
	tempoScore := clamp01(1 - math.Abs(bpm-120)/120)

	autocorr := a.OnsetAutocorr()

	var regularity float64

	if len(autocorr) > 1 && autocorr[0] > 0 {
		end := min(50, len(autocorr))
		for _, v := range autocorr[1:end] {
			if r := v / autocorr[0]; r > regularity {
				regularity = r
			}
		}
	}

	score := beatStrength*0.4 + tempoScore*0.3 + regularity*0.3

	return map[string]Value{"danceability": {Number: clamp01(score)}}
}

// extractRhythmicDensity counts onset events per second.
func extractRhythmicDensity(a *Analysis, _ map[string]Value) map[string]Value {
	duration := a.Duration()
	if duration <= 0 {
		return map[string]Value{"rhythmic_density": {}}
	}

	events := dsp.OnsetCount(a.OnsetEnvelope())

	return map[string]Value{"rhythmic_density": {Number: float64(events) / duration}}
}

// extractCallResponse scores musical dialogue: prominent repeating patterns
// in the onset autocorrelation at lags between 10 and 100 frames.
func extractCallResponse(a *Analysis, _ map[string]Value) map[string]Value {
	autocorr := a.OnsetAutocorr()
	if len(autocorr) < 12 || autocorr[0] <= 0 {
		return map[string]Value{"call_response_presence": {}}
	}

	var (
		peakSum   float64
		peakCount int
	)

	end := min(100, len(autocorr)-1)
	for i := 10; i < end; i++ {
		if autocorr[i] > autocorr[i-1] && autocorr[i] > autocorr[i+1] {
			peakSum += autocorr[i]
			peakCount++
		}
	}

	if peakCount == 0 {
		return map[string]Value{"call_response_presence": {}}
	}

	score := peakSum / float64(peakCount) / autocorr[0]

	return map[string]Value{"call_response_presence": {Number: clamp01(score)}}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
