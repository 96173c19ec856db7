package feature

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var keyNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// extractKey picks the strongest pitch class as tonic and decides major vs
// minor by comparing triad strengths. Confidence is the tonic's share of
// the total chroma mass.
func extractKey(a *Analysis, _ map[string]Value) map[string]Value {
	mean := meanChroma(a)

	total := floats.Sum(mean)
	if total == 0 {
		return map[string]Value{
			"key":            {Label: "Unknown"},
			"key_confidence": {},
		}
	}

	tonic := floats.MaxIdx(mean)
	confidence := mean[tonic] / total

	majorScore := mean[tonic] + mean[(tonic+4)%12] + mean[(tonic+7)%12]
	minorScore := mean[tonic] + mean[(tonic+3)%12] + mean[(tonic+7)%12]

	mode := "Major"
	if minorScore >= majorScore {
		mode = "Minor"
	}

	return map[string]Value{
		"key":            {Label: keyNames[tonic] + " " + mode},
		"key_confidence": {Number: confidence},
	}
}

func meanChroma(a *Analysis) []float64 {
	chroma := a.Chroma()

	mean := make([]float64, 12)
	if len(chroma) == 0 {
		return mean
	}

	for _, frame := range chroma {
		floats.Add(mean, frame)
	}

	floats.Scale(1/float64(len(chroma)), mean)

	return mean
}

// extractHarmonicComplexity blends pitch-class coverage with the harmonic
// change rate: sparse static harmony scores low, dense shifting harmony
// scores high.
func extractHarmonicComplexity(a *Analysis, _ map[string]Value) map[string]Value {
	chroma := a.Chroma()
	if len(chroma) < 2 {
		return map[string]Value{"harmonic_complexity": {Number: 0.5}}
	}

	mean := meanChroma(a)

	active := 0

	for _, strength := range mean {
		if strength > 0.1 {
			active++
		}
	}

	var (
		changeSum   float64
		changeCount int
	)

	for f := 1; f < len(chroma); f++ {
		for pc := range 12 {
			changeSum += math.Abs(chroma[f][pc] - chroma[f-1][pc])
			changeCount++
		}
	}

	changeRate := changeSum / float64(changeCount)

	complexity := float64(active)/12*0.6 + changeRate*0.4

	return map[string]Value{"harmonic_complexity": {Number: clamp01(complexity)}}
}

// extractRepetition scores self-similarity: the mean pairwise correlation
// between one-second chroma summaries. Chroma frames are pooled into
// blocks first to keep the similarity matrix tractable on long tracks.
func extractRepetition(a *Analysis, _ map[string]Value) map[string]Value {
	chroma := a.Chroma()

	blockFrames := int(a.FrameRate())
	if blockFrames < 1 {
		blockFrames = 1
	}

	var blocks [][]float64

	for pos := 0; pos+blockFrames <= len(chroma); pos += blockFrames {
		block := make([]float64, 12)

		for _, frame := range chroma[pos : pos+blockFrames] {
			floats.Add(block, frame)
		}

		floats.Scale(1/float64(blockFrames), block)
		blocks = append(blocks, block)
	}

	if len(blocks) < 2 {
		return map[string]Value{"repetition_score": {Number: 0.5}}
	}

	var (
		sum   float64
		count int
	)

	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			r := stat.Correlation(blocks[i], blocks[j], nil)
			if !math.IsNaN(r) {
				sum += r
				count++
			}
		}
	}

	if count == 0 {
		return map[string]Value{"repetition_score": {Number: 0.5}}
	}

	return map[string]Value{"repetition_score": {Number: clamp01(sum / float64(count))}}
}
