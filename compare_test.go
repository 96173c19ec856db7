package meristem_test

import (
	"strings"
	"testing"

	"github.com/farcloser/meristem"
)

func fullRecord(track string) *meristem.FeatureRecord {
	return &meristem.FeatureRecord{
		Track: track,
		Features: map[string]meristem.Value{
			"bpm":               meristem.Num(128.0),
			"key":               meristem.Cat("A Minor"),
			"key_confidence":    meristem.Num(0.42),
			"energy":            meristem.Num(0.31),
			"loudness":          meristem.Num(-9.0),
			"spectral_centroid": meristem.Num(2100.0),
			"rms":               meristem.Num(0.21),
			"dynamic_range":     meristem.Num(8.5),
			"low_energy":        meristem.Num(40.0),
			"mid_energy":        meristem.Num(45.0),
			"high_energy":       meristem.Num(15.0),
			"sub_bass_presence": meristem.Num(6.0),
			"loudness_range":    meristem.Num(5.2),
			"true_peak":         meristem.Num(-3.0),
			"crest_factor":      meristem.Num(9.1),
			"danceability":      meristem.Num(0.62),
			"stereo_width":      meristem.Num(0.48),
		},
	}
}

func verdictFor(t *testing.T, comparison *meristem.Comparison, feature string) meristem.Verdict {
	t.Helper()

	for _, verdict := range comparison.Verdicts {
		if verdict.Feature == feature {
			return verdict
		}
	}

	t.Fatalf("no verdict for %q", feature)

	return meristem.Verdict{}
}

func hasVerdict(comparison *meristem.Comparison, feature string) bool {
	for _, verdict := range comparison.Verdicts {
		if verdict.Feature == feature {
			return true
		}
	}

	return false
}

func TestCompareSelfIsPerfect(t *testing.T) {
	record := fullRecord("self.wav")

	comparison := meristem.Compare(record, record)

	if got := comparison.Score(); got != 100.0 {
		t.Fatalf("self comparison score = %v, want 100", got)
	}

	for _, verdict := range comparison.Verdicts {
		if verdict.Status != meristem.StatusPerfect {
			t.Errorf("%s: status = %s, want perfect (%s)", verdict.Feature, verdict.Status, verdict.Message)
		}
	}
}

func TestCompareSelfViaProfile(t *testing.T) {
	record := fullRecord("self.wav")
	profile := meristem.Aggregate([]*meristem.FeatureRecord{record})

	comparison := meristem.Compare(record, profile)

	if got := comparison.Score(); got != 100.0 {
		t.Fatalf("score against own single-track profile = %v, want 100", got)
	}

	for _, verdict := range comparison.Verdicts {
		if verdict.Status != meristem.StatusPerfect {
			t.Errorf("%s: status = %s, want perfect", verdict.Feature, verdict.Status)
		}
	}
}

func TestCompareLoudnessSlightlyQuieter(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	candidate.Features["loudness"] = meristem.Num(-9.6)

	verdict := verdictFor(t, meristem.Compare(candidate, reference), "loudness")

	if verdict.Status != meristem.StatusGood {
		t.Fatalf("loudness status = %s, want good (%s)", verdict.Status, verdict.Message)
	}

	if !strings.Contains(verdict.Message, "quieter") {
		t.Errorf("loudness message %q should mention quieter", verdict.Message)
	}
}

func TestCompareBPMWithinTolerance(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	candidate.Features["bpm"] = meristem.Num(132.0)

	verdict := verdictFor(t, meristem.Compare(candidate, reference), "bpm")

	if verdict.Status != meristem.StatusPerfect {
		t.Fatalf("bpm 132 vs 128 status = %s, want perfect (%s)", verdict.Status, verdict.Message)
	}
}

func TestCompareLowEnergyImbalance(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	candidate.Features["low_energy"] = meristem.Num(58.0)

	verdict := verdictFor(t, meristem.Compare(candidate, reference), "low_energy")

	if verdict.Status != meristem.StatusCritical {
		t.Fatalf("low_energy 58 vs 40 status = %s, want critical", verdict.Status)
	}

	if !strings.Contains(verdict.Message, "20-250Hz") {
		t.Errorf("low_energy message %q should point at the 20-250Hz range", verdict.Message)
	}
}

func TestCompareTruePeakSafetyOverride(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	candidate.Features["true_peak"] = meristem.Num(0.2)

	verdict := verdictFor(t, meristem.Compare(candidate, reference), "true_peak")

	if verdict.Status != meristem.StatusCritical {
		t.Fatalf("true_peak +0.2 status = %s, want critical", verdict.Status)
	}

	if !strings.Contains(verdict.Message, "-1.0 dBTP") {
		t.Errorf("true_peak message %q should mention the -1.0 dBTP ceiling", verdict.Message)
	}
}

func TestCompareKeyMismatch(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	candidate.Features["key"] = meristem.Cat("F# Major")

	verdict := verdictFor(t, meristem.Compare(candidate, reference), "key")

	if verdict.Status != meristem.StatusWarning {
		t.Fatalf("key mismatch status = %s, want warning", verdict.Status)
	}

	if !strings.Contains(verdict.Message, "A Minor") {
		t.Errorf("key message %q should name the reference key", verdict.Message)
	}
}

func TestCompareMissingFeatureOmitted(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	delete(candidate.Features, "bpm")

	comparison := meristem.Compare(candidate, reference)

	if hasVerdict(comparison, "bpm") {
		t.Error("bpm verdict present although the candidate does not carry bpm")
	}
}

func TestCompareZeroReferenceUnavailable(t *testing.T) {
	reference := fullRecord("ref.wav")
	reference.Features["danceability"] = meristem.Num(0)

	candidate := fullRecord("cand.wav")
	candidate.Features["danceability"] = meristem.Num(0.5)

	verdict := verdictFor(t, meristem.Compare(candidate, reference), "danceability")

	if verdict.Status != meristem.StatusGood {
		t.Fatalf("zero-reference status = %s, want good", verdict.Status)
	}

	if !strings.Contains(verdict.Message, "Data not available") {
		t.Errorf("zero-reference message %q should state data is unavailable", verdict.Message)
	}
}

func TestCompareZeroCrossingRateNeverGraded(t *testing.T) {
	reference := fullRecord("ref.wav")
	reference.Features["zero_crossing_rate"] = meristem.Num(0.08)

	candidate := fullRecord("cand.wav")
	candidate.Features["zero_crossing_rate"] = meristem.Num(0.3)

	if hasVerdict(meristem.Compare(candidate, reference), "zero_crossing_rate") {
		t.Error("zero_crossing_rate produced a verdict; it is measured but never graded")
	}
}

// Growing deviations must never move a feature back to a stricter tier.
func TestCompareToleranceMonotonic(t *testing.T) {
	reference := fullRecord("ref.wav")

	previous := meristem.StatusPerfect

	for _, loudness := range []float64{-9.0, -9.4, -10.0, -11.5, -14.0, -20.0} {
		candidate := fullRecord("cand.wav")
		candidate.Features["loudness"] = meristem.Num(loudness)

		verdict := verdictFor(t, meristem.Compare(candidate, reference), "loudness")

		if verdict.Status < previous {
			t.Fatalf("loudness %v: status %s is stricter than %s at a smaller deviation",
				loudness, verdict.Status, previous)
		}

		previous = verdict.Status
	}
}

func TestCompareOverallScoreDropsWithDeviation(t *testing.T) {
	reference := fullRecord("ref.wav")

	near := fullRecord("near.wav")
	near.Features["loudness"] = meristem.Num(-9.2)

	far := fullRecord("far.wav")
	far.Features["loudness"] = meristem.Num(-16.0)
	far.Features["bpm"] = meristem.Num(180.0)
	far.Features["low_energy"] = meristem.Num(70.0)

	closeScore := meristem.Compare(near, reference).Score()
	farScore := meristem.Compare(far, reference).Score()

	if closeScore <= farScore {
		t.Fatalf("close candidate scored %v, far candidate %v; want close > far", closeScore, farScore)
	}

	if closeScore <= 0 || closeScore > 100 || farScore < 0 {
		t.Fatalf("scores out of range: close %v, far %v", closeScore, farScore)
	}
}

func TestCompareOverallVerdictFirst(t *testing.T) {
	record := fullRecord("self.wav")

	comparison := meristem.Compare(record, record)

	if len(comparison.Verdicts) == 0 || comparison.Verdicts[0].Feature != "overall" {
		t.Fatal("first verdict must be the overall match")
	}

	if !strings.Contains(comparison.Verdicts[0].Message, "similar to reference track") {
		t.Errorf("overall message %q lacks the match summary", comparison.Verdicts[0].Message)
	}
}
