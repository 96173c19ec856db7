package meristem

import (
	"math"
	"strconv"
	"strings"
)

// Compare grades a candidate track against a reference (a single track
// record or an aggregated Profile). The first verdict is the overall
// match score; the rest cover, in canonical order, every graded feature
// present on both sides. Features missing from either side are silently
// skipped, never treated as zero.
func Compare(candidate *FeatureRecord, ref Reference) *Comparison {
	score := matchScore(candidate, ref)

	verdicts := make([]Verdict, 0, len(compareOrder)+1)
	verdicts = append(verdicts, Verdict{
		Feature: "overall",
		Status:  scoreStatus(score),
		Message: "Overall match: " + formatNumber(score, 1) + "% similar to reference track",
		Score:   score,
	})

	for _, name := range compareOrder {
		pol, graded := policies[name]
		if !graded {
			continue
		}

		cv, ok := candidate.Value(name)
		if !ok {
			continue
		}

		rv, ok := ref.refValue(name)
		if !ok {
			continue
		}

		verdicts = append(verdicts, grade(name, pol, cv, rv))
	}

	return &Comparison{Verdicts: verdicts}
}

// matchScore is the mean per-feature similarity over the scoring set,
// where each feature contributes clamp(100 - 1.5*|pct diff|, 0, 100).
// Zero-valued references are skipped so unavailable data cannot drag
// the score down. Rounded to one decimal.
func matchScore(candidate *FeatureRecord, ref Reference) float64 {
	var sum float64

	var count int

	for _, name := range scoreFeatures {
		cv, ok := candidate.Value(name)
		if !ok || cv.Categorical() {
			continue
		}

		rv, ok := ref.refValue(name)
		if !ok || rv.Categorical() {
			continue
		}

		if rv.Number == 0 {
			continue
		}

		pct := math.Abs((cv.Number - rv.Number) / rv.Number * 100)

		similarity := 100 - pct*1.5
		if similarity < 0 {
			similarity = 0
		}

		sum += similarity
		count++
	}

	if count == 0 {
		return 0
	}

	return math.Round(sum/float64(count)*10) / 10
}

func scoreStatus(score float64) Status {
	switch {
	case score >= 80:
		return StatusPerfect
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusWarning
	}

	return StatusCritical
}

// grade produces the verdict for one feature. Precedence: the true-peak
// safety ceiling, exact equality, the zero-reference availability rule,
// then the tier walk over the policy's breakpoints.
func grade(name string, pol policy, cand, ref Value) Verdict {
	if pol.scale == scaleExact {
		return gradeExact(name, pol, cand, ref)
	}

	if pol.scale == scaleSafety && cand.Number > truePeakCeiling {
		return Verdict{
			Feature: name,
			Status:  StatusCritical,
			Message: pol.label + ": " + formatNumber(cand.Number, pol.prec) + pol.unit + " - " + pol.msg.critHigh,
		}
	}

	if cand.Number == ref.Number {
		return render(name, pol, StatusPerfect, cand, ref)
	}

	if pol.scale != scaleSafety && ref.Number == 0 {
		return Verdict{
			Feature: name,
			Status:  StatusGood,
			Message: pol.label + ": Data not available for comparison",
		}
	}

	diff := cand.Number - ref.Number

	distance := math.Abs(diff)
	if pol.scale == scaleRelative {
		distance = distance / math.Abs(ref.Number) * 100
	}

	var status Status

	switch {
	case distance <= pol.bands.perfect:
		status = StatusPerfect
	case distance <= pol.bands.good:
		status = StatusGood
	case distance <= pol.bands.warning:
		status = StatusWarning
	default:
		status = StatusCritical
	}

	return render(name, pol, status, cand, ref)
}

func gradeExact(name string, pol policy, cand, ref Value) Verdict {
	if cand.Label == ref.Label {
		return Verdict{
			Feature: name,
			Status:  StatusPerfect,
			Message: pol.label + ": " + cand.Label + " - " + pol.msg.perfect,
		}
	}

	phrase := strings.ReplaceAll(pol.msg.warnHigh, "{ref}", ref.Label)

	return Verdict{
		Feature: name,
		Status:  StatusWarning,
		Message: pol.label + ": " + cand.Label + " - " + phrase,
	}
}

func render(name string, pol policy, status Status, cand, ref Value) Verdict {
	diff := cand.Number - ref.Number

	var phrase string

	switch status {
	case StatusPerfect:
		phrase = pol.msg.perfect
	case StatusGood:
		phrase = pick(diff, pol.msg.goodHigh, pol.msg.goodLow)
	case StatusWarning:
		phrase = pick(diff, pol.msg.warnHigh, pol.msg.warnLow)
	default:
		phrase = pick(diff, pol.msg.critHigh, pol.msg.critLow)
	}

	var pct float64
	if ref.Number != 0 {
		pct = math.Abs(diff / ref.Number * 100)
	}

	phrase = strings.NewReplacer(
		"{ref}", formatNumber(ref.Number, pol.prec),
		"{diff}", formatNumber(math.Abs(diff), pol.prec),
		"{pct}", formatNumber(pct, 1),
	).Replace(phrase)

	return Verdict{
		Feature: name,
		Status:  status,
		Message: pol.label + ": " + formatNumber(cand.Number, pol.prec) + pol.unit + " - " + phrase,
	}
}

func pick(diff float64, high, low string) string {
	if diff > 0 {
		return high
	}

	return low
}

func formatNumber(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
