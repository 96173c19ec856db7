package meristem_test

import (
	"testing"

	"github.com/farcloser/meristem"
)

func TestRecommendationsProjectVerdicts(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")
	candidate.Features["loudness"] = meristem.Num(-12.5)

	comparison := meristem.Compare(candidate, reference)
	recs := meristem.Recommendations(comparison)

	if len(recs) != len(comparison.Verdicts) {
		t.Fatalf("got %d recommendations for %d verdicts", len(recs), len(comparison.Verdicts))
	}

	if recs[0].Category != "overall" {
		t.Errorf("first category = %q, want overall", recs[0].Category)
	}

	for i, rec := range recs {
		verdict := comparison.Verdicts[i]

		if rec.Status != verdict.Status {
			t.Errorf("%s: status %s does not match verdict %s", rec.Category, rec.Status, verdict.Status)
		}

		if rec.Suggestion != verdict.Message {
			t.Errorf("%s: suggestion diverges from verdict message", rec.Category)
		}
	}
}

func TestRecommendationsUseDisplayLabels(t *testing.T) {
	reference := fullRecord("ref.wav")
	candidate := fullRecord("cand.wav")

	recs := meristem.Recommendations(meristem.Compare(candidate, reference))

	labels := make(map[string]bool, len(recs))
	for _, rec := range recs {
		labels[rec.Category] = true
	}

	for _, want := range []string{"BPM", "Loudness", "True Peak", "Key"} {
		if !labels[want] {
			t.Errorf("no recommendation categorized %q", want)
		}
	}
}

func TestRecommendationsNilComparison(t *testing.T) {
	if got := meristem.Recommendations(nil); got != nil {
		t.Fatalf("Recommendations(nil) = %v, want nil", got)
	}
}
