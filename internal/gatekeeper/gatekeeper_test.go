package gatekeeper

import (
	"errors"
	"math"
	"testing"

	"github.com/farcloser/meristem"
)

func goldenRecord(track string, loudness, bpm float64) *meristem.FeatureRecord {
	return &meristem.FeatureRecord{
		Track: track,
		Features: map[string]meristem.Value{
			"bpm":           meristem.Num(bpm),
			"loudness":      meristem.Num(loudness),
			"true_peak":     meristem.Num(-2.0),
			"dynamic_range": meristem.Num(8.0),
			"low_energy":    meristem.Num(40.0),
			"mid_energy":    meristem.Num(45.0),
			"high_energy":   meristem.Num(15.0),
			"stereo_width":  meristem.Num(0.5),
		},
	}
}

func TestFitEmpty(t *testing.T) {
	if _, err := Fit(nil); !errors.Is(err, ErrNoReferences) {
		t.Fatalf("err = %v, want ErrNoReferences", err)
	}
}

func TestCheckMemberOfGroup(t *testing.T) {
	references := []*meristem.FeatureRecord{
		goldenRecord("a.wav", -9.0, 124),
		goldenRecord("b.wav", -10.0, 126),
		goldenRecord("c.wav", -11.0, 128),
	}

	model, err := Fit(references)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	report := model.Check(goldenRecord("b-again.wav", -10.0, 126))

	if report.NearestReference != "b.wav" {
		t.Errorf("nearest = %q, want b.wav (identical golden values)", report.NearestReference)
	}

	if len(report.Alerts) != 0 {
		t.Errorf("in-group candidate raised alerts: %v", report.Alerts)
	}

	for _, deviation := range report.Deviations {
		if math.Abs(deviation.Z) > 2 {
			t.Errorf("%s z = %v, want small for an in-group candidate", deviation.Feature, deviation.Z)
		}
	}
}

func TestCheckOutlier(t *testing.T) {
	references := []*meristem.FeatureRecord{
		goldenRecord("a.wav", -9.0, 124),
		goldenRecord("b.wav", -10.0, 126),
		goldenRecord("c.wav", -11.0, 128),
	}

	model, err := Fit(references)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	outlier := goldenRecord("hot.wav", -3.0, 126)
	report := model.Check(outlier)

	if len(report.Alerts) == 0 {
		t.Fatal("a +7 dB loudness outlier must raise an alert")
	}

	found := false

	for _, alert := range report.Alerts {
		if alert.Feature == "loudness" {
			found = true

			if alert.Status != meristem.StatusWarning && alert.Status != meristem.StatusCritical {
				t.Errorf("loudness alert status = %s", alert.Status)
			}
		}
	}

	if !found {
		t.Error("no loudness alert for a loudness outlier")
	}

	if len(report.Deviations) == 0 || report.Deviations[0].Feature != "loudness" {
		t.Error("deviations should be sorted with the loudness outlier first")
	}
}

func TestCheckZeroDispersion(t *testing.T) {
	// Identical references: no dispersion, so nothing can be ranked.
	references := []*meristem.FeatureRecord{
		goldenRecord("a.wav", -9.0, 124),
		goldenRecord("b.wav", -9.0, 124),
	}

	model, err := Fit(references)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	report := model.Check(goldenRecord("other.wav", -15.0, 90))

	for _, deviation := range report.Deviations {
		if deviation.Z != 0 {
			t.Errorf("%s z = %v, want 0 when the group has no dispersion", deviation.Feature, deviation.Z)
		}
	}

	if len(report.Alerts) != 0 {
		t.Errorf("zero-dispersion group raised alerts: %v", report.Alerts)
	}
}
