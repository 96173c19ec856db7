package meristem_test

import (
	"math"
	"testing"

	"github.com/farcloser/meristem"
)

func TestAggregateEmpty(t *testing.T) {
	if got := meristem.Aggregate(nil); len(got) != 0 {
		t.Fatalf("Aggregate(nil) = %v, want empty profile", got)
	}

	if got := meristem.Aggregate([]*meristem.FeatureRecord{}); len(got) != 0 {
		t.Fatalf("Aggregate of no records = %v, want empty profile", got)
	}
}

func TestAggregateSingleRecord(t *testing.T) {
	record := &meristem.FeatureRecord{
		Track: "one.wav",
		Features: map[string]meristem.Value{
			"bpm": meristem.Num(124.0),
			"key": meristem.Cat("D Minor"),
		},
	}

	profile := meristem.Aggregate([]*meristem.FeatureRecord{record})

	bpm, ok := profile["bpm"]
	if !ok {
		t.Fatal("bpm missing from profile")
	}

	if bpm.Mean != 124.0 || bpm.Min != 124.0 || bpm.Max != 124.0 || bpm.Median != 124.0 {
		t.Errorf("single-record stats = %+v, want all fields 124", bpm)
	}

	if bpm.Std != 0 {
		t.Errorf("single-record std = %v, want 0", bpm.Std)
	}

	if key := profile["key"]; key.Mode != "D Minor" {
		t.Errorf("key mode = %q, want D Minor", key.Mode)
	}
}

func TestAggregateStats(t *testing.T) {
	records := []*meristem.FeatureRecord{
		{Track: "a", Features: map[string]meristem.Value{
			"loudness": meristem.Num(-8.0), "key": meristem.Cat("C Major"),
		}},
		{Track: "b", Features: map[string]meristem.Value{
			"loudness": meristem.Num(-10.0), "key": meristem.Cat("C Major"),
		}},
		{Track: "c", Features: map[string]meristem.Value{
			"loudness": meristem.Num(-12.0), "key": meristem.Cat("G Minor"),
		}},
		{Track: "d", Features: map[string]meristem.Value{
			"loudness": meristem.Num(-14.0),
		}},
	}

	profile := meristem.Aggregate(records)

	loudness := profile["loudness"]
	if loudness.Mean != -11.0 {
		t.Errorf("mean = %v, want -11", loudness.Mean)
	}

	if loudness.Min != -14.0 || loudness.Max != -8.0 {
		t.Errorf("min/max = %v/%v, want -14/-8", loudness.Min, loudness.Max)
	}

	if loudness.Median != -11.0 {
		t.Errorf("median = %v, want -11 (even count interpolates)", loudness.Median)
	}

	// Population std of {-8,-10,-12,-14} is sqrt(5).
	if want := math.Sqrt(5); math.Abs(loudness.Std-want) > 1e-12 {
		t.Errorf("std = %v, want %v", loudness.Std, want)
	}

	if key := profile["key"]; key.Mode != "C Major" {
		t.Errorf("key mode = %q, want the majority label C Major", key.Mode)
	}
}

func TestAggregateSkipsMissingFeatures(t *testing.T) {
	records := []*meristem.FeatureRecord{
		{Track: "a", Features: map[string]meristem.Value{"bpm": meristem.Num(120)}},
		{Track: "b", Features: map[string]meristem.Value{"energy": meristem.Num(0.4)}},
	}

	profile := meristem.Aggregate(records)

	if bpm := profile["bpm"]; bpm.Mean != 120 {
		t.Errorf("bpm mean = %v, want 120 from the one record carrying it", bpm.Mean)
	}

	if energy := profile["energy"]; energy.Mean != 0.4 {
		t.Errorf("energy mean = %v, want 0.4", energy.Mean)
	}
}
