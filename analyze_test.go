package meristem_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/farcloser/meristem"
)

// writeSineWAV synthesizes a 16-bit stereo WAV of a single tone.
func writeSineWAV(t *testing.T, path string, freq float64, seconds float64) {
	t.Helper()

	const (
		sampleRate = 44100
		amplitude  = 0.5
	)

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}

	frames := int(seconds * sampleRate)
	data := make([]int, 0, frames*2)

	for i := range frames {
		sample := amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		v := int(sample * 32767)
		data = append(data, v, v)
	}

	encoder := wav.NewEncoder(out, sampleRate, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := encoder.Write(buf); err != nil {
		t.Fatalf("writing samples: %v", err)
	}

	if err := encoder.Close(); err != nil {
		t.Fatalf("closing encoder: %v", err)
	}

	if err := out.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}
}

func TestAnalyzeEssential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeSineWAV(t, path, 440, 2)

	record, err := meristem.Analyze(path, meristem.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if record.Track != "tone.wav" {
		t.Errorf("track = %q, want tone.wav", record.Track)
	}

	for _, name := range []string{"bpm", "energy", "loudness", "spectral_centroid", "dynamic_range", "rms"} {
		v, ok := record.Value(name)
		if !ok {
			t.Errorf("essential feature %s missing", name)

			continue
		}

		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			t.Errorf("%s is not finite: %v", name, v.Number)
		}
	}

	if key, _ := record.Value("key"); key.Label != "Unknown" {
		t.Errorf("essential key = %q, want the Unknown placeholder", key.Label)
	}

	// A 0.5-amplitude sine has mean square 0.125 and RMS 0.354.
	if energy, _ := record.Value("energy"); energy.Number < 0.09 || energy.Number > 0.16 {
		t.Errorf("energy = %v, want about 0.125", energy.Number)
	}

	if rms, _ := record.Value("rms"); rms.Number < 0.3 || rms.Number > 0.41 {
		t.Errorf("rms = %v, want about 0.354", rms.Number)
	}

	if dr, _ := record.Value("dynamic_range"); dr.Number < 2 || dr.Number > 4.5 {
		t.Errorf("dynamic_range = %v, want about 3 dB (sine crest)", dr.Number)
	}

	if centroid, _ := record.Value("spectral_centroid"); centroid.Number < 300 || centroid.Number > 2000 {
		t.Errorf("spectral_centroid = %v, want near the 440 Hz tone", centroid.Number)
	}

	if loudness, _ := record.Value("loudness"); loudness.Number < -25 || loudness.Number > -3 {
		t.Errorf("loudness = %v LUFS, out of plausible range for a half-scale tone", loudness.Number)
	}
}

func TestAnalyzeFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeSineWAV(t, path, 440, 2)

	opts := meristem.DefaultOptions()
	opts.Mode = meristem.ModeFull

	record, err := meristem.Analyze(path, opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for _, name := range meristem.FeatureNames() {
		v, ok := record.Value(name)
		if !ok {
			t.Errorf("full mode missing %s", name)

			continue
		}

		if !v.Categorical() && (math.IsNaN(v.Number) || math.IsInf(v.Number, 0)) {
			t.Errorf("%s is not finite: %v", name, v.Number)
		}
	}

	for _, name := range []string{
		"danceability", "valence", "beat_strength", "repetition_score",
		"timbral_diversity", "vocal_instrumental_ratio", "key_confidence",
	} {
		if v, _ := record.Value(name); v.Number < 0 || v.Number > 1 {
			t.Errorf("%s = %v, want within [0, 1]", name, v.Number)
		}
	}

	low, _ := record.Value("low_energy")
	mid, _ := record.Value("mid_energy")
	high, _ := record.Value("high_energy")

	if total := low.Number + mid.Number + high.Number; math.Abs(total-100) > 1 {
		t.Errorf("band energies sum to %v, want 100", total)
	}

	// 440 Hz sits squarely in the 250-4000 Hz band.
	if mid.Number < 50 {
		t.Errorf("mid_energy = %v%%, want dominant for a 440 Hz tone", mid.Number)
	}

	if key, _ := record.Value("key"); key.Label == "" {
		t.Error("full mode should carry a detected key label")
	}
}

func TestAnalyzeCustomSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeSineWAV(t, path, 440, 1)

	record, err := meristem.Analyze(path, meristem.Options{
		Mode:     meristem.ModeCustom,
		Features: []string{"loudness", "true_peak"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(record.Features) != 2 {
		t.Fatalf("custom mode returned %d features, want exactly the 2 requested: %v",
			len(record.Features), record.Features)
	}

	if _, ok := record.Value("true_peak"); !ok {
		t.Error("true_peak missing")
	}
}

func TestAnalyzeCustomSkipsUnrecognizedName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeSineWAV(t, path, 440, 1)

	record, err := meristem.Analyze(path, meristem.Options{
		Mode:     meristem.ModeCustom,
		Features: []string{"loudness", "sparkle_index"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if _, ok := record.Value("loudness"); !ok {
		t.Fatalf("loudness missing: %v", record.Features)
	}

	if _, ok := record.Value("sparkle_index"); ok {
		t.Error("unrecognized name emitted a value")
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	if _, err := meristem.Analyze(filepath.Join(t.TempDir(), "nope.wav"), meristem.DefaultOptions()); err == nil {
		t.Fatal("missing file must fail")
	}
}

// The record carries only the base name; callers that need the source file
// back, like tag readers, must use the result's Path.
func TestAnalyzeAllKeepsSourcePaths(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "albums", "night")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path := filepath.Join(nested, "drive.wav")
	writeSineWAV(t, path, 440, 1)

	results := meristem.AnalyzeAll(context.Background(), []string{path}, meristem.DefaultOptions(), 1)

	if results[0].Err != nil {
		t.Fatalf("AnalyzeAll: %v", results[0].Err)
	}

	if results[0].Path != path {
		t.Errorf("path = %q, want %q", results[0].Path, path)
	}

	if results[0].Record.Track != "drive.wav" {
		t.Errorf("track = %q, want the base name", results[0].Record.Track)
	}
}

func TestAnalyzeAllIsolatesFailures(t *testing.T) {
	dir := t.TempDir()

	good1 := filepath.Join(dir, "one.wav")
	good2 := filepath.Join(dir, "two.wav")
	missing := filepath.Join(dir, "gone.wav")

	writeSineWAV(t, good1, 440, 1)
	writeSineWAV(t, good2, 330, 1)

	results := meristem.AnalyzeAll(
		context.Background(), []string{good1, missing, good2}, meristem.DefaultOptions(), 2)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Err != nil || results[0].Record == nil {
		t.Errorf("first file should succeed: %v", results[0].Err)
	}

	if results[1].Err == nil {
		t.Error("missing file should report its error")
	}

	if results[2].Err != nil || results[2].Record == nil {
		t.Errorf("failure must not cancel siblings: %v", results[2].Err)
	}

	for i, want := range []string{good1, missing, good2} {
		if results[i].Path != want {
			t.Errorf("result %d path = %q, want %q (input order)", i, results[i].Path, want)
		}
	}
}
