package decode

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWAV(t *testing.T, path string, channels, bitDepth, sampleRate int, samples []float64) {
	t.Helper()

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}

	scale := float64(int(1)<<(bitDepth-1)) - 1

	data := make([]int, 0, len(samples)*channels)
	for _, sample := range samples {
		for range channels {
			data = append(data, int(sample*scale))
		}
	}

	encoder := wav.NewEncoder(out, sampleRate, bitDepth, channels, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
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

func sine(freq float64, sampleRate, n int, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}

	return out
}

func TestDecodeWAVStereo(t *testing.T) {
	const sampleRate = 44100

	path := filepath.Join(t.TempDir(), "tone.wav")
	samples := sine(440, sampleRate, sampleRate, 0.5)
	writeWAV(t, path, 2, 16, sampleRate, samples)

	sig, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	if !sig.Stereo() {
		t.Error("two-channel file should decode stereo")
	}

	if sig.SampleRate != sampleRate {
		t.Errorf("sample rate = %d, want %d", sig.SampleRate, sampleRate)
	}

	if sig.Frames() != len(samples) {
		t.Errorf("frames = %d, want %d", sig.Frames(), len(samples))
	}

	if d := sig.Duration(); math.Abs(d-1) > 0.01 {
		t.Errorf("duration = %v, want 1 s", d)
	}

	if peak := sig.Peak(); math.Abs(peak-0.5) > 0.01 {
		t.Errorf("peak = %v, want about 0.5", peak)
	}

	// Round-trip error stays within 16-bit quantization.
	for i := 0; i < len(samples); i += 1000 {
		if math.Abs(sig.Left[i]-samples[i]) > 1.0/16384 {
			t.Fatalf("sample %d = %v, want %v", i, sig.Left[i], samples[i])
		}
	}
}

func TestDecodeWAVMono(t *testing.T) {
	const sampleRate = 22050

	path := filepath.Join(t.TempDir(), "mono.wav")
	writeWAV(t, path, 1, 16, sampleRate, sine(330, sampleRate, sampleRate/2, 0.4))

	sig, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	if sig.Stereo() {
		t.Error("single-channel file decoded as stereo")
	}

	if mono := sig.Mono(); len(mono) != sig.Frames() {
		t.Errorf("mono mixdown length = %d, want %d", len(mono), sig.Frames())
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "gone.wav")); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestMonoMixesChannels(t *testing.T) {
	sig := &Signal{
		Left:       []float64{1, 0, -1},
		Right:      []float64{0, 0, -1},
		SampleRate: 44100,
	}

	mono := sig.Mono()

	want := []float64{0.5, 0, -1}
	for i, v := range mono {
		if v != want[i] {
			t.Errorf("mono[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestResample(t *testing.T) {
	const (
		srcRate = 44100
		dstRate = 11025
	)

	src := sine(440, srcRate, srcRate, 0.5)
	out := Resample(src, srcRate, dstRate)

	if want := len(src) / 4; int(math.Abs(float64(len(out)-want))) > 1 {
		t.Errorf("resampled length = %d, want about %d", len(out), want)
	}

	// The tone survives: a 440 Hz sine still crosses zero 880 times/s.
	crossings := 0

	for i := 1; i < len(out); i++ {
		if (out[i-1] >= 0) != (out[i] >= 0) {
			crossings++
		}
	}

	if math.Abs(float64(crossings)-880) > 20 {
		t.Errorf("crossings = %d, want about 880", crossings)
	}
}

func TestResampleIdentity(t *testing.T) {
	src := []float64{1, 2, 3}
	if out := Resample(src, 44100, 44100); &out[0] != &src[0] {
		t.Error("same-rate resample should return the input buffer")
	}
}
