package decode

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/farcloser/primordium/fault"
)

const (
	ffmpegName    = "ffmpeg"
	ffmpegTimeout = 5 * time.Minute

	// Fallback output format: 16-bit stereo at 44.1 kHz.
	fallbackRate = 44100
)

// decodeFFmpeg shells out to ffmpeg for containers we have no native decoder
// for (m4a, aac, wma, ...).
func decodeFFmpeg(path string) (*Signal, error) {
	slog.Debug("decode.ffmpeg", "path", path, "stage", "start")

	ffmpegPath, err := exec.LookPath(ffmpegName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", fault.ErrMissingRequirements, ffmpegName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ffmpegTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, ffmpegPath,
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", "2",
		"-ar", fmt.Sprint(fallbackRate),
		"-v", "quiet",
		"-",
	)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Debug("decode.ffmpeg", "path", path, "stage", "timeout")

			return nil, fmt.Errorf("%w: after %v", fault.ErrTimeout, ffmpegTimeout)
		}

		slog.Debug("decode.ffmpeg", "path", path, "stage", "error")

		return nil, fmt.Errorf("%w: %s: %w", fault.ErrCommandFailure, stderr.String(), err)
	}

	pcm := stdout.Bytes()
	frames := len(pcm) / 4

	sig := &Signal{
		SampleRate: fallbackRate,
		Left:       make([]float64, frames),
		Right:      make([]float64, frames),
	}

	for i := range frames {
		sig.Left[i] = float64(int16(binary.LittleEndian.Uint16(pcm[i*4:]))) / 32768.0
		sig.Right[i] = float64(int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))) / 32768.0
	}

	return sig, nil
}
