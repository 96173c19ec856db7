package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/farcloser/primordium/fault"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 reads the whole stream. go-mp3 always emits 16-bit little-endian
// stereo at the source sample rate.
func decodeMP3(path string) (*Signal, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	frames := len(pcm) / 4 // 2 channels x 2 bytes

	sig := &Signal{
		SampleRate: dec.SampleRate(),
		Left:       make([]float64, frames),
		Right:      make([]float64, frames),
	}

	for i := range frames {
		sig.Left[i] = float64(int16(binary.LittleEndian.Uint16(pcm[i*4:]))) / 32768.0
		sig.Right[i] = float64(int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))) / 32768.0
	}

	return sig, nil
}
