package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/farcloser/primordium/fault"
	"github.com/mewkiz/flac"
)

func decodeFLAC(path string) (*Signal, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	maxVal := float64(int64(1) << (info.BitsPerSample - 1))

	sig := &Signal{SampleRate: int(info.SampleRate)}

	if info.NSamples > 0 {
		sig.Left = make([]float64, 0, info.NSamples)
		if channels >= 2 {
			sig.Right = make([]float64, 0, info.NSamples)
		}
	} else if channels >= 2 {
		sig.Right = []float64{}
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
		}

		n := int(frame.Subframes[0].NSamples)
		for i := range n {
			sig.Left = append(sig.Left, float64(frame.Subframes[0].Samples[i])/maxVal)
			if channels >= 2 {
				sig.Right = append(sig.Right, float64(frame.Subframes[1].Samples[i])/maxVal)
			}
		}
	}

	return sig, nil
}
