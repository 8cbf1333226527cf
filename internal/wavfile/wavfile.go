// Package wavfile writes and reads mono PCM WAV files of float64 samples
// in [-1, 1].
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

var (
	// ErrBitDepth is returned for bit depths other than 16, 24 and 32.
	ErrBitDepth = errors.New("wavfile: unsupported bit depth")

	errInvalidWav = errors.New("wavfile: not a valid wav file")
)

// Encode writes samples as a mono PCM stream. Samples outside [-1, 1] are
// clipped.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(samples)),
	}

	for i, x := range samples {
		buf.Data[i] = int(clip(x) * scale)
	}

	e := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("wavfile: write: %w", err)
	}

	if err := e.Close(); err != nil {
		return fmt.Errorf("wavfile: close: %w", err)
	}

	return nil
}

// WriteFile creates path and encodes samples into it.
func WriteFile(path string, samples []float64, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, samples, sampleRate, bitDepth); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Decoded is the content of a WAV file. Multi-channel files are kept
// interleaved.
type Decoded struct {
	Samples     []float64
	SampleRate  int
	BitDepth    int
	NumChannels int
}

// Decode reads a whole PCM stream.
func Decode(r io.ReadSeeker) (*Decoded, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errInvalidWav
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavfile: read: %w", err)
	}

	bitDepth := int(d.BitDepth)

	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	out := &Decoded{
		Samples:     make([]float64, len(buf.Data)),
		SampleRate:  int(d.SampleRate),
		BitDepth:    bitDepth,
		NumChannels: int(d.NumChans),
	}

	for i, v := range buf.Data {
		out.Samples[i] = float64(v) / scale
	}

	return out, nil
}

// ReadFile opens path and decodes it.
func ReadFile(path string) (*Decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1)<<(bitDepth-1) - 1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}
}

func clip(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	default:
		return x
	}
}
