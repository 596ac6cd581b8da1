// SPDX-License-Identifier: EPL-2.0

package pcmwave

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/formats/aiff"
	"github.com/ik5/pcmwave/formats/mp3"
	"github.com/ik5/pcmwave/formats/vorbis"
	"github.com/ik5/pcmwave/formats/wav"
	"github.com/ik5/pcmwave/internal/pcm"
)

// DefaultBufferSize is the read size, in samples, used by ConvertFile.
const DefaultBufferSize = 4096

// DefaultRegistry returns a registry with every bundled input decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, ".wav", ".wave")
	reg.Register("aiff", aiff.Decoder{}, ".aif", ".aiff")
	reg.Register("mp3", mp3.Decoder{}, ".mp3")
	reg.Register("vorbis", vorbis.Decoder{}, ".ogg", ".oga")

	return reg
}

// ConvertOptions tunes ConvertFile. The zero value is usable.
type ConvertOptions struct {
	Registry   *audio.Registry // DefaultRegistry when nil
	BufferSize int             // DefaultBufferSize when <= 0
}

// ConvertFile decodes inPath, conforms it to the fixed output layout and
// writes it to outPath.
func ConvertFile(ctx context.Context, inPath, outPath string) error {
	return ConvertFileWith(ctx, inPath, outPath, ConvertOptions{})
}

// ConvertFileWith is ConvertFile with explicit options.
func ConvertFileWith(ctx context.Context, inPath, outPath string, opts ConvertOptions) error {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, err := reg.Lookup(inPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}
	defer src.Close()

	samples, err := Conform(ctx, src, opts.BufferSize)
	if err != nil {
		return fmt.Errorf("conform %s: %w", inPath, err)
	}

	return WriteSamples(outPath, samples)
}

// Conform downmixes src to mono, resamples it to SampleRate and collects the
// result as 16-bit samples. bufferSize <= 0 selects DefaultBufferSize.
func Conform(ctx context.Context, src audio.Source, bufferSize int) ([]int16, error) {
	samples, _, err := resampleToMono16(ctx, src, SampleRate, bufferSize)
	return samples, err
}

// ResampleToMono16 converts src to mono at targetRate and collects all
// samples as 16-bit PCM. It returns the samples and the output rate.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := pcmwave.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	return resampleToMono16(context.Background(), src, targetRate, bufferSize)
}

func resampleToMono16(ctx context.Context, src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, audio.ErrInvalidRate
	}

	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	var stage audio.Source = audio.NewMonoMixer(src)
	if src.SampleRate() != targetRate {
		stage = audio.NewResampler(stage, targetRate)
	}

	// start with roughly two seconds and let append grow it
	out := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, targetRate, err
		}

		n, err := stage.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, pcm.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			return out, targetRate, nil
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}
}
