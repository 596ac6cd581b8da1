// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// funcSource generates frames from a waveform function.
type funcSource struct {
	rate, channels int
	total, pos     int
	wave           func(frame, channel int) float32
	closed         bool
	closeErr       error
}

func newFuncSource(rate, channels, total int, wave func(frame, channel int) float32) *funcSource {
	return &funcSource{rate: rate, channels: channels, total: total, wave: wave}
}

func newConstantSource(rate, channels, total int, v float32) *funcSource {
	return newFuncSource(rate, channels, total, func(int, int) float32 { return v })
}

func (s *funcSource) SampleRate() int { return s.rate }
func (s *funcSource) Channels() int   { return s.channels }
func (s *funcSource) BufSize() int    { return 4096 }

func (s *funcSource) Close() error {
	s.closed = true
	return s.closeErr
}

func (s *funcSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.total {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.total-s.pos)
	for f := range frames {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += frames

	return frames * s.channels, nil
}

// errSource fails on the first read.
type errSource struct{ funcSource }

var errBroken = errors.New("broken source")

func (s *errSource) ReadSamples([]float32) (int, error) { return 0, errBroken }

// stallSource never makes progress.
type stallSource struct{ funcSource }

func (s *stallSource) ReadSamples([]float32) (int, error) { return 0, nil }

func drain(t interface{ Fatalf(string, ...any) }, src Source, bufSize int) []float32 {
	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}
