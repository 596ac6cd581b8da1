// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"time"
)

// Tone is a mono sine wave Source of fixed length.
type Tone struct {
	rate      int
	freq      float64
	amplitude float32
	total     int
	pos       int
}

// NewTone returns a sine of freq Hz lasting d, sampled at sampleRate.
// amplitude is clamped to [0, 1].
func NewTone(sampleRate int, freq float64, amplitude float32, d time.Duration) *Tone {
	amplitude = max(0, min(amplitude, 1))
	total := 0
	if d > 0 && sampleRate > 0 {
		total = int(int64(d) * int64(sampleRate) / int64(time.Second))
	}

	return &Tone{
		rate:      sampleRate,
		freq:      freq,
		amplitude: amplitude,
		total:     total,
	}
}

func (t *Tone) SampleRate() int { return t.rate }
func (t *Tone) Channels() int   { return 1 }
func (t *Tone) BufSize() int    { return 4096 }
func (t *Tone) Close() error    { return nil }

// Len is the total number of frames the tone produces.
func (t *Tone) Len() int { return t.total }

func (t *Tone) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst), t.total-t.pos)
	step := 2 * math.Pi * t.freq / float64(t.rate)

	for i := range n {
		dst[i] = t.amplitude * float32(math.Sin(step*float64(t.pos+i)))
	}
	t.pos += n

	if t.pos >= t.total {
		return n, io.EOF
	}

	return n, nil
}
