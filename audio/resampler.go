// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmwave/internal/pcm"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads a source may
// return before the resampler gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// Resampler streams src at a new sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames consumed per output frame
	channels int

	// Sliding window of source frames around the output position:
	// win[1] is the frame at floor(pos), win[0] the one before it.
	// Frames past the end of the source repeat the last real frame and have
	// real[i] == false.
	win    [4][]float32
	real   [4]bool
	primed bool
	pos    float64 // fractional offset from win[1], in [0, 1) while emitting

	buf     []float32
	pending []float32
	srcDone bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		buf:      make([]float32, 1024*channels),
	}
	if dstRate > 0 {
		r.step = float64(src.SampleRate()) / float64(dstRate)
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces resampled interleaved samples into dst, whose length
// must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.rate <= 0 || r.src.SampleRate() <= 0 {
		return 0, ErrInvalidRate
	}

	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			r.pos--
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = pcm.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.win[1])
	if err != nil || !ok {
		return err
	}

	copy(r.win[0], r.win[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < len(r.win); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	return nil
}

// advance slides the window forward by one source frame.
func (r *Resampler) advance() error {
	first := r.win[0]
	copy(r.win[:], r.win[1:])
	copy(r.real[:], r.real[1:])
	r.win[3] = first

	return r.fill(3)
}

func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.win[i])
	if err != nil {
		return err
	}

	if !ok {
		copy(r.win[i], r.win[i-1])
	}
	r.real[i] = ok

	return nil
}

// pull copies the next source frame into frame. It reports false once the
// source is exhausted.
func (r *Resampler) pull(frame []float32) (bool, error) {
	empty := 0

	for len(r.pending) < r.channels {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		n -= n % r.channels
		r.pending = r.buf[:n]

		switch {
		case errors.Is(err, io.EOF):
			r.srcDone = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(frame, r.pending[:r.channels])
	r.pending = r.pending[r.channels:]

	return true, nil
}
