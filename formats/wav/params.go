// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

const (
	// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
	formatPCM = 1

	// CompNone is the only compression type the writer accepts.
	CompNone = "NONE"
)

// Params describes the stream layout written into the fmt chunk. The field
// set follows the classic (nchannels, sampwidth, framerate, nframes,
// comptype, compname) tuple.
type Params struct {
	Channels    int
	SampleWidth int // bytes per sample
	SampleRate  int
	// NFrames is the expected frame count. It only sizes buffers; the header
	// always records the frames actually written.
	NFrames  int
	CompType string
	CompName string
}

// FixedParams is the layout every pcmwave output uses: mono, 16-bit,
// 44.1 kHz, uncompressed.
func FixedParams() Params {
	return Params{
		Channels:    1,
		SampleWidth: 2,
		SampleRate:  44100,
		NFrames:     44100,
		CompType:    CompNone,
		CompName:    "noncompressed",
	}
}

// FrameSize is the number of bytes in one interleaved frame.
func (p Params) FrameSize() int { return p.Channels * p.SampleWidth }

// Validate reports whether the encoder can express p.
func (p Params) Validate() error {
	switch {
	case p.CompType != CompNone:
		return fmt.Errorf("%w: compression %q", ErrUnsupportedParams, p.CompType)
	case p.SampleWidth != 2:
		return fmt.Errorf("%w: sample width %d", ErrOnlyPCM16bitSupported, p.SampleWidth)
	case p.Channels < 1:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedParams, p.Channels)
	case p.SampleRate < 1:
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedParams, p.SampleRate)
	case p.NFrames < 0:
		return fmt.Errorf("%w: negative frame count", ErrUnsupportedParams)
	}

	return nil
}
