// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III input through
// github.com/hajimehoshi/go-mp3. Output is always stereo.
package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/internal/pcm"
)

// go-mp3 always produces interleaved stereo s16le.
const channels = 2

// byteReader is the part of gomp3.Decoder the source reads from.
type byteReader interface {
	Read([]byte) (int, error)
}

type source struct {
	dec        byteReader
	sampleRate int
	buf        []byte
	carry      int // bytes of an incomplete sample kept at the front of buf
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / pcm.BytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * pcm.BytesPerSample
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	n += s.carry
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / pcm.BytesPerSample
	for i := range samples {
		dst[i] = pcm.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[i*pcm.BytesPerSample:])))
	}

	s.carry = copy(s.buf, s.buf[samples*pcm.BytesPerSample:n])

	if errors.Is(err, io.EOF) {
		return samples, io.EOF
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
