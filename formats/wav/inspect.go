// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"
)

// Info summarizes a WAVE header.
type Info struct {
	Channels    int
	BitDepth    int
	SampleRate  int
	AudioFormat int
	DataBytes   int64 // payload length declared by the data chunk
}

// Frames is the number of complete frames in the data chunk.
func (i Info) Frames() int64 {
	size := int64(i.Channels * i.BitDepth / 8)
	if size == 0 {
		return 0
	}
	return i.DataBytes / size
}

// Duration is the playing time of the data chunk.
func (i Info) Duration() time.Duration {
	if i.SampleRate == 0 {
		return 0
	}
	return time.Duration(i.Frames() * int64(time.Second) / int64(i.SampleRate))
}

// Params converts the header back to writer parameters.
func (i Info) Params() Params {
	return Params{
		Channels:    i.Channels,
		SampleWidth: i.BitDepth / 8,
		SampleRate:  i.SampleRate,
		NFrames:     int(i.Frames()),
		CompType:    CompNone,
		CompName:    "noncompressed",
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%d ch, %d bit, %d Hz, %d frames (%s)",
		i.Channels, i.BitDepth, i.SampleRate, i.Frames(), i.Duration())
}

// Inspect reads the header of a 16-bit PCM WAVE stream.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec, err := open(r)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Channels:    int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		SampleRate:  int(dec.SampleRate),
		AudioFormat: int(dec.WavAudioFormat),
		DataBytes:   dec.PCMLen(),
	}, nil
}
