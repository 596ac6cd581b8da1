// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/pcmwave/internal/pcm"
	"github.com/orcaman/writerseeker"
)

// chunkFrames bounds how many frames are converted per encoder write.
const chunkFrames = 8192

// Encode writes a complete WAVE stream for p to w. data holds raw
// little-endian interleaved samples and becomes the data chunk payload
// unchanged, including any trailing partial frame. The RIFF and data chunk
// sizes are patched by seeking back once the samples are written.
func Encode(w io.WriteSeeker, p Params, data []byte) error {
	if err := p.Validate(); err != nil {
		return err
	}

	whole := len(data) - len(data)%p.FrameSize()
	frames, tail := data[:whole], data[whole:]

	enc := gowav.NewEncoder(w, p.SampleRate, p.SampleWidth*8, p.Channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
		SourceBitDepth: p.SampleWidth * 8,
	}

	chunkBytes := chunkFrames * p.FrameSize()
	// always write once so an empty payload still gets a header
	for off := 0; off == 0 || off < len(frames); off += chunkBytes {
		end := min(off+chunkBytes, len(frames))
		buf.Data = pcm.LEToInts(buf.Data, frames[off:end])

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing PCM: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	if len(tail) > 0 {
		if err := appendTail(w, len(frames), tail); err != nil {
			return fmt.Errorf("writing partial frame: %w", err)
		}
	}

	return nil
}

// appendTail writes bytes that do not fill a frame after the encoded stream
// and grows the RIFF and data chunk sizes to include them. The encoder leaves
// w positioned at the end of the stream.
func appendTail(w io.WriteSeeker, pcmBytes int, tail []byte) error {
	end, err := w.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}

	if _, err := w.Write(tail); err != nil {
		return err
	}

	total := end + int64(len(tail))
	// the data chunk is last, its size field sits right before the samples
	dataSizePos := end - int64(pcmBytes) - 4

	patches := []struct {
		pos  int64
		size uint32
	}{
		{4, uint32(total - 8)},
		{dataSizePos, uint32(pcmBytes + len(tail))},
	}

	for _, p := range patches {
		if _, err := w.Seek(p.pos, io.SeekStart); err != nil {
			return err
		}

		if err := binary.Write(w, binary.LittleEndian, p.size); err != nil {
			return err
		}
	}

	_, err = w.Seek(0, io.SeekEnd)
	return err
}

// EncodeTo is Encode for writers that cannot seek, such as pipes. The
// stream is assembled in memory first since the header sizes are only known
// at the end.
func EncodeTo(w io.Writer, p Params, data []byte) error {
	ws := &writerseeker.WriterSeeker{}
	if err := Encode(ws, p, data); err != nil {
		return err
	}

	if _, err := io.Copy(w, ws.Reader()); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate to any writer.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	p := FixedParams()
	p.SampleRate = sampleRate
	p.NFrames = len(samples)

	return EncodeTo(w, p, pcm.Int16ToLE(samples))
}
