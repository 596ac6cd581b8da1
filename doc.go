// SPDX-License-Identifier: EPL-2.0

// Package pcmwave writes raw PCM sample data to WAVE files with a fixed
// layout: one channel, 16-bit little-endian samples, 44100 Hz,
// uncompressed.
//
// # Writing a buffer
//
// WriteWAVE takes the raw sample bytes and a path:
//
//	if err := pcmwave.WriteWAVE("out.wav", data); err != nil {
//	    return err
//	}
//
// The file is created or replaced. The bytes in data become the data chunk
// unchanged, a trailing odd byte included. Failures from the filesystem come
// back unwrapped, so errors.Is(err, fs.ErrPermission) and friends keep
// working. A new file left half written by a failed call is removed, and an
// existing one keeps its old content.
//
// WriteSamples does the same for decoded []int16 samples.
//
// # Converting other audio
//
// ConvertFile decodes WAV, AIFF, MP3 or Ogg Vorbis input, downmixes it to
// mono, resamples it to 44100 Hz and writes the result with WriteWAVE:
//
//	err := pcmwave.ConvertFile(ctx, "voice.mp3", "voice.wav")
//
// The decoders live under formats/ and the processing stages in the audio
// subpackage.
package pcmwave
