// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAVE files on top of
// github.com/go-audio/wav.
//
// Encode writes raw little-endian sample bytes through a seekable writer so
// the RIFF and data chunk sizes can be patched at the end:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, wav.FixedParams(), data)
//
// FixedParams is mono, 16-bit, 44100 Hz, uncompressed. Only 16-bit PCM is
// accepted; anything else fails Params.Validate. The payload is written as
// given: bytes that do not fill a last frame still land in the data chunk.
//
// Decoder turns a WAVE stream into an audio.Source and Inspect reports the
// header of an existing file.
package wav
