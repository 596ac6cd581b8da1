// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the sample-level conversions shared by the codecs and
// the processing pipeline.
package pcm

import "encoding/binary"

// BytesPerSample is the width of a signed 16-bit PCM sample.
const BytesPerSample = 2

// Float32ToInt16 maps a sample in [-1, 1] to signed 16-bit PCM. Values out of
// range are clamped. Int16 -> float32 -> int16 is lossless.
func Float32ToInt16(x float32) int16 {
	v := x * 32768
	switch {
	case v >= 32767:
		return 32767
	case v <= -32768:
		return -32768
	}

	return int16(v)
}

// Int16ToFloat32 is the inverse of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Int16ToLE packs samples as little-endian bytes.
func Int16ToLE(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(s))
	}

	return out
}

// LEToInts unpacks little-endian 16-bit samples into dst, which is grown as
// needed and returned. A trailing odd byte is ignored; callers that care
// check len(b)%BytesPerSample first.
func LEToInts(dst []int, b []byte) []int {
	n := len(b) / BytesPerSample
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]

	for i := range n {
		dst[i] = int(int16(binary.LittleEndian.Uint16(b[i*BytesPerSample:])))
	}

	return dst
}
