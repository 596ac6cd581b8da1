// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to bring decoded
// input into the shape the WAVE writer expects.
//
// # Sources
//
// Every decoder and processing stage implements Source. Samples are
// interleaved float32 values in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples may return n > 0 together with io.EOF on the final read.
//
// # Conforming a stream
//
// Stages chain like readers. To get 44.1 kHz mono from an arbitrary source:
//
//	mono := audio.NewMonoMixer(src)
//	conformed := audio.NewResampler(mono, 44100)
//
// Downmixing first means the resampler only interpolates one channel.
//
// # Decoder registry
//
// A Registry maps format names and file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{}, ".wav", ".wave")
//	dec, err := reg.Lookup("take1.WAV")
//
// # Test tones
//
// Tone is a mono sine Source with a fixed duration, used for fixtures and by
// the command line tool.
package audio
