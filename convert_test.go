// SPDX-License-Identifier: EPL-2.0

package pcmwave

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/formats/wav"
	"github.com/ik5/pcmwave/internal/pcm"
)

// writeInput writes a WAVE file with an arbitrary layout for conversion tests.
func writeInput(t *testing.T, path string, rate, channels int, samples []int16) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	p := wav.FixedParams()
	p.SampleRate = rate
	p.Channels = channels

	if err := wav.Encode(f, p, pcm.Int16ToLE(samples)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
}

func TestConvertFile_StereoUpsample(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	// 0.5 s of stereo at 22050 Hz, left and right average to 1000
	frames := 11025
	samples := make([]int16, 0, frames*2)
	for range frames {
		samples = append(samples, 1500, 500)
	}
	writeInput(t, in, 22050, 2, samples)

	if err := ConvertFile(context.Background(), in, out); err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	info, raw := inspectFile(t, out)
	if info.Channels != 1 || info.SampleRate != 44100 || info.BitDepth != 16 {
		t.Fatalf("header = %+v, want fixed layout", info)
	}

	if d := info.Frames() - 22050; d < -2 || d > 2 {
		t.Errorf("frames = %d, want ≈22050", info.Frames())
	}

	got := pcm.LEToInts(nil, raw[44:])
	for i, v := range got {
		if math.Abs(float64(v-1000)) > 1 {
			t.Fatalf("sample %d = %d, want ≈1000", i, v)
		}
	}
}

func TestConvertFile_SameLayoutIsLossless(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wave")
	out := filepath.Join(dir, "out.wav")

	samples := []int16{-32768, -12345, 0, 12345, 32767}
	writeInput(t, in, 44100, 1, samples)

	if err := ConvertFile(context.Background(), in, out); err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	_, raw := inspectFile(t, out)
	got := pcm.LEToInts(nil, raw[44:])
	if len(got) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(got), len(samples))
	}

	for i := range samples {
		if got[i] != int(samples[i]) {
			t.Errorf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.wav")

	notWav := filepath.Join(dir, "fake.wav")
	if err := os.WriteFile(notWav, []byte("plain text"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "unknown extension", in: filepath.Join(dir, "in.flac"), wantErr: audio.ErrUnknownFormat},
		{name: "missing input", in: filepath.Join(dir, "missing.wav"), wantErr: os.ErrNotExist},
		{name: "not a wav", in: notWav, wantErr: wav.ErrNotWavFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConvertFile(context.Background(), tt.in, out)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ConvertFile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("failed conversions left an output file")
	}
}

func TestConform_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Conform(ctx, audio.NewTone(8000, 440, 0.5, time.Second), 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Conform() error = %v, want %v", err, context.Canceled)
	}
}

func TestResampleToMono16(t *testing.T) {
	t.Parallel()

	out, rate, err := ResampleToMono16(audio.NewTone(44100, 440, 0.5, time.Second), 8000, 1024)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}

	if d := len(out) - 8000; d < -2 || d > 2 {
		t.Errorf("got %d samples, want ≈8000", len(out))
	}

	if _, _, err := ResampleToMono16(audio.NewTone(44100, 440, 0.5, time.Second), 0, 1024); !errors.Is(err, audio.ErrInvalidRate) {
		t.Errorf("ResampleToMono16(rate 0) error = %v, want %v", err, audio.ErrInvalidRate)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	for _, name := range []string{"a.wav", "a.WAVE", "a.aif", "a.aiff", "a.mp3", "a.ogg", "a.oga"} {
		if _, err := reg.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}
}
