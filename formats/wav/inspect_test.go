// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	data := wavBytes(t, 44100, make([]int16, 22050))
	info, err := Inspect(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	want := Info{Channels: 1, BitDepth: 16, SampleRate: 44100, AudioFormat: 1, DataBytes: 44100}
	if info != want {
		t.Errorf("Inspect() = %+v, want %+v", info, want)
	}

	if info.Frames() != 22050 {
		t.Errorf("Frames() = %d, want 22050", info.Frames())
	}

	if info.Duration() != 500*time.Millisecond {
		t.Errorf("Duration() = %v, want 500ms", info.Duration())
	}

	if err := info.Params().Validate(); err != nil {
		t.Errorf("Params().Validate() error = %v", err)
	}
}

func TestInspect_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Inspect(bytes.NewReader([]byte("nope")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Inspect() error = %v, want %v", err, ErrNotWavFile)
	}
}

func TestInfo_ZeroValue(t *testing.T) {
	t.Parallel()

	var info Info
	if info.Frames() != 0 || info.Duration() != 0 {
		t.Errorf("zero Info = %d frames / %v, want 0 / 0", info.Frames(), info.Duration())
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	info := Info{Channels: 1, BitDepth: 16, SampleRate: 44100, DataBytes: 88200}
	want := "1 ch, 16 bit, 44100 Hz, 44100 frames (1s)"

	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
