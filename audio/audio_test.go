// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
)

type namedDecoder struct{ name string }

func (d *namedDecoder) Decode(io.Reader) (Source, error) {
	return newConstantSource(44100, 1, 10, 0), nil
}

func TestRegistry_LookupUnknownListsFormats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", &namedDecoder{}, "wav")
	reg.Register("mp3", &namedDecoder{}, "mp3")

	_, err := reg.Lookup("song.flac")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Lookup() error = %v, want %v", err, ErrUnknownFormat)
	}

	if !strings.Contains(err.Error(), "supported: mp3, wav") {
		t.Errorf("Lookup() error = %q, want the registered formats listed", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	wavDec := &namedDecoder{name: "wav"}
	mp3Dec := &namedDecoder{name: "mp3"}

	reg := NewRegistry()
	reg.Register("wav", wavDec, ".wav", "wave")
	reg.Register("mp3", mp3Dec, ".MP3")

	tests := []struct {
		path    string
		want    Decoder
		wantErr error
	}{
		{path: "take.wav", want: wavDec},
		{path: "/tmp/TAKE.WAV", want: wavDec},
		{path: "a.b.wave", want: wavDec},
		{path: "song.mp3", want: mp3Dec},
		{path: "song.flac", wantErr: ErrUnknownFormat},
		{path: "noext", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := reg.Lookup(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Lookup(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("Lookup(%q) returned wrong decoder", tt.path)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	first := &namedDecoder{name: "first"}
	second := &namedDecoder{name: "second"}

	reg := NewRegistry()
	reg.Register("wav", first, "wav")
	reg.Register("wav", second)

	got, err := reg.Lookup("x.wav")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if got != second {
		t.Error("Lookup() did not return the replacement decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("ogg", &namedDecoder{})
	reg.Register("aiff", &namedDecoder{})
	reg.Register("wav", &namedDecoder{})

	want := []string{"aiff", "ogg", "wav"}
	if got := reg.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &namedDecoder{}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register("wav", dec, "wav")
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.Lookup("a.wav")
		}()
	}
	wg.Wait()

	if got, err := reg.Lookup("a.wav"); err != nil || got != dec {
		t.Errorf("Lookup() = %v, %v after concurrent registration", got, err)
	}
}

func BenchmarkRegistry_Lookup(b *testing.B) {
	reg := NewRegistry()
	reg.Register("wav", &namedDecoder{}, "wav")

	b.ReportAllocs()

	for b.Loop() {
		_, _ = reg.Lookup("input.wav")
	}
}
