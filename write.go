// SPDX-License-Identifier: EPL-2.0

package pcmwave

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ik5/pcmwave/formats/wav"
	"github.com/ik5/pcmwave/internal/pcm"
)

// Layout of every file this package writes.
const (
	Channels    = 1
	SampleWidth = 2 // bytes
	SampleRate  = 44100
)

// WriteWAVE writes data, raw little-endian 16-bit mono samples, to a WAVE
// file at path using the fixed layout. data is written verbatim, including a
// trailing odd byte. An existing file is overwritten.
//
// A new file is removed again when writing it fails. An existing regular file
// is replaced through a temporary file in the same directory, so it keeps its
// previous content on failure. Other existing paths (pipes, devices) receive
// the stream as is and are never removed.
func WriteWAVE(path string, data []byte) error {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return writeNew(path, data)
	case err != nil:
		return err
	case fi.Mode().IsRegular():
		return replace(path, fi.Mode().Perm(), data)
	default:
		return writeStream(path, data)
	}
}

func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}

	if err := encodeFile(f, data); err != nil {
		_ = os.Remove(path)
		return err
	}

	return nil
}

func replace(path string, perm fs.FileMode, data []byte) error {
	// rename replaces links, so resolve to the file they point at
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if errors.Is(err, fs.ErrPermission) {
		// directory is read-only but the file may not be
		return overwrite(target, data)
	}
	if err != nil {
		return err
	}

	name := tmp.Name()
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}

	if err := encodeFile(tmp, data); err != nil {
		_ = os.Remove(name)
		return err
	}

	if err := os.Rename(name, target); err != nil {
		_ = os.Remove(name)
		return err
	}

	return nil
}

// overwrite truncates an existing regular file in place. Its old content is
// gone once it is opened, so a failed write removes it.
func overwrite(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_TRUNC, 0)
	if err != nil {
		return err
	}

	if err := encodeFile(f, data); err != nil {
		_ = os.Remove(path)
		return err
	}

	return nil
}

// writeStream sends the encoded file to a path that is not a regular file.
func writeStream(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}

	err = wav.EncodeTo(f, wav.FixedParams(), data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// encodeFile encodes data into f and closes it.
func encodeFile(f *os.File, data []byte) error {
	err := wav.Encode(f, wav.FixedParams(), data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// WriteSamples is WriteWAVE for decoded samples.
func WriteSamples(path string, samples []int16) error {
	return WriteWAVE(path, pcm.Int16ToLE(samples))
}

// WriteWAVETo is WriteWAVE for an already open writer, such as stdout.
func WriteWAVETo(w io.Writer, data []byte) error {
	return wav.EncodeTo(w, wav.FixedParams(), data)
}
