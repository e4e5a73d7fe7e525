package textutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultSuffix is the file extension used when none is given.
	DefaultSuffix = "txt"

	// DefaultPrefix starts every temporary file name.
	DefaultPrefix = "squish"
)

// ErrInvalidName is returned when a prefix or suffix would escape the
// temporary directory or confuse the random name placeholder.
var ErrInvalidName = errors.New("invalid temporary file name component")

// TempWriter writes content to fresh, uniquely named files.
type TempWriter struct {
	Fs     afero.Fs
	Dir    string // empty means the OS temporary directory
	Prefix string
}

// NewTempWriter returns a TempWriter using fs, or the OS filesystem when fs is nil.
func NewTempWriter(fs afero.Fs) *TempWriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &TempWriter{Fs: fs, Prefix: DefaultPrefix}
}

// Write stores content in a new file named <prefix><random>.<suffix> and
// returns its path. An empty suffix selects DefaultSuffix.
//
// The name is reserved with an exclusive create before anything is written,
// so concurrent writers never share a path. If writing fails the file is removed.
func (w *TempWriter) Write(content, suffix string) (string, error) {
	suffix = strings.TrimPrefix(suffix, ".")
	if suffix == "" {
		suffix = DefaultSuffix
	}
	if err := checkNamePart("suffix", suffix); err != nil {
		return "", err
	}
	if err := checkNamePart("prefix", w.Prefix); err != nil {
		return "", err
	}

	f, err := afero.TempFile(w.Fs, w.Dir, w.Prefix+"*."+suffix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = w.Fs.Remove(path)
		return "", fmt.Errorf("failed to write temp file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = w.Fs.Remove(path)
		return "", fmt.Errorf("failed to close temp file %s: %w", path, err)
	}
	return path, nil
}

func checkNamePart(field, value string) error {
	if strings.ContainsAny(value, `/\*`) {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, field, value)
	}
	return nil
}

// WriteTempFile writes content to a new file in the OS temporary directory
// and returns its path. An empty suffix selects DefaultSuffix.
func WriteTempFile(content, suffix string) (string, error) {
	return NewTempWriter(nil).Write(content, suffix)
}
