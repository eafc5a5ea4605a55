// Package fsutil holds the file plumbing around the stylesheet engine:
// decoded text reads and atomic writes.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultFileMode is used when writing a file that did not exist before.
const DefaultFileMode os.FileMode = 0o644

// ErrNotRegular is returned when a path exists but is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// ReadText reads path and returns its contents as UTF-8 text. A UTF-8 or
// UTF-16 byte order mark is consumed; text without one is returned as is.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", &fs.PathError{Op: "read", Path: path, Err: ErrNotRegular}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return DecodeText(data)
}

// DecodeText strips a byte order mark and converts UTF-16 input to UTF-8.
func DecodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(decoded), nil
}

// FileMode returns the permission bits of path, or DefaultFileMode when it
// does not exist.
func FileMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return DefaultFileMode
	}
	return info.Mode().Perm()
}

// WriteAtomic replaces path with data so readers never observe a partial
// file. Missing parent directories are created.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	return atomicWriteFile(path, data, perm)
}

// Backup copies path to path+".bak" and returns the backup location.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := path + ".bak"
	if err := atomicWriteFile(backup, data, FileMode(path)); err != nil {
		return "", err
	}
	return backup, nil
}
