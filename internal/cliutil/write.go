// Package cliutil provides output helpers for the restshape command.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/restshape/internal/fileutil"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// RejectSymlink returns an error if path names an existing symlink.
// A missing path is accepted.
func RejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cliutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", path)
	}
	return nil
}

// WriteFile writes data to the cleaned path with owner-only permissions,
// refusing symlinks. It returns the cleaned path.
func WriteFile(path string, data []byte) (string, error) {
	cleaned := filepath.Clean(path)
	if err := RejectSymlink(cleaned); err != nil {
		return "", err
	}
	if err := os.WriteFile(cleaned, data, fileutil.OwnerReadWrite); err != nil {
		return "", fmt.Errorf("cliutil: writing %s: %w", cleaned, err)
	}
	return cleaned, nil
}
