// Package fileutil reads screenplay sources and writes converted output.
package fileutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// StdinName is the argument naming standard input in an input list.
const StdinName = "-"

// filePermissions is rw-r--r--.
const filePermissions = 0o644

// ReadInputs concatenates the named files, in order, into one string.
// With no names, stdin is read instead; "-" reads stdin in place.
// Reading stops at the first file that cannot be read.
func ReadInputs(ctx context.Context, names []string, stdin io.Reader) (string, error) {
	if len(names) == 0 {
		names = []string{StdinName}
	}

	var sb strings.Builder
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := appendInput(&sb, name, stdin); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func appendInput(sb *strings.Builder, name string, stdin io.Reader) error {
	if name == StdinName {
		if stdin == nil {
			return fmt.Errorf("%w: stdin unavailable", ErrReadInput)
		}
		if _, err := io.Copy(sb, stdin); err != nil {
			return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return nil
	}

	data, err := os.ReadFile(name) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	sb.Write(data)
	return nil
}

// WriteFileAtomic writes data to a temporary file beside path and renames it
// into place, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("%w: %w", ErrWriteOutput, writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, filePermissions); chmodErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, renameErr)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "draft" -> false (style name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "C:\styles\mine.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
