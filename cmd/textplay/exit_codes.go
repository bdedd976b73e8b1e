package main

import (
	"errors"
	"os"

	"github.com/alnah/go-textplay"
	"github.com/alnah/go-textplay/internal/config"
	"github.com/alnah/go-textplay/internal/fileutil"
	"github.com/alnah/go-textplay/internal/log"
)

// Exit codes for the textplay CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Unreadable input, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrReadInput) ||
		errors.Is(err, fileutil.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, log.ErrInvalidLevel) ||
		errors.Is(err, textplay.ErrInvalidTitle) ||
		errors.Is(err, textplay.ErrConflictingModes) ||
		errors.Is(err, textplay.ErrStyleNotFound) ||
		errors.Is(err, textplay.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
