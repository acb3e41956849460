package main

import (
	"errors"
	"os"

	"specbook"
	"specbook/internal/yamlutil"
)

// Exit codes for the specbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document built and written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitRender  = 4 // PDF engine serialization failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering engine errors (exit 4)
	if errors.Is(err, specbook.ErrRender) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, specbook.ErrWriteOutput) ||
		errors.Is(err, ErrReadAppendix) ||
		errors.Is(err, ErrReadConfig) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, specbook.ErrInvalidPageSize) ||
		errors.Is(err, specbook.ErrInvalidOrientation) ||
		errors.Is(err, specbook.ErrInvalidMargin) ||
		errors.Is(err, specbook.ErrInvalidLineHeight) ||
		errors.Is(err, specbook.ErrInvalidSpacerGap) ||
		errors.Is(err, specbook.ErrUnknownStyle) ||
		errors.Is(err, specbook.ErrNoChapters) ||
		errors.Is(err, specbook.ErrNilProvider) ||
		errors.Is(err, specbook.ErrEmptyDocument) ||
		errors.Is(err, specbook.ErrDuplicateTOC) ||
		errors.Is(err, specbook.ErrUnflattenable) ||
		errors.Is(err, specbook.ErrMarkdownConvert) ||
		errors.Is(err, specbook.ErrUnsupportedMarkdown) ||
		errors.Is(err, yamlutil.ErrNilData) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
