package main

import (
	"errors"
	"os"

	printbook "github.com/alnah/go-printbook"
	"github.com/alnah/go-printbook/internal/config"
)

// Exit codes for the printbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error, failed verification
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, printbook.ErrBrowserConnect) ||
		errors.Is(err, printbook.ErrPageCreate) ||
		errors.Is(err, printbook.ErrPageLoad) ||
		errors.Is(err, printbook.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, config.ErrInvalidProfile) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, printbook.ErrEmptyCover) ||
		errors.Is(err, printbook.ErrUnknownProfile) ||
		errors.Is(err, printbook.ErrStyleNotFound) ||
		errors.Is(err, printbook.ErrTemplateNotFound) ||
		errors.Is(err, printbook.ErrInvalidAssetName) ||
		errors.Is(err, printbook.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
