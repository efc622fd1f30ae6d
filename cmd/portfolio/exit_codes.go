package main

import (
	"errors"
	"os"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/content"
	"github.com/alnah/go-portfolio/internal/dateutil"
	"github.com/alnah/go-portfolio/internal/pipeline"
	"github.com/alnah/go-portfolio/internal/server"
	"github.com/alnah/go-portfolio/internal/site"
	"github.com/alnah/go-portfolio/internal/stylesheet"
	"github.com/alnah/go-portfolio/internal/view"
)

// Exit codes for the portfolio CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, content or templates
	ExitIO      = 3 // File not found, permission denied, address in use
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/content errors (exit 2). Checked first: content errors
	// may wrap an os error as detail.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, content.ErrFrontMatter) ||
		errors.Is(err, content.ErrInvalidPattern) ||
		errors.Is(err, content.ErrDuplicateSlug) ||
		errors.Is(err, content.ErrPostExists) ||
		errors.Is(err, pipeline.ErrInvalidMarkdown) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, view.ErrTemplate) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, content.ErrContentDir) ||
		errors.Is(err, site.ErrWrite) ||
		errors.Is(err, stylesheet.ErrStylesheet) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, server.ErrAddrInUse) ||
		errors.Is(err, server.ErrListen) {
		return ExitIO
	}

	return ExitGeneral
}
