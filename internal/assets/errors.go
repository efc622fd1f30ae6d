package assets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStyleNotFound       = errors.New("style not found")
	ErrTemplateSetNotFound = errors.New("template set not found")

	// ErrIncompleteTemplateSet is returned when a set still lacks one of the
	// page templates after custom files are merged over the embedded ones.
	ErrIncompleteTemplateSet = errors.New("template set missing required template")

	// ErrInvalidAssetName rejects names that could leave the styles or
	// templates directory: path separators and dots.
	ErrInvalidAssetName = errors.New("invalid asset name")

	ErrInvalidBasePath = errors.New("invalid assets directory")
	ErrAssetRead       = errors.New("failed to read asset")
	ErrPathTraversal   = errors.New("asset path escapes assets directory")
)

// ValidateAssetName reports whether name can be used as a style or template
// set name, the bare file stem under styles/ or templates/.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
