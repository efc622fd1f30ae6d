package assets

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// LoadTemplateSet loads a complete template set. Custom templates override
// embedded ones file by file; the embedded set of the same name (or the
// default set) fills the rest.
// Returns ErrIncompleteTemplateSet if required templates remain missing.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	ts, err := r.loadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	if missing := ts.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, strings.Join(missing, ", "))
	}
	return ts, nil
}

func (r *AssetResolver) loadTemplateSet(name string) (*TemplateSet, error) {
	embedded, embeddedErr := r.embedded.LoadTemplateSet(name)
	if embeddedErr != nil && !errors.Is(embeddedErr, ErrTemplateSetNotFound) {
		return nil, embeddedErr
	}

	if r.custom == nil {
		return embedded, embeddedErr
	}

	custom, err := r.custom.LoadTemplateSet(name)
	if err != nil {
		if errors.Is(err, ErrTemplateSetNotFound) {
			return embedded, embeddedErr
		}
		return nil, err
	}

	base := embedded
	if embeddedErr != nil {
		base, err = r.embedded.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			return nil, err
		}
	}
	return overlay(base, custom), nil
}

// ListStyles returns the union of custom and embedded style names.
func (r *AssetResolver) ListStyles() ([]string, error) {
	names, err := r.embedded.ListStyles()
	if err != nil {
		return nil, err
	}
	if r.custom != nil {
		custom, err := r.custom.ListStyles()
		if err != nil {
			return nil, err
		}
		names = append(names, custom...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
