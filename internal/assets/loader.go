package assets

// AssetLoader defines the contract for loading CSS styles and HTML templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads every *.html file of templates/{name}/.
	// The returned set may be incomplete; callers check Missing.
	// Returns ErrTemplateSetNotFound if the directory doesn't exist.
	LoadTemplateSet(name string) (*TemplateSet, error)

	// ListStyles returns the available style names, sorted.
	ListStyles() ([]string, error)
}
