package assets

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in CSS style by name.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// DefaultTemplateSet returns the built-in template set.
func DefaultTemplateSet() (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(DefaultTemplateSetName)
}
