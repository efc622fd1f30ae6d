package assets

import (
	"maps"
	"slices"
	"strings"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// RequiredTemplates lists the templates every set must provide.
var RequiredTemplates = []string{"layout", "alert", "intro", "date", "index", "post"}

// TemplateSet holds the HTML templates of one site theme, keyed by file
// name without the .html extension.
type TemplateSet struct {
	Name      string
	Templates map[string]string
}

func newTemplateSet(name string) *TemplateSet {
	return &TemplateSet{Name: name, Templates: make(map[string]string)}
}

// Missing returns the required templates absent from the set.
func (ts *TemplateSet) Missing() []string {
	var missing []string
	for _, name := range RequiredTemplates {
		if _, ok := ts.Templates[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Names returns the template names, sorted.
func (ts *TemplateSet) Names() []string {
	return slices.Sorted(maps.Keys(ts.Templates))
}

// overlay returns a copy of base with every template of top replacing it.
func overlay(base, top *TemplateSet) *TemplateSet {
	merged := newTemplateSet(top.Name)
	maps.Copy(merged.Templates, base.Templates)
	maps.Copy(merged.Templates, top.Templates)
	return merged
}

// templateName maps a file name to its template name; ok is false for
// files that are not templates.
func templateName(fileName string) (string, bool) {
	name, found := strings.CutSuffix(fileName, ".html")
	if !found || name == "" || ValidateAssetName(name) != nil {
		return "", false
	}
	return name, true
}
