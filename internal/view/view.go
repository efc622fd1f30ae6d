// Package view renders the site's components from a template set.
//
// Each component is a method returning template.HTML, so its output can be
// embedded in another component without escaping. Views is safe for
// concurrent use.
package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/dateutil"
)

// ErrTemplate indicates a template failed to parse or execute.
var ErrTemplate = errors.New("view template failed")

// Views executes the components of one template set.
type Views struct {
	tmpl *template.Template
}

// New parses every template of ts. Templates can include each other by
// name, e.g. {{template "date" .}}.
func New(ts *assets.TemplateSet) (*Views, error) {
	if missing := ts.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %w: %s", ErrTemplate, assets.ErrIncompleteTemplateSet, strings.Join(missing, ", "))
	}

	root := template.New("set:" + ts.Name).Funcs(template.FuncMap{
		"alertClass":  alertClass,
		"joinClasses": joinClasses,
		"formatDate":  dateutil.FormatISO,
		"dateProps":   func(date, style string) DateProps { return DateProps{Date: date, Style: style} },
	})
	for _, name := range ts.Names() {
		if _, err := root.New(name).Parse(ts.Templates[name]); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplate, name, err)
		}
	}
	return &Views{tmpl: root}, nil
}

// Default returns the views of the built-in template set.
func Default() (*Views, error) {
	ts, err := assets.DefaultTemplateSet()
	if err != nil {
		return nil, err
	}
	return New(ts)
}

func (v *Views) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	// #nosec G203 -- produced by html/template, already escaped
	return template.HTML(buf.String()), nil
}

// joinClasses joins the non-empty class lists with single spaces.
func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
