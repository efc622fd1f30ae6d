package view

import "html/template"

// HeadlineSegment is one span of the intro headline. Accent adds classes
// (e.g. "text-green-400") to the base headline size.
type HeadlineSegment struct {
	Text   string
	Accent string
}

// IntroProps configures Intro.
type IntroProps struct {
	Name     string
	Headline []HeadlineSegment
	Bio      string
	Skills   []string
}

// Intro renders the landing page introduction.
func (v *Views) Intro(props IntroProps) (template.HTML, error) {
	return v.execute("intro", props)
}

// DateProps configures Date. Date is an ISO 8601 string; Style is a
// date-fns pattern, empty for "LLLL d, yyyy".
type DateProps struct {
	Date  string
	Style string
}

// Date renders a <time> element. Returns ErrTemplate when the date or
// pattern cannot be parsed.
func (v *Views) Date(props DateProps) (template.HTML, error) {
	return v.execute("date", props)
}

// LayoutProps configures Layout.
type LayoutProps struct {
	Lang        string
	Title       string
	Description string
	OGImage     string
	Favicon     string
	Stylesheet  string // href of the site stylesheet
	Footer      string
	Body        template.HTML
}

// Layout renders a full HTML document around props.Body.
func (v *Views) Layout(props LayoutProps) (template.HTML, error) {
	return v.execute("layout", props)
}
