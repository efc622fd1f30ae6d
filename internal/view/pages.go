package view

import "html/template"

// PostSummary is one entry of the landing page post list.
type PostSummary struct {
	Title          string
	URL            string
	Date           string
	Excerpt        string
	CoverImage     string
	ReadingMinutes int
}

// IndexProps configures IndexPage.
type IndexProps struct {
	Intro     IntroProps
	Posts     []PostSummary
	DateStyle string
}

// IndexPage renders the landing page body: intro then post list.
func (v *Views) IndexPage(props IndexProps) (template.HTML, error) {
	return v.execute("index", props)
}

// Author identifies the writer of a post.
type Author struct {
	Name    string
	Picture string
}

// Heading is one entry of a post outline.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// PostProps configures PostPage. Body is trusted HTML from the markdown
// renderer.
type PostProps struct {
	Title          string
	Date           string
	DateStyle      string
	CoverImage     string
	Author         Author
	Tags           []string
	ReadingMinutes int
	Outline        []Heading
	Body           template.HTML
	Unpublished    bool
}

type postData struct {
	PostProps
	Banner template.HTML
}

// PostPage renders a post page body, with the unpublished banner on top
// when props.Unpublished is set.
func (v *Views) PostPage(props PostProps) (template.HTML, error) {
	data := postData{PostProps: props}
	if props.Unpublished {
		banner, err := v.UnpublishedBanner()
		if err != nil {
			return "", err
		}
		data.Banner = banner
	}
	return v.execute("post", data)
}
