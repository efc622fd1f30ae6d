package view

import "html/template"

// AlertStyle selects the banner color scheme.
type AlertStyle string

// Alert styles. Any other value renders the base classes only.
const (
	AlertNone  AlertStyle = ""
	AlertLight AlertStyle = "light"
	AlertDark  AlertStyle = "dark"
)

const (
	alertBase  = "border-b border-neutral-200 py-2 text-center text-sm"
	alertDark  = "bg-neutral-800 border-neutral-800 text-white"
	alertLight = "bg-neutral-50 border-neutral-200"
)

// UnpublishedMessage is the body of the banner shown on unpublished posts.
const UnpublishedMessage = "This page is not published."

// AlertProps configures Alert.
type AlertProps struct {
	Style AlertStyle
	Body  template.HTML
}

func alertClass(style AlertStyle) string {
	switch style {
	case AlertDark:
		return joinClasses(alertBase, alertDark)
	case AlertLight:
		return joinClasses(alertBase, alertLight)
	default:
		return alertBase
	}
}

// Alert renders a full-width banner.
func (v *Views) Alert(props AlertProps) (template.HTML, error) {
	return v.execute("alert", props)
}

// UnpublishedBanner renders the dark banner marking a post as not published.
func (v *Views) UnpublishedBanner() (template.HTML, error) {
	return v.Alert(AlertProps{Style: AlertDark, Body: UnpublishedMessage})
}
