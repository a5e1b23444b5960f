package templates

// AppMainHeader describes the page header block rendered above module content.
type AppMainHeader struct {
	Title    string
	Subtitle string
	// ActionLabel/ActionURL render a primary action link when both are set.
	ActionLabel string
	ActionURL   string
}

// AppMainLayoutOptions tunes the main content container.
type AppMainLayoutOptions struct {
	// Wide removes the default reading-width constraint for list-heavy pages.
	Wide bool
	// ContentID overrides the main content element id targeted by HTMX swaps.
	ContentID string
}

// AppToast carries a one-time notice rendered at the top of the page.
type AppToast struct {
	Kind    string
	Message string
}

func (o AppMainLayoutOptions) contentID() string {
	if o.ContentID != "" {
		return o.ContentID
	}
	return "app-main-content"
}
