package model

// Page is one of the three top-level views
type Page int

const (
	PageKawaii Page = iota
	PageContent
	PageSettings
)

// Pages returns all pages in navigation order
func Pages() []Page {
	return []Page{PageKawaii, PageContent, PageSettings}
}

// String returns the page identifier used for logging and translation keys
func (p Page) String() string {
	switch p {
	case PageKawaii:
		return "kawaii"
	case PageContent:
		return "content"
	case PageSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Number returns the 1-based position of the page in the navigation bar
func (p Page) Number() int {
	return int(p) + 1
}

// Valid reports whether p is one of Pages
func (p Page) Valid() bool {
	return p >= PageKawaii && p <= PageSettings
}

// ContextPage selects the content of the context drawer
type ContextPage int

const (
	ContextAbout ContextPage = iota
	ContextSettings
)

// String returns the context page identifier
func (c ContextPage) String() string {
	switch c {
	case ContextAbout:
		return "about"
	case ContextSettings:
		return "settings"
	default:
		return "unknown"
	}
}
