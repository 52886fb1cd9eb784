package site

// FrontMatter models the metadata block prefixed to a content page. Field
// order matters: it is preserved in the generated document.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Layout      string `yaml:"layout"`
	URL         string `yaml:"url"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Summary     string `yaml:"summary"`
	Description string `yaml:"description,omitempty"`
}

// NewArchivesPage returns the front matter for the archive listing page.
func NewArchivesPage() FrontMatter {
	return FrontMatter{
		Title:   "Archive",
		Layout:  "archives",
		URL:     "/archives/",
		Summary: "archive",
	}
}

// NewSearchPage returns the front matter for the search page.
func NewSearchPage() FrontMatter {
	return FrontMatter{
		Title:       "Search",
		Layout:      "search",
		URL:         "/search/",
		Placeholder: "Search...",
		Summary:     "search",
		Description: "Search the site",
	}
}
