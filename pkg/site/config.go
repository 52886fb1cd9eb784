// Package site defines the typed models for the files a provisioned Hugo
// site is made of: the site configuration, content page front matter, and
// the GitHub Pages deploy workflow.
package site

import "fmt"

// Menu weights determine the ordering of the main navigation entries.
const (
	homeMenuWeight    = 10
	archiveMenuWeight = 12
	searchMenuWeight  = 15
)

// Config models hugo.yaml.
type Config struct {
	BaseURL         string `yaml:"baseURL"`
	Title           string `yaml:"title"`
	Theme           string `yaml:"theme"`
	EnableRobotsTXT bool   `yaml:"enableRobotsTXT"`
	Minify          Minify `yaml:"minify"`
	Menu            Menu   `yaml:"menu"`
}

// Minify holds the build minification flags.
type Minify struct {
	DisableXML   bool `yaml:"disableXML"`
	MinifyOutput bool `yaml:"minifyOutput"`
}

// Menu holds the site navigation menus.
type Menu struct {
	Main []MenuEntry `yaml:"main"`
}

// MenuEntry is a single entry in a navigation menu.
type MenuEntry struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Weight     int    `yaml:"weight"`
}

// BaseURL builds the GitHub Pages URL for a site. The trailing slash is
// required by Hugo for correct relative URL resolution.
func BaseURL(githubUsername, websiteName string) string {
	return fmt.Sprintf("https://%s.github.io/%s/", githubUsername, websiteName)
}

// NewConfig builds the site configuration for a freshly provisioned site.
// The title equals the website name and the base URL points at the GitHub
// Pages location derived from the username and the website name.
func NewConfig(websiteName, githubUsername, theme string) Config {
	return Config{
		BaseURL:         BaseURL(githubUsername, websiteName),
		Title:           websiteName,
		Theme:           theme,
		EnableRobotsTXT: true,
		Minify: Minify{
			DisableXML:   true,
			MinifyOutput: true,
		},
		Menu: Menu{
			Main: []MenuEntry{
				{Identifier: "home", Name: "Home", URL: "/", Weight: homeMenuWeight},
				{Identifier: "archive", Name: "Archive", URL: "/archives/", Weight: archiveMenuWeight},
				{Identifier: "search", Name: "Search", URL: "/search/", Weight: searchMenuWeight},
			},
		},
	}
}
