package siteconfig

// SiteConfig holds all site-wide settings consumed by the blog generator.
// Field keys match the camelCase names used in config files.
type SiteConfig struct {
	Title      string `json:"siteTitle" toml:"siteTitle" yaml:"siteTitle"`                // Site title
	TitleShort string `json:"siteTitleShort" toml:"siteTitleShort" yaml:"siteTitleShort"` // Homescreen (PWA) title, ideally under 12 characters
	TitleAlt   string `json:"siteTitleAlt" toml:"siteTitleAlt" yaml:"siteTitleAlt"`       // Alternative title for SEO
	Logo       string `json:"siteLogo" toml:"siteLogo" yaml:"siteLogo"`                   // Logo path used for SEO and the manifest

	URL         string `json:"siteUrl" toml:"siteUrl" yaml:"siteUrl"`             // Domain of the website, without PathPrefix
	PathPrefix  string `json:"pathPrefix" toml:"pathPrefix" yaml:"pathPrefix"`    // Prefixes all links when not served from the domain root
	FixedFooter bool   `json:"fixedFooter" toml:"fixedFooter" yaml:"fixedFooter"` // Footer is always visible
	Description string `json:"siteDescription" toml:"siteDescription" yaml:"siteDescription"`
	RSS         string `json:"siteRss" toml:"siteRss" yaml:"siteRss"` // Path to the RSS file

	FBAppID               string `json:"siteFBAppID" toml:"siteFBAppID" yaml:"siteFBAppID"`
	GATrackingID          string `json:"siteGATrackingID" toml:"siteGATrackingID" yaml:"siteGATrackingID"`
	DisqusShortname       string `json:"disqusShortname" toml:"disqusShortname" yaml:"disqusShortname"`
	PostDefaultCategoryID string `json:"postDefaultCategoryID" toml:"postDefaultCategoryID" yaml:"postDefaultCategoryID"`
	DateFromFormat        string `json:"dateFromFormat" toml:"dateFromFormat" yaml:"dateFromFormat"` // Date format used in post frontmatter
	DateFormat            string `json:"dateFormat" toml:"dateFormat" yaml:"dateFormat"`             // Date format for display

	UserName        string     `json:"userName" toml:"userName" yaml:"userName"`
	UserEmail       string     `json:"userEmail" toml:"userEmail" yaml:"userEmail"` // RSS author
	UserTwitter     string     `json:"userTwitter" toml:"userTwitter" yaml:"userTwitter"`
	UserLocation    string     `json:"userLocation" toml:"userLocation" yaml:"userLocation"`
	UserAvatar      string     `json:"userAvatar" toml:"userAvatar" yaml:"userAvatar"`
	UserDescription string     `json:"userDescription" toml:"userDescription" yaml:"userDescription"`
	UserLinks       []UserLink `json:"userLinks" toml:"userLinks" yaml:"userLinks"` // Display order

	Copyright string `json:"copyright" toml:"copyright" yaml:"copyright"`
}

// UserLink is a social profile or project link shown in the author segment
// and the navigation bar.
type UserLink struct {
	Label         string `json:"label" toml:"label" yaml:"label"`
	URL           string `json:"url" toml:"url" yaml:"url"`
	IconClassName string `json:"iconClassName" toml:"iconClassName" yaml:"iconClassName"`
}

// Clone returns a deep copy of c.
func (c SiteConfig) Clone() SiteConfig {
	if c.UserLinks != nil {
		links := make([]UserLink, len(c.UserLinks))
		copy(links, c.UserLinks)
		c.UserLinks = links
	}
	return c
}

// site is the finalized configuration. It is never written after package
// initialization.
var site = New(Default())

// Site returns a copy of the finalized site configuration.
func Site() SiteConfig {
	return site.Clone()
}
