package siteconfig

import (
	"net/url"
	"path"
	"strings"
)

// BaseURL returns the site URL joined with the path prefix, without a
// trailing slash.
func (c SiteConfig) BaseURL() string {
	return strings.TrimSuffix(c.URL+c.PathPrefix, "/")
}

// BuildURL joins the site URL, the path prefix and the given path segments,
// ensuring a trailing slash when segments are present. Without segments it
// returns BaseURL.
func (c SiteConfig) BuildURL(pathSegments ...string) string {
	if len(pathSegments) == 0 {
		return c.BaseURL()
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return c.BaseURL()
	}
	u.Path = path.Join(u.Path, c.PathPrefix, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AssetURL returns the absolute URL of a file path such as the logo or the
// avatar. URLs with a host, including protocol-relative ones, are returned
// as-is and an empty path yields "".
func (c SiteConfig) AssetURL(p string) string {
	if p == "" {
		return ""
	}
	if ref, err := url.Parse(p); err == nil && (ref.IsAbs() || ref.Host != "") {
		return p
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return c.BaseURL() + "/" + strings.TrimPrefix(p, "/")
	}
	u.Path = path.Join(u.Path, c.PathPrefix, p)
	return u.String()
}

// FeedURL returns the absolute URL of the RSS feed, or "" if the site has
// no feed.
func (c SiteConfig) FeedURL() string {
	return c.AssetURL(c.RSS)
}

// Link looks up a user link by label, ignoring case.
func (c SiteConfig) Link(label string) (UserLink, bool) {
	label = strings.TrimSpace(label)
	for _, l := range c.UserLinks {
		if strings.EqualFold(l.Label, label) {
			return l, true
		}
	}
	return UserLink{}, false
}
