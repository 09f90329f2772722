package siteconfig

import "strings"

// New returns the normalized form of raw. It is an alias for Normalize.
func New(raw SiteConfig) SiteConfig {
	return Normalize(raw)
}

// Normalize returns a copy of raw with the slash conventions applied to
// PathPrefix, URL and RSS. Every other field passes through unchanged.
func Normalize(raw SiteConfig) SiteConfig {
	cfg := raw.Clone()
	cfg.PathPrefix = NormalizePathPrefix(cfg.PathPrefix)
	cfg.URL = NormalizeSiteURL(cfg.URL)
	cfg.RSS = NormalizeSiteRSS(cfg.RSS)
	return cfg
}

// NormalizePathPrefix maps "/" to "" and otherwise makes p start with a
// single slash. At most one leading and one trailing slash are removed
// before the slash is added back, so "" becomes "/".
func NormalizePathPrefix(p string) string {
	if p == "/" {
		return ""
	}
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	return "/" + p
}

// NormalizeSiteURL drops one trailing slash from u. Repeated trailing
// slashes are not collapsed.
func NormalizeSiteURL(u string) string {
	return strings.TrimSuffix(u, "/")
}

// NormalizeSiteRSS makes a non-empty feed path start with a slash.
func NormalizeSiteRSS(r string) string {
	if r != "" && r[0] != '/' {
		return "/" + r
	}
	return r
}
