package siteconfig

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxShortTitleLength is the homescreen title length above which launchers
// start truncating.
const MaxShortTitleLength = 12

// Warning is an advisory finding about a configuration value.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Lint reports questionable values in cfg. It never modifies the record and
// its findings never prevent the configuration from being used.
func Lint(cfg SiteConfig) []Warning {
	var warnings []Warning
	add := func(field, format string, args ...any) {
		warnings = append(warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(cfg.Title) == "" {
		add("siteTitle", "is empty")
	}
	if strings.TrimSpace(cfg.URL) == "" {
		add("siteUrl", "is empty")
	} else if u, err := url.Parse(cfg.URL); err != nil || u.Scheme == "" || u.Host == "" {
		add("siteUrl", "%q is not an absolute URL", cfg.URL)
	}
	if n := utf8.RuneCountInString(cfg.TitleShort); n > MaxShortTitleLength {
		add("siteTitleShort", "%q has %d characters, homescreens truncate after %d", cfg.TitleShort, n, MaxShortTitleLength)
	}
	for i, l := range cfg.UserLinks {
		if strings.TrimSpace(l.Label) == "" {
			add(fmt.Sprintf("userLinks[%d].label", i), "is empty")
		}
		if strings.TrimSpace(l.URL) == "" {
			add(fmt.Sprintf("userLinks[%d].url", i), "is empty")
		}
	}
	return warnings
}
