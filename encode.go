package siteconfig

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg SiteConfig, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
