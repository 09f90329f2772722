package siteconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for encodings other than JSON, TOML and YAML.
var ErrUnsupportedFormat = errors.New("siteconfig: unsupported format")

// ParseFormat parses a format name such as "toml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// LoadFile reads a raw configuration from path and returns it normalized.
func LoadFile(path string) (SiteConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return SiteConfig{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file, format)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a raw configuration in the given format and returns it
// normalized. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (SiteConfig, error) {
	var raw SiteConfig
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&raw)
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&raw)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return SiteConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return SiteConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return Normalize(raw), nil
}
