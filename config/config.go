// Package config loads the parse-time policy that tunes the bib package's
// assembler and value parsers without changing the grammar they accept by
// default.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kingsford-Group/bibparse/bib"
)

// Config is the on-disk parse-time policy.
type Config struct {
	// StrictPageDashes restricts the pages field's range separator to a
	// lone ASCII '-', rejecting en/em dashes and repeated hyphens.
	StrictPageDashes bool `yaml:"strict_page_dashes"`

	// WarnOnUnknownFields logs a warning (at the CLI boundary) for every
	// field name that falls back to bib.OtherField instead of a
	// recognized vocabulary entry.
	WarnOnUnknownFields bool `yaml:"warn_on_unknown_fields"`

	// MaxEntries caps the number of entries a single parse will accept;
	// zero means unlimited. This is enforced by the CLI, not bib.Parse,
	// since the core has no notion of a caller-imposed limit.
	MaxEntries int `yaml:"max_entries"`
}

// Default returns the configuration that reproduces the parser's default
// grammar exactly: no extra strictness, no warnings, no entry cap.
func Default() Config {
	return Config{}
}

// Options translates Config into the bib package's parse-time options.
func (c Config) Options() bib.Options {
	return bib.Options{StrictPageDashes: c.StrictPageDashes}
}

// Load reads and decodes a YAML config file at path. Unknown keys are
// rejected so a typo in a config file fails loudly instead of being
// silently ignored.
func Load(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(buf)
}

func parse(buf []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	return cfg, nil
}
