// Package config holds the process-wide combobox settings. Values are set once
// at initialisation (Set or Load) and read by the helper surface; Swap exists
// so tests can toggle settings transiently.
package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ContentPolicy selects how option content is sanitised before rendering.
type ContentPolicy string

const (
	// ContentPolicyUGC allows common formatting markup.
	ContentPolicyUGC ContentPolicy = "ugc"
	// ContentPolicyStrict strips all markup.
	ContentPolicyStrict ContentPolicy = "strict"
	// ContentPolicyTrusted renders content untouched.
	ContentPolicyTrusted ContentPolicy = "trusted"
)

// Config is the process-wide configuration.
type Config struct {
	// BypassConvenienceMethods suppresses the short helper aliases
	// (combobox_tag, combobox_options) so they cannot clash with host helpers.
	BypassConvenienceMethods bool `yaml:"bypass_convenience_methods" json:"bypass_convenience_methods" toml:"bypass_convenience_methods"`
	// ContentPolicy controls listbox option content sanitisation.
	ContentPolicy ContentPolicy `yaml:"content_policy" json:"content_policy" toml:"content_policy"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContentPolicy: ContentPolicyUGC,
	}
}

// Normalize fills unset fields with defaults.
func (c Config) Normalize() Config {
	c.ContentPolicy = ContentPolicy(strings.ToLower(strings.TrimSpace(string(c.ContentPolicy))))
	if c.ContentPolicy == "" {
		c.ContentPolicy = ContentPolicyUGC
	}
	return c
}

// Validate reports unsupported values.
func (c Config) Validate() error {
	switch c.Normalize().ContentPolicy {
	case ContentPolicyUGC, ContentPolicyStrict, ContentPolicyTrusted:
		return nil
	default:
		return fmt.Errorf("config: unsupported content_policy %q", c.ContentPolicy)
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration.
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg.Normalize()
}

// Swap installs cfg and returns a func restoring the previous value.
func Swap(cfg Config) (restore func()) {
	mu.Lock()
	previous := current
	current = cfg.Normalize()
	mu.Unlock()

	return func() {
		mu.Lock()
		current = previous
		mu.Unlock()
	}
}

// Load decodes a YAML (or JSON) document into a Config with defaults applied.
func Load(r io.Reader) (Config, error) {
	if r == nil {
		return Default(), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	return parse(data, yaml.Unmarshal)
}

// LoadTOML decodes a TOML document into a Config with defaults applied.
func LoadTOML(r io.Reader) (Config, error) {
	if r == nil {
		return Default(), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	return parse(data, toml.Unmarshal)
}

// LoadFile reads the configuration stored at path. Files ending in .toml are
// decoded as TOML, anything else as YAML.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, decoderFor(path))
}

// LoadFS reads the configuration stored at name inside fsys.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Default(), nil
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return parse(data, decoderFor(name))
}

type decodeFunc func(data []byte, v any) error

func decoderFor(name string) decodeFunc {
	if strings.EqualFold(path.Ext(name), ".toml") {
		return toml.Unmarshal
	}
	return yaml.Unmarshal
}

func parse(data []byte, decode decodeFunc) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
