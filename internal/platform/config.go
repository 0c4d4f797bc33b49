package platform

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/vimjournal/pkg/journal"
)

// ConfigFileName is looked up from the working directory upwards.
const ConfigFileName = ".vimjournal.yaml"

// Config is the on-disk configuration.
type Config struct {
	// Strict fails on skip windows that hide a filtered entry.
	Strict *bool `yaml:"strict,omitempty"`
	// MinGap is the strip tolerance in minutes.
	MinGap *int `yaml:"min_gap,omitempty"`
	// MaxBackground bounds the background lookahead; 0 means unbounded.
	MaxBackground *int `yaml:"max_background,omitempty"`
	// Journals are the default inputs (doublestar patterns) when no file is
	// given on the command line.
	Journals []string `yaml:"journals,omitempty"`
	// Debounce is the watch quiet period, e.g. "250ms".
	Debounce string `yaml:"debounce,omitempty"`

	path string
}

// Path returns the file the config was read from, if any.
func (c Config) Path() string { return c.path }

// ParseConfig decodes a config document. Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if c.MinGap != nil && *c.MinGap < 0 {
		return Config{}, fmt.Errorf("invalid config: min_gap must not be negative")
	}
	if c.MaxBackground != nil && *c.MaxBackground < 0 {
		return Config{}, fmt.Errorf("invalid config: max_background must not be negative")
	}
	return c, nil
}

// LoadConfig reads the config file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	c, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// JournalOptions converts the config into pipeline options.
func (c Config) JournalOptions() []journal.Option {
	var opts []journal.Option
	if c.Strict != nil {
		opts = append(opts, journal.WithStrict(*c.Strict))
	}
	if c.MinGap != nil {
		opts = append(opts, journal.WithMinGap(*c.MinGap))
	}
	if c.MaxBackground != nil {
		opts = append(opts, journal.WithMaxBackground(*c.MaxBackground))
	}
	return opts
}
