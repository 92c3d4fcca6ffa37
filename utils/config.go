package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/gameoflife/model"
)

// Config holds the configuration for a run
type Config struct {
	Width      int           `json:"width" yaml:"width"`
	Height     int           `json:"height" yaml:"height"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Delay      time.Duration `json:"delay" yaml:"delay"`
	File       string        `json:"file" yaml:"file"`
	Seed       int64         `json:"seed" yaml:"seed"` // 0 picks a time-based seed
	Workers    int           `json:"workers" yaml:"workers"`
	Style      string        `json:"style" yaml:"style"`
	ShowStats  bool          `json:"show_stats" yaml:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:      60,
		Height:     30,
		Iterations: 100,
		Delay:      time.Second,
		Workers:    1,
		Style:      model.StylePlain,
	}
}

// LoadConfig loads configuration from a YAML (.yaml, .yml) or JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable simulation.
// Width and Height are ignored when File is set, the file provides them.
func (c Config) Validate() error {
	if c.File == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Iterations < 0 {
		return errors.Errorf("[Validate] iterations must not be negative, got %d", c.Iterations)
	}
	if c.Delay < 0 {
		return errors.Errorf("[Validate] delay must not be negative, got %s", c.Delay)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}
	switch c.Style {
	case "", model.StylePlain, model.StyleBox:
	default:
		return errors.Errorf("[Validate] unknown display style %q, expected %q or %q", c.Style, model.StylePlain, model.StyleBox)
	}
	return nil
}

// UnmarshalJSON accepts the delay either as a duration string ("500ms") or as
// integer nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plainConfig Config
	aux := struct {
		*plainConfig
		Delay json.RawMessage `json:"delay"`
	}{plainConfig: (*plainConfig)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Delay) == 0 || string(aux.Delay) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(aux.Delay, &text); err == nil {
		delay, err := time.ParseDuration(text)
		if err != nil {
			return errors.Wrapf(err, "[UnmarshalJSON] invalid delay %q", text)
		}
		c.Delay = delay
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(aux.Delay, &nanos); err != nil {
		return errors.Wrapf(err, "[UnmarshalJSON] delay must be a duration string or nanoseconds, got %s", aux.Delay)
	}
	c.Delay = time.Duration(nanos)
	return nil
}
