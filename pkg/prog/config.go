package prog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds default values of flags, read from a YAML file:
//
//	interval: 50ms
//	log: /tmp/wininp.log
//	db: events.db
//	quit: q
//	max: 10
//
// Flags given on the command line take precedence.
type Config struct {
	Interval *time.Duration `yaml:"interval"`
	Log      *string        `yaml:"log"`
	DB       *string        `yaml:"db"`
	Quit     *string        `yaml:"quit"`
	Max      *int           `yaml:"max"`
}

// ReadConfig reads and parses a config file. Unknown keys are errors.
func ReadConfig(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig parses the content of a config file.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Copies values from cfg into f, except for those whose flags were set
// explicitly.
func (cfg *Config) apply(f *Flags, set map[string]bool) {
	if cfg.Interval != nil && !set["interval"] {
		f.Interval = *cfg.Interval
	}
	if cfg.Log != nil && !set["log"] {
		f.Log = *cfg.Log
	}
	if cfg.DB != nil && !set["db"] {
		f.DB = *cfg.DB
	}
	if cfg.Quit != nil && !set["quit"] {
		f.Quit = *cfg.Quit
	}
	if cfg.Max != nil && !set["n"] {
		f.Max = *cfg.Max
	}
}
