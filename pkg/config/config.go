// Package config loads wordstat settings from a TOML or YAML file on top of
// built-in defaults. The defaults reproduce the plain `wordstat <file>`
// behavior, so a config file is never required.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/agicy/wordstat/pkg/chunkio"
	"github.com/agicy/wordstat/pkg/count"
)

var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	Input   InputConfig   `toml:"input" yaml:"input"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Index   IndexConfig   `toml:"index" yaml:"index"`
	Rank    RankConfig    `toml:"rank" yaml:"rank"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// InputConfig controls the buffered input source.
type InputConfig struct {
	BufferSize int `toml:"buffer_size" yaml:"bufferSize"`
}

// OutputConfig controls the buffered output sink and the report layout.
type OutputConfig struct {
	BufferSize int    `toml:"buffer_size" yaml:"bufferSize"`
	Format     string `toml:"format" yaml:"format"`
}

// IndexConfig controls the word index.
type IndexConfig struct {
	LineLimit int `toml:"line_limit" yaml:"lineLimit"`
}

// RankConfig controls the ranking engine.
type RankConfig struct {
	Buckets int `toml:"buckets" yaml:"buckets"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// MetricsConfig controls the optional Prometheus textfile dump.
type MetricsConfig struct {
	Textfile string `toml:"textfile" yaml:"textfile"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			BufferSize: chunkio.DefaultBufferSize,
		},
		Output: OutputConfig{
			BufferSize: chunkio.DefaultBufferSize,
			Format:     string(count.FormatText),
		},
		Index: IndexConfig{
			LineLimit: count.DefaultLineLimit,
		},
		Rank: RankConfig{
			Buckets: count.DefaultBuckets,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads the file at path (if any) over the defaults. Files ending in
// .yaml or .yml are YAML, anything else is TOML.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Input.BufferSize < 1:
		return fmt.Errorf("%w: input buffer size %d", ErrInvalid, c.Input.BufferSize)
	case c.Output.BufferSize < 1:
		return fmt.Errorf("%w: output buffer size %d", ErrInvalid, c.Output.BufferSize)
	case c.Index.LineLimit < 1:
		return fmt.Errorf("%w: line limit %d", ErrInvalid, c.Index.LineLimit)
	case c.Rank.Buckets < 2:
		return fmt.Errorf("%w: bucket count %d", ErrInvalid, c.Rank.Buckets)
	}
	if _, err := count.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts the config into pipeline options.
func (c *Config) Options() count.Options {
	return count.Options{
		InputBufferSize:  c.Input.BufferSize,
		OutputBufferSize: c.Output.BufferSize,
		LineLimit:        c.Index.LineLimit,
		Buckets:          c.Rank.Buckets,
		Format:           count.Format(c.Output.Format),
	}
}
