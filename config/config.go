// Package config provides configuration loading and management for ablescan.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ablescan/ablescan/render"
	"gopkg.in/yaml.v3"
)

// Config represents the complete ablescan configuration
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	Docs    DocsConfig    `yaml:"docs"`
	Render  RenderConfig  `yaml:"render"`
}

// LexiconConfig configures where the curated word lists live
type LexiconConfig struct {
	// Path is the directory containing the list files (one lemma per line)
	// and the optional side-table data file
	Path string `yaml:"path"`
}

// DocsConfig configures the parsed document corpus
type DocsConfig struct {
	// Path is a directory of parsed JSON docs or a SQLite database file
	Path string `yaml:"path"`
}

// RenderConfig configures terminal output
type RenderConfig struct {
	// Format is the sentence render format: all, part or lemma
	Format string `yaml:"format"`
	// Color enables ANSI color in the output
	Color bool `yaml:"color"`
	// Prefix enables the doc/sentence prefix column
	Prefix bool `yaml:"prefix"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path: "", // Required from file, flag or env
		},
		Docs: DocsConfig{
			Path: "",
		},
		Render: RenderConfig{
			Format: render.Defaultformat,
			Color:  true,
			Prefix: true,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Render.Format != "" {
		valid := false
		for _, f := range render.SupportedFormats() {
			if c.Render.Format == f {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("render.format must be one of %v", render.SupportedFormats())
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Lexicon.Path != "" {
		c.Lexicon.Path = other.Lexicon.Path
	}
	if other.Docs.Path != "" {
		c.Docs.Path = other.Docs.Path
	}
	if other.Render.Format != "" {
		c.Render.Format = other.Render.Format
	}
	c.Render.Color = other.Render.Color
	c.Render.Prefix = other.Render.Prefix
}
