// Package config handles the derivepy project configuration file.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up in the working
// directory when no --config flag is given.
const DefaultFile = "derivepy.yaml"

// Config represents the derivepy.yaml project configuration file.
// Command-line flags override any value set here.
type Config struct {
	// Schema is the directory holding the annotated declarations.
	Schema string `yaml:"schema"`
	// Out is the directory generated files are written to. Empty means
	// generate next to the schema files.
	Out string `yaml:"out,omitempty"`
	// Package overrides the package name of generated files.
	Package string `yaml:"package,omitempty"`
	// Header is an extra comment line placed under the generated-code
	// marker of every emitted file.
	Header string `yaml:"header,omitempty"`
	// Workers caps the number of types generated in parallel.
	Workers int `yaml:"workers,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Schema == "" {
		return errors.New("schema directory is required")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}
