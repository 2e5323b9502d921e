// Package config loads the optional frond.yaml project configuration
// used by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/frond-ui/frond/internal/errors"
)

const (
	// FileName is the name of the configuration file.
	FileName = "frond.yaml"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config is the parsed frond.yaml.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty"`

	// Dev configures the development server.
	Dev DevConfig `yaml:"dev,omitempty"`

	// Build configures `frond build`.
	Build BuildConfig `yaml:"build,omitempty"`

	// Deploy configures `frond deploy`.
	Deploy DeployConfig `yaml:"deploy,omitempty"`
}

// DevConfig configures the development server.
type DevConfig struct {
	Port int    `yaml:"port,omitempty"`
	Host string `yaml:"host,omitempty"`

	// Watch lists extra directories to watch beyond the project root.
	Watch []string `yaml:"watch,omitempty"`

	// Ignore lists glob patterns the watcher skips.
	Ignore []string `yaml:"ignore,omitempty"`
}

// BuildConfig configures builds.
type BuildConfig struct {
	// Main is the package to build (default: ".").
	Main string `yaml:"main,omitempty"`

	// Output is the build output directory (default: "dist").
	Output string `yaml:"output,omitempty"`
}

// DeployConfig configures S3 deployment.
type DeployConfig struct {
	Bucket string `yaml:"bucket,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Region string `yaml:"region,omitempty"`
}

// Default returns the configuration used when no frond.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads frond.yaml from dir. A missing file yields the defaults;
// a malformed or invalid file is a config error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.New("F101", errors.CategoryConfig, "cannot read %s", path).WithCause(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("F102", errors.CategoryConfig, "cannot parse %s", path).
			WithCause(err).
			WithHint("check the YAML syntax; see the frond.yaml reference")
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromWorkingDir loads frond.yaml from the current directory.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

func (c *Config) applyDefaults() {
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Build.Main == "" {
		c.Build.Main = "."
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
}

func (c *Config) validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return errors.New("F103", errors.CategoryConfig, "invalid dev.port %d", c.Dev.Port).
			WithHint("ports must be between 1 and 65535")
	}
	return nil
}

// Addr returns the dev server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}
