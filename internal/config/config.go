// Package config loads the marketfront.json project configuration.
//
// Resolution order: built-in defaults, then the JSON file, then environment
// variables, then command-line flags applied by the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "marketfront.json"

	// DefaultPort is the default HTTP server port.
	DefaultPort = 3000

	// DefaultHost is the default HTTP server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default static export directory.
	DefaultOutput = "dist"

	// DefaultStaticDir is the default static assets directory.
	DefaultStaticDir = "public"
)

// Config represents the complete marketfront.json configuration.
type Config struct {
	// Name is the site name.
	Name string `json:"name,omitempty"`

	// Host is the HTTP server host.
	Host string `json:"host,omitempty" env:"MARKETFRONT_HOST"`

	// Port is the HTTP server port.
	Port int `json:"port,omitempty" env:"MARKETFRONT_PORT"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// Deploy contains S3 deploy configuration.
	Deploy DeployConfig `json:"deploy,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty" env:"MARKETFRONT_STATIC_DIR"`

	// Prefix is the URL prefix for static files (default: "/assets/").
	Prefix string `json:"prefix,omitempty"`
}

// ExportConfig contains static export configuration.
type ExportConfig struct {
	// Output is the directory exported pages are written to.
	Output string `json:"output,omitempty" env:"MARKETFRONT_OUTPUT"`
}

// DeployConfig contains S3 deploy configuration.
type DeployConfig struct {
	// Bucket is the S3 bucket the exported site is uploaded to.
	Bucket string `json:"bucket,omitempty" env:"MARKETFRONT_DEPLOY_BUCKET"`

	// Prefix is the key prefix within the bucket.
	Prefix string `json:"prefix,omitempty" env:"MARKETFRONT_DEPLOY_PREFIX"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty" env:"MARKETFRONT_DEPLOY_REGION"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Watch are the directories watched for live reload.
	Watch []string `json:"watch,omitempty"`

	// Debounce is the watcher debounce interval (e.g., "200ms").
	Debounce string `json:"debounce,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Name: "marketfront",
		Host: DefaultHost,
		Port: DefaultPort,
		Static: StaticConfig{
			Dir:    DefaultStaticDir,
			Prefix: "/assets/",
		},
		Export: ExportConfig{
			Output: DefaultOutput,
		},
		Dev: DevConfig{
			Watch:    []string{"public"},
			Debounce: "200ms",
		},
	}
}

// Load reads configuration from the specified directory.
// A missing marketfront.json is not an error: defaults apply, so a checkout
// with no config file still serves and exports.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus env only.
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.configPath = path
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromWorkingDir loads configuration from the current directory.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return Load(dir)
}

// Path returns the path where the config was loaded from, or "" if the
// config is defaults-only.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "marketfront"
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Static.Dir == "" {
		c.Static.Dir = DefaultStaticDir
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/assets/"
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"public"}
	}
	if c.Dev.Debounce == "" {
		c.Dev.Debounce = "200ms"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// Address returns the host:port the server binds to.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the local URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}
