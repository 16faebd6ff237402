package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/goccy/go-yaml"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "funhtml.json"

	// YAMLFileName is the YAML configuration file name.
	YAMLFileName = "funhtml.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultLang is the default document language.
	DefaultLang = "en"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// FileNames lists the configuration files Load looks for, in order.
var FileNames = []string{JSONFileName, YAMLFileName, "funhtml.yml"}

// Config represents the complete funhtml configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Lang is the lang attribute of generated pages.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`

	// Title is the fallback page title when a page has no heading.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Pretty renders indented output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// Serve contains preview server settings.
	Serve ServeConfig `json:"serve" yaml:"serve"`

	// Publish contains object storage settings.
	Publish PublishConfig `json:"publish" yaml:"publish"`

	// path stores where the config was loaded from.
	path string
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// LiveReload reloads browsers when sources change.
	LiveReload bool `json:"liveReload" yaml:"liveReload"`
}

// PublishConfig contains object storage settings.
type PublishConfig struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region is the storage region.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint selects an S3-compatible service instead of AWS.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// CacheControl is stored with every object.
	CacheControl string `json:"cacheControl,omitempty" yaml:"cacheControl,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Lang:     DefaultLang,
		LogLevel: DefaultLogLevel,
		Serve: ServeConfig{
			Host:       DefaultHost,
			Port:       DefaultPort,
			LiveReload: true,
		},
	}
}

// Load reads the configuration from dir. Without a configuration file
// the defaults are returned. Environment overrides are applied and the
// result is validated.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	cfg := Default()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the configuration from path. The format follows the
// file extension: .yaml and .yml are YAML, anything else is JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("F100").WithFile(path).Wrap(err)
	}

	cfg := Default()
	if err := cfg.decode(path, data); err != nil {
		return nil, errors.New("F101").WithFile(path).Wrap(err)
	}
	cfg.path = path

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(path string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.UnmarshalWithOptions(data, c, yaml.Strict())
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(c)
	}
}

func (c *Config) finish() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	c.applyDefaults()
	return c.Validate()
}

// applyEnv applies FUNHTML_* environment overrides.
func (c *Config) applyEnv() error {
	if v := os.Getenv("FUNHTML_HOST"); v != "" {
		c.Serve.Host = v
	}
	if v := os.Getenv("FUNHTML_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("F102").
				WithDetail(fmt.Sprintf("FUNHTML_PORT=%q is not a number", v)).
				Wrap(err)
		}
		c.Serve.Port = port
	}
	if v := os.Getenv("FUNHTML_BUCKET"); v != "" {
		c.Publish.Bucket = v
	}
	if v := os.Getenv("FUNHTML_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return errors.New("F102").
			WithFile(c.path).
			WithDetail(fmt.Sprintf("serve.port must be between 1 and 65535, got %d", c.Serve.Port))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.New("F102").
			WithFile(c.path).
			WithDetail(err.Error()).
			WithSuggestion("Use one of debug, info, warn, error")
	}
	return nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.path == "" {
		return ""
	}
	return filepath.Dir(c.path)
}

// Address returns the preview server listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Serve.Host, strconv.Itoa(c.Serve.Port))
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// YAML encodes the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
