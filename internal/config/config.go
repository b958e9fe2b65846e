package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdpage/internal/camo"
	"github.com/alnah/go-mdpage/internal/fileutil"
	"github.com/alnah/go-mdpage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxImageClassesLength = 200  // Space-separated CSS class list
	MaxURLLength          = 2048 // Browser limit
	MaxProxyKeyLength     = 256  // HMAC secret
	MaxStyleLength        = 64   // Chroma style name
	MaxDirLength          = 4096 // PATH_MAX on Linux
)

// Config holds all configuration for page rendering.
type Config struct {
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Images    ImagesConfig    `yaml:"images"`
	Highlight HighlightConfig `yaml:"highlight"`
	Output    OutputConfig    `yaml:"output"`
}

// MarkdownConfig defines how Markdown source is parsed.
type MarkdownConfig struct {
	RawHTML bool `yaml:"rawHTML"` // Pass inline and block HTML through unchanged
}

// ImagesConfig defines how rendered <img> tags look and where they load from.
type ImagesConfig struct {
	Classes string      `yaml:"classes"` // Applied to every <img>
	Proxy   ProxyConfig `yaml:"proxy"`
}

// ProxyConfig defines the Camo image proxy.
type ProxyConfig struct {
	Host string `yaml:"host"` // e.g. https://camo.example.com (empty = no proxy)
	Key  string `yaml:"key"`  // HMAC key shared with the proxy
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style for the generated stylesheet
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source file
	Standalone bool   `yaml:"standalone"` // Wrap fragments in a full HTML document
}

// Validate checks field lengths and cross-field constraints.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("images.classes", c.Images.Classes, MaxImageClassesLength); err != nil {
		return err
	}
	if err := validateFieldLength("images.proxy.host", c.Images.Proxy.Host, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("images.proxy.key", c.Images.Proxy.Key, MaxProxyKeyLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}

	if _, err := camo.New(c.Images.Proxy.Host, c.Images.Proxy.Key); err != nil {
		return fmt.Errorf("%w: images.proxy: %w", ErrInvalidField, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no image classes, no proxy,
// default highlight style, fragments written next to their sources.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the files tried, in order, when looking up the
// config named name: NAME.yaml and NAME.yml in the current directory, then
// in the user config directory under mdpage/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "mdpage", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
