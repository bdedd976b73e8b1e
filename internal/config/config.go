// Package config loads the YAML configuration of the textplay CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-textplay/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength = 200  // Document title
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxStyleLength = 4096 // Style name or path
)

// configDirName is the directory under the user config dir searched for named configs.
const configDirName = "go-textplay"

// Config holds the CLI configuration. Flags override every field.
type Config struct {
	Output OutputConfig `yaml:"output"`
	CSS    CSSConfig    `yaml:"css"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig defines what is written and where.
type OutputConfig struct {
	Standalone bool   `yaml:"standalone"` // Full HTML document instead of a fragment
	Tagged     bool   `yaml:"tagged"`     // Intermediate tagged form, no mapping
	Title      string `yaml:"title"`      // Standalone document title
	Path       string `yaml:"path"`       // Empty = stdout
}

// CSSConfig defines the stylesheet of standalone documents.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name or path to a .css file (empty = default style)
	None  bool   `yaml:"none"`  // Embed no stylesheet at all
}

// AssetsConfig defines where custom styles are looked up.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded styles only
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: warn)
	File  string `yaml:"file"`  // Rotating JSON log file (empty = none)
}

// Validate checks field lengths and enumerated values. Called by LoadConfig,
// and available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}

	if c.Output.Standalone && c.Output.Tagged {
		return fmt.Errorf("%w: output.standalone and output.tagged are mutually exclusive", ErrInvalidValue)
	}
	if c.CSS.None && c.CSS.Style != "" {
		return fmt.Errorf("%w: css.none and css.style are mutually exclusive", ErrInvalidValue)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
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

// DefaultConfig returns the configuration used without a config file:
// a fragment on stdout, default style, warn-level logging to stderr.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched as name.yaml / name.yml in the current directory,
// then in the user config directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var cfg Config
	if err := yamlutil.DecodeStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// CandidatePaths lists where a config name is searched, in order:
// name.yaml and name.yml in the current directory, then in ~/.config/go-textplay/.
func CandidatePaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate path for name.
func resolveConfigPath(name string) (string, error) {
	triedPaths := CandidatePaths(name)
	for _, p := range triedPaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
