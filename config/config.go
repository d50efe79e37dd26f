package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/vtree/internal/util"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.WarnLevel

	// DefaultMaxNameLen matches the legacy 64 byte name buffer minus its terminator
	DefaultMaxNameLen = 63

	// DefaultMaxSegments matches the legacy 32 entry path split buffer
	DefaultMaxSegments = 32

	DefaultPrompt       = true
	DefaultPromptSuffix = " $ "

	// DefaultSaveFilePerm is the permission used when save creates its output file
	DefaultSaveFilePerm = 0o644
)

// Config contains runtime configuration values for the namespace and its shell.
type Config struct {
	ShellOptions
	LogLvl       util.LogLevel // Internal log level (Default warn)
	MaxNameLen   int           // Longest accepted node name in bytes (Default 63)
	MaxSegments  int           // Most segments accepted in one pathname (Default 32)
	SaveFilePerm uint32        // Permission bits of files written by save (Default 0644)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace); values
	// outside the range are clamped.
	LogLvl       *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	MaxNameLen   *int    `yaml:"max_name_len,omitempty" json:"max_name_len,omitempty"`
	MaxSegments  *int    `yaml:"max_segments,omitempty" json:"max_segments,omitempty"`
	SaveFilePerm *uint32 `yaml:"save_file_perm,omitempty" json:"save_file_perm,omitempty"`
	Prompt       *bool   `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	PromptSuffix *string `yaml:"prompt_suffix,omitempty" json:"prompt_suffix,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		ShellOptions: ShellOptions{
			Prompt:       DefaultPrompt,
			PromptSuffix: DefaultPromptSuffix,
		},
		LogLvl:       DefaultLogLvl,
		MaxNameLen:   DefaultMaxNameLen,
		MaxSegments:  DefaultMaxSegments,
		SaveFilePerm: DefaultSaveFilePerm,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLogLevel(*override.LogLvl)
	}
	c.MaxNameLen = util.ValueOrDefault(override.MaxNameLen, c.MaxNameLen)
	c.MaxSegments = util.ValueOrDefault(override.MaxSegments, c.MaxSegments)
	c.SaveFilePerm = util.ValueOrDefault(override.SaveFilePerm, c.SaveFilePerm)
	c.Prompt = util.ValueOrDefault(override.Prompt, c.Prompt)
	c.PromptSuffix = util.ValueOrDefault(override.PromptSuffix, c.PromptSuffix)
}

// VerbosityToLogLevel clamps a CLI verbosity to [ErrorVerbose, TraceVerbose]
// and maps it onto the internal log level.
func VerbosityToLogLevel(verbose int) util.LogLevel {
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[util.Clamp(verbose, ErrorVerbose, TraceVerbose)-1]
}

// Validate reports settings that would make every create fail
func (c *Config) Validate() error {
	if c.MaxNameLen < 1 {
		return fmt.Errorf("max_name_len must be positive, got %d", c.MaxNameLen)
	}
	if c.MaxSegments < 1 {
		return fmt.Errorf("max_segments must be positive, got %d", c.MaxSegments)
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
