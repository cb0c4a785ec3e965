// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable Load reads the config path from.
const EnvVar = "MATRIXWIRE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Output formats.
const (
	FormatJSON       = "json"
	FormatCBOR       = "cbor"
	FormatDiagnostic = "diagnostic"
)

// Config is the configuration of the matrixwire tool.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Output configures how converted data is written.
	Output OutputConfig `yaml:"output"`

	// Check configures ruleset checking.
	Check CheckConfig `yaml:"check"`

	// Log configures the process logger.
	Log LogConfig `yaml:"log"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Paths  *PathsConfig  `yaml:"paths,omitempty"`
	Output *OutputConfig `yaml:"output,omitempty"`
	Check  *CheckConfig  `yaml:"check,omitempty"`
	Log    *LogConfig    `yaml:"log,omitempty"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Root is the base directory for matrixwire data.
	Root string `yaml:"root"`

	// Rules is searched for ruleset files named by a relative path that
	// does not exist in the working directory.
	Rules string `yaml:"rules"`

	// Schemas is where "schema --all" writes the generated JSON Schema
	// documents.
	Schemas string `yaml:"schemas"`
}

// OutputConfig configures converted output.
type OutputConfig struct {
	// Format is json, cbor, or diagnostic (CBOR diagnostic notation).
	// Default: json
	Format string `yaml:"format"`

	// Indent pretty-prints JSON output.
	// Default: true (development), false (production)
	Indent bool `yaml:"indent"`
}

// CheckConfig configures the check command.
type CheckConfig struct {
	// Strict turns structural lint findings (a content rule without a
	// pattern, conditions on a room rule, and so on) into failures.
	// Default: false (development), true (production)
	Strict bool `yaml:"strict"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`

	// Format is auto (text on a terminal, JSON otherwise), text, or json.
	// Default: auto
	Format string `yaml:"format"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file,
// and on their own when no config file is named.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".cache", "matrixwire")

	return &Config{
		Environment: Development,
		Paths: PathsConfig{
			Root:    defaultRoot,
			Rules:   filepath.Join(defaultRoot, "rules"),
			Schemas: filepath.Join(defaultRoot, "schemas"),
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Indent: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by MATRIXWIRE_CONFIG.
// It fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your matrixwire.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// Environment variables do not override config values. The only
// expansion performed is ${HOME} and similar path variables for
// portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	// Apply environment-specific overrides (development/staging/production sections in the file).
	cfg.applyEnvironmentOverrides()

	// Expand ${HOME} and similar variables in paths for portability.
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: compact machine-readable output, strict checks.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Output: &OutputConfig{Indent: false},
				Check:  &CheckConfig{Strict: true},
				Log:    &LogConfig{Format: "json"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Paths != nil {
		if overrides.Paths.Root != "" {
			c.Paths.Root = overrides.Paths.Root
		}
		if overrides.Paths.Rules != "" {
			c.Paths.Rules = overrides.Paths.Rules
		}
		if overrides.Paths.Schemas != "" {
			c.Paths.Schemas = overrides.Paths.Schemas
		}
	}

	if overrides.Output != nil {
		if overrides.Output.Format != "" {
			c.Output.Format = overrides.Output.Format
		}
		// Indent is a bool, so we always apply it from overrides.
		c.Output.Indent = overrides.Output.Indent
	}

	if overrides.Check != nil {
		c.Check.Strict = overrides.Check.Strict
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"MATRIXWIRE_ROOT": c.Paths.Root,
		"HOME":            os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["MATRIXWIRE_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Paths.Rules = expandVars(c.Paths.Rules, vars)
	c.Paths.Schemas = expandVars(c.Paths.Schemas, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}

	formats := []string{FormatJSON, FormatCBOR, FormatDiagnostic}
	if !slices.Contains(formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", formats))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	logFormats := []string{"auto", "text", "json"}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates all configured directories if they don't exist.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Paths.Root,
		c.Paths.Rules,
		c.Paths.Schemas,
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}

// RulesetPath resolves a ruleset file argument. A path that exists is
// returned unchanged; a relative path that does not is looked up in
// Paths.Rules.
func (c *Config) RulesetPath(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	if !filepath.IsAbs(name) && c.Paths.Rules != "" {
		candidate := filepath.Join(c.Paths.Rules, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		return "", fmt.Errorf("%s not found in working directory or %s", name, c.Paths.Rules)
	}
	return "", fmt.Errorf("%s not found", name)
}
