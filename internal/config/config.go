// Package config loads testsmith configuration.
//
// Settings come from three layers, later layers winning: built-in
// defaults, the [tool.testsmith] table of the project's pyproject.toml,
// and the optional .testsmith/config.json override file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config represents the complete testsmith configuration
type Config struct {
	// Root optionally pins the project root, bypassing marker discovery
	Root string `json:"root,omitempty" toml:"root" mapstructure:"root"`

	// TestRoot is the directory (relative to root) holding test files
	TestRoot string `json:"testRoot" toml:"test_root" mapstructure:"testRoot"`

	// FixtureDir is where generated fixtures live
	FixtureDir string `json:"fixtureDir" toml:"fixture_dir" mapstructure:"fixtureDir"`

	// FixtureSuffix is the filename suffix for fixture modules
	FixtureSuffix string `json:"fixtureSuffix" toml:"fixture_suffix" mapstructure:"fixtureSuffix"`

	// ConftestName is the pytest configuration filename probed at the root
	ConftestName string `json:"conftestName" toml:"conftest_path" mapstructure:"conftestName"`

	// PathsVar is the conftest variable listing registered import paths
	PathsVar string `json:"pathsVar" toml:"paths_to_add_var" mapstructure:"pathsVar"`

	// ExcludeDirs are directory names never descended into during scans.
	// Matching is case-sensitive on the exact path segment.
	ExcludeDirs []string `json:"excludeDirs" toml:"exclude_dirs" mapstructure:"excludeDirs"`

	Logging LoggingConfig `json:"logging" toml:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" toml:"format" mapstructure:"format"`
	Level  string `json:"level" toml:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TestRoot:      "tests",
		FixtureDir:    "tests/fixtures",
		FixtureSuffix: ".fixture.py",
		ConftestName:  "conftest.py",
		PathsVar:      "paths_to_add",
		ExcludeDirs: []string{
			"node_modules",
			".venv",
			"venv",
			"__pycache__",
			".git",
			"build",
			"dist",
			".tox",
			".eggs",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// pyprojectFile models just the slice of pyproject.toml we care about.
type pyprojectFile struct {
	Tool struct {
		Testsmith Config `toml:"testsmith"`
	} `toml:"tool"`
}

// Load reads configuration for the project rooted at dir.
// A missing or malformed pyproject.toml degrades to defaults rather
// than failing: configuration is optional for analysis.
func Load(dir string) (*Config, error) {
	cfg := DefaultConfig()

	applyPyproject(filepath.Join(dir, "pyproject.toml"), cfg)

	if err := applyOverrides(dir, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyPyproject merges the [tool.testsmith] table over cfg in place.
func applyPyproject(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var file pyprojectFile
	file.Tool.Testsmith = *cfg
	if err := toml.Unmarshal(data, &file); err != nil {
		// Malformed TOML leaves cfg untouched.
		return
	}
	*cfg = file.Tool.Testsmith
}

// applyOverrides merges .testsmith/config.json over cfg in place.
func applyOverrides(dir string, cfg *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(dir, ".testsmith"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return v.Unmarshal(cfg)
}

// Save writes the configuration to .testsmith/config.json
func (c *Config) Save(dir string) error {
	configDir := filepath.Join(dir, ".testsmith")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0o644)
}

// IsExcluded reports whether a directory name is in the exclusion set.
// Hidden directories are always excluded in addition to the configured set.
func (c *Config) IsExcluded(name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	for _, d := range c.ExcludeDirs {
		if name == d {
			return true
		}
	}
	return false
}
