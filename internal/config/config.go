// Package config provides configuration management for matter using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jthorne/matter/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "matter"

// Default front matter field names, following the Hugo convention.
const (
	DefaultCreatedField  = "date"
	DefaultModifiedField = "lastmod"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version  int            `mapstructure:"version" yaml:"version"`
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`
	Date     DateConfig     `mapstructure:"date" yaml:"date"`
	Slug     SlugConfig     `mapstructure:"slug" yaml:"slug"`
	Save     SaveConfig     `mapstructure:"save" yaml:"save"`
	Fields   FieldsConfig   `mapstructure:"fields" yaml:"fields"`
	Backup   BackupConfig   `mapstructure:"backup" yaml:"backup"`
}

// TaxonomyConfig holds the tag and category vocabularies offered by pickers.
type TaxonomyConfig struct {
	Tags       []string `mapstructure:"tags" yaml:"tags"`
	Categories []string `mapstructure:"categories" yaml:"categories"`
}

// DateConfig controls date stamping.
type DateConfig struct {
	// Format is a token format string (YYYY-MM-DD HH:mm:ss).
	// Empty means native timestamps.
	Format string `mapstructure:"format" yaml:"format"`
}

// SlugConfig controls slug generation.
type SlugConfig struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" yaml:"suffix"`
}

// SaveConfig toggles the save-pipeline hooks.
type SaveConfig struct {
	CreateDate     bool `mapstructure:"create_date" yaml:"create_date"`
	UpdateModified bool `mapstructure:"update_modified" yaml:"update_modified"`
}

// FieldsConfig names the front matter keys the date hooks write.
type FieldsConfig struct {
	Created  string `mapstructure:"created" yaml:"created"`
	Modified string `mapstructure:"modified" yaml:"modified"`
}

// BackupConfig controls backups of rewritten files.
type BackupConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir(AppName))

	// Environment variable support
	viper.SetEnvPrefix("MATTER")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("date.format", "")
	viper.SetDefault("save.create_date", true)
	viper.SetDefault("save.update_modified", true)
	viper.SetDefault("fields.created", DefaultCreatedField)
	viper.SetDefault("fields.modified", DefaultModifiedField)
	viper.SetDefault("backup.enabled", false)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a Config carrying only the built-in defaults, without
// touching the global Viper state. Useful for tests and library callers.
func Default() *Config {
	return &Config{
		Version: 1,
		Save: SaveConfig{
			CreateDate:     true,
			UpdateModified: true,
		},
		Fields: FieldsConfig{
			Created:  DefaultCreatedField,
			Modified: DefaultModifiedField,
		},
	}
}
