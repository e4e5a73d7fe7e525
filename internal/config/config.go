// Package config provides configuration structures and loading for arrutil.
package config

import "time"

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
	TempFile TempFileConfig `yaml:"tempfile" mapstructure:"tempfile"`
	Regex    RegexConfig    `yaml:"regex" mapstructure:"regex"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// TempFileConfig controls where and how temporary files are named.
type TempFileConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"` // empty means the OS temp dir
	Prefix string `yaml:"prefix" mapstructure:"prefix"`
	Suffix string `yaml:"suffix" mapstructure:"suffix"`
}

// RegexConfig represents pattern matching settings.
type RegexConfig struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// OutputConfig represents result rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // json, yaml or table
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
		TempFile: TempFileConfig{
			Prefix: "squish",
			Suffix: "txt",
		},
		Regex: RegexConfig{
			Timeout: time.Second,
		},
		Output: OutputConfig{
			Format: "json",
			Color:  true,
		},
	}
}
