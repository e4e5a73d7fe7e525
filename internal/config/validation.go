package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateTempFile()...)
	errors = append(errors, c.validateRegex()...)
	errors = append(errors, c.validateOutput()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}

func (c *Config) validateTempFile() ValidationErrors {
	var errors ValidationErrors

	if strings.ContainsAny(c.TempFile.Prefix, `/\*`) {
		errors = append(errors, ValidationError{
			Field:   "tempfile.prefix",
			Message: "prefix cannot contain path separators or '*'",
		})
	}

	if strings.ContainsAny(c.TempFile.Suffix, `/\*`) {
		errors = append(errors, ValidationError{
			Field:   "tempfile.suffix",
			Message: "suffix cannot contain path separators or '*'",
		})
	}

	return errors
}

func (c *Config) validateRegex() ValidationErrors {
	var errors ValidationErrors

	if c.Regex.Timeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "regex.timeout",
			Message: "timeout cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"json": true, "yaml": true, "table": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'json', 'yaml', or 'table'",
		})
	}

	return errors
}
