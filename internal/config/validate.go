package config

import (
	"strings"

	"github.com/jthorne/matter/internal/dateformat"
	"github.com/jthorne/matter/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrEmptyField indicates a front matter field name is empty.
	ErrEmptyField = errors.New("field name must not be empty")

	// ErrFieldWhitespace indicates a value contains whitespace where none is allowed.
	ErrFieldWhitespace = errors.New("value must not contain whitespace")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if !dateformat.Valid(cfg.Date.Format) {
		errs = append(errs, &FieldError{
			Field: "date.format",
			Value: cfg.Date.Format,
			Err:   errors.ErrInvalidDateFormat,
		})
	}

	for field, value := range map[string]string{
		"fields.created":  cfg.Fields.Created,
		"fields.modified": cfg.Fields.Modified,
	} {
		if value == "" {
			errs = append(errs, &FieldError{Field: field, Err: ErrEmptyField})
		} else if strings.ContainsAny(value, " \t\n") {
			errs = append(errs, &FieldError{Field: field, Value: value, Err: ErrFieldWhitespace})
		}
	}

	for field, value := range map[string]string{
		"slug.prefix": cfg.Slug.Prefix,
		"slug.suffix": cfg.Slug.Suffix,
	} {
		if strings.ContainsAny(value, " \t\n") {
			errs = append(errs, &FieldError{Field: field, Value: value, Err: ErrFieldWhitespace})
		}
	}

	return errs
}

// FieldError represents a validation error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
