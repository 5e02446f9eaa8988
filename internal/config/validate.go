package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/render"
	"github.com/thoreinstein/dotconf/internal/schema"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version other than 1.
	ErrUnsupportedVersion = errors.New("version must be 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidSuffix indicates a pending suffix that is empty or contains a separator.
	ErrInvalidSuffix = errors.New("pending suffix must be a plain file name suffix")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, ErrUnsupportedVersion)
	}

	if err := validatePath(cfg.EnvFile); err != nil {
		errs = append(errs, &PathError{Field: KeyEnvFile, Path: cfg.EnvFile, Err: err})
	}

	if cfg.SchemaFile != "" {
		if err := validatePath(cfg.SchemaFile); err != nil {
			errs = append(errs, &PathError{Field: KeySchemaFile, Path: cfg.SchemaFile, Err: err})
		}
	}

	if s := cfg.PendingSuffix; s == "" || strings.ContainsAny(s, `/\`) || strings.ContainsRune(s, '\x00') {
		errs = append(errs, &PathError{Field: KeyPendingSuffix, Path: s, Err: ErrInvalidSuffix})
	}

	if _, err := render.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, err)
	}

	for i, d := range cfg.Options {
		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, &OptionError{Index: i, Err: schema.ErrEmptyName})
			continue
		}
		if !schema.ValidName(d.Name) {
			errs = append(errs, &OptionError{Index: i, Name: d.Name, Err: schema.ErrInvalidName})
			continue
		}
		if _, err := schema.ParseKind(d.Kind); err != nil {
			errs = append(errs, &OptionError{Index: i, Name: d.Name, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || strings.HasSuffix(path, "/") {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// OptionError represents an error in one inline option declaration.
type OptionError struct {
	Index int
	Name  string
	Err   error
}

func (e *OptionError) Error() string {
	if e.Name == "" {
		return "options[" + strconv.Itoa(e.Index) + "]: " + e.Err.Error()
	}
	return "options[" + strconv.Itoa(e.Index) + "] " + e.Name + ": " + e.Err.Error()
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
