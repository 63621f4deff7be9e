package diffdoc

import (
	"errors"
	"fmt"
)

// ErrNoChanges reports that no files survived the diff listing and the
// ignore filter. It is a business outcome, not a failure.
var ErrNoChanges = errors.New("no changes found")

// ConfigError reports a configuration value that failed validation.
type ConfigError struct {
	Field      string
	Constraint string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: field %q violates constraint %q", e.Field, e.Constraint)
}

// MalformedHunkError reports that one file's diff could not be parsed.
// It is recoverable: the file's section is replaced by a placeholder
// notice and processing continues for the remaining files.
type MalformedHunkError struct {
	Path string
	Err  error
}

func (e *MalformedHunkError) Error() string {
	return fmt.Sprintf("malformed hunk in diff for %s: %v", e.Path, e.Err)
}

func (e *MalformedHunkError) Unwrap() error { return e.Err }
