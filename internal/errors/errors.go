// Package errors provides the error types reported by the pbrpub CLI.
//
// A publish run can fail in two ways only: the source package is missing, or a
// filesystem operation on the destination failed. Each kind has a sentinel
// error and a structured type that carries context.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrMissingInput - the source package does not exist
//   - ErrFilesystem - a directory scan, copy or archive write failed
//   - ErrInvalid - validation failed
//
// Wrapped error types (add context):
//   - MissingInputError{Path} - source package missing at Path
//   - FilesystemError{Op, Path, Err} - filesystem operation errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	return &errors.MissingInputError{Path: src}
//
//	return &errors.FilesystemError{Op: "copy", Path: dst, Err: err}
//
//	if errors.IsMissingInput(err) {
//	    // report the expected path
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrMissingInput indicates the source package was not found.
	ErrMissingInput = baseError("input not found")

	// ErrFilesystem indicates a filesystem operation failed.
	ErrFilesystem = baseError("filesystem error")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")
)

// Process exit codes.
const (
	ExitSuccess         = 0
	ExitMissingInput    = 1
	ExitGenericError    = 1
	ExitFilesystemError = 2
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// MissingInputError reports that the source package does not exist at Path.
type MissingInputError struct {
	// Path is the location where the package was expected.
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("APK not found at %s", e.Path)
}

// Is makes errors.Is(err, ErrMissingInput) match any MissingInputError.
func (e *MissingInputError) Is(target error) bool { return target == ErrMissingInput }

// FilesystemError represents a failed directory scan, copy or archive write.
type FilesystemError struct {
	// Op is the operation being performed (e.g., "scan", "copy", "archive").
	Op string
	// Path is the file or directory involved (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *FilesystemError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFilesystem) match any FilesystemError.
func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsMissingInput reports whether err is or wraps ErrMissingInput.
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsFilesystem reports whether err is or wraps ErrFilesystem.
func IsFilesystem(err error) bool {
	return errors.Is(err, ErrFilesystem)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// AsMissingInputError reports whether err can be typed as a *MissingInputError.
func AsMissingInputError(err error) (*MissingInputError, bool) {
	var me *MissingInputError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// AsFilesystemError reports whether err can be typed as a *FilesystemError.
func AsFilesystemError(err error) (*FilesystemError, bool) {
	var fe *FilesystemError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsMissingInput(err):
		return ExitMissingInput
	case IsFilesystem(err):
		return ExitFilesystemError
	default:
		return ExitGenericError
	}
}
