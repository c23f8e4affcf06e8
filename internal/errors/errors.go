// Package errors provides the error types shared across the application:
// configuration errors that abort a run before it starts, and per-entry file
// operation errors that are logged and counted but never stop the run.
package errors

import (
	"errors"
	"fmt"
)

// Re-exported from the standard errors package for convenience.
var (
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// ErrorKind classifies an error within the run taxonomy.
type ErrorKind int

const (
	Unknown ErrorKind = iota
	// MetadataUnavailable marks a timestamp that could not be read. Entries
	// with this error degrade to the unknown year and are skipped.
	MetadataUnavailable
	// MoveFailed marks a failed filesystem operation for one entry.
	MoveFailed
	// InvalidPath marks a source or target path that cannot be used.
	InvalidPath
	// InvalidConfig marks configuration rejected at startup.
	InvalidConfig
)

// FileError is an error tied to a filesystem entry.
type FileError struct {
	msg  string
	path string
	kind ErrorKind
	err  error
}

// NewFileError creates a new file error.
func NewFileError(msg, path string, kind ErrorKind, err error) *FileError {
	return &FileError{msg: msg, path: path, kind: kind, err: err}
}

func (e *FileError) Error() string {
	switch {
	case e.path != "" && e.err != nil:
		return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
	case e.path != "":
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *FileError) Unwrap() error { return e.err }

// Kind returns the error classification.
func (e *FileError) Kind() ErrorKind { return e.kind }

// Path returns the filesystem path associated with the error.
func (e *FileError) Path() string { return e.path }

// ConfigError is an error in the run configuration. Configuration errors are
// surfaced before any entry is processed.
type ConfigError struct {
	msg   string
	param string
	err   error
}

// NewConfigError creates a new configuration error.
func NewConfigError(msg, param string, err error) *ConfigError {
	return &ConfigError{msg: msg, param: param, err: err}
}

func (e *ConfigError) Error() string {
	switch {
	case e.param != "" && e.err != nil:
		return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
	case e.param != "":
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ConfigError) Unwrap() error { return e.err }

// Param returns the configuration parameter associated with the error.
func (e *ConfigError) Param() string { return e.param }

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsMoveFailed reports whether err is a file error classified as a failed
// move.
func IsMoveFailed(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == MoveFailed
	}
	return false
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an existing error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
