package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

// InvalidConfigurationError reports a theme selector that does not name a
// member of the closed theme set.
type InvalidConfigurationError struct {
	Source string
	Value  string
	Valid  []string
}

// NewInvalidConfigurationError constructs an InvalidConfigurationError.
func NewInvalidConfigurationError(source, value string, valid []string) error {
	return &InvalidConfigurationError{
		Source: source,
		Value:  value,
		Valid:  append([]string(nil), valid...),
	}
}

func (e *InvalidConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("invalid configuration: %s: unknown theme %q; valid themes: %s", e.Source, e.Value, strings.Join(e.Valid, ", "))
	}
	return fmt.Sprintf("invalid configuration: unknown theme %q; valid themes: %s", e.Value, strings.Join(e.Valid, ", "))
}

// FilesystemError is raised when a directory listing or file probe fails for a
// reason other than the path not existing.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// NewFilesystemError constructs a FilesystemError.
func NewFilesystemError(op, path string, err error) error {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

func (e *FilesystemError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("filesystem error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FilesystemError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsNotExist reports whether err means a path is not there. ENOTDIR counts:
// probing a/b/c where a/b is a plain file cannot find anything.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
