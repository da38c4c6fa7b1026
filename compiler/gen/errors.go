package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("modelgen: missing configuration")
	// ErrTemplateFailed indicates a template resolution or parse failure.
	ErrTemplateFailed = errors.New("modelgen: template failed")
	// ErrRenderFailed indicates a rendering or write failure.
	ErrRenderFailed = errors.New("modelgen: rendering failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("modelgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("modelgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// TemplateError represents a template resolution or compilation error.
// Template errors are fatal for the affected language only.
type TemplateError struct {
	Language string
	Name     string // template file name or path
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString("modelgen: template error")
	if e.Language != "" {
		b.WriteString(" for language ")
		b.WriteString(e.Language)
	}
	if e.Name != "" {
		fmt.Fprintf(&b, " (template: %s)", e.Name)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for TemplateError.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplateFailed
}

// NewTemplateError creates a new TemplateError.
func NewTemplateError(language, name, message string, cause error) *TemplateError {
	return &TemplateError{
		Language: language,
		Name:     name,
		Message:  message,
		Cause:    cause,
	}
}

// RenderError represents a rendering or output write error. It carries
// the table being rendered so failures can be traced to their source.
type RenderError struct {
	Table   string
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString("modelgen: render error")
	if e.Table != "" {
		b.WriteString(" on table ")
		b.WriteString(e.Table)
	}
	if e.File != "" {
		fmt.Fprintf(&b, " (file: %s)", e.File)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for RenderError.
func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}

// NewRenderError creates a new RenderError.
func NewRenderError(table, file, message string, cause error) *RenderError {
	return &RenderError{
		Table:   table,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsTemplateError reports whether the error is a TemplateError.
func IsTemplateError(err error) bool {
	var tmplErr *TemplateError
	return errors.As(err, &tmplErr)
}

// IsRenderError reports whether the error is a RenderError.
func IsRenderError(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}
