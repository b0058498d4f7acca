package polyglot

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownAccessor indicates a direct-locale accessor names a field that is
	// not localized or a locale that is not available.
	ErrUnknownAccessor = errors.New("unknown accessor")

	// ErrUnknownField indicates an operation named a field that is not localized.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidField indicates a field cannot be declared as localized.
	ErrInvalidField = errors.New("invalid field")

	// ErrAlreadyRegistered indicates a translator for the same type and
	// content type was registered before.
	ErrAlreadyRegistered = errors.New("translator already registered")

	// ErrNilHost indicates a write was attempted on a nil host.
	ErrNilHost = errors.New("nil host")

	// ErrUnknownMethod indicates a method option names a method the host does not have.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrOptionType indicates an option resolved to a value of the wrong type.
	ErrOptionType = errors.New("option type mismatch")

	// ErrUnmarshal indicates the codec failed to decode raw storage.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to encode a translation map.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a translator configuration error.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidField, ErrUnknownField, ...)
	Field  string // Field name that triggered the error
	Reason string // Human readable detail
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Reason != "" {
		return fmt.Sprintf("%s %s: %s", e.Err.Error(), e.Field, e.Reason)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// AccessorError reports a rejected direct-locale accessor such as "title_xx".
type AccessorError struct {
	Err  error  // Always ErrUnknownAccessor
	Name string // Accessor name as requested
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Name)
}

func (e *AccessorError) Unwrap() error {
	return e.Err
}

// OptionError represents a failure to resolve a field option.
type OptionError struct {
	Err    error  // Underlying sentinel error (ErrUnknownMethod, ErrOptionType)
	Option string // Option being resolved (locale, default_locale, ...)
	Field  string // Field the option belongs to
	Cause  error  // Original error, if any
}

func (e *OptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolve %s for field %s: %s: %v", e.Option, e.Field, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("resolve %s for field %s: %s", e.Option, e.Field, e.Err.Error())
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newConfigError(sentinel error, field, reason string) error {
	return &ConfigError{
		Err:    sentinel,
		Field:  field,
		Reason: reason,
	}
}

func newAccessorError(name string) error {
	return &AccessorError{
		Err:  ErrUnknownAccessor,
		Name: name,
	}
}

func newOptionError(sentinel error, option, field string, cause error) error {
	return &OptionError{
		Err:    sentinel,
		Option: option,
		Field:  field,
		Cause:  cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
