package ecfg

import (
	"errors"
	"fmt"
)

// NotLoadedError indicates that ReloadConfig was called for a name that
// has no registry entry. Load the configuration with GetConfig first.
type NotLoadedError struct {
	// Name is the normalized configuration name
	Name string
}

// Error implements the error interface
func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("configuration %q is not loaded, cannot reload it; use GetConfig instead", e.Name)
}

// SchemaError indicates that a key-value map could not be converted to or
// from a fixed-schema Record configuration: an unknown key, a value of the
// wrong type, or an unsupported field shape (nested struct).
type SchemaError struct {
	// Type is the name of the record type involved
	Type string
	// Reason is a human-readable description of the mismatch
	Reason string
	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema mismatch for %s: %s (caused by: %v)", e.Type, e.Reason, e.Err)
	}
	return fmt.Sprintf("schema mismatch for %s: %s", e.Type, e.Reason)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// CodecError indicates that an existing configuration file (or document)
// holds malformed content: invalid base85 text, invalid JSON, or a JSON
// top level that is not an object. A missing file is not a CodecError.
type CodecError struct {
	// Path is the file that failed to decode; empty for in-memory documents
	Path string
	// Op names the codec stage that failed ("json" or "base85")
	Op string
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *CodecError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s codec: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s codec: %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsNotLoaded reports whether err is a NotLoadedError.
func IsNotLoaded(err error) bool {
	var e *NotLoadedError
	return errors.As(err, &e)
}

// IsSchemaMismatch reports whether err is a SchemaError.
func IsSchemaMismatch(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// IsCodecError reports whether err is a CodecError.
func IsCodecError(err error) bool {
	var e *CodecError
	return errors.As(err, &e)
}
