package bundler

import (
	"errors"
	"fmt"
)

// Decode errors
var (
	ErrMissingField   = errors.New("missing field")
	ErrUnknownField   = errors.New("unknown field")
	ErrDuplicateField = errors.New("duplicate field")
)

// Encode errors
var (
	ErrInvalidValue = errors.New("value cannot be written to a key file")
)

// Archive errors
var (
	ErrInvalidArchive = errors.New("bundle: not a valid archive")
	ErrEntryNotFound  = errors.New("bundle: " + EntryName + " not found in archive")
	ErrIO             = errors.New("bundle: i/o error")
)

// DecodeError is returned for any manifest that cannot be turned into a
// BundleConfig. Key names the offending key or section, if any.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("bad config file: %v", e.Err)
	}
	return fmt.Sprintf("bad config file: %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError is returned when a manifest cannot be written.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("unable to write config file: %v", e.Err)
	}
	return fmt.Sprintf("unable to write config file: %s: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
