package keyfile

import (
	"errors"
	"fmt"
	"strings"
)

// ListSeparator delimits the elements of a list value.
const ListSeparator = ";"

var (
	ErrInvalidBoolean     = errors.New("not a valid Boolean value")
	ErrInvalidListElement = errors.New("invalid list element")
)

// FormatBool renders b as the literal token "true" or "false".
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseBool accepts exactly "true" or "false".
func ParseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidBoolean, s)
}

// ListElementError reports the list element that failed to parse.
type ListElementError struct {
	Index int
	Value string
	Err   error
}

func (e *ListElementError) Error() string {
	return fmt.Sprintf("%v at position %d (%q): %v", ErrInvalidListElement, e.Index, e.Value, e.Err)
}

func (e *ListElementError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrInvalidListElement as well as the wrapped cause.
func (e *ListElementError) Is(target error) bool {
	return target == ErrInvalidListElement
}

// FormatList joins the formatted elements with ListSeparator, keeping order.
func FormatList[T any](values []T, format func(T) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = format(v)
	}
	return strings.Join(parts, ListSeparator)
}

// ParseList splits s on ListSeparator and parses each segment.
// A single trailing empty segment is dropped so "A;B;" equals "A;B";
// interior empty segments are handed to parse unchanged.
func ParseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	segments := strings.Split(s, ListSeparator)
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	if len(segments) == 0 {
		return nil, nil
	}

	out := make([]T, 0, len(segments))
	for i, seg := range segments {
		v, err := parse(seg)
		if err != nil {
			return nil, &ListElementError{Index: i, Value: seg, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatStrings is FormatList for plain strings.
func FormatStrings(values []string) string {
	return strings.Join(values, ListSeparator)
}

// ParseStrings is ParseList for plain strings; it cannot fail.
func ParseStrings(s string) []string {
	out, _ := ParseList(s, func(seg string) (string, error) { return seg, nil })
	return out
}
