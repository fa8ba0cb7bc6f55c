// Package keyfile reads and writes the INI style key files used for bundle
// manifests, and provides the scalar codecs for values the format has no
// native representation for.
package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrSyntax is returned for input that is not a well formed key file.
var ErrSyntax = errors.New("malformed key file")

// Entry is one key of a section. Value is the first occurrence; Repeated
// reports whether the key appeared again with a non-empty value.
type Entry struct {
	Key      string
	Value    string
	Repeated bool
}

// Section is a named group of entries in input order.
type Section struct {
	Name    string
	Entries []Entry
}

// File is a parsed key file.
type File struct {
	sections []*Section
}

var loadOptions = ini.LoadOptions{
	IgnoreContinuation:         true,
	IgnoreInlineComment:        true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	PreserveSurroundedQuote:    true,
	KeyValueDelimiters:         "=",
}

// Parse reads a key file. Comments start with ';' or '#' at the beginning
// of a line only; inside values both characters are literal.
func Parse(data []byte) (*File, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	out := &File{}
	for _, s := range f.Sections() {
		sec := &Section{Name: s.Name()}
		for _, k := range s.Keys() {
			sec.Entries = append(sec.Entries, Entry{
				Key:      k.Name(),
				Value:    k.Value(),
				Repeated: len(k.ValueWithShadows()) > 1,
			})
		}
		out.sections = append(out.sections, sec)
	}
	return out, nil
}

// Representable reports whether v reads back unchanged when written with
// WriteKey. Line breaks end the value, surrounding whitespace is trimmed,
// and a leading backtick or """ opens a quoted value.
func Representable(v string) bool {
	switch {
	case strings.ContainsAny(v, "\r\n"):
		return false
	case strings.TrimSpace(v) != v:
		return false
	case strings.HasPrefix(v, "`"), strings.HasPrefix(v, `"""`):
		return false
	}
	return true
}

// Section returns the section with the given name. Names are case sensitive.
func (f *File) Section(name string) (*Section, bool) {
	for _, s := range f.sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Sections lists every section, including the unnamed preamble reported
// under ini.DefaultSection.
func (f *File) Sections() []*Section {
	return f.sections
}

// Writer emits sections and keys without padding or quoting.
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) WriteSection(name string) error {
	return w.printf("[%s]\n", name)
}

func (w *Writer) WriteKey(key, value string) error {
	return w.printf("%s=%s\n", key, value)
}

// Flush writes any buffered data and reports the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

func (w *Writer) printf(format string, args ...any) error {
	if w.err != nil {
		return w.err
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
	return w.err
}
