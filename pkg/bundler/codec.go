package bundler

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/atari-vcs/atari-bundle/pkg/keyfile"
	"github.com/atari-vcs/atari-bundle/pkg/types"
)

// field maps one manifest key onto a Bundle field. encode reports false
// when the field holds its default and must be left out.
type field struct {
	key      string
	required bool
	decode   func(b *types.Bundle, value string) error
	encode   func(b *types.Bundle) (string, bool, error)
}

var fields = []field{
	{
		key:      KeyName,
		required: true,
		decode: func(b *types.Bundle, v string) error {
			b.Name = v
			return nil
		},
		encode: func(b *types.Bundle) (string, bool, error) {
			return b.Name, true, nil
		},
	},
	{
		key:      KeyType,
		required: true,
		decode: func(b *types.Bundle, v string) error {
			t, err := types.ParseBundleType(v)
			b.Type = t
			return err
		},
		encode: func(b *types.Bundle) (string, bool, error) {
			text, err := b.Type.MarshalText()
			return string(text), true, err
		},
	},
	optionalString(KeyStoreID, func(b *types.Bundle) **string { return &b.StoreID }),
	optionalString(KeyHomebrewID, func(b *types.Bundle) **string { return &b.HomebrewID }),
	optionalString(KeyExec, func(b *types.Bundle) **string { return &b.Exec }),
	optionalString(KeyEncryptedImage, func(b *types.Bundle) **string { return &b.EncryptedImage }),
	optionalString(KeyVersion, func(b *types.Bundle) **string { return &b.Version }),
	flag(KeyBackground, func(b *types.Bundle) *bool { return &b.Background }),
	flag(KeyPreferXBoxMode, func(b *types.Bundle) *bool { return &b.PreferXBoxMode }),
	optionalString(KeyLauncher, func(b *types.Bundle) **string { return &b.Launcher }),
	{
		key: KeyLauncherTags,
		decode: func(b *types.Bundle, v string) error {
			b.LauncherTags = keyfile.ParseStrings(v)
			return nil
		},
		encode: func(b *types.Bundle) (string, bool, error) {
			for _, tag := range b.LauncherTags {
				if strings.Contains(tag, keyfile.ListSeparator) {
					return "", false, fmt.Errorf("%w: tag %q contains %q", ErrInvalidValue, tag, keyfile.ListSeparator)
				}
			}
			return keyfile.FormatStrings(b.LauncherTags), len(b.LauncherTags) > 0, nil
		},
	},
	optionalString(KeyLauncherExec, func(b *types.Bundle) **string { return &b.LauncherExec }),
}

var fieldsByKey = func() map[string]*field {
	m := make(map[string]*field, len(fields))
	for i := range fields {
		m[fields[i].key] = &fields[i]
	}
	return m
}()

func optionalString(key string, ref func(*types.Bundle) **string) field {
	return field{
		key: key,
		decode: func(b *types.Bundle, v string) error {
			*ref(b) = &v
			return nil
		},
		encode: func(b *types.Bundle) (string, bool, error) {
			p := *ref(b)
			if p == nil {
				return "", false, nil
			}
			return *p, true, nil
		},
	}
}

// flag is a boolean written as the tokens true/false and omitted when false.
func flag(key string, ref func(*types.Bundle) *bool) field {
	return field{
		key: key,
		decode: func(b *types.Bundle, v string) error {
			parsed, err := keyfile.ParseBool(v)
			*ref(b) = parsed
			return err
		},
		encode: func(b *types.Bundle) (string, bool, error) {
			v := *ref(b)
			return keyfile.FormatBool(v), v, nil
		},
	}
}

// Decode reads a manifest from r.
func Decode(r io.Reader) (*types.BundleConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError("read manifest", err)
	}
	return Unmarshal(data)
}

// Unmarshal parses a manifest. Keys may appear in any order; keys outside
// the [Bundle] section are ignored, unknown keys inside it are rejected.
func Unmarshal(data []byte) (*types.BundleConfig, error) {
	f, err := keyfile.Parse(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	sec, ok := f.Section(SectionName)
	if !ok {
		return nil, &DecodeError{Key: SectionName, Err: ErrMissingField}
	}

	var cfg types.BundleConfig
	seen := make(map[string]bool, len(fields))
	for _, e := range sec.Entries {
		fd, ok := fieldsByKey[e.Key]
		if !ok {
			return nil, &DecodeError{Key: e.Key, Err: ErrUnknownField}
		}
		if e.Repeated {
			return nil, &DecodeError{Key: e.Key, Err: ErrDuplicateField}
		}
		if err := fd.decode(&cfg.Bundle, e.Value); err != nil {
			return nil, &DecodeError{Key: e.Key, Err: err}
		}
		seen[e.Key] = true
	}

	for _, fd := range fields {
		if fd.required && !seen[fd.key] {
			return nil, &DecodeError{Key: fd.key, Err: ErrMissingField}
		}
	}
	return &cfg, nil
}

// Encode writes cfg to w. Fields holding their default are omitted,
// except Name and Type which are always written.
func Encode(w io.Writer, cfg types.BundleConfig) error {
	kw := keyfile.NewWriter(w)
	if err := kw.WriteSection(SectionName); err != nil {
		return &EncodeError{Err: err}
	}

	for _, fd := range fields {
		v, ok, err := fd.encode(&cfg.Bundle)
		if err != nil {
			return &EncodeError{Key: fd.key, Err: err}
		}
		if !ok {
			continue
		}
		if !keyfile.Representable(v) {
			return &EncodeError{Key: fd.key, Err: ErrInvalidValue}
		}
		if err := kw.WriteKey(fd.key, v); err != nil {
			return &EncodeError{Key: fd.key, Err: err}
		}
	}

	if err := kw.Flush(); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// Marshal returns the manifest text for cfg.
func Marshal(cfg types.BundleConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
