package types

import (
	"errors"
	"fmt"
)

// ErrInvalidBundleType is returned when a Type value is not one of the known variants.
var ErrInvalidBundleType = errors.New("invalid bundle type")

// BundleType discriminates what kind of payload a bundle carries.
type BundleType int

const (
	Game BundleType = iota
	Application
	LauncherOnly
)

var bundleTypeNames = [...]string{
	Game:         "Game",
	Application:  "Application",
	LauncherOnly: "LauncherOnly",
}

func (t BundleType) String() string {
	if t < 0 || int(t) >= len(bundleTypeNames) {
		return fmt.Sprintf("BundleType(%d)", int(t))
	}
	return bundleTypeNames[t]
}

// ParseBundleType matches s exactly (case sensitive) against the variant names.
func ParseBundleType(s string) (BundleType, error) {
	for i, name := range bundleTypeNames {
		if s == name {
			return BundleType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBundleType, s)
}

func (t BundleType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(bundleTypeNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBundleType, int(t))
	}
	return []byte(bundleTypeNames[t]), nil
}

func (t *BundleType) UnmarshalText(text []byte) error {
	v, err := ParseBundleType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Bundle is the launch metadata of a packaged application.
//
// StoreID and HomebrewID are alternative identities. Decoding accepts
// both, the builders set exactly one.
type Bundle struct {
	Name           string     `json:"Name" yaml:"Name"`
	Type           BundleType `json:"Type" yaml:"Type"`
	StoreID        *string    `json:"StoreID,omitempty" yaml:"StoreID,omitempty"`
	HomebrewID     *string    `json:"HomebrewID,omitempty" yaml:"HomebrewID,omitempty"`
	Exec           *string    `json:"Exec,omitempty" yaml:"Exec,omitempty"`
	EncryptedImage *string    `json:"EncryptedImage,omitempty" yaml:"EncryptedImage,omitempty"`
	Version        *string    `json:"Version,omitempty" yaml:"Version,omitempty"`
	Background     bool       `json:"Background,omitempty" yaml:"Background,omitempty"`
	PreferXBoxMode bool       `json:"PreferXBoxMode,omitempty" yaml:"PreferXBoxMode,omitempty"`
	Launcher       *string    `json:"Launcher,omitempty" yaml:"Launcher,omitempty"`

	// LauncherTags and LauncherExec describe a launcher this bundle provides.
	LauncherTags []string `json:"LauncherTags,omitempty" yaml:"LauncherTags,omitempty"`
	LauncherExec *string  `json:"LauncherExec,omitempty" yaml:"LauncherExec,omitempty"`
}

// BundleConfig is the manifest file: one Bundle under the [Bundle] section.
type BundleConfig struct {
	Bundle Bundle `json:"Bundle" yaml:"Bundle"`
}

// Str returns a pointer to s, for filling optional fields.
func Str(s string) *string {
	return &s
}
