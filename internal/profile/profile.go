// Package profile holds the closed set of supported titles and their built-in secrets.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/arxide/arxide/internal/keystream"
)

// Profile names a supported title.
type Profile string

const (
	// None selects no built-in secret.
	None Profile = "none"
	// UmaPD is Umamusume: Pretty Derby Party Dash.
	UmaPD Profile = "umapd"
)

// Default is used when no key source was given at all.
const Default = UmaPD

// ErrUnknown is returned when parsing a name outside the supported set.
var ErrUnknown = errors.New("unknown game profile")

// ErrNoSecret is returned for profiles without a built-in secret.
var ErrNoSecret = errors.New("game profile has no built-in secret")

// secrets maps each profile to its hex-encoded secret.
//
//nolint:gochecknoglobals
var secrets = map[Profile]string{
	UmaPD: "7a1b6e4c92d0f35a08e1c7b4963f2d5ea0c84b17f6293e5d0b7a41c8e69f23d5" +
		"7c0e4a91b83f6d25e907c4",
}

// Names returns the accepted profile names.
func Names() []string {
	return []string{string(None), string(UmaPD)}
}

// Parse resolves a profile name. Matching is case-insensitive; an empty name is None.
func Parse(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}

	if !slices.Contains(Names(), name) {
		return None, fmt.Errorf("%w: %q (supported: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}

	return Profile(name), nil
}

// Secret returns the built-in secret of the profile.
func (p Profile) Secret() (keystream.Secret, error) {
	encoded, ok := secrets[p]
	if !ok {
		return keystream.Secret{}, fmt.Errorf("%w: %s", ErrNoSecret, p)
	}

	secret, err := keystream.SecretFromHex(encoded)
	if err != nil {
		return keystream.Secret{}, fmt.Errorf("loading %s secret: %w", p, err)
	}

	return secret, nil
}
