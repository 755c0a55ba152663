// Package config holds the validated runtime configuration of arxide.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the configuration of a single run.
type Config struct {
	// Key is the hex-encoded secret
	Key string `label:"--key" mapstructure:"key" validate:"omitempty,hexadecimal,len=86,exclusive=KeyFile"`
	// KeyFile points at a file holding the raw secret bytes
	KeyFile string `label:"--key-file" mapstructure:"key-file"`
	// Game selects a built-in secret
	Game string `label:"--game" mapstructure:"game" validate:"omitempty,oneof=none umapd"`
	// FileList points at the manifest of logical paths
	FileList string `label:"--file-list" mapstructure:"file-list"`

	Quiet              bool
	Stats              bool
	LogLevel           string `label:"--log-level" mapstructure:"log-level" validate:"oneof=debug info warn error"`
	PreserveTimestamps bool   `mapstructure:"preserve-timestamps"`

	// Set by the decrypt command
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Input  string `label:"INPUT"  mapstructure:"-" validate:"required"`
	Output string `label:"OUTPUT" mapstructure:"-" validate:"required"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerExclusive(validate); err != nil {
		return err
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("validating configuration: %s", strings.Join(msgs, "; "))
}

// HasKeySource reports whether a secret was given explicitly or through a profile.
func (c *Config) HasKeySource() bool {
	return c.Key != "" || c.KeyFile != "" || c.Game != ""
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "exclusive":
		return fe.Field() + " is mutually exclusive with --key-file"
	case "len":
		return fmt.Sprintf("%s must be %s characters long", fe.Field(), fe.Param())
	case "hexadecimal":
		return fe.Field() + " must be hex encoded"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag())
	}
}
