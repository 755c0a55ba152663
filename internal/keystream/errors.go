package keystream

import (
	"errors"
	"fmt"
)

// ErrInvalidSecretLength is returned when a secret is not exactly SecretSize bytes.
var ErrInvalidSecretLength = errors.New("invalid secret length")

// SecretLengthError reports the expected and actual length of a rejected secret.
type SecretLengthError struct {
	Expected int
	Actual   int
}

func (e *SecretLengthError) Error() string {
	return fmt.Sprintf("%v: expected %d, got %d", ErrInvalidSecretLength, e.Expected, e.Actual)
}

// Is lets errors.Is match ErrInvalidSecretLength.
func (e *SecretLengthError) Is(target error) bool {
	return target == ErrInvalidSecretLength
}
