package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinLength = 8
	// MaxLength is the bcrypt input limit; longer secrets would be silently truncated.
	MaxLength = 72
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrTooShort        = fmt.Errorf("password must be at least %d characters", MinLength)
	ErrTooLong         = fmt.Errorf("password must be at most %d bytes", MaxLength)
)

// Check reports whether plain is acceptable as a new account password.
func Check(plain string) error {
	switch {
	case plain == "":
		return ErrEmptyPassword
	case len(plain) < MinLength:
		return ErrTooShort
	case len(plain) > MaxLength:
		return ErrTooLong
	}

	return nil
}

// Hash checks plain and returns its bcrypt digest.
func Hash(plain string) (string, error) {
	if err := Check(plain); err != nil {
		return "", err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify compares plain against digest. Any mismatch, including empty input, is ErrInvalidPassword.
func Verify(plain, digest string) error {
	if plain == "" || digest == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("verifying password: %w", err)
	}
}
