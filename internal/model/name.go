package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidName is returned when a maze name cannot be used as a file name.
	ErrInvalidName = errors.New("invalid maze name")

	// nameRegex matches names like "spiral", "level-02", "big_9x9"
	nameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
)

// NormalizeName lower-cases and trims a maze name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName normalizes name and checks that it is a usable maze name.
// Returns ErrInvalidName if the format is invalid.
func ValidateName(name string) (string, error) {
	n := NormalizeName(name)
	if n == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !nameRegex.MatchString(n) {
		return "", fmt.Errorf("%w: %q (use letters, digits, '-' or '_', up to 64 characters)", ErrInvalidName, name)
	}
	return n, nil
}
