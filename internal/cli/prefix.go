// Package cli provides terminal helpers for the maze command.
package cli

import (
	"fmt"
	"strings"
)

// MatchName finds a unique name from a prefix.
// An exact match wins even if it is also a prefix of other names.
// Returns an error if the prefix is ambiguous or matches nothing.
func MatchName(prefix string, names []string) (string, error) {
	prefix = strings.ToLower(prefix)

	for _, name := range names {
		if strings.ToLower(name) == prefix {
			return name, nil
		}
	}

	var matches []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Type: "maze", Name: prefix}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous maze %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}
