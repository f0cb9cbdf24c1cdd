package user

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and validates an email address.
func NormalizeEmail(value string) (string, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return "", ErrEmailRequired
	}
	if len(normalized) > 255 {
		return "", fmt.Errorf("%w: longer than 255 characters", ErrInvalidEmail)
	}
	if !emailRegex.MatchString(normalized) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEmail, value)
	}
	return normalized, nil
}
