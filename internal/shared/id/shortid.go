package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

// Public id prefixes.
const (
	PrefixProgramming = "prg"
	PrefixApplication = "apl"
)

// Generate creates a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix returns "prefix_xxxxxxxxxxxx".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

func NewProgrammingID() (string, error) {
	return GenerateWithPrefix(PrefixProgramming, DefaultLength)
}

func NewApplicationID() (string, error) {
	return GenerateWithPrefix(PrefixApplication, DefaultLength)
}

// ValidatePrefix checks that prefixedID looks like "<expectedPrefix>_<base62>".
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, rest, ok := strings.Cut(prefixedID, "_")
	if !ok || rest == "" {
		return fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	for _, r := range rest {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %q in ID %s", r, prefixedID)
		}
	}
	return nil
}
