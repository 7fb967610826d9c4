// Package ticket generates the human-facing complaint identifiers.
package ticket

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Prefix is prepended to every generated ticket id.
const Prefix = "MRU-"

const (
	charset      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	randomLength = 8
)

// pattern matches a well-formed ticket id.
var pattern = regexp.MustCompile(`^MRU-[A-Z0-9]{8}$`)

// New returns a ticket id of the form MRU- followed by 8 random uppercase
// alphanumeric characters. Uniqueness is enforced by the database constraint;
// callers retry on a duplicate.
func New() (string, error) {
	buf := make([]byte, randomLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket id: %w", err)
		}
		buf[i] = charset[n.Int64()]
	}
	return Prefix + string(buf), nil
}

// Valid reports whether s is a well-formed ticket id.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
