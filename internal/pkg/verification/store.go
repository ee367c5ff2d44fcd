// Package verification holds short-lived single-use codes for phone
// confirmation and password reset. Codes expire after a fixed TTL and are
// deleted on first successful match.
package verification

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"
)

const (
	// CodeLength is the number of digits in a generated code.
	CodeLength = 6
	// DefaultTTL is how long a stored code stays valid.
	DefaultTTL = 10 * time.Minute
)

// Store keeps at most one live code per user. Losing the store (process or
// redis restart) invalidates pending codes, which is accepted behavior.
type Store interface {
	// Put stores a code for the user, replacing any prior entry.
	Put(ctx context.Context, userID int64, code string) error
	// Validate reports whether a non-expired entry with a matching code
	// exists. On success the entry is deleted (single use). Expired entries
	// are purged; a mismatch leaves the entry in place.
	Validate(ctx context.Context, userID int64, code string) (bool, error)
	// Remove deletes any entry for the user.
	Remove(ctx context.Context, userID int64) error
}

// GenerateCode returns a cryptographically random numeric code of CodeLength
// digits.
func GenerateCode() (string, error) {
	digits := make([]byte, CodeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
