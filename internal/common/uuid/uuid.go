// Package uuid wraps github.com/google/uuid for the intake service.
// Continuation tokens are random (version 4) UUIDs: 128 bits of entropy,
// textually encoded, practically unique across the lifetime of the store.
package uuid

import (
	"github.com/google/uuid"
)

// UUID represents a UUID, aliased from github.com/google/uuid.UUID
type UUID = uuid.UUID

// NewRandom returns a new random UUIDv4 and any error from the entropy
// source. An entropy failure is surfaced to the caller; it is never
// retried here.
func NewRandom() (UUID, error) {
	return uuid.NewRandom()
}

// New returns a new random UUIDv4. Panics if the entropy source fails.
func New() UUID {
	return uuid.New()
}

// NewToken returns the string form of a fresh random UUID, suitable as a
// continuation token.
func NewToken() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Parse parses a UUID string. Returns an error if the string is not a valid UUID.
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics if the string is not valid.
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// Nil is the zero UUID value.
var Nil = uuid.Nil
