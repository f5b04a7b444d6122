// Package password isolates credential handling behind a single verifier
// interface so the storage scheme can change without touching route logic.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier turns a submitted password into its stored form and checks a
// submitted password against a stored one.
type Verifier interface {
	Hash(plain string) (string, error)
	Compare(plain, stored string) bool
}

// Plain stores and compares passwords as-is. This mirrors the documented
// application behavior and is the default scheme.
type Plain struct{}

func (Plain) Hash(plain string) (string, error) {
	return plain, nil
}

func (Plain) Compare(plain, stored string) bool {
	return plain == stored
}

// Bcrypt stores salted bcrypt hashes. Selected with password_scheme: bcrypt.
type Bcrypt struct{}

func (Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Compare(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// New returns the verifier for the named scheme.
func New(scheme string) (Verifier, error) {
	switch scheme {
	case "", "plain":
		return Plain{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}
