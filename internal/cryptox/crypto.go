// Package cryptox wraps the one-way password hashing used for back-office
// users.
package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the salt rounds the portal has always used.
const DefaultCost = 10

// PasswordHasher hashes and verifies user passwords. Hashes are salted and
// never reversible.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, clamped to bcrypt's valid range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int { return h.cost }

// MaxPasswordLen is the longest password bcrypt accepts, in bytes.
const MaxPasswordLen = 72

// Hash returns a salted bcrypt hash. Passwords over MaxPasswordLen bytes
// yield common.ErrorValidation.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether password matches hash. A mismatch is not an error;
// a malformed hash is.
func (h *BcryptHasher) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// IsHash reports whether s looks like a bcrypt hash, so configuration can
// accept precomputed hashes.
func IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
