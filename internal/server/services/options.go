// Package services holds the portal's business rules. It is the only layer
// that writes to the repositories: it generates ids, stamps timestamps,
// applies defaults, hashes passwords and implements settings upsert.
package services

import (
	"time"

	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/google/uuid"
)

type deps struct {
	now    func() time.Time
	newID  func() string
	hasher cryptox.PasswordHasher
}

// Option customises the collaborators shared by every service.
type Option func(*deps)

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// WithIDGenerator replaces the UUIDv4 id generator.
func WithIDGenerator(newID func() string) Option {
	return func(d *deps) { d.newID = newID }
}

// WithHasher sets the password hasher used by the user service.
func WithHasher(h cryptox.PasswordHasher) Option {
	return func(d *deps) { d.hasher = h }
}

func newDeps(opts ...Option) deps {
	d := deps{
		now:    time.Now,
		newID:  uuid.NewString,
		hasher: cryptox.NewBcryptHasher(cryptox.DefaultCost),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d deps) timestamp() time.Time {
	return d.now().UTC()
}
