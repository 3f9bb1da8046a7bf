package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	var seq atomic.Int64
	return NewStorage(repomanager.NewInMemoryRepositoryManager(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }),
		WithHasher(cryptox.NewBcryptHasher(bcrypt.MinCost)),
	)
}

func ptr[T any](v T) *T { return &v }
