// Package seed fills a fresh Storage with the portal's fixture content: the
// admin account, the product schemes, recent news, dashboard statistics and
// the branch list.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/logging"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/services"
)

const (
	DefaultAdminID       = "admin-1"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Admin describes the seeded administrator. Password may be plaintext or a
// bcrypt hash.
type Admin struct {
	Username string
	Password string
}

// Load imports every fixture through st. It must run against empty storage;
// fixture ids colliding with existing records fail with
// common.ErrorAlreadyExists.
func Load(ctx context.Context, st *services.Storage, admin Admin, now time.Time, log logging.Logger) error {
	if admin.Username == "" {
		admin.Username = DefaultAdminUsername
	}
	if admin.Password == "" {
		admin.Password = DefaultAdminPassword
	}

	if _, err := st.Users.Import(ctx, models.User{
		ID:       DefaultAdminID,
		Username: admin.Username,
		Password: admin.Password,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	for _, s := range schemes(now) {
		if _, err := st.Schemes.Import(ctx, s); err != nil {
			return fmt.Errorf("seed scheme %s: %w", s.ID, err)
		}
	}
	for _, n := range news() {
		if _, err := st.News.Import(ctx, n); err != nil {
			return fmt.Errorf("seed news %s: %w", n.ID, err)
		}
	}
	for _, s := range settings() {
		if _, err := st.Settings.Import(ctx, s); err != nil {
			return fmt.Errorf("seed setting %s: %w", s.Key, err)
		}
	}
	for _, b := range branches(now) {
		if _, err := st.Branches.Import(ctx, b); err != nil {
			return fmt.Errorf("seed branch %s: %w", b.ID, err)
		}
	}

	log.Info(ctx, "fixture data loaded", "admin", admin.Username)
	return nil
}
