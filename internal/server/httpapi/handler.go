// Package httpapi exposes the portal over HTTP with gin. Public routes read
// content; admin routes require the session cookie issued by
// POST /api/admin/login.
package httpapi

import (
	"time"

	"github.com/dmitrijs2005/bankportal/internal/logging"
	"github.com/dmitrijs2005/bankportal/internal/server/metrics"
	"github.com/dmitrijs2005/bankportal/internal/server/services"
)

// Config holds the session parameters of the admin area.
type Config struct {
	SecretKey    []byte
	SessionTTL   time.Duration
	SecureCookie bool
}

type Handler struct {
	storage *services.Storage
	metrics *metrics.Metrics
	log     logging.Logger
	cfg     Config
}

func NewHandler(st *services.Storage, m *metrics.Metrics, log logging.Logger, cfg Config) *Handler {
	return &Handler{
		storage: st,
		metrics: m,
		log:     log.With("module", "httpapi"),
		cfg:     cfg,
	}
}
