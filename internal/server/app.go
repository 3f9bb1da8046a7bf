// Package server wires the portal together: storage, fixture data, the gin
// HTTP API and the gRPC health endpoint, and runs them until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/dmitrijs2005/bankportal/internal/logging"
	"github.com/dmitrijs2005/bankportal/internal/server/config"
	"github.com/dmitrijs2005/bankportal/internal/server/httpapi"
	"github.com/dmitrijs2005/bankportal/internal/server/metrics"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bankportal/internal/server/seed"
	"github.com/dmitrijs2005/bankportal/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/bankportal/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage *services.Storage
	router  http.Handler
	health  *gs.GRPCServer
}

// ginMode keeps gin's route dump and warnings out of non-debug output.
func ginMode(logLevel string) string {
	if logging.ParseLevel(logLevel) <= slog.LevelDebug {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	gin.SetMode(ginMode(c.LogLevel))

	storage := services.NewStorage(
		repomanager.NewInMemoryRepositoryManager(),
		services.WithHasher(cryptox.NewBcryptHasher(c.BcryptCost)),
	)

	if c.SeedData {
		if c.AdminPasswordHash == "" {
			logger.Warn(ctx, "seeding admin with the default development password", "username", c.AdminUsername)
		}
		admin := seed.Admin{Username: c.AdminUsername, Password: c.AdminPasswordHash}
		if err := seed.Load(ctx, storage, admin, time.Now().UTC(), logger); err != nil {
			return nil, fmt.Errorf("seed init error: %w", err)
		}
	}

	secret := c.SecretKey
	if secret == "" {
		var err error
		if secret, err = common.MakeRandHexString(32); err != nil {
			return nil, fmt.Errorf("secret init error: %w", err)
		}
		logger.Warn(ctx, "no secret key configured, sessions will not survive a restart")
	}

	handler := httpapi.NewHandler(storage, metrics.New(), logger, httpapi.Config{
		SecretKey:    []byte(secret),
		SessionTTL:   c.SessionTTL,
		SecureCookie: c.SecureCookie,
	})

	probe := func(ctx context.Context) error {
		_, err := storage.Settings.List(ctx)
		return err
	}

	return &App{
		config:  c,
		logger:  logger,
		storage: storage,
		router:  httpapi.NewRouter(handler),
		health:  gs.NewGRPCServer(c.EndpointAddrGRPC, logger, probe),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serveHTTP serves the API on lis until ctx is cancelled, then drains
// in-flight requests.
func (app *App) serveHTTP(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	lis, err := net.Listen("tcp", app.config.EndpointAddrHTTP)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := app.serveHTTP(ctx, lis); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.health.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts both servers and blocks until ctx is cancelled, a termination
// signal arrives or either server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
