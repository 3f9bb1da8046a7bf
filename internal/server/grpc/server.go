// Package grpc serves the standard gRPC health protocol
// (grpc.health.v1.Health) so orchestrators can probe the portal without
// going through the HTTP API.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// StorageService is the health service name reporting storage readiness.
// The empty name reports the server as a whole.
const StorageService = "bankportal.Storage"

const defaultProbeInterval = 10 * time.Second

// Probe reports whether the storage can serve requests.
type Probe func(ctx context.Context) error

type GRPCServer struct {
	address       string
	logger        logging.Logger
	probe         Probe
	probeInterval time.Duration
	health        *health.Server
}

func NewGRPCServer(a string, l logging.Logger, probe Probe) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		probe:         probe,
		probeInterval: defaultProbeInterval,
		health:        health.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	s.refresh(ctx)

	go func() {
		ticker := time.NewTicker(s.probeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info(ctx, "Stopping gRPC server...")
				s.health.Shutdown()
				srv.GracefulStop()
				return
			case <-ticker.C:
				s.refresh(ctx)
			}
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}

// refresh runs the probe and publishes the result for both service names.
func (s *GRPCServer) refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if s.probe != nil {
		if err := s.probe(ctx); err != nil {
			s.logger.Warn(ctx, "storage probe failed", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(StorageService, status)
}
