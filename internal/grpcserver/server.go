// Package grpcserver exposes the catalog over gRPC with the pagination gate
// installed as a unary interceptor.
package grpcserver

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/pkg/logger"
)

// Server wraps a gRPC server with health and reflection registered.
type Server struct {
	server   *grpc.Server
	listener net.Listener
	health   *health.Server
}

// New builds a server on lis. Interceptors run in order: logging, status
// mapping, pagination gate.
func New(lis net.Listener, gate *pagination.Gate, catalog CatalogServer, opts ...grpc.ServerOption) *Server {
	if gate == nil {
		gate = pagination.NewGate(nil)
	}

	defaultOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(loggingInterceptor, statusInterceptor, gateInterceptor(gate)),
	}
	server := grpc.NewServer(append(defaultOpts, opts...)...)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	if catalog != nil {
		server.RegisterService(&CatalogServiceDesc, catalog)
		healthServer.SetServingStatus(CatalogServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	return &Server{server: server, listener: lis, health: healthServer}
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	logger.Info("Starting gRPC server on %s", s.Addr())
	return s.server.Serve(s.listener)
}

// Stop drains in-flight calls, forcing a stop after timeout.
func (s *Server) Stop(timeout time.Duration) error {
	s.health.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	}
}
