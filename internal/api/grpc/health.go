package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"library-backend/internal/api/grpc/interceptor"
	"library-backend/internal/logger"
)

// ServiceName is the health-checked service. The empty name reports the
// overall server status.
const ServiceName = "library.v1.Library"

const pingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer serves grpc.health.v1.Health and keeps its status in step
// with the database.
type HealthServer struct {
	server   *grpc.Server
	health   *health.Server
	db       Pinger
	interval time.Duration
}

func NewHealthServer(db Pinger, interval time.Duration) *HealthServer {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.NewLoggingInterceptor().Unary()),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)

	// Register reflection service for grpcurl
	reflection.Register(s)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{server: s, health: hs, db: db, interval: interval}
}

// Serve blocks until Stop is called or lis fails.
func (s *HealthServer) Serve(lis net.Listener) error {
	logger.Info("gRPC health server listening", "address", lis.Addr().String())
	return s.server.Serve(lis)
}

// Monitor pings the database every interval until ctx is done.
func (s *HealthServer) Monitor(ctx context.Context) {
	s.Probe(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}

// Probe pings the database once and updates the serving status.
func (s *HealthServer) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.db.Ping(ctx); err != nil {
		logger.Warn("Database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Check answers a health check without going through the network.
func (s *HealthServer) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Stop reports NOT_SERVING to watchers and drains in-flight RPCs.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
