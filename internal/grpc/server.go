package grpcserver

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"foodTracker/internal/config"
)

// ServiceName is the health-check service name reported for the tracker.
const ServiceName = "foodtracker.Tracker"

// StartGRPC starts the operational gRPC listener and returns a shutdown function.
// It serves grpc.health.v1 and server reflection; hs carries the serving status
// and is shared with the HTTP /healthz endpoint.
func StartGRPC(cfg *config.Config, hs *health.Server) (func(context.Context) error, net.Addr, error) {
	if cfg == nil {
		panic("config is required")
	}
	if hs == nil {
		hs = health.NewServer()
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		hs.Shutdown()
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, lis.Addr(), nil
}

// MarkServing flips both the overall and the tracker service status to SERVING.
func MarkServing(hs *health.Server) {
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}
