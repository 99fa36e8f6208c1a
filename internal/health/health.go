// Package health reports whether the service can answer requests. The same
// checker backs the HTTP /health route and the gRPC health protocol.
package health

import (
	"context"
	"fmt"
	"os"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the gRPC service name registered next to "".
const ServiceName = "solarstats"

// Probe returns nil when a dependency is usable.
type Probe func(ctx context.Context) error

// DataDirProbe checks that dir exists and is a directory.
func DataDirProbe(dir string) Probe {
	return func(ctx context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("data directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data directory: %s is not a directory", dir)
		}
		return nil
	}
}

// HealthChecker implements the gRPC health checking protocol
type HealthChecker struct {
	grpc_health_v1.UnimplementedHealthServer
	probe  Probe
	mu     sync.RWMutex
	status map[string]grpc_health_v1.HealthCheckResponse_ServingStatus
}

// NewHealthChecker registers "" and ServiceName as SERVING. A nil probe
// always passes.
func NewHealthChecker(probe Probe) *HealthChecker {
	h := &HealthChecker{
		probe:  probe,
		status: make(map[string]grpc_health_v1.HealthCheckResponse_ServingStatus),
	}
	h.status[""] = grpc_health_v1.HealthCheckResponse_SERVING
	h.status[ServiceName] = grpc_health_v1.HealthCheckResponse_SERVING
	return h
}

// Healthy runs the probe and reports whether the overall service is serving.
func (h *HealthChecker) Healthy(ctx context.Context) error {
	h.mu.RLock()
	st := h.status[""]
	h.mu.RUnlock()

	if st != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("service is %s", st)
	}
	if h.probe != nil {
		return h.probe(ctx)
	}
	return nil
}

func (h *HealthChecker) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	h.mu.RLock()
	st, ok := h.status[req.Service]
	h.mu.RUnlock()

	if !ok {
		return nil, status.Error(codes.NotFound, "unknown service")
	}
	if st == grpc_health_v1.HealthCheckResponse_SERVING && h.probe != nil && h.probe(ctx) != nil {
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return &grpc_health_v1.HealthCheckResponse{Status: st}, nil
}

func (h *HealthChecker) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	return status.Error(codes.Unimplemented, "watching is not supported")
}

// SetServingStatus sets the serving status of a service
func (h *HealthChecker) SetServingStatus(service string, status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status[service] = status
}

// Shutdown marks every registered service NOT_SERVING.
func (h *HealthChecker) Shutdown() {
	h.mu.RLock()
	services := make([]string, 0, len(h.status))
	for service := range h.status {
		services = append(services, service)
	}
	h.mu.RUnlock()

	for _, service := range services {
		h.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	}
}

// NewGRPCServer returns a gRPC server exposing only the health service.
func NewGRPCServer(h *HealthChecker, opts ...grpc.ServerOption) *grpc.Server {
	srv := grpc.NewServer(opts...)
	grpc_health_v1.RegisterHealthServer(srv, h)
	return srv
}
