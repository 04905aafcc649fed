package grpc

import (
	"context"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported by the health service for the novel API.
// Probes that pass an empty service name get the same answer.
const ServiceName = "novera.NovelService"

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 protocol and answers every probe
// by pinging the storage through the application info service.
type Handler struct {
	healthpb.UnimplementedHealthServer

	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h)
}

// Check implements [healthpb.HealthServer].
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
