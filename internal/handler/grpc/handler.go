// Package grpc exposes the vault's gRPC surface: the standard health service
// and server reflection.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/service"
)

// ServiceName is the health-checked service. The empty name reports the same
// status.
const ServiceName = "confidential_vault.Vault"

// Handler is the root gRPC transport handler.
//
// Health starts as NOT_SERVING and follows the result of the last ledger
// probe, see [Handler.Probe] and [Handler.ReportProbe].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Probe reads the vault holding account and reports the outcome.
func (h *Handler) Probe(ctx context.Context) error {
	_, err := h.services.AccountService.GetVault(ctx)
	h.ReportProbe(err)
	return err
}

// ReportProbe moves health to SERVING on a nil error and NOT_SERVING
// otherwise.
func (h *Handler) ReportProbe(err error) {
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.ReportProbe").Msg("ledger probe failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING for good.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
