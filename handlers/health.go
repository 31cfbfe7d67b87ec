package handlers

import (
	"zonekeeper/domain"
	"zonekeeper/interfaces"

	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// EnsembleHealthService is the health service name reported alongside the overall ("") status.
const EnsembleHealthService = "zonekeeper.Ensemble"

// ServingStatus maps a connection state to a health status: only a connected ensemble is SERVING.
func ServingStatus(state domain.ConnectionState) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if state == domain.StateConnected {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_NOT_SERVING
}

// NewHealthServer creates a grpc health server reporting the current state of status.
func NewHealthServer(status interfaces.EnsembleStatus) *health.Server {
	hs := health.NewServer()
	ReportHealth(hs, status)
	return hs
}

// ReportHealth publishes the current state of status on hs.
func ReportHealth(hs *health.Server, status interfaces.EnsembleStatus) {
	s := ServingStatus(status.State())
	hs.SetServingStatus("", s)
	hs.SetServingStatus(EnsembleHealthService, s)
}
