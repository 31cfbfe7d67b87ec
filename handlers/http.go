// Package handlers contains http and grpc health handlers for zonekeeper.
package handlers

import (
	"fmt"
	"net/http"

	"zonekeeper/domain"
	"zonekeeper/helpers"
	"zonekeeper/interfaces"
	"zonekeeper/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface over the zones and the connection resolved at startup.
type HTTPServer struct {
	zones    []domain.Zone
	status   interfaces.EnsembleStatus
	rootNode string
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer. zones are served as given and never reloaded.
func NewHTTPServer(zones []domain.Zone, status interfaces.EnsembleStatus, rootNode string, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		zones:    zones,
		status:   helpers.NilPanic(status, "handlers.http.go: status is required"),
		rootNode: rootNode,
		logger:   logger,
	}
}

// GetZones (GET /v1/zones) returns every loaded zone in definition order.
func (h *HTTPServer) GetZones(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toZonesResponse(h.zones))
}

// GetZone (GET /v1/zones/{name}) returns one zone, 404 when it is not defined.
func (h *HTTPServer) GetZone(ectx echo.Context, name string) error {
	zone, err := service.FindZone(h.zones, name)
	if err != nil {
		return fmt.Errorf("getZone failed to find zone %q, err: %w", name, err)
	}
	return ectx.JSON(http.StatusOK, toZoneInfo(zone))
}

// GetEnsemble (GET /v1/ensemble) reports the connection state, endpoints and whether the ensemble is self-hosted.
func (h *HTTPServer) GetEnsemble(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toEnsembleResponse(h.status, h.rootNode))
}
