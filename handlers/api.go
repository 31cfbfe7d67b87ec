package handlers

import (
	"github.com/labstack/echo/v4"
)

// ZoneInfo is one zone descriptor as served over HTTP.
type ZoneInfo struct {
	Name           string    `json:"name"`
	Provider       *string   `json:"provider,omitempty"`
	ProviderUrl    *string   `json:"provider_url,omitempty"`
	CloudImage     *string   `json:"cloud_image,omitempty"`
	MinAgents      int       `json:"min_agents"`
	MaxAgents      int       `json:"max_agents"`
	AgentTimeoutMs int64     `json:"agent_timeout_ms"`
	Priority       float64   `json:"priority"`
	Enabled        bool      `json:"enabled"`
	Tags           *[]string `json:"tags,omitempty"`
}

// ZonesResponse lists zones in definition order.
type ZonesResponse struct {
	Zones []ZoneInfo `json:"zones"`
}

// EnsembleResponse describes the connection acquired at startup.
type EnsembleResponse struct {
	State     string   `json:"state"`
	Endpoints []string `json:"endpoints"`
	RootNode  string   `json:"root_node"`
	Embedded  bool     `json:"embedded"`
	DataDir   *string  `json:"data_dir,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// GetZones (GET /v1/zones)
	GetZones(ctx echo.Context) error
	// GetZone (GET /v1/zones/{name})
	GetZone(ctx echo.Context, name string) error
	// GetEnsemble (GET /v1/ensemble)
	GetEnsemble(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetZones(ctx echo.Context) error {
	return w.Handler.GetZones(ctx)
}

func (w *ServerInterfaceWrapper) GetZone(ctx echo.Context) error {
	name, err := fromZoneNameParam(ctx.Param("name"))
	if err != nil {
		return err
	}
	return w.Handler.GetZone(ctx, name)
}

func (w *ServerInterfaceWrapper) GetEnsemble(ctx echo.Context) error {
	return w.Handler.GetEnsemble(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}
	router.GET("/v1/zones", wrapper.GetZones)
	router.GET("/v1/zones/:name", wrapper.GetZone)
	router.GET("/v1/ensemble", wrapper.GetEnsemble)
}
