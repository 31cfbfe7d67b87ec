package handlers

import (
	"zonekeeper/domain"
	"zonekeeper/interfaces"
	"zonekeeper/service"
)

func toZoneInfo(z domain.Zone) ZoneInfo {
	info := ZoneInfo{
		Name:           z.Name,
		MinAgents:      z.MinAgents,
		MaxAgents:      z.MaxAgents,
		AgentTimeoutMs: z.AgentTimeout.Milliseconds(),
		Priority:       z.Priority,
		Enabled:        z.Enabled,
	}
	if z.Provider != "" {
		info.Provider = service.Ptr(z.Provider)
	}
	if z.ProviderURL != "" {
		info.ProviderUrl = service.Ptr(z.ProviderURL)
	}
	if z.CloudImage != "" {
		info.CloudImage = service.Ptr(z.CloudImage)
	}
	if len(z.Tags) > 0 {
		info.Tags = service.Ptr(append([]string(nil), z.Tags...))
	}
	return info
}

// toZonesResponse converts domain zones to API response.
func toZonesResponse(zones []domain.Zone) ZonesResponse {
	out := make([]ZoneInfo, 0, len(zones))
	for _, z := range zones {
		out = append(out, toZoneInfo(z))
	}
	return ZonesResponse{Zones: out}
}

func toEnsembleResponse(status interfaces.EnsembleStatus, rootNode string) EnsembleResponse {
	endpoints := status.Endpoint().Hosts
	if endpoints == nil {
		endpoints = []string{}
	}
	resp := EnsembleResponse{
		State:     status.State().String(),
		Endpoints: endpoints,
		RootNode:  rootNode,
	}
	if embedded := status.Embedded(); embedded != nil {
		resp.Embedded = true
		resp.DataDir = service.Ptr(embedded.DataDir)
	}
	return resp
}
