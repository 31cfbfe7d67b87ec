package handlers

import (
	"net/url"
	"strings"

	"zonekeeper/service"
)

// fromZoneNameParam decodes the {name} path parameter.
// Returns service.BadParameterError when it is blank or badly escaped.
func fromZoneNameParam(raw string) (string, error) {
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", service.NewBadParameterError("invalid zone name", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", service.NewBadParameterError("zone name is required", nil)
	}
	return name, nil
}
