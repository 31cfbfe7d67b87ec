package service

import (
	"fmt"
	"strings"

	"zonekeeper/config"
	"zonekeeper/domain"
	"zonekeeper/helpers"
	"zonekeeper/interfaces"
	"zonekeeper/observability"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// ZoneDelimiter separates zone names in ensemble.zone_definition.
	ZoneDelimiter = ";"
	// ZoneKeyPrefix is the namespace of per-zone attributes: zone.<name>.<attribute>.
	ZoneKeyPrefix = "zone"
)

// ZoneLoader materialises zone descriptors from a zone definition string and a flat configuration source.
type ZoneLoader struct {
	source interfaces.ConfigSource
	logger log.Logger
}

// NewZoneLoader creates a ZoneLoader. Panics on nil source or logger.
func NewZoneLoader(source interfaces.ConfigSource, logger log.Logger) *ZoneLoader {
	return &ZoneLoader{
		source: helpers.NilPanic(source, "service.zone_loader.go: source is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.zone_loader.go: logger is required"), "component", "zone_loader"),
	}
}

// ZonePrefix returns the key prefix of one zone's attributes.
func ZonePrefix(name string) string {
	return ZoneKeyPrefix + "." + name
}

// LoadZones returns one descriptor per name in definition, in definition order. An empty definition
// yields an empty list. Empty and duplicate names are kept as they are; use ValidateZones to check them.
// Attribute values that cannot be coerced are logged, counted and returned, never fatal.
func (l *ZoneLoader) LoadZones(definition string) ([]domain.Zone, []error) {
	if definition == "" {
		observability.SetZonesLoaded(0)
		return []domain.Zone{}, nil
	}

	names := strings.Split(definition, ZoneDelimiter)
	zones := make([]domain.Zone, 0, len(names))
	var errs []error
	for _, name := range names {
		zone := domain.Zone{Name: name}
		for _, err := range Bind(&zone, ZonePrefix(name), l.source) {
			level.Warn(l.logger).Log("msg", "zone attribute skipped", "zone", name, "err", err)
			observability.RecordBindingError(name)
			errs = append(errs, err)
		}
		zones = append(zones, zone)
	}

	observability.SetZonesLoaded(len(zones))
	level.Info(l.logger).Log("msg", "zones loaded", "count", len(zones), "definition", definition)
	return zones, errs
}

// ValidateZones reports empty and duplicate zone names, and names whose environment overrides collide
// (z1 and Z1 are both overridden through ZONE_Z1_*). LoadZones does not call it.
func ValidateZones(zones []domain.Zone) error {
	seen := make(map[string]int, len(zones))
	seenEnv := make(map[string]int, len(zones))
	var problems []string
	for i, z := range zones {
		if strings.TrimSpace(z.Name) == "" {
			problems = append(problems, fmt.Sprintf("zone[%d] has an empty name", i))
			continue
		}
		if first, ok := seen[z.Name]; ok {
			problems = append(problems, fmt.Sprintf("zone[%d] %q duplicates zone[%d]", i, z.Name, first))
			continue
		}
		seen[z.Name] = i
		envPrefix := config.EnvKey(ZonePrefix(z.Name))
		if first, ok := seenEnv[envPrefix]; ok {
			problems = append(problems, fmt.Sprintf("zone[%d] %q shares environment prefix %s_ with zone[%d] %q",
				i, z.Name, envPrefix, first, zones[first].Name))
			continue
		}
		seenEnv[envPrefix] = i
	}
	if len(problems) > 0 {
		return NewBadParameterError("invalid zone definition", fmt.Errorf("%s", strings.Join(problems, "; ")))
	}
	return nil
}

// FindZone returns the zone with the given name or an entity_not_found error.
func FindZone(zones []domain.Zone, name string) (domain.Zone, error) {
	for _, z := range zones {
		if z.Name == name {
			return z, nil
		}
	}
	return domain.Zone{}, NewEntityNotFoundError(fmt.Sprintf("zone %q not found", name), nil)
}
