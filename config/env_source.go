package config

import (
	"os"
	"strings"
)

// EnvSource exposes process environment variables under dotted keys:
// "ensemble.host" is read from ENSEMBLE_HOST, "zone.z-1.max_agents" from ZONE_Z_1_MAX_AGENTS.
// The mapping is lossy: case, "." and "-" fold together, so zones named z1 and Z1 (or z-1 and z.1)
// are overridden by the same variables. service.ValidateZones reports such collisions.
type EnvSource struct {
	lookupEnv func(string) (string, bool)
}

// NewEnvSource creates an EnvSource over os.LookupEnv.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookupEnv: os.LookupEnv}
}

func (e *EnvSource) Lookup(key string) (string, bool) {
	return e.lookupEnv(EnvKey(key))
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// EnvKey returns the environment variable name a dotted key is overridden by.
// Keys that differ only in case, "." or "-" share one name.
func EnvKey(key string) string {
	return strings.ToUpper(envReplacer.Replace(key))
}
