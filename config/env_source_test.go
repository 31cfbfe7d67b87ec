package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "ensemble.host", want: "ENSEMBLE_HOST"},
		{key: "ensemble.embedded.client_port", want: "ENSEMBLE_EMBEDDED_CLIENT_PORT"},
		{key: "zone.eu-west.max_agents", want: "ZONE_EU_WEST_MAX_AGENTS"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvKey(tt.key))
		})
	}
}

func TestEnvSource_Lookup(t *testing.T) {
	t.Setenv("ENSEMBLE_HOST", "zk-1:2379,zk-2:2379")
	t.Setenv("ZONE_Z1_ENABLED", "")

	src := NewEnvSource()

	v, ok := src.Lookup("ensemble.host")
	assert.True(t, ok)
	assert.Equal(t, "zk-1:2379,zk-2:2379", v)

	v, ok = src.Lookup("zone.z1.enabled")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = src.Lookup("zonekeeper.test.unset_key")
	assert.False(t, ok)
}
