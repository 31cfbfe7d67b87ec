package config

import (
	"testing"

	"zonekeeper/interfaces"
	"zonekeeper/interfaces/mock"

	"github.com/stretchr/testify/assert"
)

func TestMapSource(t *testing.T) {
	src := MapSource{"b": "2", "a": "1"}

	v, ok := src.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = src.Lookup("c")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, src.Keys())
}

func TestLayered_FirstHitWins(t *testing.T) {
	top := MapSource{"ensemble.host": "env:2379"}
	bottom := MapSource{"ensemble.host": "file:2379", "ensemble.timeout": "3000"}

	src := Layered{top, nil, bottom}

	v, ok := src.Lookup("ensemble.host")
	assert.True(t, ok)
	assert.Equal(t, "env:2379", v)

	v, ok = src.Lookup("ensemble.timeout")
	assert.True(t, ok)
	assert.Equal(t, "3000", v)

	_, ok = src.Lookup("ensemble.root_node")
	assert.False(t, ok)
}

func TestLayered_EmptyValueShadowsLowerLayers(t *testing.T) {
	src := Layered{MapSource{"zone.z1.provider": ""}, MapSource{"zone.z1.provider": "aws"}}
	v, ok := src.Lookup("zone.z1.provider")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestLayered_StopsAtFirstHit(t *testing.T) {
	lower := &mock.ConfigSourceMock{}
	src := Layered{MapSource{"k": "v"}, lower}

	_, ok := src.Lookup("k")
	assert.True(t, ok)
	assert.Empty(t, lower.LookupCalls())

	_, ok = src.Lookup("missing")
	assert.False(t, ok)
	assert.Len(t, lower.LookupCalls(), 1)
}

func TestDefaults(t *testing.T) {
	var src interfaces.ConfigSource = Defaults("/var/tmp")

	tests := map[string]string{
		KeyRootNode:           "/flow-cc",
		KeyEmbeddedClientPort: "2379",
		KeyEmbeddedPeerPort:   "2380",
		KeyEmbeddedDataRoot:   "/var/tmp",
		KeyEmbeddedReadyWait:  "0",
	}
	for key, want := range tests {
		v, ok := src.Lookup(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
	_, ok := src.Lookup(KeyEnsembleHost)
	assert.False(t, ok)
}
