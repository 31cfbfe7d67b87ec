package etcd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbeddedServerDescriptor(t *testing.T) {
	root := t.TempDir()
	d := NewEmbeddedServerDescriptor(root, 2379, 2380)

	assert.Equal(t, DefaultEmbeddedName, d.Name)
	assert.Equal(t, root, filepath.Dir(d.DataDir))
	assert.Equal(t, 2379, d.ClientPort)
	assert.Equal(t, 2380, d.PeerPort)
	assert.False(t, d.Running())
}

func TestDescriptorFactory_UniqueDataDirs(t *testing.T) {
	factory := DescriptorFactory(t.TempDir(), DefaultClientPort, DefaultPeerPort)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		d := factory()
		require.False(t, seen[d.DataDir], "data dir reused: %s", d.DataDir)
		seen[d.DataDir] = true
	}
}

func TestDescriptorFactory_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.etcd.descriptor.go: data root is required", func() {
		DescriptorFactory("", DefaultClientPort, DefaultPeerPort)
	})
}
