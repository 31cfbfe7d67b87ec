package etcd

import (
	"path/filepath"

	"zonekeeper/domain"
	"zonekeeper/helpers"

	"github.com/google/uuid"
)

const (
	// DefaultEmbeddedName is the member name of the embedded single-node ensemble.
	DefaultEmbeddedName = "zonekeeper-embedded"
	// DefaultClientPort is the well-known client port the embedded ensemble listens on.
	DefaultClientPort = 2379
	// DefaultPeerPort is the peer port of the embedded member; unused by clients but bound by the server.
	DefaultPeerPort = 2380
)

// NewEmbeddedServerDescriptor returns a descriptor with a fresh data directory root/<uuid>.
func NewEmbeddedServerDescriptor(root string, clientPort, peerPort int) *domain.EmbeddedServerDescriptor {
	return &domain.EmbeddedServerDescriptor{
		Name:       DefaultEmbeddedName,
		DataDir:    filepath.Join(root, uuid.NewString()),
		ClientPort: clientPort,
		PeerPort:   peerPort,
	}
}

// DescriptorFactory binds root and ports so every call yields a new, unique descriptor.
// Panics on empty root.
func DescriptorFactory(root string, clientPort, peerPort int) func() *domain.EmbeddedServerDescriptor {
	helpers.StrPanic(root, "adapters.etcd.descriptor.go: data root is required")
	return func() *domain.EmbeddedServerDescriptor {
		return NewEmbeddedServerDescriptor(root, clientPort, peerPort)
	}
}
