package config

import (
	"strconv"
)

// Property keys read at startup.
const (
	KeyEnsembleHost       = "ensemble.host"
	KeyEnsembleTimeout    = "ensemble.timeout"
	KeyRootNode           = "ensemble.root_node"
	KeyZoneDefinition     = "ensemble.zone_definition"
	KeyEmbeddedClientPort = "ensemble.embedded.client_port"
	KeyEmbeddedPeerPort   = "ensemble.embedded.peer_port"
	KeyEmbeddedDataRoot   = "ensemble.embedded.data_root"
	KeyEmbeddedReadyWait  = "ensemble.embedded.ready_wait"
)

const (
	DefaultRootNode           = "/flow-cc"
	DefaultEmbeddedClientPort = 2379
	DefaultEmbeddedPeerPort   = 2380
)

// Defaults returns the lowest-precedence layer. dataRoot is usually os.TempDir().
func Defaults(dataRoot string) MapSource {
	return MapSource{
		KeyRootNode:           DefaultRootNode,
		KeyEmbeddedClientPort: strconv.Itoa(DefaultEmbeddedClientPort),
		KeyEmbeddedPeerPort:   strconv.Itoa(DefaultEmbeddedPeerPort),
		KeyEmbeddedDataRoot:   dataRoot,
		KeyEmbeddedReadyWait:  "0",
	}
}
