package interfaces

// ConfigSource is a read-only flat configuration lookup (keys like "ensemble.host" or "zone.z1.max_agents").
// Implementations must be safe for concurrent reads; nothing in this service writes through it.
//
//go:generate moq -stub -out mock/config_source.go -pkg mock . ConfigSource
type ConfigSource interface {
	// Lookup returns the raw value for key.
	// Returns:
	// 1) (value, true) when the key is configured (value may be empty);
	// 2) ("", false) when the key is absent.
	Lookup(key string) (string, bool)
}
