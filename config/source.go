// Package config provides the property sources the binder and the startup code read from.
// Keys are dotted lower-case paths such as "ensemble.host" or "zone.z1.max_agents".
package config

import (
	"sort"

	"zonekeeper/interfaces"
)

var (
	_ interfaces.ConfigSource = MapSource(nil)
	_ interfaces.ConfigSource = (*EnvSource)(nil)
	_ interfaces.ConfigSource = Layered(nil)
)

// MapSource is an in-memory property snapshot.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the snapshot keys in lexical order.
func (m MapSource) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Layered looks a key up in each source in order and returns the first hit.
// Nil sources are skipped, so optional layers can be passed unconditionally.
type Layered []interfaces.ConfigSource

func (l Layered) Lookup(key string) (string, bool) {
	for _, src := range l {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
