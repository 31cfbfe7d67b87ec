package service

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// FlatName converts a declared attribute name to its flattened configuration form:
// AgentCount and agentCount both become agent_count, ProviderURL becomes provider_url.
// Digits stay attached to the word they follow: Ipv6Enabled becomes ipv6_enabled, Level2Cache level2_cache.
func FlatName(name string) string {
	parts := strings.Split(strcase.ToSnake(name), "_")
	out := parts[:0]
	for _, p := range parts {
		if len(out) > 0 && p != "" && isDigits(p) {
			out[len(out)-1] += p
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, "_")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FlatKey joins a namespace prefix and a flattened attribute name with ".".
func FlatKey(prefix, name string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
