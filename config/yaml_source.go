package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ParseYAML flattens a YAML document into dotted keys.
//
//	ensemble:
//	  host: localhost:2379
//	  embedded: {client_port: 2379}
//	zone.z1.tags: [gpu, linux]
//
// yields ensemble.host, ensemble.embedded.client_port and zone.z1.tags="gpu,linux".
// Sequences are joined with commas; null values are dropped.
func ParseYAML(data []byte) (MapSource, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out := MapSource{}
	if err := flatten(out, "", root); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(out MapSource, prefix string, node any) error {
	switch v := node.(type) {
	case nil:
		return nil
	case map[string]any:
		for k, child := range v {
			if err := flatten(out, joinKey(prefix, k), child); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for k, child := range v {
			if err := flatten(out, joinKey(prefix, cast.ToString(k)), child); err != nil {
				return err
			}
		}
		return nil
	case []any:
		items := make([]string, 0, len(v))
		for i, item := range v {
			s, err := cast.ToStringE(item)
			if err != nil {
				return fmt.Errorf("key %s[%d]: only scalar list items are supported", prefix, i)
			}
			items = append(items, s)
		}
		out[prefix] = strings.Join(items, ",")
		return nil
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("key %s: unsupported value of type %T", prefix, v)
		}
		out[prefix] = s
		return nil
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
