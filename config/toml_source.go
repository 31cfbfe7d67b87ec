package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML flattens a TOML document the same way ParseYAML does:
// tables become dotted key prefixes and arrays are joined with commas.
func ParseTOML(data []byte) (MapSource, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	out := MapSource{}
	if err := flatten(out, "", root); err != nil {
		return nil, err
	}
	return out, nil
}
