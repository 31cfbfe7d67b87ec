package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a properties file, choosing the parser by extension (.yaml, .yml or .toml).
func LoadFile(path string) (MapSource, error) {
	var parse func([]byte) (MapSource, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}
