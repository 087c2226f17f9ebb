package config

import (
	"path/filepath"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a filesystem path that is resolved relative to the directory
// of the config file it was read from.
type CfgPath string

// unmarshalBase is the directory of the config file currently being parsed.
// Parse sets it before decoding; it is not safe for concurrent parsing.
var unmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	if path == "" || filepath.IsAbs(path) {
		*c = CfgPath(path)
	} else {
		*c = CfgPath(filepath.Join(unmarshalBase, path))
	}
	return nil
}

func (c CfgPath) String() string {
	return string(c)
}
