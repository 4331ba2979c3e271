package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// ParseConfig loads a configuration file, validates it and resolves its
// paths against the file's directory.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, uierrors.NewParseError(path, 0, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	cfg.ResolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes and validates a document over the defaults. path is only
// used in errors.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, uierrors.NewParseError(path, uierrors.YAMLLine(err), err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
