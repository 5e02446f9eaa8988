package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/paths"
	"github.com/thoreinstein/dotconf/internal/schema"
	"github.com/thoreinstein/dotconf/pkg/fileutil"
)

// ErrConfigExists is returned by WriteFile when the target exists and
// overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// Example returns a starter configuration with one option of each kind.
func Example() *Config {
	cfg := Default()
	cfg.Options = []schema.Declaration{
		{Name: "APP_ENV", Kind: "scalar", Description: "Deployment environment"},
		{Name: "FEATURES", Kind: "map", Description: "Feature flags"},
	}
	return cfg
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling config")
	}
	return data, nil
}

// WriteFile writes cfg as YAML to path, creating parent directories.
func WriteFile(path string, cfg *Config, force bool) error {
	if !force && fileutil.Exists(path) {
		return errors.Wrapf(ErrConfigExists, "%s", path)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	perm := fileutil.ModeOr(path, fileutil.DefaultFilePerm)
	return fileutil.AtomicWriteFile(path, data, perm)
}

// JSONSchema returns a JSON Schema describing the config file, for editors
// that validate YAML against one.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "yaml",
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "dotconf configuration"
	s.Description = "Options dotconf may edit and the env file that stores them"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema")
	}
	return append(data, '\n'), nil
}

// DefaultPath returns the config file path in the dotconf config directory.
func DefaultPath() string {
	return paths.ConfigFile()
}
