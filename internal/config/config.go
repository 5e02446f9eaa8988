package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/paths"
	"github.com/thoreinstein/dotconf/internal/schema"
	"github.com/thoreinstein/dotconf/internal/store"
)

// Viper keys.
const (
	KeyVersion       = "version"
	KeyEnvFile       = "env_file"
	KeyPendingSuffix = "pending_suffix"
	KeyFormat        = "format"
	KeySchemaFile    = "schema_file"
	KeyOptions       = "options"
)

// Defaults.
const (
	DefaultEnvFile       = ".env"
	DefaultPendingSuffix = ".new"
	DefaultFormat        = "alfred"
)

// ErrNoOptions is returned when neither a schema file nor inline options are configured.
var ErrNoOptions = errors.New("no options declared")

// Config represents the top-level configuration structure.
type Config struct {
	Version       int                  `mapstructure:"version" yaml:"version" jsonschema:"enum=1,default=1"`
	EnvFile       string               `mapstructure:"env_file" yaml:"env_file" jsonschema:"default=.env,description=Env file to edit; relative paths resolve against this file"`
	PendingSuffix string               `mapstructure:"pending_suffix" yaml:"pending_suffix" jsonschema:"default=.new,description=Suffix of the file that receives changes while env_file is missing"`
	Format        string               `mapstructure:"format" yaml:"format" jsonschema:"enum=alfred,enum=json,enum=text,default=alfred"`
	SchemaFile    string               `mapstructure:"schema_file" yaml:"schema_file,omitempty" jsonschema:"description=YAML or TOML file declaring options"`
	Options       []schema.Declaration `mapstructure:"options" yaml:"options,omitempty" jsonschema:"description=Inline option declarations"`

	// dir is the directory of the config file that was read, if any.
	// Relative paths resolve against it.
	dir string
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("DOTCONF")
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeyEnvFile, DefaultEnvFile)
	viper.SetDefault(KeyPendingSuffix, DefaultPendingSuffix)
	viper.SetDefault(KeyFormat, DefaultFormat)
	viper.SetDefault(KeySchemaFile, "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is
// an error. If path is empty, the search paths are tried and defaults are used
// when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "config file %s", path), errors.ErrNotFound)
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if used := viper.ConfigFileUsed(); used != "" {
		if abs, err := filepath.Abs(used); err == nil {
			used = abs
		}
		cfg.dir = filepath.Dir(used)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:       1,
		EnvFile:       DefaultEnvFile,
		PendingSuffix: DefaultPendingSuffix,
		Format:        DefaultFormat,
	}
}

// Dir returns the directory of the config file that was read, or "".
func (c *Config) Dir() string { return c.dir }

// Locations returns the primary and pending env file paths.
func (c *Config) Locations() store.Locations {
	envFile := c.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	primary := paths.ResolveRelative(c.dir, envFile)
	return store.Locations{
		Primary: primary,
		Pending: paths.PendingPath(primary, c.PendingSuffix),
	}
}

// Schema builds the option schema. Options from the schema file come first,
// followed by the inline options.
func (c *Config) Schema() (*schema.Schema, error) {
	var opts []schema.Option

	if c.SchemaFile != "" {
		fromFile, err := schema.LoadFile(paths.ResolveRelative(c.dir, c.SchemaFile))
		if err != nil {
			return nil, err
		}
		opts = append(opts, fromFile.Options()...)
	}

	if len(c.Options) > 0 {
		inline, err := schema.FromDeclarations(c.Options)
		if err != nil {
			return nil, err
		}
		opts = append(opts, inline.Options()...)
	}

	if len(opts) == 0 {
		return nil, ErrNoOptions
	}
	return schema.New(opts...)
}
