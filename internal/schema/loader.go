package schema

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/pkg/fileutil"
)

// ErrUnsupportedFormat is returned for schema files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported schema file format")

// Declaration is the on-disk form of an option.
// The same shape is used by the inline `options` list of the tool config.
type Declaration struct {
	Name        string `json:"name" yaml:"name" toml:"name" mapstructure:"name" jsonschema:"required"`
	Kind        string `json:"kind" yaml:"kind" toml:"kind" mapstructure:"kind" jsonschema:"required,enum=scalar,enum=map,enum=string,enum=array,enum=object"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" mapstructure:"description"`
}

type document struct {
	Options []Declaration `yaml:"options" toml:"options"`
}

// FromDeclarations converts declarations into a Schema.
func FromDeclarations(decls []Declaration) (*Schema, error) {
	opts := make([]Option, 0, len(decls))
	var errs []error
	for _, d := range decls {
		kind, err := ParseKind(d.Kind)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "option %q", d.Name))
			continue
		}
		opts = append(opts, Option{
			Name:        strings.TrimSpace(d.Name),
			Kind:        kind,
			Description: d.Description,
		})
	}
	if len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "reading declarations"), errors.ErrInvalidSchema)
	}
	return New(opts...)
}

// LoadFile reads a schema from a .yaml, .yml or .toml file.
func LoadFile(path string) (*Schema, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// ParseYAML decodes a schema document of the form `options: [{name, kind}]`.
// Unknown fields are rejected so typos in a declaration surface early.
func ParseYAML(data []byte) (*Schema, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing yaml schema")
	}
	return FromDeclarations(doc.Options)
}

// ParseTOML decodes a schema document made of [[options]] tables.
func ParseTOML(data []byte) (*Schema, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parsing toml schema")
	}
	return FromDeclarations(doc.Options)
}
