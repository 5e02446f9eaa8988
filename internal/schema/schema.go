package schema

import (
	"strings"

	"github.com/thoreinstein/dotconf/internal/errors"
)

// Kind distinguishes single-valued options from key/value options.
type Kind uint8

const (
	// KindScalar options hold one optional string.
	KindScalar Kind = iota + 1
	// KindMap options hold an ordered set of key/string pairs stored as a JSON object.
	KindMap
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// ParseKind converts a declared kind name into a Kind.
// "string" is accepted for scalars, "array" and "object" for maps.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "string":
		return KindScalar, nil
	case "map", "array", "object":
		return KindMap, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// Validation errors for schema construction.
var (
	ErrEmptyName     = errors.New("option name is empty")
	ErrInvalidName   = errors.New("option name is not a valid env key")
	ErrDuplicateName = errors.New("duplicate option name")
	ErrUnknownKind   = errors.New("unknown option kind")
)

// Option is one declared configurable entry.
type Option struct {
	Name        string
	Kind        Kind
	Description string
}

// Schema is the read-only set of declared options.
type Schema struct {
	options []Option
	index   map[string]int
}

// ValidName reports whether name can be stored as an env file key:
// a letter or underscore followed by letters, digits, '_', '.' or '-'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '.' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// New builds a Schema from options in declaration order.
// Empty, invalid and duplicate names are rejected, as are unknown kinds.
func New(options ...Option) (*Schema, error) {
	s := &Schema{
		options: make([]Option, 0, len(options)),
		index:   make(map[string]int, len(options)),
	}

	var errs []error
	for i, opt := range options {
		if opt.Name == "" {
			errs = append(errs, errors.Wrapf(ErrEmptyName, "option #%d", i+1))
			continue
		}
		if !ValidName(opt.Name) {
			errs = append(errs, errors.Wrapf(ErrInvalidName, "%q", opt.Name))
			continue
		}
		if opt.Kind != KindScalar && opt.Kind != KindMap {
			errs = append(errs, errors.Wrapf(ErrUnknownKind, "option %q", opt.Name))
			continue
		}
		if _, dup := s.index[opt.Name]; dup {
			errs = append(errs, errors.Wrapf(ErrDuplicateName, "%q", opt.Name))
			continue
		}
		s.index[opt.Name] = len(s.options)
		s.options = append(s.options, opt)
	}

	if len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "building schema"), errors.ErrInvalidSchema)
	}
	return s, nil
}

// Lookup finds an option by exact, case-sensitive name.
func (s *Schema) Lookup(name string) (Option, bool) {
	if s == nil {
		return Option{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Option{}, false
	}
	return s.options[i], true
}

// Options returns the options in declaration order.
func (s *Schema) Options() []Option {
	if s == nil {
		return nil
	}
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Len returns the number of declared options.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.options)
}
