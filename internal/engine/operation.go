package engine

import "github.com/thoreinstein/dotconf/internal/schema"

// Verb is the operation keyword typed by the user.
type Verb string

// Recognized verbs.
const (
	VerbSet    Verb = "set"
	VerbUnset  Verb = "unset"
	VerbRemove Verb = "remove"
)

// VerbsFor lists the verbs offered for a kind, in display order.
func VerbsFor(kind schema.Kind) []Verb {
	switch kind {
	case schema.KindScalar:
		return []Verb{VerbSet, VerbUnset}
	case schema.KindMap:
		return []Verb{VerbSet, VerbRemove, VerbUnset}
	default:
		return nil
	}
}

// ParseVerb recognizes a verb token valid for kind.
func ParseVerb(kind schema.Kind, token string) (Verb, bool) {
	for _, v := range VerbsFor(kind) {
		if string(v) == token {
			return v, true
		}
	}
	return "", false
}

// OpKind identifies a concrete mutation.
type OpKind uint8

// Mutations. The first two apply to scalars, the rest to maps.
const (
	OpSetScalar OpKind = iota + 1
	OpUnsetScalar
	OpSetMapEntry
	OpRemoveMapEntry
	OpUnsetMap
)

// Operation is a fully specified mutation of one option.
// Build it with the constructors below; the zero Operation is invalid.
type Operation struct {
	kind  OpKind
	key   string
	value string
}

// SetScalar replaces a scalar with v. An empty v is stored as an empty value.
func SetScalar(v string) Operation { return Operation{kind: OpSetScalar, value: v} }

// UnsetScalar removes a scalar from the store.
func UnsetScalar() Operation { return Operation{kind: OpUnsetScalar} }

// SetMapEntry inserts or overwrites one map entry.
func SetMapEntry(key, v string) Operation {
	return Operation{kind: OpSetMapEntry, key: key, value: v}
}

// RemoveMapEntry deletes one map entry.
func RemoveMapEntry(key string) Operation { return Operation{kind: OpRemoveMapEntry, key: key} }

// UnsetMap removes the whole map from the store.
func UnsetMap() Operation { return Operation{kind: OpUnsetMap} }

// Unset returns the whole-option removal for kind.
func Unset(kind schema.Kind) Operation {
	if kind == schema.KindMap {
		return UnsetMap()
	}
	return UnsetScalar()
}

// Op returns the mutation identifier.
func (o Operation) Op() OpKind { return o.kind }

// Key returns the map key, empty for scalar and whole-map operations.
func (o Operation) Key() string { return o.key }

// Value returns the text being written by a set operation.
func (o Operation) Value() string { return o.value }

// Kind returns the option kind the operation applies to.
func (o Operation) Kind() schema.Kind {
	switch o.kind {
	case OpSetScalar, OpUnsetScalar:
		return schema.KindScalar
	case OpSetMapEntry, OpRemoveMapEntry, OpUnsetMap:
		return schema.KindMap
	default:
		return 0
	}
}

// Verb returns the keyword that produces this operation.
func (o Operation) Verb() Verb {
	switch o.kind {
	case OpSetScalar, OpSetMapEntry:
		return VerbSet
	case OpRemoveMapEntry:
		return VerbRemove
	default:
		return VerbUnset
	}
}
