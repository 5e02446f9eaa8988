package engine

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/schema"
)

// ErrMalformedMap is returned when a map option's stored text is not a JSON object.
// Callers treat such values as absent.
var ErrMalformedMap = errors.New("stored map value is not a JSON object")

// Entry is one key/value pair of a map option.
type Entry struct {
	Key   string
	Value string
}

// Value is the stored state of one option: absent, a scalar string, or an
// ordered map. The zero Value is absent and kind-less.
type Value struct {
	kind    schema.Kind
	present bool
	text    string
	entries *orderedmap.OrderedMap[string, string]
}

// Absent returns the absent value of the given kind.
func Absent(kind schema.Kind) Value {
	return Value{kind: kind}
}

// ScalarOf returns a present scalar. The empty string is a real value.
func ScalarOf(s string) Value {
	return Value{kind: schema.KindScalar, present: true, text: s}
}

// EmptyMap returns a present map with no entries.
func EmptyMap() Value {
	return Value{kind: schema.KindMap, present: true, entries: orderedmap.New[string, string]()}
}

// MapOf returns a present map holding entries in the given order.
// A repeated key keeps its first position and its last value.
func MapOf(entries ...Entry) Value {
	v := EmptyMap()
	for _, e := range entries {
		v.entries.Set(e.Key, e.Value)
	}
	return v
}

// Kind returns the option kind this value belongs to.
func (v Value) Kind() schema.Kind { return v.kind }

// Present reports whether the option exists in the store.
func (v Value) Present() bool { return v.present }

// Text returns the scalar text; it is empty for maps and absent values.
func (v Value) Text() string { return v.text }

// Len returns the number of map entries.
func (v Value) Len() int {
	if v.entries == nil {
		return 0
	}
	return v.entries.Len()
}

// Get returns the value stored under key in a map.
func (v Value) Get(key string) (string, bool) {
	if v.entries == nil {
		return "", false
	}
	return v.entries.Get(key)
}

// Entries returns the map entries in order.
func (v Value) Entries() []Entry {
	if v.entries == nil {
		return nil
	}
	out := make([]Entry, 0, v.entries.Len())
	for pair := v.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Equal reports whether both values have the same kind, presence and content.
// Map entries must also appear in the same order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.present != o.present || v.text != o.text {
		return false
	}
	a, b := v.Entries(), o.Entries()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v Value) clone() Value {
	out := v
	if v.kind == schema.KindMap {
		out.entries = orderedmap.New[string, string](v.Len())
		for _, e := range v.Entries() {
			out.entries.Set(e.Key, e.Value)
		}
	}
	return out
}

// Encode returns the canonical store text of v.
// ok is false for absent values, meaning the key must be removed from the store.
// Maps encode as compact JSON objects in entry order.
func (v Value) Encode() (text string, ok bool) {
	if !v.present {
		return "", false
	}
	if v.kind != schema.KindMap {
		return v.text, true
	}
	entries := v.entries
	if entries == nil {
		entries = orderedmap.New[string, string]()
	}
	data, err := entries.MarshalJSON()
	if err != nil {
		// string keys and values always marshal
		return "{}", true
	}
	return string(data), true
}

// String renders v for display: the scalar text or the encoded map.
func (v Value) String() string {
	s, _ := v.Encode()
	return s
}

// Decode interprets raw store text for an option of the given kind.
// ok reports whether the key exists in the store.
//
// Map text must be a JSON object; a JSON array is accepted as an object keyed
// by index, which covers the "[]" written for emptied maps by older tools.
// Non-string JSON members are kept as their string or raw JSON form.
func Decode(kind schema.Kind, raw string, ok bool) (Value, error) {
	if !ok {
		return Absent(kind), nil
	}
	if kind != schema.KindMap {
		return ScalarOf(raw), nil
	}

	trimmed := strings.TrimSpace(raw)
	if !gjson.Valid(trimmed) {
		return Absent(kind), errors.Wrapf(ErrMalformedMap, "%q", truncate(raw, 40))
	}

	parsed := gjson.Parse(trimmed)
	if !parsed.IsObject() && !parsed.IsArray() {
		return Absent(kind), errors.Wrapf(ErrMalformedMap, "%q", truncate(raw, 40))
	}

	v := EmptyMap()
	i := 0
	parsed.ForEach(func(key, member gjson.Result) bool {
		k := key.String()
		if parsed.IsArray() {
			k = strconv.Itoa(i)
		}
		i++
		v.entries.Set(k, memberText(member))
		return true
	})
	return v, nil
}

func memberText(r gjson.Result) string {
	if r.Type == gjson.JSON {
		return r.Raw
	}
	return r.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
