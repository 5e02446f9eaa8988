package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/schema"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		kind    schema.Kind
		raw     string
		ok      bool
		want    Value
		wantErr bool
	}{
		{"missing scalar", schema.KindScalar, "", false, Absent(schema.KindScalar), false},
		{"empty scalar is present", schema.KindScalar, "", true, ScalarOf(""), false},
		{"scalar text", schema.KindScalar, "test0", true, ScalarOf("test0"), false},
		{"scalar keeps braces", schema.KindScalar, `{"a":"b"}`, true, ScalarOf(`{"a":"b"}`), false},
		{"missing map", schema.KindMap, "", false, Absent(schema.KindMap), false},
		{"empty object", schema.KindMap, "{}", true, EmptyMap(), false},
		{"empty array", schema.KindMap, "[]", true, EmptyMap(), false},
		{
			"object keeps order",
			schema.KindMap,
			`{"configKey4":"test4","configKey0":"test0"}`,
			true,
			MapOf(Entry{"configKey4", "test4"}, Entry{"configKey0", "test0"}),
			false,
		},
		{
			"non string members",
			schema.KindMap,
			`{"n":1,"b":true,"o":{"x":"y"}}`,
			true,
			MapOf(Entry{"n", "1"}, Entry{"b", "true"}, Entry{"o", `{"x":"y"}`}),
			false,
		},
		{"array keyed by index", schema.KindMap, `["a","b"]`, true, MapOf(Entry{"0", "a"}, Entry{"1", "b"}), false},
		{"not json", schema.KindMap, "test0", true, Absent(schema.KindMap), true},
		{"json string", schema.KindMap, `"text"`, true, Absent(schema.KindMap), true},
		{"empty text", schema.KindMap, "", true, Absent(schema.KindMap), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.kind, tt.raw, tt.ok)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedMap))
			} else {
				require.NoError(t, err)
			}
			assert.True(t, tt.want.Equal(got), "got %v (present=%v)", got, got.Present())
		})
	}
}

func TestValue_Encode(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{"absent scalar", Absent(schema.KindScalar), "", false},
		{"absent map", Absent(schema.KindMap), "", false},
		{"empty scalar", ScalarOf(""), "", true},
		{"scalar", ScalarOf("abc def"), "abc def", true},
		{"empty map", EmptyMap(), "{}", true},
		{"map", MapOf(Entry{"configKey0", "test0"}, Entry{"configKey4", "test4"}), `{"configKey0":"test0","configKey4":"test4"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Encode()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_MapRoundTrip(t *testing.T) {
	written := MapOf(Entry{"z", "last"}, Entry{"a", `quote " and \ slash`}, Entry{"m", ""})
	text, ok := written.Encode()
	require.True(t, ok)

	read, err := Decode(schema.KindMap, text, true)
	require.NoError(t, err)
	assert.True(t, written.Equal(read))
	assert.Equal(t, written.Entries(), read.Entries())
}

func TestMapOf_RepeatedKey(t *testing.T) {
	v := MapOf(Entry{"a", "1"}, Entry{"b", "2"}, Entry{"a", "3"})
	assert.Equal(t, []Entry{{"a", "3"}, {"b", "2"}}, v.Entries())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Absent(schema.KindScalar).Equal(Absent(schema.KindScalar)))
	assert.False(t, Absent(schema.KindScalar).Equal(ScalarOf("")))
	assert.False(t, Absent(schema.KindScalar).Equal(Absent(schema.KindMap)))
	assert.False(t, MapOf(Entry{"a", "1"}, Entry{"b", "2"}).Equal(MapOf(Entry{"b", "2"}, Entry{"a", "1"})))
	assert.False(t, EmptyMap().Equal(Absent(schema.KindMap)))
}
