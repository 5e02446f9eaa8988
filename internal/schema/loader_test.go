package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func names(s *Schema) []string {
	var out []string
	for _, o := range s.Options() {
		out = append(out, o.Name)
	}
	return out
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "schema.yaml", `options:
  - name: configValue0
    kind: scalar
  - name: configValue1
    kind: string
  - name: configValue2
    kind: map
    description: key/value pairs
`)

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"configValue0", "configValue1", "configValue2"}, names(s))

	opt, ok := s.Lookup("configValue2")
	require.True(t, ok)
	assert.Equal(t, KindMap, opt.Kind)
	assert.Equal(t, "key/value pairs", opt.Description)
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "schema.toml", `[[options]]
name = "APP_ENV"
kind = "scalar"

[[options]]
name = "FEATURES"
kind = "map"
`)

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APP_ENV", "FEATURES"}, names(s))
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported extension",
			file:    "schema.json",
			content: `{}`,
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "bad kind",
			file:    "schema.yml",
			content: "options:\n  - name: A\n    kind: list\n",
			wantErr: ErrUnknownKind,
		},
		{
			name:    "duplicate names",
			file:    "schema.yml",
			content: "options:\n  - name: A\n    kind: map\n  - name: A\n    kind: scalar\n",
			wantErr: ErrDuplicateName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.file, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile_UnknownFieldRejected(t *testing.T) {
	_, err := LoadFile(writeFile(t, "schema.yaml", "options:\n  - name: A\n    kind: scalar\n    defualt: x\n"))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseYAML_Empty(t *testing.T) {
	s, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}
