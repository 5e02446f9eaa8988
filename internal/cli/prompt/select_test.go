package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf/internal/render"
)

var items = []render.Item{
	{Title: "Set configValue0", Autocomplete: "configValue0 set"},
	{Title: "Unset configValue0", Subtitle: "now test0", Autocomplete: "configValue0 unset"},
}

func TestSelectItem_EmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectItem("Choose", nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestSelectItem_SingleItem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	idx, err := s.SelectItem("Choose", items[:1])
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Zero(t, buf.Len(), "single item should not prompt")
}

func TestSelectItem_ValidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantIdx int
	}{
		{"explicit first", "1\n", 0},
		{"explicit second", "2\n", 1},
		{"default on empty", "\n", 0},
		{"whitespace trimmed", "  2  \n", 1},
		{"no trailing newline", "2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			idx, err := s.SelectItem("Choose", items)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIdx, idx)

			out := buf.String()
			assert.Contains(t, out, "Choose:")
			assert.Contains(t, out, "[1] Set configValue0\n")
			assert.Contains(t, out, "[2] Unset configValue0 (now test0)\n")
			assert.Contains(t, out, "Select [1]: ")
		})
	}
}

func TestSelectItem_InvalidSelection(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"abc\n", "0\n", "3\n", "-1\n"} {
		var buf bytes.Buffer
		s := NewSelectorWithIO(strings.NewReader(input), &buf)

		_, err := s.SelectItem("Choose", items)
		assert.ErrorIs(t, err, ErrInvalidSelection, "input %q", input)
	}
}

func TestSelectItem_Cancelled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectItem("Choose", items)
	assert.ErrorIs(t, err, ErrSelectionCancelled)
}

func TestAsk_ReadsSuccessiveLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("2\n  new value  \n"), &buf)

	idx, err := s.SelectItem("Choose", items)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	answer, err := s.Ask("Value")
	require.NoError(t, err)
	assert.Equal(t, "new value", answer)
	assert.Contains(t, buf.String(), "Value: ")

	_, err = s.Ask("Again")
	assert.ErrorIs(t, err, ErrSelectionCancelled)
}
