package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
)

// Format selects how items are written.
type Format string

// Supported formats.
const (
	// FormatAlfred writes a script filter document: {"items": [...]}.
	FormatAlfred Format = "alfred"
	// FormatJSON writes an indented JSON array.
	FormatJSON Format = "json"
	// FormatText writes a table for terminals.
	FormatText Format = "text"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported format names.
func Formats() []Format {
	return []Format{FormatAlfred, FormatJSON, FormatText}
}

// ParseFormat validates a format name. The empty string selects FormatAlfred.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatAlfred, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (want alfred, json or text)", s)
}

type alfredDocument struct {
	Items []Item `json:"items"`
}

// Write encodes items to w in the given format.
func Write(w io.Writer, format Format, items []Item) error {
	if items == nil {
		items = []Item{}
	}

	switch format {
	case FormatAlfred, "":
		return encodeJSON(w, alfredDocument{Items: items}, false)
	case FormatJSON:
		return encodeJSON(w, items, true)
	case FormatText:
		return writeText(w, items)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func encodeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding items")
	}
	return nil
}

func writeText(w io.Writer, items []Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No matches")
		return err
	}

	var header, mark *color.Color
	if logging.SupportsColor(w) {
		header = color.New(color.Bold)
		mark = color.New(color.FgGreen, color.Bold)
		header.EnableColor()
		mark.EnableColor()
	}
	paint := func(c *color.Color, s string) string {
		if c == nil {
			return s
		}
		return c.Sprint(s)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\t%s\n", paint(header, "TITLE"), paint(header, "DETAIL"), paint(header, "COMPLETE"))
	for _, it := range items {
		prefix := " "
		if it.Valid {
			prefix = paint(mark, "*")
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", prefix, it.Title, it.Subtitle, it.Autocomplete)
	}
	return tw.Flush()
}
