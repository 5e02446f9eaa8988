package store

import (
	"strings"

	"github.com/thoreinstein/dotconf/internal/schema"
)

// line is one physical line of an env file. Lines that are not assignments
// carry only raw.
type line struct {
	raw    string
	key    string
	value  string
	export bool
}

func (l line) isAssignment() bool { return l.key != "" }

func parseLine(raw string) line {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "#") {
		return line{raw: raw}
	}

	l := line{raw: raw}
	if rest, ok := strings.CutPrefix(s, "export "); ok {
		s = strings.TrimLeft(rest, " \t")
		l.export = true
	}

	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || !schema.ValidName(key) {
		return line{raw: raw}
	}

	l.key = key
	l.value = parseValue(strings.TrimSpace(value))
	return l
}

func parseValue(v string) string {
	if len(v) >= 2 {
		switch v[0] {
		case '"':
			if end, ok := closingQuote(v); ok {
				return unescape(v[1:end])
			}
		case '\'':
			if end := strings.IndexByte(v[1:], '\''); end >= 0 {
				return v[1 : end+1]
			}
		}
	}

	// Unquoted values end at an inline comment.
	if i := strings.Index(v, " #"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	return v
}

// closingQuote finds the unescaped double quote ending v.
func closingQuote(v string) (int, bool) {
	for i := 1; i < len(v); i++ {
		switch v[i] {
		case '\\':
			i++
		case '"':
			return i, true
		}
	}
	return 0, false
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func needsQuoting(v string) bool {
	if v == "" {
		return false
	}
	if strings.ContainsAny(v, "\n\r#") {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	return v[0] == '"' || v[0] == '\''
}

func quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatAssignment(key, value string, export bool) string {
	if needsQuoting(value) {
		value = quote(value)
	}
	s := key + "=" + value
	if export {
		s = "export " + s
	}
	return s
}
