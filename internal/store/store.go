package store

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/paths"
	"github.com/thoreinstein/dotconf/pkg/fileutil"
)

// ErrNoPrimary is returned by Open when no primary path is configured.
var ErrNoPrimary = errors.New("no env file path configured")

// Locations are the two paths a store may live at.
type Locations struct {
	// Primary is the env file in use.
	Primary string
	// Pending receives changes while Primary does not exist.
	// Empty means Primary with the default ".new" suffix.
	Pending string
}

func (l Locations) pending() string {
	if l.Pending != "" {
		return l.Pending
	}
	return paths.PendingPath(l.Primary, "")
}

// File is an env file held in memory.
type File struct {
	lines         []line
	eol           string
	target        string
	bootstrapping bool
	changed       bool
}

// Open loads the store for loc.
//
// The primary file is used when it exists. Otherwise the pending file is read
// and written, so repeated changes before promotion accumulate in it. A file
// that cannot be read is logged and treated as empty.
func Open(ctx context.Context, loc Locations) (*File, error) {
	if loc.Primary == "" {
		return nil, ErrNoPrimary
	}
	logger := logging.FromContext(ctx)

	f := &File{target: loc.Primary}
	if !fileutil.Exists(loc.Primary) {
		f.target = loc.pending()
		f.bootstrapping = true
	}

	data, err := fileutil.ReadFileWithLimit(f.target)
	switch {
	case err == nil:
		f.lines, f.eol = parseLines(string(data))
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("env file not found, starting empty", "path", f.target)
	default:
		logger.Warn("env file unreadable, treating as empty", "path", f.target, "error", err)
	}

	logger.Log(ctx, logging.LevelTrace, "env file loaded",
		"path", f.target,
		"lines", len(f.lines),
		"bootstrapping", f.bootstrapping)
	return f, nil
}

// Parse builds an in-memory store from env file text. The result has no target
// and cannot be saved.
func Parse(text string) *File {
	lines, eol := parseLines(text)
	return &File{lines: lines, eol: eol}
}

// parseLines splits text into lines and reports its line ending, taken from
// the first line.
func parseLines(text string) ([]line, string) {
	eol := "\n"
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		eol = "\r\n"
	}
	if text == "" {
		return nil, eol
	}
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")
	out := make([]line, 0, len(raw))
	for _, r := range raw {
		if eol == "\r\n" {
			r = strings.TrimSuffix(r, "\r")
		}
		out = append(out, parseLine(r))
	}
	return out, eol
}

// Target returns the path Save writes to.
func (f *File) Target() string { return f.target }

// Bootstrapping reports whether the store lives at the pending path.
func (f *File) Bootstrapping() bool { return f.bootstrapping }

// Changed reports whether Set or Unset modified the content.
func (f *File) Changed() bool { return f.changed }

// Lookup returns the value of the last assignment of name.
func (f *File) Lookup(name string) (string, bool) {
	if i := f.last(name); i >= 0 {
		return f.lines[i].value, true
	}
	return "", false
}

func (f *File) last(name string) int {
	for i := len(f.lines) - 1; i >= 0; i-- {
		if f.lines[i].isAssignment() && f.lines[i].key == name {
			return i
		}
	}
	return -1
}

// Set assigns value to name. The last existing assignment is rewritten in
// place, keeping its export prefix; a new key is appended.
func (f *File) Set(name, value string) {
	i := f.last(name)
	if i >= 0 && f.lines[i].value == value {
		return
	}

	l := line{key: name, value: value}
	if i >= 0 {
		l.export = f.lines[i].export
	}
	l.raw = formatAssignment(name, value, l.export)

	if i >= 0 {
		f.lines[i] = l
	} else {
		f.lines = append(f.lines, l)
	}
	f.changed = true
}

// Unset removes every assignment of name. Other lines are kept.
func (f *File) Unset(name string) {
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.isAssignment() && l.key == name {
			f.changed = true
			continue
		}
		kept = append(kept, l)
	}
	f.lines = kept
}

// Put stores value when ok is true and removes name otherwise.
// The arguments match the result of encoding an option value.
func (f *File) Put(name, value string, ok bool) {
	if ok {
		f.Set(name, value)
		return
	}
	f.Unset(name)
}

// Bytes renders the file content using the line ending it was read with.
func (f *File) Bytes() []byte {
	if len(f.lines) == 0 {
		return nil
	}
	eol := f.eol
	if eol == "" {
		eol = "\n"
	}
	var b strings.Builder
	for _, l := range f.lines {
		b.WriteString(l.raw)
		b.WriteString(eol)
	}
	return []byte(b.String())
}

// Save rewrites the whole target file. Its permissions are kept; a new file
// is created private along with any missing parent directories.
func (f *File) Save() error {
	if f.target == "" {
		return errors.New("store has no target path")
	}

	if err := paths.EnsureDir(filepath.Dir(f.target), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", f.target)
	}

	perm := fileutil.ModeOr(f.target, fileutil.DefaultFilePerm)
	if err := fileutil.AtomicWriteFile(f.target, f.Bytes(), perm); err != nil {
		return errors.Wrapf(err, "writing %s", f.target)
	}
	return nil
}
