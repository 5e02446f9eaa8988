// Package prompt provides line-based prompts for the interactive configure
// flow when no terminal UI is available.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/render"
)

// Sentinel errors for item selection.
var (
	ErrNoItems            = errors.New("no items to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector reads choices and free text from a line-oriented input.
type Selector struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewSelector creates a Selector reading stdin. Prompts go to stderr so
// stdout only carries command output.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stderr)
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// SelectItem prompts the user to choose one of items and returns its index.
//
// Returns:
//   - ErrNoItems if the list is empty
//   - 0 if only one item exists (auto-selects without prompting)
//   - The selected index based on user input, the first item on empty input
//   - ErrInvalidSelection if the selection is not a number in range
//   - ErrSelectionCancelled if input ends (e.g., Ctrl+D)
func (s *Selector) SelectItem(label string, items []render.Item) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}
	if len(items) == 1 {
		return 0, nil
	}

	fmt.Fprintf(s.writer, "%s:\n", label)
	for i, it := range items {
		if it.Subtitle != "" {
			fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, it.Title, it.Subtitle)
		} else {
			fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, it.Title)
		}
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := s.readLine()
	if err != nil {
		return 0, err
	}
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// 1-indexed
	if selection < 1 || selection > len(items) {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(items))
	}

	return selection - 1, nil
}

// Ask prompts for one line of free text. Surrounding whitespace is trimmed
// and an empty answer is returned as "".
func (s *Selector) Ask(label string) (string, error) {
	fmt.Fprintf(s.writer, "%s: ", label)
	return s.readLine()
}

func (s *Selector) readLine() (string, error) {
	input, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
		// A last line without a newline still counts.
		if input == "" {
			return "", ErrSelectionCancelled
		}
	}
	return strings.TrimSpace(input), nil
}
