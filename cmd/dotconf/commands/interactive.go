package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/dotconf/internal/cli/prompt"
	"github.com/thoreinstein/dotconf/internal/engine"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/render"
	"github.com/thoreinstein/dotconf/internal/schema"
)

// fuzzyPicker selects with go-fuzzyfinder and reads free text line by line.
type fuzzyPicker struct {
	*prompt.Selector
}

// SelectItem opens the fuzzy finder over items.
func (p fuzzyPicker) SelectItem(label string, items []render.Item) (int, error) {
	if len(items) == 0 {
		return 0, prompt.ErrNoItems
	}

	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string {
			return items[i].Title
		},
		fuzzyfinder.WithHeader(label),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			it := items[i]
			return fmt.Sprintf("%s\n\nNext: dotconf configure %s", it.Subtitle, it.Autocomplete)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, prompt.ErrSelectionCancelled
		}
		return 0, errors.Wrap(err, "interactive selection failed")
	}
	return idx, nil
}

// newPicker uses the fuzzy finder on a terminal and numbered prompts otherwise.
func newPicker(in io.Reader, out io.Writer) picker {
	sel := prompt.NewSelectorWithIO(in, out)
	if logging.IsInteractive(in) && logging.IsTTY(out) {
		return fuzzyPicker{Selector: sel}
	}
	return sel
}

// runInteractiveWithIO walks a command to completion, one choice at a time,
// and applies it.
func runInteractiveWithIO(ctx context.Context, s *session, w io.Writer, p picker, args []string) error {
	logger := logging.FromContext(ctx)
	command := engine.ParseArgs(args)

	for {
		var err error
		command, err = askMissingText(s, p, command)
		if err != nil {
			return interactiveError(err)
		}

		candidates := s.resolve(command)
		if c, ok := engine.Select(candidates); ok {
			if err := s.apply(ctx, c); err != nil {
				return err
			}
			_, err := fmt.Fprintln(w, render.ItemFor(c).Subtitle)
			return err
		}

		if len(candidates) == 0 {
			return errors.NewUserError(
				errors.Newf("nothing matches %q", strings.Join(args, " ")),
				"Run 'dotconf options' to list the declared options")
		}

		idx, err := p.SelectItem(stepLabel(command), render.Items(candidates))
		if err != nil {
			return interactiveError(err)
		}

		next := candidates[idx]
		logger.Debug("interactive step", "tokens", next.Tokens)
		command = engine.ParseArgs(next.Tokens)
	}
}

// askMissingText prompts for the words a list cannot offer: the new value of
// a set, and the key for a map that has none yet.
func askMissingText(s *session, p picker, command engine.Command) (engine.Command, error) {
	if command.Operation != string(engine.VerbSet) {
		return command, nil
	}
	opt, ok := s.schema.Lookup(command.Option)
	if !ok {
		return command, nil
	}

	switch opt.Kind {
	case schema.KindScalar:
		if command.Key != "" {
			return command, nil
		}
		answer, err := p.Ask(fmt.Sprintf("New value for %s", opt.Name))
		if err != nil {
			return command, err
		}
		return withWords(command, answer), nil

	case schema.KindMap:
		if command.Key == "" {
			current, _ := engine.CurrentValue(opt, s.file)
			if current.Len() > 0 {
				return command, nil
			}
			key, err := p.Ask(fmt.Sprintf("Key to set in %s", opt.Name))
			if err != nil {
				return command, err
			}
			if key == "" || strings.ContainsAny(key, " \t") {
				return command, errors.Wrapf(prompt.ErrInvalidSelection, "key %q", key)
			}
			command.Key = key
		}
		if len(command.Values) > 0 {
			return command, nil
		}
		answer, err := p.Ask(fmt.Sprintf("Value for %s[%s]", opt.Name, command.Key))
		if err != nil {
			return command, err
		}
		command.Values = strings.Fields(answer)
		return command, nil
	}
	return command, nil
}

// withWords puts a typed scalar value into the key and value slots.
func withWords(command engine.Command, answer string) engine.Command {
	words := strings.Fields(answer)
	if len(words) == 0 {
		return command
	}
	command.Key = words[0]
	command.Values = words[1:]
	return command
}

func stepLabel(command engine.Command) string {
	switch {
	case command.Option == "":
		return "Option"
	case command.Operation == "":
		return "Operation for " + command.Option
	default:
		return "Key of " + command.Option
	}
}

func interactiveError(err error) error {
	if errors.Is(err, prompt.ErrSelectionCancelled) {
		return errors.NewUserError(err, "Nothing was changed")
	}
	return errors.NewUserError(err, "Run 'dotconf configure' without --interactive to see the suggestions")
}
