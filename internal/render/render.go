package render

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/dotconf/internal/engine"
	"github.com/thoreinstein/dotconf/internal/schema"
)

// Unset is shown in place of a value that is not in the store.
const Unset = "<unset>"

// Item is one suggestion for the launcher.
type Item struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	Autocomplete string `json:"autocomplete"`
	Valid        bool   `json:"valid"`
}

// Items renders candidates in order.
func Items(candidates []engine.Candidate) []Item {
	items := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, ItemFor(c))
	}
	return items
}

// ItemFor renders a single candidate.
func ItemFor(c engine.Candidate) Item {
	item := Item{
		Autocomplete: autocomplete(c.Tokens),
		Valid:        c.Valid,
	}
	if c.AwaitsKey() {
		// Leaves the cursor where the key goes.
		item.Autocomplete += " "
	}
	name := c.Option.Name

	switch c.Step {
	case engine.StepOption:
		item.Title = name
		item.Subtitle = c.Option.Description

	case engine.StepVerb:
		item.Title = verbTitle(c.Option, c.Verb)

	default:
		item.Title, item.Subtitle = describe(c)
	}
	return item
}

func verbTitle(opt schema.Option, verb engine.Verb) string {
	if opt.Kind == schema.KindMap {
		switch verb {
		case engine.VerbSet:
			return fmt.Sprintf("Set key for %s[]", opt.Name)
		case engine.VerbRemove:
			return fmt.Sprintf("Remove key from %s[]", opt.Name)
		default:
			return fmt.Sprintf("Unset %s[]", opt.Name)
		}
	}
	if verb == engine.VerbSet {
		return "Set " + opt.Name
	}
	return "Unset " + opt.Name
}

func describe(c engine.Candidate) (title, subtitle string) {
	name := c.Option.Name

	if !c.HasOperation {
		return fmt.Sprintf("Set key for %s[]", name), fmt.Sprintf("Type a key to set in %s", name)
	}

	op := c.Operation
	switch op.Op() {
	case engine.OpSetScalar:
		return fmt.Sprintf("%s = %s", name, q(op.Value())),
			fmt.Sprintf("Set %s from %s to %s", name, quoted(c.Current), q(op.Value()))

	case engine.OpUnsetScalar:
		return "Remove " + name,
			fmt.Sprintf("Remove %s with %s", name, quoted(c.Current))

	case engine.OpSetMapEntry:
		return fmt.Sprintf("%s[%s] = %s", name, op.Key(), q(op.Value())),
			fmt.Sprintf("Set %s for Parameter %s from %s to %s", op.Key(), name, entry(c.Current, op.Key()), q(op.Value()))

	case engine.OpRemoveMapEntry:
		return fmt.Sprintf("Remove %s[%s]", name, op.Key()),
			fmt.Sprintf("Remove %s for Parameter %s with %s", op.Key(), name, entry(c.Current, op.Key()))

	default: // OpUnsetMap
		return fmt.Sprintf("Unset %s[]", name),
			fmt.Sprintf("Unset %s with %s", name, quoted(c.Current))
	}
}

// q wraps s in plain double quotes. Inner quotes are not escaped, so map
// JSON reads as stored.
func q(s string) string {
	return `"` + s + `"`
}

func quoted(v engine.Value) string {
	if !v.Present() {
		return Unset
	}
	return q(v.String())
}

func entry(v engine.Value, key string) string {
	s, ok := v.Get(key)
	if !ok {
		return Unset
	}
	return q(s)
}

func autocomplete(tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
