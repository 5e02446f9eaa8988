package engine

import "strings"

// Command is a partially typed user command: option, verb, key and free
// value words, each possibly missing.
type Command struct {
	Option    string
	Operation string
	Key       string
	Values    []string
}

// ParseArgs assigns positional arguments to a Command:
// option, operation, key, then every remaining word as a value token.
func ParseArgs(args []string) Command {
	var c Command
	if len(args) > 0 {
		c.Option = args[0]
	}
	if len(args) > 1 {
		c.Operation = args[1]
	}
	if len(args) > 2 {
		c.Key = args[2]
	}
	if len(args) > 3 {
		c.Values = append([]string(nil), args[3:]...)
	}
	return c
}

// Value joins the value tokens with single spaces.
func (c Command) Value() string {
	return strings.Join(c.Values, " ")
}

// scalarValue is the new text of a scalar set. Scalars have no key, so the
// key token is the first word of the value.
func (c Command) scalarValue() string {
	return strings.Join(c.scalarWords(), " ")
}

func (c Command) scalarWords() []string {
	words := make([]string, 0, len(c.Values)+1)
	if c.Key != "" {
		words = append(words, c.Key)
	}
	return append(words, c.Values...)
}
