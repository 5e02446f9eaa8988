package engine

import "github.com/thoreinstein/dotconf/internal/schema"

// Snapshot is a read-only view of the persisted store.
type Snapshot interface {
	Lookup(name string) (string, bool)
}

// Step is how far a candidate advances a command.
type Step uint8

const (
	// StepOption proposes an option name.
	StepOption Step = iota + 1
	// StepVerb proposes an operation keyword.
	StepVerb
	// StepKey proposes a map key for set or remove.
	StepKey
	// StepApply is a fully specified operation.
	StepApply
)

// Candidate is one possible next step for a command.
type Candidate struct {
	Step   Step
	Option schema.Option
	Verb   Verb
	Key    string

	// Current is the option's stored value before any change.
	Current Value

	// Operation is set when the candidate names a concrete mutation; Next is
	// then the value it would produce.
	Operation    Operation
	HasOperation bool
	Next         Value

	// Valid marks the single executable candidate of a fully specified command.
	Valid bool

	// Tokens re-enter this candidate as a command. A candidate awaiting a
	// typed key re-enters as the same candidate; the next step is the key
	// itself.
	Tokens []string
}

// AwaitsKey reports whether the candidate asks for a map key that no
// existing entry can offer.
func (c Candidate) AwaitsKey() bool {
	return c.Step == StepKey && c.Key == ""
}

// CurrentValue decodes the stored value of opt from snap.
// A malformed map is reported along with an absent value.
func CurrentValue(opt schema.Option, snap Snapshot) (Value, error) {
	if snap == nil {
		return Absent(opt.Kind), nil
	}
	raw, ok := snap.Lookup(opt.Name)
	return Decode(opt.Kind, raw, ok)
}

func currentOrAbsent(opt schema.Option, snap Snapshot) Value {
	v, err := CurrentValue(opt, snap)
	if err != nil {
		return Absent(opt.Kind)
	}
	return v
}

// Resolve lists the candidates for cmd against the schema and store.
//
// Unknown options, verbs that do not apply to the option's kind, and
// removals with nothing to remove all yield no candidates. Only a fully
// specified command yields a Valid candidate, and then it is the only one.
func Resolve(s *schema.Schema, snap Snapshot, cmd Command) []Candidate {
	if cmd.Option == "" {
		return optionCandidates(s, snap)
	}

	opt, ok := s.Lookup(cmd.Option)
	if !ok {
		return nil
	}
	current := currentOrAbsent(opt, snap)

	if cmd.Operation == "" {
		verbs := VerbsFor(opt.Kind)
		out := make([]Candidate, 0, len(verbs))
		for _, verb := range verbs {
			out = append(out, Candidate{
				Step:    StepVerb,
				Option:  opt,
				Verb:    verb,
				Current: current,
				Tokens:  []string{opt.Name, string(verb)},
			})
		}
		return out
	}

	verb, ok := ParseVerb(opt.Kind, cmd.Operation)
	if !ok {
		return nil
	}

	switch {
	case verb == VerbUnset:
		return []Candidate{terminal(opt, current, Unset(opt.Kind), "", []string{opt.Name, string(verb)})}

	case opt.Kind == schema.KindScalar:
		tokens := append([]string{opt.Name, string(verb)}, cmd.scalarWords()...)
		return []Candidate{terminal(opt, current, SetScalar(cmd.scalarValue()), "", tokens)}

	case verb == VerbSet:
		return resolveMapSet(opt, current, cmd)

	default:
		return resolveMapRemove(opt, current, cmd)
	}
}

func optionCandidates(s *schema.Schema, snap Snapshot) []Candidate {
	opts := s.Options()
	out := make([]Candidate, 0, len(opts))
	for _, opt := range opts {
		out = append(out, Candidate{
			Step:    StepOption,
			Option:  opt,
			Current: currentOrAbsent(opt, snap),
			Tokens:  []string{opt.Name},
		})
	}
	return out
}

func resolveMapSet(opt schema.Option, current Value, cmd Command) []Candidate {
	if cmd.Key != "" {
		tokens := append([]string{opt.Name, string(VerbSet), cmd.Key}, cmd.Values...)
		return []Candidate{terminal(opt, current, SetMapEntry(cmd.Key, cmd.Value()), cmd.Key, tokens)}
	}

	if current.Len() == 0 {
		// Nothing to propose; the user has to type a key.
		return []Candidate{{
			Step:    StepKey,
			Option:  opt,
			Verb:    VerbSet,
			Current: current,
			Tokens:  []string{opt.Name, string(VerbSet)},
		}}
	}

	return keyCandidates(opt, current, VerbSet, func(key string) Operation {
		return SetMapEntry(key, "")
	})
}

func resolveMapRemove(opt schema.Option, current Value, cmd Command) []Candidate {
	if current.Len() == 0 {
		return nil
	}

	if cmd.Key != "" {
		if _, ok := current.Get(cmd.Key); !ok {
			return nil
		}
		tokens := []string{opt.Name, string(VerbRemove), cmd.Key}
		return []Candidate{terminal(opt, current, RemoveMapEntry(cmd.Key), cmd.Key, tokens)}
	}

	return keyCandidates(opt, current, VerbRemove, RemoveMapEntry)
}

func keyCandidates(opt schema.Option, current Value, verb Verb, build func(string) Operation) []Candidate {
	entries := current.Entries()
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		c := withOperation(Candidate{
			Step:    StepKey,
			Option:  opt,
			Verb:    verb,
			Key:     e.Key,
			Current: current,
			Tokens:  []string{opt.Name, string(verb), e.Key},
		}, build(e.Key))
		out = append(out, c)
	}
	return out
}

func terminal(opt schema.Option, current Value, op Operation, key string, tokens []string) Candidate {
	c := withOperation(Candidate{
		Step:    StepApply,
		Option:  opt,
		Verb:    op.Verb(),
		Key:     key,
		Current: current,
		Tokens:  tokens,
	}, op)
	c.Valid = c.HasOperation
	return c
}

func withOperation(c Candidate, op Operation) Candidate {
	next, err := Apply(c.Current, op)
	if err != nil {
		return c
	}
	c.Operation = op
	c.HasOperation = true
	c.Next = next
	return c
}

// Select returns the candidate to execute: the only candidate, when it is valid.
func Select(candidates []Candidate) (Candidate, bool) {
	if len(candidates) != 1 || !candidates[0].Valid {
		return Candidate{}, false
	}
	return candidates[0], true
}
