package engine

import (
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/schema"
)

// Apply computes the value that results from running op against current.
// It performs no I/O and never modifies current.
//
// A zero (kind-less) current value is treated as absent. Any other kind
// mismatch between current and op is a programming error.
func Apply(current Value, op Operation) (Value, error) {
	if current.kind == 0 {
		current = Absent(op.Kind())
	}
	if op.Kind() == 0 || current.kind != op.Kind() {
		return Value{}, errors.AssertionFailedf("operation %d does not apply to %s option", op.kind, current.kind)
	}

	switch op.kind {
	case OpSetScalar:
		return ScalarOf(op.value), nil

	case OpUnsetScalar:
		return Absent(schema.KindScalar), nil

	case OpSetMapEntry:
		next := current.clone()
		if !next.present {
			next = EmptyMap()
		}
		next.entries.Set(op.key, op.value)
		return next, nil

	case OpRemoveMapEntry:
		next := current.clone()
		if !next.present {
			next = EmptyMap()
		}
		// An emptied map stays present as {}; only UnsetMap removes the key.
		next.entries.Delete(op.key)
		return next, nil

	default: // OpUnsetMap
		return Absent(schema.KindMap), nil
	}
}
