package repltypes

import "fmt"

// Kind tags the variant held by an Outcome.
type Kind int

const (
	// KindValue is a realized value.
	KindValue Kind = iota
	// KindError is a failed evaluation.
	KindError
	// KindDeferred is a pending computation that must be awaited.
	KindDeferred
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindError:
		return "error"
	case KindDeferred:
		return "deferred"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of one evaluation cycle. Evaluators produce deferred
// outcomes deliberately; nothing inspects a value to guess whether it is
// pending.
type Outcome struct {
	kind   Kind
	value  any
	err    error
	future *Future
}

// Immediate returns a settled successful outcome.
func Immediate(value any) Outcome {
	return Outcome{kind: KindValue, value: value}
}

// Failed returns a settled failed outcome. A nil error yields Immediate(nil).
func Failed(err error) Outcome {
	if err == nil {
		return Immediate(nil)
	}
	return Outcome{kind: KindError, err: err}
}

// Deferred returns an outcome whose value is produced later by f.
func Deferred(f *Future) Outcome {
	return Outcome{kind: KindDeferred, future: f}
}

// FromResult converts a conventional (value, error) pair.
func FromResult(value any, err error) Outcome {
	if err != nil {
		return Failed(err)
	}
	return Immediate(value)
}

// Kind returns the variant tag.
func (o Outcome) Kind() Kind { return o.kind }

// IsDeferred reports whether the outcome still has to be awaited.
func (o Outcome) IsDeferred() bool { return o.kind == KindDeferred }

// Value returns the realized value, nil for the other variants.
func (o Outcome) Value() any { return o.value }

// Err returns the failure, nil for the other variants.
func (o Outcome) Err() error { return o.err }

// Future returns the pending computation of a deferred outcome.
func (o Outcome) Future() *Future { return o.future }

// Result returns the outcome as a conventional (value, error) pair. It must
// only be called on settled outcomes.
func (o Outcome) Result() (any, error) {
	return o.value, o.err
}
