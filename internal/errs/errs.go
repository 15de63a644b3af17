package errs

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure raised while computing a tour
type Kind int

const (
	Unknown Kind = iota
	InvalidTimestamp
	Teleport
	PhysicsInconsistency
	LengthMismatch
	UnknownMethod
	InvalidInput
	TooFewFixes
)

func (k Kind) String() string {
	switch k {
	case InvalidTimestamp:
		return "invalid_timestamp"
	case Teleport:
		return "teleport"
	case PhysicsInconsistency:
		return "physics_inconsistency"
	case LengthMismatch:
		return "length_mismatch"
	case UnknownMethod:
		return "unknown_method"
	case InvalidInput:
		return "invalid_input"
	case TooFewFixes:
		return "too_few_fixes"
	default:
		return "unknown"
	}
}

// Error carries a Kind plus a human readable message.
// Two errors match under errors.Is when their kinds are equal.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrInvalidTimestamp     = &Error{Kind: InvalidTimestamp, Msg: "invalid timestamp"}
	ErrTeleport             = &Error{Kind: Teleport, Msg: "position changed with no elapsed time"}
	ErrPhysicsInconsistency = &Error{Kind: PhysicsInconsistency, Msg: "force decomposition does not reconstruct gravity"}
	ErrLengthMismatch       = &Error{Kind: LengthMismatch, Msg: "x and y must be the same length"}
	ErrUnknownMethod        = &Error{Kind: UnknownMethod, Msg: "no such quadrature rule"}
	ErrInvalidInput         = &Error{Kind: InvalidInput, Msg: "invalid input"}
	ErrTooFewFixes          = &Error{Kind: TooFewFixes, Msg: "need at least two fixes"}
)

// New builds an error of the given kind with a formatted message
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
