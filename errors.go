package boxel

import (
	"errors"
	"fmt"
)

// ErrNoMeasurementFunction is returned by End when a text node is present
// in the tree but no MeasureFunc was ever installed with
// SetMeasurementFunction.
var ErrNoMeasurementFunction = errors.New("boxel: end called with a text node present but no measurement function installed")

// ErrUnbalancedTree is returned by End when the parent stack depth is not
// exactly 1 (the implicit root), and by CloseBox when it is called with no
// matching OpenBox.
var ErrUnbalancedTree = errors.New("boxel: unbalanced tree")

// InvariantViolation is panicked, never returned as an error, when the
// solver reaches a branch that a well-formed tree cannot produce — for
// example a deferred-percent child whose descriptor turns out not to be
// Percent. End does not recover it into a normal error; a frame that hits
// this is aborted, matching the policy that user misuse is returned but
// internal invariants are fatal.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return "boxel: invariant violation: " + e.Message
}

func invariantViolation(format string, args ...any) {
	panic(&InvariantViolation{Message: fmt.Sprintf(format, args...)})
}
