package interp

import "errors"

// The interpreter's failure taxonomy (spec §4.8, §7). Every evaluation
// failure is one of these sentinels, generally wrapped with fmt.Errorf to
// name the offending node, mirroring the teacher's graph.ErrInvalidInputCount
// pattern.
var (
	// ErrKindMismatch is returned when a child evaluates to a Value kind the
	// parent operator did not expect (e.g. Compute's second child not an
	// Access).
	ErrKindMismatch = errors.New("value kind mismatch")
	// ErrMissingSymbol is returned when a Symbol leaf names a tensor absent
	// from the Environment.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrAxisOutOfRange is returned when an axis argument falls outside the
	// range its operator accepts ([0, ndim] for Access, [0, ndim) for
	// AccessSqueeze and AccessPad), when DotProduct is applied to an Access
	// with no inner dimension, or when a node position lies past the end of
	// the Expr.
	ErrAxisOutOfRange = errors.New("axis out of range")
	// ErrSqueezeNonUnit is returned when AccessSqueeze targets an axis whose
	// size is not 1.
	ErrSqueezeNonUnit = errors.New("cannot squeeze a non-unit axis")
	// ErrShapeMismatch is returned when AccessCartesianProduct's operands
	// disagree on their inner shape.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrWindowOverflow is returned when AccessWindows' filter shape does
	// not fit within the tensor being windowed.
	ErrWindowOverflow = errors.New("filter shape does not fit in windowed tensor")
	// ErrUnimplemented is returned when evaluation reaches one of the
	// seventeen operators declared but not given semantics by the core.
	ErrUnimplemented = errors.New("operator not implemented")
)
