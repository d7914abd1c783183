// Package interp evaluates a Glenside expr.Expr against an env.Environment,
// producing a value.Value per spec §4: a small post-order tree-walking
// interpreter, parametric over element type via numeric.Arithmetic, in the
// same spirit as the teacher's compute.CPUEngine but operating over access
// axes rather than fixed tensor ops.
package interp

import (
	"fmt"

	"github.com/zerfoo/glenside/env"
	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/numeric"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

// evaluator walks an Expr once, memoizing each node's Value by position so a
// node shared by multiple parents (this is a DAG, not a tree) is evaluated
// exactly once and observes no side effects (spec §4.1).
type evaluator[T tensor.Numeric] struct {
	ex    expr.Expr
	env   *env.Environment[T]
	arith numeric.Arithmetic[T]
	memo  []value.Value[T]
}

// Eval interprets the node at root within ex, resolving Symbol leaves
// against en and performing arithmetic via arith. Traversal is deterministic
// and left-to-right; evaluation never mutates a previously-computed Value.
func Eval[T tensor.Numeric](ex expr.Expr, root uint32, en *env.Environment[T], arith numeric.Arithmetic[T]) (value.Value[T], error) {
	ev := &evaluator[T]{
		ex:    ex,
		env:   en,
		arith: arith,
		memo:  make([]value.Value[T], len(ex)),
	}

	return ev.eval(root)
}

func (ev *evaluator[T]) eval(idx uint32) (value.Value[T], error) {
	if int(idx) >= len(ev.ex) {
		return nil, fmt.Errorf("node %d: %w", idx, ErrAxisOutOfRange)
	}

	if ev.memo[idx] != nil {
		return ev.memo[idx], nil
	}

	v, err := ev.evalNode(idx)
	if err != nil {
		return nil, fmt.Errorf("node %d (%s): %w", idx, ev.ex[idx].Op(), err)
	}

	ev.memo[idx] = v

	return v, nil
}

func (ev *evaluator[T]) evalNode(idx uint32) (value.Value[T], error) {
	switch n := ev.ex[idx].(type) {
	case expr.Usize:
		return value.Usize[T]{N: n.N}, nil
	case expr.Symbol:
		return ev.evalSymbol(n)
	case expr.ComputeTypeLit:
		return value.ComputeTypeValue[T]{Op: n.Op_}, nil
	case expr.PadTypeLit:
		return value.PadTypeValue[T]{Op: n.Op_}, nil
	case expr.Shape:
		return ev.evalShape(n)
	case expr.ShapeOf:
		return ev.evalShapeOf(n)
	case expr.SliceShape:
		return ev.evalSliceShape(n)
	case expr.AccessTensor:
		return ev.evalAccessTensor(n)
	case expr.Access:
		return ev.evalAccess(n)
	case expr.AccessSqueeze:
		return ev.evalAccessSqueeze(n)
	case expr.AccessPad:
		return ev.evalAccessPad(n)
	case expr.AccessWindows:
		return ev.evalAccessWindows(n)
	case expr.AccessCartesianProduct:
		return ev.evalAccessCartesianProduct(n)
	case expr.Compute:
		return ev.evalCompute(n)
	case expr.Reserved:
		return nil, fmt.Errorf("%w: %s", ErrUnimplemented, n.Name)
	default:
		return nil, fmt.Errorf("%w: unrecognized node type %T", ErrKindMismatch, n)
	}
}

func (ev *evaluator[T]) evalSymbol(n expr.Symbol) (value.Value[T], error) {
	t, err := ev.env.Lookup(n.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingSymbol, err)
	}

	return value.Tensor[T]{Tensor: t}, nil
}

// The following helpers evaluate a child and assert its Value kind, wrapping
// a mismatch as ErrKindMismatch with the expected/actual kinds named.

func (ev *evaluator[T]) usizeAt(idx uint32) (int, error) {
	v, err := ev.eval(idx)
	if err != nil {
		return 0, err
	}

	u, ok := v.(value.Usize[T])
	if !ok {
		return 0, fmt.Errorf("%w: want Usize, got %s", ErrKindMismatch, v.Kind())
	}

	return u.N, nil
}

func (ev *evaluator[T]) tensorAt(idx uint32) (*tensor.TensorNumeric[T], error) {
	v, err := ev.eval(idx)
	if err != nil {
		return nil, err
	}

	t, ok := v.(value.Tensor[T])
	if !ok {
		return nil, fmt.Errorf("%w: want Tensor, got %s", ErrKindMismatch, v.Kind())
	}

	return t.Tensor, nil
}

func (ev *evaluator[T]) accessAt(idx uint32) (value.Access[T], error) {
	v, err := ev.eval(idx)
	if err != nil {
		return value.Access[T]{}, err
	}

	a, ok := v.(value.Access[T])
	if !ok {
		return value.Access[T]{}, fmt.Errorf("%w: want Access, got %s", ErrKindMismatch, v.Kind())
	}

	return a, nil
}

func (ev *evaluator[T]) shapeAt(idx uint32) (value.Shape[T], error) {
	v, err := ev.eval(idx)
	if err != nil {
		return value.Shape[T]{}, err
	}

	s, ok := v.(value.Shape[T])
	if !ok {
		return value.Shape[T]{}, fmt.Errorf("%w: want Shape, got %s", ErrKindMismatch, v.Kind())
	}

	return s, nil
}

func (ev *evaluator[T]) computeTypeAt(idx uint32) (value.ComputeType, error) {
	v, err := ev.eval(idx)
	if err != nil {
		return 0, err
	}

	c, ok := v.(value.ComputeTypeValue[T])
	if !ok {
		return 0, fmt.Errorf("%w: want ComputeType, got %s", ErrKindMismatch, v.Kind())
	}

	return c.Op, nil
}

func (ev *evaluator[T]) padTypeAt(idx uint32) (value.PadType, error) {
	v, err := ev.eval(idx)
	if err != nil {
		return 0, err
	}

	p, ok := v.(value.PadTypeValue[T])
	if !ok {
		return 0, fmt.Errorf("%w: want PadType, got %s", ErrKindMismatch, v.Kind())
	}

	return p.Op, nil
}
