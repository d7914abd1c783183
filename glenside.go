// Package glenside provides a prelude of commonly used types for building
// and evaluating Glenside expressions, so callers can write glenside.Expr
// instead of expr.Expr.
package glenside

import (
	"github.com/zerfoo/glenside/env"
	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/interp"
	"github.com/zerfoo/glenside/numeric"
	"github.com/zerfoo/glenside/sexpr"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

// Prelude of commonly used types for constructing and evaluating
// expressions, re-exported here for discoverability.
type (
	// Expr is a built, index-addressed expression.
	Expr = expr.Expr

	// Builder constructs an Expr one node at a time.
	Builder = expr.Builder

	// Environment binds symbol names to tensors for evaluation.
	Environment[T tensor.Numeric] struct {
		*env.Environment[T]
	}

	// Value is the result of evaluating an expression node.
	Value[T tensor.Numeric] interface {
		value.Value[T]
	}

	// Numeric is the element-type constraint shared across the module.
	Numeric tensor.Numeric
)

// NewBuilder creates a new expression Builder.
func NewBuilder() *Builder {
	return expr.NewBuilder()
}

// NewEnvironment creates a new, empty symbol environment.
func NewEnvironment[T tensor.Numeric]() *Environment[T] {
	return &Environment[T]{Environment: env.New[T]()}
}

// Parse parses the textual concrete syntax into an Expr, returning the
// position of its root node.
func Parse(src string) (Expr, uint32, error) {
	return sexpr.Parse(src)
}

// Eval evaluates the node at root within ex, resolving free symbols from en
// and performing arithmetic with arith.
func Eval[T tensor.Numeric](ex Expr, root uint32, en *Environment[T], arith numeric.Arithmetic[T]) (Value[T], error) {
	return interp.Eval[T](ex, root, en.Environment, arith)
}

// NewTensor creates a new tensor with the given shape and row-major data.
func NewTensor[T tensor.Numeric](shape []int, data []T) (*tensor.TensorNumeric[T], error) {
	return tensor.New[T](shape, data)
}

// NewFloat32Ops returns the float32 arithmetic operations.
func NewFloat32Ops() numeric.Arithmetic[float32] {
	return numeric.Float32Ops{}
}

// NewFloat64Ops returns the float64 arithmetic operations.
func NewFloat64Ops() numeric.Arithmetic[float64] {
	return numeric.Float64Ops{}
}
