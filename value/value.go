// Package value defines the tagged result type produced by evaluating a
// Glenside expression node: a Tensor, an Access, a Shape, a Usize, a
// ComputeType, or a PadType.
package value

import "github.com/zerfoo/glenside/tensor"

// Value is the sum type returned by evaluating any expression node. Only one
// of the concrete Value implementations below may be the dynamic type of a
// Value at a time; Kind reports which.
type Value[T tensor.Numeric] interface {
	// Kind names the concrete variant, for diagnostics.
	Kind() string
	// isValue seals the interface to the variants declared in this package,
	// mirroring tensor.Tensor's isTensor().
	isValue()
}

// Tensor wraps a dense tensor with no access-axis partitioning, the result
// of evaluating a Symbol leaf.
type Tensor[T tensor.Numeric] struct {
	Tensor *tensor.TensorNumeric[T]
}

// Kind implements Value.
func (Tensor[T]) Kind() string { return "Tensor" }
func (Tensor[T]) isValue()     {}

// Access wraps a tensor together with the axis that splits its dimensions
// into outer (iterated) and inner (value) groups. The invariant
// 0 <= AccessAxis <= Tensor.Dims() is established by whichever evaluator
// produces the Access and is not re-checked here.
type Access[T tensor.Numeric] struct {
	Tensor     *tensor.TensorNumeric[T]
	AccessAxis int
}

// Kind implements Value.
func (Access[T]) Kind() string { return "Access" }
func (Access[T]) isValue()     {}

// Shape is an ordered sequence of non-negative sizes.
type Shape[T tensor.Numeric] struct {
	Dims []int
}

// Kind implements Value.
func (Shape[T]) Kind() string { return "Shape" }
func (Shape[T]) isValue()     {}

// Usize is a non-negative integer literal.
type Usize[T tensor.Numeric] struct {
	N int
}

// Kind implements Value.
func (Usize[T]) Kind() string { return "Usize" }
func (Usize[T]) isValue()     {}

// ComputeTypeValue wraps a ComputeType enum literal.
type ComputeTypeValue[T tensor.Numeric] struct {
	Op ComputeType
}

// Kind implements Value.
func (ComputeTypeValue[T]) Kind() string { return "ComputeType" }
func (ComputeTypeValue[T]) isValue()     {}

// PadTypeValue wraps a PadType enum literal.
type PadTypeValue[T tensor.Numeric] struct {
	Op PadType
}

// Kind implements Value.
func (PadTypeValue[T]) Kind() string { return "PadType" }
func (PadTypeValue[T]) isValue()     {}
