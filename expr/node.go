// Package expr implements the index-addressed expression DAG: a flat,
// post-order-serializable sequence of operator nodes whose children are
// positional references into the same sequence (spec §2, §6.2). This
// mirrors the teacher's graph.Builder/graph.Graph fluent-construction style,
// but addresses nodes by position (uint32) rather than by pointer, since a
// Glenside node may produce any of six Value kinds rather than always a
// tensor.
package expr

import "github.com/zerfoo/glenside/value"

// Node is one entry of an Expr. Exactly one variant per operator kind, as
// required by spec §3 and §9 ("Expression DAG representation").
type Node interface {
	// Op names the operator, used in diagnostics and by sexpr round-tripping.
	Op() string
	// isNode seals the interface to the variants declared in this package.
	isNode()
}

// Usize is a literal non-negative integer leaf.
type Usize struct{ N int }

func (Usize) Op() string { return "usize" }
func (Usize) isNode()    {}

// Symbol is a leaf referencing a tensor bound in the Environment.
type Symbol struct{ Name string }

func (Symbol) Op() string { return "symbol" }
func (Symbol) isNode()    {}

// ComputeTypeLit is a leaf wrapping a ComputeType enum literal.
type ComputeTypeLit struct{ Op_ value.ComputeType }

func (ComputeTypeLit) Op() string { return "compute-type" }
func (ComputeTypeLit) isNode()    {}

// PadTypeLit is a leaf wrapping a PadType enum literal.
type PadTypeLit struct{ Op_ value.PadType }

func (PadTypeLit) Op() string { return "pad-type" }
func (PadTypeLit) isNode()    {}

// Shape builds a Shape value from a list of Usize children.
type Shape struct{ Dims []uint32 }

func (Shape) Op() string { return "shape" }
func (Shape) isNode()    {}

// ShapeOf yields the shape of a Tensor child.
type ShapeOf struct{ Tensor uint32 }

func (ShapeOf) Op() string { return "shape-of" }
func (ShapeOf) isNode()    {}

// SliceShape yields the suffix of a Shape child starting at a Usize axis.
type SliceShape struct {
	Shape uint32
	Axis  uint32
}

func (SliceShape) Op() string { return "slice-shape" }
func (SliceShape) isNode()    {}

// AccessTensor wraps a Tensor child as an Access with access_axis 0.
type AccessTensor struct{ Tensor uint32 }

func (AccessTensor) Op() string { return "access-tensor" }
func (AccessTensor) isNode()    {}

// Access re-partitions an Access child at a new access axis.
type Access struct {
	Access uint32
	Dim    uint32
}

func (Access) Op() string { return "access" }
func (Access) isNode()    {}

// AccessSqueeze removes a size-1 dimension from an Access child.
type AccessSqueeze struct {
	Access uint32
	Axis   uint32
}

func (AccessSqueeze) Op() string { return "access-squeeze" }
func (AccessSqueeze) isNode()    {}

// AccessPad pads an Access child along one axis.
type AccessPad struct {
	Access  uint32
	PadType uint32
	Axis    uint32
	Before  uint32
	After   uint32
}

func (AccessPad) Op() string { return "access-pad" }
func (AccessPad) isNode()    {}

// AccessWindows produces a sliding-window view of an Access child.
type AccessWindows struct {
	Access       uint32
	FiltersShape uint32
	XStride      uint32
	YStride      uint32
}

func (AccessWindows) Op() string { return "access-windows" }
func (AccessWindows) isNode()    {}

// AccessCartesianProduct pairs two Access children along a new axis.
type AccessCartesianProduct struct {
	A0 uint32
	A1 uint32
}

func (AccessCartesianProduct) Op() string { return "access-cartesian-product" }
func (AccessCartesianProduct) isNode()    {}

// Compute reduces or maps the inner dimensions of an Access child.
type Compute struct {
	ComputeType uint32
	Access      uint32
}

func (Compute) Op() string { return "compute" }
func (Compute) isNode()    {}

// Reserved stands in for an operator declared in spec §6.2 but not given
// semantics by the core (MoveAxis, CartesianProduct, MapDotProduct, Slice,
// Concatenate, a bare ElementwiseAdd, BsgSystolicArray, SystolicArray,
// AccessMoveAxis, GetAccessShape, AccessReshape, AccessFlatten, AccessShape,
// AccessSlice, AccessConcatenate, AccessShiftRight, AccessPair). Evaluating
// one always aborts with interp.ErrUnimplemented.
type Reserved struct {
	Name     string
	Children []uint32
}

func (r Reserved) Op() string { return r.Name }
func (Reserved) isNode()      {}

// Expr is a post-order-serializable expression DAG: nodes reference earlier
// (or, for a DAG proper, any already-appended) positions in the same slice.
type Expr []Node
