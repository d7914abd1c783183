package expr

import "github.com/zerfoo/glenside/value"

// Builder appends nodes to an Expr and hands back the uint32 position of
// each one, mirroring graph.Builder's fluent AddNode/handle pattern from the
// teacher's graph package, adapted to positional rather than pointer
// addressing.
type Builder struct {
	nodes []Node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) push(n Node) uint32 {
	idx := uint32(len(b.nodes))
	b.nodes = append(b.nodes, n)
	return idx
}

// Usize appends a literal integer leaf.
func (b *Builder) Usize(n int) uint32 {
	return b.push(Usize{N: n})
}

// Symbol appends a tensor-reference leaf.
func (b *Builder) Symbol(name string) uint32 {
	return b.push(Symbol{Name: name})
}

// ComputeType appends a ComputeType literal leaf.
func (b *Builder) ComputeType(op value.ComputeType) uint32 {
	return b.push(ComputeTypeLit{Op_: op})
}

// PadType appends a PadType literal leaf.
func (b *Builder) PadType(op value.PadType) uint32 {
	return b.push(PadTypeLit{Op_: op})
}

// Shape appends a Shape node built from Usize child positions.
func (b *Builder) Shape(dims ...uint32) uint32 {
	return b.push(Shape{Dims: dims})
}

// ShapeOf appends a ShapeOf node.
func (b *Builder) ShapeOf(tensor uint32) uint32 {
	return b.push(ShapeOf{Tensor: tensor})
}

// SliceShape appends a SliceShape node.
func (b *Builder) SliceShape(shape, axis uint32) uint32 {
	return b.push(SliceShape{Shape: shape, Axis: axis})
}

// AccessTensor appends an AccessTensor node.
func (b *Builder) AccessTensor(tensor uint32) uint32 {
	return b.push(AccessTensor{Tensor: tensor})
}

// Access appends an Access node.
func (b *Builder) Access(access, dim uint32) uint32 {
	return b.push(Access{Access: access, Dim: dim})
}

// AccessSqueeze appends an AccessSqueeze node.
func (b *Builder) AccessSqueeze(access, axis uint32) uint32 {
	return b.push(AccessSqueeze{Access: access, Axis: axis})
}

// AccessPad appends an AccessPad node.
func (b *Builder) AccessPad(access, padType, axis, before, after uint32) uint32 {
	return b.push(AccessPad{Access: access, PadType: padType, Axis: axis, Before: before, After: after})
}

// AccessWindows appends an AccessWindows node.
func (b *Builder) AccessWindows(access, filtersShape, xStride, yStride uint32) uint32 {
	return b.push(AccessWindows{Access: access, FiltersShape: filtersShape, XStride: xStride, YStride: yStride})
}

// AccessCartesianProduct appends an AccessCartesianProduct node.
func (b *Builder) AccessCartesianProduct(a0, a1 uint32) uint32 {
	return b.push(AccessCartesianProduct{A0: a0, A1: a1})
}

// Compute appends a Compute node.
func (b *Builder) Compute(computeType, access uint32) uint32 {
	return b.push(Compute{ComputeType: computeType, Access: access})
}

// Reserved appends a placeholder node for one of the seventeen operators
// declared but not given semantics by the core (spec §6.2). Evaluating one
// always fails with interp.ErrUnimplemented.
func (b *Builder) Reserved(name string, children ...uint32) uint32 {
	return b.push(Reserved{Name: name, Children: children})
}

// Build returns the constructed Expr. The Builder remains usable afterward;
// further appends extend the same backing slice.
func (b *Builder) Build() Expr {
	return Expr(b.nodes)
}

// Root returns the position of the last appended node, the conventional
// root of an Expr built bottom-up.
func (b *Builder) Root() uint32 {
	return uint32(len(b.nodes) - 1)
}
