package interp

import (
	"fmt"

	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

func (ev *evaluator[T]) evalAccessTensor(n expr.AccessTensor) (value.Value[T], error) {
	t, err := ev.tensorAt(n.Tensor)
	if err != nil {
		return nil, err
	}

	return value.Access[T]{Tensor: t, AccessAxis: 0}, nil
}

func (ev *evaluator[T]) evalAccess(n expr.Access) (value.Value[T], error) {
	a, err := ev.accessAt(n.Access)
	if err != nil {
		return nil, err
	}

	dim, err := ev.usizeAt(n.Dim)
	if err != nil {
		return nil, err
	}

	if dim > a.Tensor.Dims() {
		return nil, fmt.Errorf("%w: access axis %d into tensor of rank %d", ErrAxisOutOfRange, dim, a.Tensor.Dims())
	}

	return value.Access[T]{Tensor: a.Tensor, AccessAxis: dim}, nil
}

func (ev *evaluator[T]) evalAccessSqueeze(n expr.AccessSqueeze) (value.Value[T], error) {
	a, err := ev.accessAt(n.Access)
	if err != nil {
		return nil, err
	}

	axis, err := ev.usizeAt(n.Axis)
	if err != nil {
		return nil, err
	}

	shape := a.Tensor.Shape()
	if axis >= len(shape) {
		return nil, fmt.Errorf("%w: axis %d into tensor of rank %d", ErrAxisOutOfRange, axis, len(shape))
	}

	if shape[axis] != 1 {
		return nil, fmt.Errorf("%w: axis %d has size %d", ErrSqueezeNonUnit, axis, shape[axis])
	}

	newShape := make([]int, 0, len(shape)-1)
	newShape = append(newShape, shape[:axis]...)
	newShape = append(newShape, shape[axis+1:]...)

	out, err := tensor.New[T](newShape, nil)
	if err != nil {
		return nil, err
	}

	forEachIndex(newShape, func(idx []int) {
		srcIdx := concatIndex(idx[:axis], []int{0}, idx[axis:])
		v, _ := a.Tensor.At(srcIdx...)
		_ = out.Set(v, idx...)
	})

	accessAxis := a.AccessAxis
	if axis < accessAxis {
		accessAxis--
	}

	return value.Access[T]{Tensor: out, AccessAxis: accessAxis}, nil
}

func (ev *evaluator[T]) evalAccessPad(n expr.AccessPad) (value.Value[T], error) {
	a, err := ev.accessAt(n.Access)
	if err != nil {
		return nil, err
	}

	padType, err := ev.padTypeAt(n.PadType)
	if err != nil {
		return nil, err
	}

	axis, err := ev.usizeAt(n.Axis)
	if err != nil {
		return nil, err
	}

	before, err := ev.usizeAt(n.Before)
	if err != nil {
		return nil, err
	}

	after, err := ev.usizeAt(n.After)
	if err != nil {
		return nil, err
	}

	shape := a.Tensor.Shape()
	if axis >= len(shape) {
		return nil, fmt.Errorf("%w: axis %d into tensor of rank %d", ErrAxisOutOfRange, axis, len(shape))
	}

	switch padType {
	case value.ZeroPadding:
		newShape := append([]int(nil), shape...)
		newShape[axis] = shape[axis] + before + after

		zero := ev.arith.Zero()

		out, err := tensor.New[T](newShape, nil)
		if err != nil {
			return nil, err
		}

		forEachIndex(newShape, func(idx []int) {
			if idx[axis] < before || idx[axis] >= before+shape[axis] {
				_ = out.Set(zero, idx...)

				return
			}

			srcIdx := append([]int(nil), idx...)
			srcIdx[axis] -= before
			v, _ := a.Tensor.At(srcIdx...)
			_ = out.Set(v, idx...)
		})

		return value.Access[T]{Tensor: out, AccessAxis: a.AccessAxis}, nil
	default:
		return nil, fmt.Errorf("%w: unknown pad type", ErrKindMismatch)
	}
}

func (ev *evaluator[T]) evalAccessWindows(n expr.AccessWindows) (value.Value[T], error) {
	a, err := ev.accessAt(n.Access)
	if err != nil {
		return nil, err
	}

	filtersShape, err := ev.shapeAt(n.FiltersShape)
	if err != nil {
		return nil, err
	}

	xStride, err := ev.usizeAt(n.XStride)
	if err != nil {
		return nil, err
	}

	yStride, err := ev.usizeAt(n.YStride)
	if err != nil {
		return nil, err
	}

	shape := a.Tensor.Shape()
	if a.Tensor.Dims() != 3 || a.AccessAxis != 3 || len(filtersShape.Dims) != 3 {
		return nil, fmt.Errorf("%w: access-windows requires a rank-3 access with access axis 3 and a rank-3 filter shape", ErrShapeMismatch)
	}

	tensorC, tensorX, tensorY := shape[0], shape[1], shape[2]
	filtersC, filtersX, filtersY := filtersShape.Dims[0], filtersShape.Dims[1], filtersShape.Dims[2]

	if filtersC > tensorC || filtersX > tensorX || filtersY > tensorY {
		return nil, fmt.Errorf("%w: filter shape [%d %d %d] does not fit in tensor shape [%d %d %d]",
			ErrWindowOverflow, filtersC, filtersX, filtersY, tensorC, tensorX, tensorY)
	}

	// Channel stride is fixed at 1; the spec's ceil-division window-count
	// formula, applied per axis (§4.5).
	numWindowsC := tensorC - filtersC + 1
	numWindowsX := ((tensorX-(filtersX-1))+xStride-1) / xStride
	numWindowsY := ((tensorY-(filtersY-1))+yStride-1) / yStride

	outShape := []int{numWindowsC, numWindowsX, numWindowsY, filtersC, filtersX, filtersY}

	out, err := tensor.New[T](outShape, nil)
	if err != nil {
		return nil, err
	}

	forEachIndex(outShape, func(idx []int) {
		wc, wx, wy := idx[0], idx[1], idx[2]
		offC, offX, offY := idx[3], idx[4], idx[5]

		srcC := wc*1 + offC
		srcX := wx*xStride + offX
		srcY := wy*yStride + offY

		v, _ := a.Tensor.At(srcC, srcX, srcY)
		_ = out.Set(v, idx...)
	})

	return value.Access[T]{Tensor: out, AccessAxis: 3}, nil
}

func (ev *evaluator[T]) evalAccessCartesianProduct(n expr.AccessCartesianProduct) (value.Value[T], error) {
	a0, err := ev.accessAt(n.A0)
	if err != nil {
		return nil, err
	}

	a1, err := ev.accessAt(n.A1)
	if err != nil {
		return nil, err
	}

	shape0, shape1 := a0.Tensor.Shape(), a1.Tensor.Shape()
	inner0, inner1 := shape0[a0.AccessAxis:], shape1[a1.AccessAxis:]

	if !tensor.SameShape(inner0, inner1) {
		return nil, fmt.Errorf("%w: inner shapes %v and %v differ", ErrShapeMismatch, inner0, inner1)
	}

	outer0, outer1 := shape0[:a0.AccessAxis], shape1[:a1.AccessAxis]
	inner := inner0

	outShape := concatIndex(outer0, outer1, []int{2}, inner)

	out, err := tensor.New[T](outShape, nil)
	if err != nil {
		return nil, err
	}

	forEachIndex(outShape, func(idx []int) {
		o0 := idx[:len(outer0)]
		o1 := idx[len(outer0) : len(outer0)+len(outer1)]
		pick := idx[len(outer0)+len(outer1)]
		innerIdx := idx[len(outer0)+len(outer1)+1:]

		var v T
		if pick == 0 {
			v, _ = a0.Tensor.At(concatIndex(o0, innerIdx)...)
		} else {
			v, _ = a1.Tensor.At(concatIndex(o1, innerIdx)...)
		}

		_ = out.Set(v, idx...)
	})

	return value.Access[T]{Tensor: out, AccessAxis: a0.AccessAxis + a1.AccessAxis}, nil
}
