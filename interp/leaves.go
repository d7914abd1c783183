package interp

import (
	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/value"
)

func (ev *evaluator[T]) evalShape(n expr.Shape) (value.Value[T], error) {
	dims := make([]int, len(n.Dims))

	for i, child := range n.Dims {
		d, err := ev.usizeAt(child)
		if err != nil {
			return nil, err
		}

		dims[i] = d
	}

	return value.Shape[T]{Dims: dims}, nil
}

func (ev *evaluator[T]) evalShapeOf(n expr.ShapeOf) (value.Value[T], error) {
	t, err := ev.tensorAt(n.Tensor)
	if err != nil {
		return nil, err
	}

	return value.Shape[T]{Dims: t.Shape()}, nil
}

func (ev *evaluator[T]) evalSliceShape(n expr.SliceShape) (value.Value[T], error) {
	s, err := ev.shapeAt(n.Shape)
	if err != nil {
		return nil, err
	}

	axis, err := ev.usizeAt(n.Axis)
	if err != nil {
		return nil, err
	}

	if axis >= len(s.Dims) {
		return value.Shape[T]{Dims: []int{}}, nil
	}

	dims := make([]int, len(s.Dims)-axis)
	copy(dims, s.Dims[axis:])

	return value.Shape[T]{Dims: dims}, nil
}
