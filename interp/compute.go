package interp

import (
	"fmt"

	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

// evalCompute dispatches to the semantics table in spec §4.7. Across every
// ComputeType the access axis value is preserved numerically; only the
// tensor's rank and shape change.
func (ev *evaluator[T]) evalCompute(n expr.Compute) (value.Value[T], error) {
	computeType, err := ev.computeTypeAt(n.ComputeType)
	if err != nil {
		return nil, err
	}

	a, err := ev.accessAt(n.Access)
	if err != nil {
		return nil, err
	}

	switch computeType {
	case value.ElementwiseMul:
		return ev.foldAxis(a, ev.arith.One(), ev.arith.Mul)
	case value.ElementwiseAdd:
		return ev.foldAxis(a, ev.arith.Zero(), ev.arith.Add)
	case value.DotProduct:
		return ev.dotProduct(a)
	case value.ReLU:
		return ev.relu(a)
	case value.ReduceSum:
		return ev.reduceInner(a, ev.arith.Zero(), ev.arith.Add, reduceSumFast[T])
	case value.ReduceMax:
		return ev.reduceInner(a, ev.arith.MinValue(), func(acc, v T) T {
			if ev.arith.GreaterThan(v, acc) {
				return v
			}

			return acc
		}, reduceMaxFast[T])
	default:
		return nil, fmt.Errorf("%w: unknown compute type", ErrKindMismatch)
	}
}

// foldAxis implements ElementwiseMul/ElementwiseAdd: fold the slices along
// access_axis together with combine, removing that axis from the shape.
func (ev *evaluator[T]) foldAxis(a value.Access[T], identity T, combine func(acc, v T) T) (value.Value[T], error) {
	shape := a.Tensor.Shape()
	axis := a.AccessAxis

	if axis == len(shape) {
		return a, nil
	}

	if axis > len(shape) {
		return nil, fmt.Errorf("%w: access axis %d has no fold dimension in tensor of rank %d", ErrAxisOutOfRange, axis, len(shape))
	}

	foldSize := shape[axis]
	outShape := append(append([]int{}, shape[:axis]...), shape[axis+1:]...)

	out, err := tensor.New[T](outShape, nil)
	if err != nil {
		return nil, err
	}

	forEachIndex(outShape, func(idx []int) {
		acc := identity

		for j := 0; j < foldSize; j++ {
			srcIdx := concatIndex(idx[:axis], []int{j}, idx[axis:])
			v, _ := a.Tensor.At(srcIdx...)
			acc = combine(acc, v)
		}

		_ = out.Set(acc, idx...)
	})

	return value.Access[T]{Tensor: out, AccessAxis: axis}, nil
}

// dotProduct implements ComputeType.DotProduct: for each outer index, the
// first inner dimension is folded by multiplication and the remainder by
// summation, yielding one scalar per outer index.
func (ev *evaluator[T]) dotProduct(a value.Access[T]) (value.Value[T], error) {
	shape := a.Tensor.Shape()
	axis := a.AccessAxis

	if axis >= len(shape) {
		return nil, fmt.Errorf("%w: access axis %d has no inner dimension in tensor of rank %d", ErrAxisOutOfRange, axis, len(shape))
	}

	outer := shape[:axis]
	foldSize := shape[axis]
	remaining := shape[axis+1:]

	out, err := tensor.New[T](outer, nil)
	if err != nil {
		return nil, err
	}

	one := ev.arith.One()
	zero := ev.arith.Zero()

	forEachIndex(outer, func(outerIdx []int) {
		sum := zero

		forEachIndex(remaining, func(rIdx []int) {
			prod := one

			for j := 0; j < foldSize; j++ {
				srcIdx := concatIndex(outerIdx, []int{j}, rIdx)
				v, _ := a.Tensor.At(srcIdx...)
				prod = ev.arith.Mul(prod, v)
			}

			sum = ev.arith.Add(sum, prod)
		})

		_ = out.Set(sum, outerIdx...)
	})

	return value.Access[T]{Tensor: out, AccessAxis: axis}, nil
}

// relu maps arith.ReLU elementwise without changing shape or access axis.
func (ev *evaluator[T]) relu(a value.Access[T]) (value.Value[T], error) {
	shape := a.Tensor.Shape()

	out, err := tensor.New[T](shape, nil)
	if err != nil {
		return nil, err
	}

	forEachIndex(shape, func(idx []int) {
		v, _ := a.Tensor.At(idx...)
		_ = out.Set(ev.arith.ReLU(v), idx...)
	})

	return value.Access[T]{Tensor: out, AccessAxis: a.AccessAxis}, nil
}

// reduceInner implements ReduceSum/ReduceMax: collapse every inner
// dimension (from access_axis onward) into the identity/combine seed,
// leaving only the outer shape. fast, when non-nil, is tried first for each
// outer index's contiguous run of the tensor's backing slice; it only
// succeeds when T specializes to float64, per reduce.go.
func (ev *evaluator[T]) reduceInner(a value.Access[T], identity T, combine func(acc, v T) T, fast func(data []T, start, length int) (T, bool)) (value.Value[T], error) {
	shape := a.Tensor.Shape()
	axis := a.AccessAxis
	outer := shape[:axis]
	inner := shape[axis:]
	innerSize := tensor.Product(inner)
	data := a.Tensor.Data()

	out, err := tensor.New[T](outer, nil)
	if err != nil {
		return nil, err
	}

	flat := 0

	forEachIndex(outer, func(outerIdx []int) {
		if fast != nil {
			if v, ok := fast(data, flat*innerSize, innerSize); ok {
				_ = out.Set(v, outerIdx...)
				flat++

				return
			}
		}

		acc := identity

		forEachIndex(inner, func(innerIdx []int) {
			srcIdx := concatIndex(outerIdx, innerIdx)
			v, _ := a.Tensor.At(srcIdx...)
			acc = combine(acc, v)
		})

		_ = out.Set(acc, outerIdx...)
		flat++
	})

	return value.Access[T]{Tensor: out, AccessAxis: axis}, nil
}
