package main

import (
	"fmt"

	"github.com/zerfoo/glenside/env"
	"github.com/zerfoo/glenside/interp"
	"github.com/zerfoo/glenside/numeric"
	"github.com/zerfoo/glenside/sexpr"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

// TensorSpec is the JSON shape of one bound tensor: a shape and its
// row-major data, following the teacher's layer-test fixture convention
// (layers/core/add_test.go) of plain shape+data literals.
type TensorSpec struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// Result is the JSON-serializable rendering of an evaluated value.Value.
type Result struct {
	Kind        string `json:"kind"`
	Shape       []int  `json:"shape,omitempty"`
	Data        any    `json:"data,omitempty"`
	AccessAxis  *int   `json:"access_axis,omitempty"`
	Usize       *int   `json:"usize,omitempty"`
	ComputeType string `json:"compute_type,omitempty"`
	PadType     string `json:"pad_type,omitempty"`
}

func evaluate(dtype, source string, specs map[string]TensorSpec) (*Result, error) {
	switch dtype {
	case "float32":
		return evalAs[float32](source, specs, numeric.Float32Ops{})
	case "float64":
		return evalAs[float64](source, specs, numeric.Float64Ops{})
	case "int":
		return evalAs[int](source, specs, numeric.IntOps{})
	default:
		return nil, fmt.Errorf("unsupported -dtype %q (want float32, float64, or int)", dtype)
	}
}

func evalAs[T tensor.Numeric](source string, specs map[string]TensorSpec, arith numeric.Arithmetic[T]) (*Result, error) {
	ex, root, err := sexpr.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing expression: %w", err)
	}

	en := env.New[T]()

	for name, spec := range specs {
		data := make([]T, len(spec.Data))
		for i, d := range spec.Data {
			data[i] = arith.FromFloat64(d)
		}

		tn, err := tensor.New[T](spec.Shape, data)
		if err != nil {
			return nil, fmt.Errorf("building tensor %q: %w", name, err)
		}

		en.Bind(name, tn)
	}

	v, err := interp.Eval[T](ex, root, en, arith)
	if err != nil {
		return nil, fmt.Errorf("evaluating: %w", err)
	}

	return toResult(v), nil
}

func toResult[T tensor.Numeric](v value.Value[T]) *Result {
	switch val := v.(type) {
	case value.Tensor[T]:
		return &Result{Kind: "Tensor", Shape: val.Tensor.Shape(), Data: val.Tensor.Data()}
	case value.Access[T]:
		axis := val.AccessAxis

		return &Result{Kind: "Access", Shape: val.Tensor.Shape(), Data: val.Tensor.Data(), AccessAxis: &axis}
	case value.Shape[T]:
		return &Result{Kind: "Shape", Shape: val.Dims}
	case value.Usize[T]:
		n := val.N

		return &Result{Kind: "Usize", Usize: &n}
	case value.ComputeTypeValue[T]:
		return &Result{Kind: "ComputeType", ComputeType: val.Op.String()}
	case value.PadTypeValue[T]:
		return &Result{Kind: "PadType", PadType: val.Op.String()}
	default:
		return &Result{Kind: v.Kind()}
	}
}
