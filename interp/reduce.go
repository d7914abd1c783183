package interp

import "gonum.org/v1/gonum/floats"

// reduceSumFast tries the gonum floats.Sum fast path over a contiguous
// row-major run of a tensor's backing slice. It reports ok=false whenever T
// is not float64, so callers fall back to the generic Arithmetic-driven
// accumulation.
func reduceSumFast[T any](data []T, start, length int) (T, bool) {
	d, ok := any(data).([]float64)
	if !ok {
		var zero T

		return zero, false
	}

	return any(floats.Sum(d[start : start+length])).(T), true
}

// reduceMaxFast is reduceSumFast's counterpart for ReduceMax, backed by
// gonum floats.Max.
func reduceMaxFast[T any](data []T, start, length int) (T, bool) {
	d, ok := any(data).([]float64)
	if !ok || length == 0 {
		var zero T

		return zero, false
	}

	return any(floats.Max(d[start : start+length])).(T), true
}
