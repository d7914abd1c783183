package interp

import "github.com/zerfoo/glenside/tensor"

// forEachIndex calls fn once per multi-index into shape, in row-major order
// (the last axis varies fastest), matching the deterministic evaluation
// order required by spec §4.1. The slice passed to fn is reused across
// calls; fn must not retain it past the call.
func forEachIndex(shape []int, fn func(idx []int)) {
	if len(shape) == 0 {
		fn(nil)

		return
	}

	total := tensor.Product(shape)
	idx := make([]int, len(shape))

	for n := 0; n < total; n++ {
		fn(idx)

		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}

			idx[d] = 0
		}
	}
}

// concatIndex returns a freshly allocated index built by concatenating the
// given index fragments in order.
func concatIndex(parts ...[]int) []int {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]int, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
