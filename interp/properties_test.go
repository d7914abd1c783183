package interp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerfoo/glenside/env"
	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/numeric"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

// buildReduceSum builds "(compute reduce-sum (access (access-tensor t) 1))"
// for the given element type into b and returns its root position.
func buildReduceSum[T tensor.Numeric](b *expr.Builder) uint32 {
	sym := b.Symbol("t")
	at := b.AccessTensor(sym)
	axis := b.Usize(1)
	acc := b.Access(at, axis)
	ct := b.ComputeType(value.ReduceSum)

	return b.Compute(ct, acc)
}

// TestReduceSumFloat64MatchesGenericPath checks that the gonum fast path in
// reduceInner (exercised whenever T is float64) agrees with the generic
// Arithmetic-driven accumulation used for every other element type, on
// randomly generated tensors.
func TestReduceSumFloat64MatchesGenericPath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		shape := []int{2, 3, 4}
		data64 := make([]float64, 24)
		dataInt := make([]int, 24)

		for i := range data64 {
			v := rng.Intn(21) - 10
			data64[i] = float64(v)
			dataInt[i] = v
		}

		tn64, err := tensor.New[float64](shape, data64)
		require.NoError(t, err)

		tnInt, err := tensor.New[int](shape, dataInt)
		require.NoError(t, err)

		b64 := expr.NewBuilder()
		root64 := buildReduceSum[float64](b64)
		ex64 := b64.Build()

		en64 := env.New[float64]()
		en64.Bind("t", tn64)

		v64, err := Eval[float64](ex64, root64, en64, numeric.Float64Ops{})
		require.NoError(t, err)

		bInt := expr.NewBuilder()
		rootInt := buildReduceSum[int](bInt)
		exInt := bInt.Build()

		enInt := env.New[int]()
		enInt.Bind("t", tnInt)

		vInt, err := Eval[int](exInt, rootInt, enInt, numeric.IntOps{})
		require.NoError(t, err)

		want := vInt.(value.Access[int]).Tensor.Data()
		got := v64.(value.Access[float64]).Tensor.Data()

		require.Equal(t, len(want), len(got))

		for i := range want {
			require.InDelta(t, float64(want[i]), got[i], 1e-9)
		}
	}
}

// TestReduceMaxFloat64MatchesGenericPath is TestReduceSumFloat64MatchesGenericPath's
// counterpart for ReduceMax, exercising reduceMaxFast.
func TestReduceMaxFloat64MatchesGenericPath(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	shape := []int{3, 2, 5}
	data64 := make([]float64, 30)
	dataInt := make([]int, 30)

	for i := range data64 {
		v := rng.Intn(41) - 20
		data64[i] = float64(v)
		dataInt[i] = v
	}

	tn64, err := tensor.New[float64](shape, data64)
	require.NoError(t, err)

	tnInt, err := tensor.New[int](shape, dataInt)
	require.NoError(t, err)

	build := func(b *expr.Builder) uint32 {
		sym := b.Symbol("t")
		at := b.AccessTensor(sym)
		axis := b.Usize(1)
		acc := b.Access(at, axis)
		ct := b.ComputeType(value.ReduceMax)

		return b.Compute(ct, acc)
	}

	b64 := expr.NewBuilder()
	root64 := build(b64)
	ex64 := b64.Build()

	en64 := env.New[float64]()
	en64.Bind("t", tn64)

	v64, err := Eval[float64](ex64, root64, en64, numeric.Float64Ops{})
	require.NoError(t, err)

	bInt := expr.NewBuilder()
	rootInt := build(bInt)
	exInt := bInt.Build()

	enInt := env.New[int]()
	enInt.Bind("t", tnInt)

	vInt, err := Eval[int](exInt, rootInt, enInt, numeric.IntOps{})
	require.NoError(t, err)

	want := vInt.(value.Access[int]).Tensor.Data()
	got := v64.(value.Access[float64]).Tensor.Data()

	require.Equal(t, len(want), len(got))

	for i := range want {
		require.InDelta(t, float64(want[i]), got[i], 1e-9)
	}
}
