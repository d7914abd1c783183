package sexpr

import (
	"testing"

	"github.com/zerfoo/glenside/env"
	"github.com/zerfoo/glenside/interp"
	"github.com/zerfoo/glenside/numeric"
	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/value"
)

func TestParseUsize(t *testing.T) {
	ex, root, err := Parse("23")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	en := env.New[float32]()

	v, err := interp.Eval[float32](ex, root, en, numeric.Float32Ops{})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	if v.(value.Usize[float32]).N != 23 {
		t.Errorf("N = %d, want 23", v.(value.Usize[float32]).N)
	}
}

func TestParseSymbol(t *testing.T) {
	ex, root, err := Parse("t")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tn, _ := tensor.New[float32]([]int{2, 2}, []float32{1, 2, 3, 4})
	en := env.New[float32]()
	en.Bind("t", tn)

	v, err := interp.Eval[float32](ex, root, en, numeric.Float32Ops{})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	if v.Kind() != "Tensor" {
		t.Errorf("Kind() = %q, want Tensor", v.Kind())
	}
}

func TestParseComputeElementwiseAdd(t *testing.T) {
	tn, _ := tensor.New[int]([]int{3, 2, 2}, []int{1, -2, 3, 0, -5, 6, 0, 8, -9, 10, 11, 12})
	en := env.New[int]()
	en.Bind("t", tn)

	ex, root, err := Parse(`(compute elementwise-add
              (access (access-tensor t) 0)
             )`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v, err := interp.Eval[int](ex, root, en, numeric.IntOps{})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	a := v.(value.Access[int])
	if a.AccessAxis != 0 {
		t.Errorf("AccessAxis = %d, want 0", a.AccessAxis)
	}

	want := []int{1 + -5 + -9, -2 + 6 + 10, 3 + 0 + 11, 0 + 8 + 12}
	for i, w := range want {
		got, _ := a.Tensor.At(i / 2, i % 2)
		if got != w {
			t.Errorf("element %d = %d, want %d", i, got, w)
		}
	}
}

func TestParseAccessPad(t *testing.T) {
	ex, root, err := Parse("(access-pad (access-tensor t) zero-padding 0 2 4)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tn, _ := tensor.New[float32]([]int{2, 2}, []float32{1, 2, 3, 4})
	en := env.New[float32]()
	en.Bind("t", tn)

	v, err := interp.Eval[float32](ex, root, en, numeric.Float32Ops{})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	a := v.(value.Access[float32])
	if a.Tensor.Shape()[0] != 8 {
		t.Errorf("padded axis size = %d, want 8", a.Tensor.Shape()[0])
	}
}

func TestParseShapeAndSliceShape(t *testing.T) {
	ex, root, err := Parse("(slice-shape (shape 1 2 3) 1)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	en := env.New[float32]()

	v, err := interp.Eval[float32](ex, root, en, numeric.Float32Ops{})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	got := v.(value.Shape[float32]).Dims
	want := []int{2, 3}

	if len(got) != len(want) {
		t.Fatalf("Dims = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dims[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseReservedOperator(t *testing.T) {
	ex, root, err := Parse("(move-axis t 0 1)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tn, _ := tensor.New[float32]([]int{2, 2}, []float32{1, 2, 3, 4})
	en := env.New[float32]()
	en.Bind("t", tn)

	_, err = interp.Eval[float32](ex, root, en, numeric.Float32Ops{})
	if err == nil {
		t.Fatal("expected an error for a reserved operator")
	}
}

func TestParseUnknownOperatorFails(t *testing.T) {
	if _, _, err := Parse("(not-a-real-op t)"); err == nil {
		t.Fatal("expected a parse error for an unknown operator")
	}
}

func TestParseTrailingInputFails(t *testing.T) {
	if _, _, err := Parse("23 45"); err == nil {
		t.Fatal("expected a parse error for trailing input")
	}
}
