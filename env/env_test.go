package env

import (
	"errors"
	"testing"

	"github.com/zerfoo/glenside/tensor"
	"github.com/zerfoo/glenside/testing/testutils"
)

func TestBindAndLookup(t *testing.T) {
	e := New[float32]()
	tn, err := tensor.New[float32]([]int{2}, []float32{1, 2})
	testutils.AssertNoError(t, err, "tensor.New")

	e.Bind("t", tn)

	got, err := e.Lookup("t")
	testutils.AssertNoError(t, err, "Lookup")

	if got != tn {
		t.Errorf("Lookup returned a different tensor than was bound")
	}
}

func TestLookupUndefined(t *testing.T) {
	e := New[float32]()

	_, err := e.Lookup("missing")
	if !errors.Is(err, ErrUndefined) {
		t.Fatalf("Lookup error = %v, want ErrUndefined", err)
	}
}

func TestNames(t *testing.T) {
	e := New[float32]()
	tn, _ := tensor.New[float32]([]int{1}, []float32{1})
	e.Bind("a", tn)
	e.Bind("b", tn)

	names := e.Names()
	if !testutils.ElementsMatch(names, []string{"a", "b"}) {
		t.Fatalf("Names() = %v, want [a b] in any order", names)
	}
}
