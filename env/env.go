// Package env holds the symbol table an Expr's Symbol leaves resolve
// against: the mapping from names to the tensors bound at the boundary of
// interpretation (spec §6.4).
package env

import (
	"fmt"

	"github.com/zerfoo/glenside/tensor"
)

// Environment binds symbol names to tensors. The zero value is not usable;
// construct with New.
type Environment[T tensor.Numeric] struct {
	bindings map[string]*tensor.TensorNumeric[T]
}

// New returns an empty Environment.
func New[T tensor.Numeric]() *Environment[T] {
	return &Environment[T]{bindings: make(map[string]*tensor.TensorNumeric[T])}
}

// Bind associates name with t, replacing any existing binding.
func (e *Environment[T]) Bind(name string, t *tensor.TensorNumeric[T]) {
	e.bindings[name] = t
}

// Lookup returns the tensor bound to name, or an error if none exists.
func (e *Environment[T]) Lookup(name string) (*tensor.TensorNumeric[T], error) {
	t, ok := e.bindings[name]
	if !ok {
		return nil, fmt.Errorf("symbol %q: %w", name, ErrUndefined)
	}

	return t, nil
}

// Names returns the bound symbol names in no particular order.
func (e *Environment[T]) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}

	return names
}
