package env

import "errors"

// ErrUndefined is returned by Lookup when no tensor is bound to the
// requested name.
var ErrUndefined = errors.New("undefined symbol")
