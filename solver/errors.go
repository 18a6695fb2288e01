package solver

import "errors"

// ErrNilInstance indicates a nil *instance.Instance was supplied to Solve.
var ErrNilInstance = errors.New("solver: instance must not be nil")
