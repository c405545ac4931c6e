package hydro

import (
	"errors"
	"fmt"
)

// Domain errors for hydrodynamic backends.
var (
	// ErrNotImplemented indicates a backend does not supply a contract capability.
	ErrNotImplemented = errors.New("hydro: capability not implemented by backend")

	// ErrNotConfigured indicates bathymetry or forcing parameters are unset.
	ErrNotConfigured = errors.New("hydro: model not fully configured")

	// ErrInvalidState indicates a lifecycle method was called out of order.
	ErrInvalidState = errors.New("hydro: lifecycle call out of order")

	// ErrNoConvergence indicates the dispersion solver exhausted its iteration budget.
	ErrNoConvergence = errors.New("hydro: dispersion relation did not converge")

	// ErrDimensionMismatch indicates mismatched per-node array lengths.
	ErrDimensionMismatch = errors.New("hydro: per-node array length mismatch")
)

// NodeError wraps an error with the spatial node it occurred at.
type NodeError struct {
	Node    int
	Depth   float64
	Wrapped error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %d (depth=%.4f m): %v", e.Node, e.Depth, e.Wrapped)
}

func (e *NodeError) Unwrap() error {
	return e.Wrapped
}
