package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/rdiff/internal/specfn"
)

// Common errors.
var (
	ErrNoDerivativeRule = errors.New("operation has no derivative rule")
	ErrForeignVariable  = errors.New("variable belongs to another tape")
	ErrStaleVariable    = errors.New("variable was created before the tape was cleared")
	ErrInvalidVariable  = errors.New("invalid variable")
	ErrUnknownFunction  = errors.New("unknown function")
)

// ErrDomain is matched by every *DomainError.
var ErrDomain = specfn.ErrDomain

// DomainError reports an argument outside the domain of a function.
// It is returned unchanged from the math library.
type DomainError = specfn.DomainError

// CyclicGraphError reports a node referencing an input recorded at or after
// itself. The tape cannot be built that way; seeing it means the record was
// corrupted.
type CyclicGraphError struct {
	Node  int // Index of the offending node
	Input int // Index it references
}

// Error implements the error interface.
func (e *CyclicGraphError) Error() string {
	return fmt.Sprintf("cyclic graph: node %d references entry %d", e.Node, e.Input)
}

// OrderExceededError reports a derivative request beyond the order a
// variable was declared with.
type OrderExceededError struct {
	Requested int // Derivative order asked for
	Declared  int // Order the variable supports
}

// Error implements the error interface.
func (e *OrderExceededError) Error() string {
	return fmt.Sprintf("derivative order %d exceeds declared order %d", e.Requested, e.Declared)
}

// UnpropagatedStateError reports reading an adjoint before the backward pass
// producing it has run.
type UnpropagatedStateError struct {
	Level int // Pass the adjoint belongs to (1 for first derivatives)
}

// Error implements the error interface.
func (e *UnpropagatedStateError) Error() string {
	return fmt.Sprintf("adjoint read before backward pass %d has run", e.Level)
}
