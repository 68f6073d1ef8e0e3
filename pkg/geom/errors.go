package geom

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivisionByZero = errors.New("division by zero")
	ErrComponentCount = errors.New("a vector has 2 or 3 components")
)

// InvalidOperandError is returned when an operator receives an operand of a
// type it does not support.
type InvalidOperandError struct {
	Op Op
	// Operand is the value that was rejected.
	Operand any
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf(
		"%s: don't know how to %s a %T",
		ErrInvalidOperand,
		e.Op.verb(),
		e.Operand,
	)
}

func (e *InvalidOperandError) Unwrap() error {
	return ErrInvalidOperand
}

// TypeName returns the Go type of the rejected operand.
func (e *InvalidOperandError) TypeName() string {
	return fmt.Sprintf("%T", e.Operand)
}
