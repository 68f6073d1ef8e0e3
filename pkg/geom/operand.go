package geom

import (
	"fmt"
	"reflect"
	"strconv"
)

// Op is an operator understood by Apply.
type Op int32

const (
	OpAdd Op = iota
	OpSub
	// OpMul is vector * scalar.
	OpMul
	// OpRMul is scalar * vector.
	OpRMul
	OpDiv
	OpDot
	OpCross
	OpNeg
	OpAbs
)

var opNames = map[Op]string{
	OpAdd:   "add",
	OpSub:   "sub",
	OpMul:   "mul",
	OpRMul:  "rmul",
	OpDiv:   "div",
	OpDot:   "dot",
	OpCross: "cross",
	OpNeg:   "neg",
	OpAbs:   "abs",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return strconv.Itoa(int(op))
}

// Symbol returns the infix notation used when printing an expression.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul, OpRMul:
		return "*"
	case OpDiv:
		return "/"
	case OpDot:
		return "@"
	case OpCross:
		return "x"
	case OpAbs:
		return "abs"
	}
	return op.String()
}

// Unary reports whether the operator takes a single vector.
func (op Op) Unary() bool {
	return op == OpNeg || op == OpAbs
}

func (op Op) verb() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul, OpRMul:
		return "multiply by"
	case OpDiv:
		return "divide by"
	case OpDot:
		return "take the dot product with"
	case OpCross:
		return "take the cross product with"
	case OpNeg:
		return "negate"
	case OpAbs:
		return "take the magnitude of"
	}
	return "apply " + op.String() + " to"
}

func ParseOp(name string) (Op, error) {
	for op, opName := range opNames {
		if opName == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", name)
}

// AsScalar converts any Go integer or floating point value to float64.
// Booleans are not scalars.
func AsScalar(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// AsVector accepts a Vector or a non-nil *Vector.
func AsVector(value any) (Vector, bool) {
	switch v := value.(type) {
	case Vector:
		return v, true
	case *Vector:
		if v != nil {
			return *v, true
		}
	}
	return Vector{}, false
}

func invalid(op Op, operand any) error {
	return &InvalidOperandError{Op: op, Operand: operand}
}

// Apply evaluates op with operands whose types are only known at runtime.
// The result is a Vector or a float64. An operand of the wrong type yields
// an *InvalidOperandError naming that operand.
func Apply(op Op, lhs, rhs any) (any, error) {
	if op.Unary() {
		v, ok := AsVector(lhs)
		if !ok {
			return nil, invalid(op, lhs)
		}
		if rhs != nil {
			return nil, invalid(op, rhs)
		}

		if op == OpNeg {
			return v.Neg(), nil
		}
		return v.Magnitude(), nil
	}

	switch op {
	case OpAdd, OpSub, OpDot, OpCross:
		a, ok := AsVector(lhs)
		if !ok {
			return nil, invalid(op, lhs)
		}
		b, ok := AsVector(rhs)
		if !ok {
			return nil, invalid(op, rhs)
		}

		switch op {
		case OpAdd:
			return a.Add(b), nil
		case OpSub:
			return a.Sub(b), nil
		case OpDot:
			return a.Dot(b), nil
		default:
			return a.Cross(b), nil
		}
	case OpMul, OpDiv:
		v, ok := AsVector(lhs)
		if !ok {
			return nil, invalid(op, lhs)
		}
		k, ok := AsScalar(rhs)
		if !ok {
			return nil, invalid(op, rhs)
		}

		if op == OpMul {
			return v.Mul(k), nil
		}

		quotient, err := v.Div(k)
		if err != nil {
			return nil, err
		}
		return quotient, nil
	case OpRMul:
		k, ok := AsScalar(lhs)
		if !ok {
			return nil, invalid(op, lhs)
		}
		v, ok := AsVector(rhs)
		if !ok {
			return nil, invalid(op, rhs)
		}
		return Scale(k, v), nil
	}

	return nil, fmt.Errorf("unknown operator %s", op)
}
