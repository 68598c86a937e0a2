package calculator

import (
	"math"

	errs "calc-api/internal/calculator/errs"
)

type Operator string

const (
	OpAdd Operator = "add"
	OpSub Operator = "sub"
	OpMul Operator = "mul"
	OpDiv Operator = "div"
)

// Operators lists the closed operator set in a stable order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// ParseOperator validates a raw operator tag against the closed set,
// so Evaluate only ever sees known operators.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return op, nil
	default:
		return "", errs.ErrUnsupportedOperator
	}
}

func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Evaluate applies op to a and b. Both operands must be finite; for
// OpDiv the divisor must be non-zero. The result itself is not checked
// for finiteness, so multiplying huge operands may overflow to ±Inf.
func Evaluate(a, b float64, op Operator) (float64, error) {
	if !IsFinite(a) || !IsFinite(b) {
		return 0, errs.ErrInvalidOperand
	}

	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, errs.ErrDivisionByZero
		}
		return a / b, nil
	}

	// unreachable when op came through ParseOperator
	return 0, errs.ErrUnsupportedOperator
}
