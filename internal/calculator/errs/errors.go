package calculator

import (
	"errors"
)

var (
	ErrInvalidOperand      = errors.New("operand must be a finite real number")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
