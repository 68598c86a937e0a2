package calculator

import (
	"errors"
	"math"
	"testing"

	errs "calc-api/internal/calculator/errs"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		op   Operator
		want float64
	}{
		{"add integers", 3, 5, OpAdd, 8},
		{"add negatives", -2, -3, OpAdd, -5},
		{"sub", 10, 4, OpSub, 6},
		{"mul fraction", 2.5, 4, OpMul, 10},
		{"mul by zero", 7, 0, OpMul, 0},
		{"div", 10, 4, OpDiv, 2.5},
		{"div negative", 9, -3, OpDiv, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.a, tt.b, tt.op)
			if err != nil {
				t.Fatalf("Evaluate(%v, %v, %s) returned error: %v", tt.a, tt.b, tt.op, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%v, %v, %s) = %v, want %v", tt.a, tt.b, tt.op, got, tt.want)
			}
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	_, err := Evaluate(10, 0, OpDiv)
	if !errors.Is(err, errs.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}

	// negative zero compares equal to zero
	_, err = Evaluate(10, math.Copysign(0, -1), OpDiv)
	if !errors.Is(err, errs.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero for -0 divisor, got %v", err)
	}
}

func TestEvaluate_NonFiniteOperands(t *testing.T) {
	bad := []float64{math.Inf(1), math.Inf(-1), math.NaN()}

	for _, v := range bad {
		for _, op := range Operators {
			if _, err := Evaluate(v, 1, op); !errors.Is(err, errs.ErrInvalidOperand) {
				t.Errorf("Evaluate(%v, 1, %s): expected ErrInvalidOperand, got %v", v, op, err)
			}
			if _, err := Evaluate(1, v, op); !errors.Is(err, errs.ErrInvalidOperand) {
				t.Errorf("Evaluate(1, %v, %s): expected ErrInvalidOperand, got %v", v, op, err)
			}
		}
	}

	// non-finite operand is rejected before the divisor check
	if _, err := Evaluate(math.NaN(), 0, OpDiv); !errors.Is(err, errs.ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestEvaluate_UnknownOperator(t *testing.T) {
	if _, err := Evaluate(1, 2, Operator("mod")); !errors.Is(err, errs.ErrUnsupportedOperator) {
		t.Errorf("expected ErrUnsupportedOperator, got %v", err)
	}
}

func TestEvaluate_Overflow(t *testing.T) {
	// result finiteness is intentionally not checked
	got, err := Evaluate(math.MaxFloat64, 2, OpMul)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf result, got %v", got)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first, err1 := Evaluate(1.25, 3.5, OpMul)
	second, err2 := Evaluate(1.25, 3.5, OpMul)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("repeated evaluation differs: %v != %v", first, second)
	}
}

func TestEvaluate_Commutative(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpMul} {
		ab, _ := Evaluate(2.5, 7, op)
		ba, _ := Evaluate(7, 2.5, op)
		if ab != ba {
			t.Errorf("%s not commutative: %v != %v", op, ab, ba)
		}
	}
}

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"add", "sub", "mul", "div"} {
		op, err := ParseOperator(s)
		if err != nil {
			t.Errorf("ParseOperator(%q) returned error: %v", s, err)
		}
		if string(op) != s {
			t.Errorf("ParseOperator(%q) = %s", s, op)
		}
	}

	for _, s := range []string{"mod", "pow", "", "ADD", "add "} {
		if _, err := ParseOperator(s); !errors.Is(err, errs.ErrUnsupportedOperator) {
			t.Errorf("ParseOperator(%q): expected ErrUnsupportedOperator, got %v", s, err)
		}
	}
}

func TestIsFinite(t *testing.T) {
	finite := []float64{0, 1, -1, 2.5, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range finite {
		if !IsFinite(v) {
			t.Errorf("IsFinite(%v) = false, want true", v)
		}
	}

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if IsFinite(v) {
			t.Errorf("IsFinite(%v) = true, want false", v)
		}
	}
}
