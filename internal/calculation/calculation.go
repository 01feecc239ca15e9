package calculation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thoas/go-funk"
)

// Type discriminates calculation behaviors. The value is stored as-is in the
// calculations table.
type Type string

const (
	TypeAddition       Type = "addition"
	TypeSubtraction    Type = "subtraction"
	TypeMultiplication Type = "multiplication"
	TypeDivision       Type = "division"
)

// MinInputs is the minimum number of operands any operation accepts.
const MinInputs = 2

var (
	ErrTooFewInputs   = errors.New("at least two inputs are required")
	ErrDivisionByZero = errors.New("cannot divide by zero")
)

type ErrUnknownType struct {
	error
}

func NewErrUnknownType(value string) *ErrUnknownType {
	return &ErrUnknownType{fmt.Errorf("unknown calculation type %q", value)}
}

// Types returns every supported calculation type.
func Types() []Type {
	return []Type{TypeAddition, TypeSubtraction, TypeMultiplication, TypeDivision}
}

// ParseType normalizes and validates a type value. Matching is
// case-insensitive and the canonical lowercase form is returned.
func ParseType(value string) (Type, error) {
	t := Type(strings.ToLower(value))
	if !funk.Contains(Types(), t) {
		return "", NewErrUnknownType(value)
	}
	return t, nil
}

// Operation computes a result from an ordered list of numeric inputs.
type Operation interface {
	Type() Type
	Apply(inputs []float64) (float64, error)
}

// New returns the Operation implementing the given type.
func New(t Type) (Operation, error) {
	switch t {
	case TypeAddition:
		return addition{}, nil
	case TypeSubtraction:
		return subtraction{}, nil
	case TypeMultiplication:
		return multiplication{}, nil
	case TypeDivision:
		return division{}, nil
	default:
		return nil, NewErrUnknownType(string(t))
	}
}

// Compute resolves the operation for t and applies it to inputs.
func Compute(t Type, inputs []float64) (float64, error) {
	op, err := New(t)
	if err != nil {
		return 0, err
	}
	return op.Apply(inputs)
}

type addition struct{}

func (addition) Type() Type { return TypeAddition }

func (addition) Apply(inputs []float64) (float64, error) {
	if len(inputs) < MinInputs {
		return 0, ErrTooFewInputs
	}
	var sum float64
	for _, v := range inputs {
		sum += v
	}
	return sum, nil
}

type subtraction struct{}

func (subtraction) Type() Type { return TypeSubtraction }

func (subtraction) Apply(inputs []float64) (float64, error) {
	if len(inputs) < MinInputs {
		return 0, ErrTooFewInputs
	}
	result := inputs[0]
	for _, v := range inputs[1:] {
		result -= v
	}
	return result, nil
}

type multiplication struct{}

func (multiplication) Type() Type { return TypeMultiplication }

func (multiplication) Apply(inputs []float64) (float64, error) {
	if len(inputs) < MinInputs {
		return 0, ErrTooFewInputs
	}
	result := 1.0
	for _, v := range inputs {
		result *= v
	}
	return result, nil
}

type division struct{}

func (division) Type() Type { return TypeDivision }

func (division) Apply(inputs []float64) (float64, error) {
	if len(inputs) < MinInputs {
		return 0, ErrTooFewInputs
	}
	result := inputs[0]
	for _, v := range inputs[1:] {
		if v == 0 {
			return 0, ErrDivisionByZero
		}
		result /= v
	}
	return result, nil
}
