package algebra

import (
	"fmt"

	"github.com/quizium/mathgen/question"
)

// Defaults encode 4·x + 7 = 35, whose root is 7.
const (
	defaultA = 4
	defaultB = 7
	defaultC = 35
)

// LinearEquationName is the registry name of the LinearEquation generator
// under question.Algebra.
const LinearEquationName = "LinearEquation"

// LinearEquationParams holds the coefficients of a·x + b = c.
//
// Domain rules:
//   - a, b, c are ints;
//   - a ≠ 0 (otherwise there is no equation to solve);
//   - a divides c−b, so the root x is an integer.
type LinearEquationParams struct {
	A, B, C int
}

// Validate reads "a", "b" and "c", checks solvability over the integers,
// and assigns fields only after all checks pass.
func (p *LinearEquationParams) Validate(view *question.ParamView) error {
	a, err := view.Int("a")
	if err != nil {
		return err
	}
	b, err := view.Int("b")
	if err != nil {
		return err
	}
	c, err := view.Int("c")
	if err != nil {
		return err
	}
	if a == 0 {
		return fmt.Errorf("%w: a must be nonzero", question.ErrParamDomain)
	}
	if (c-b)%a != 0 {
		return fmt.Errorf("%w: a must divide c-b for an integer root, got a=%d c-b=%d", question.ErrParamDomain, a, c-b)
	}
	p.A, p.B, p.C = a, b, c

	return nil
}

// Generate assigns the fixed defaults.
func (p *LinearEquationParams) Generate() {
	p.A = defaultA
	p.B = defaultB
	p.C = defaultC
}

// LinearEquation asks for the integer root of a·x + b = c. X is the
// derived answer.
type LinearEquation struct {
	Params LinearEquationParams
	X      int
}

// NewLinearEquation builds a LinearEquation from an optional parameter
// mapping.
func NewLinearEquation(params question.Params) (question.Question, error) {
	q := &LinearEquation{}
	if err := question.BuildSpec(&q.Params, params); err != nil {
		return nil, err
	}
	q.X = (q.Params.C - q.Params.B) / q.Params.A

	return q, nil
}

// Topic classifies LinearEquation under algebra.
func (q *LinearEquation) Topic() question.Topic { return question.Algebra }

// Definitions returns this package's registrable question definitions.
func Definitions() []question.Definition {
	return []question.Definition{
		{Topic: question.Algebra, Name: LinearEquationName, New: NewLinearEquation},
	}
}
