package linalg

import (
	"fmt"

	"github.com/quizium/mathgen/question"
)

// Defaults encode the matrix [[2,1],[7,4]], determinant 1.
const (
	defaultA = 2
	defaultB = 1
	defaultC = 7
	defaultD = 4
)

// DeterminantName is the registry name of the Determinant generator under
// question.LinearAlgebra.
const DeterminantName = "Determinant"

// DeterminantParams holds the entries of the 2×2 matrix [[a,b],[c,d]].
//
// Domain rules:
//   - a, b, c, d are ints;
//   - the matrix is invertible (a·d − b·c ≠ 0), so a singular matrix is
//     rejected rather than posed as a degenerate exercise.
type DeterminantParams struct {
	A, B, C, D int
}

// Validate reads the four entries and rejects singular matrices.
func (p *DeterminantParams) Validate(view *question.ParamView) error {
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
	d, err := view.Int("d")
	if err != nil {
		return err
	}
	if a*d-b*c == 0 {
		return fmt.Errorf("%w: matrix [[%d,%d],[%d,%d]] is singular", question.ErrParamDomain, a, b, c, d)
	}
	p.A, p.B, p.C, p.D = a, b, c, d

	return nil
}

// Generate assigns the fixed defaults.
func (p *DeterminantParams) Generate() {
	p.A = defaultA
	p.B = defaultB
	p.C = defaultC
	p.D = defaultD
}

// Determinant asks for det [[a,b],[c,d]]. Det is the derived answer.
type Determinant struct {
	Params DeterminantParams
	Det    int
}

// NewDeterminant builds a Determinant from an optional parameter mapping.
func NewDeterminant(params question.Params) (question.Question, error) {
	q := &Determinant{}
	if err := question.BuildSpec(&q.Params, params); err != nil {
		return nil, err
	}
	q.Det = q.Params.A*q.Params.D - q.Params.B*q.Params.C

	return q, nil
}

// Topic classifies Determinant under linear algebra.
func (q *Determinant) Topic() question.Topic { return question.LinearAlgebra }

// Definitions returns this package's registrable question definitions.
func Definitions() []question.Definition {
	return []question.Definition{
		{Topic: question.LinearAlgebra, Name: DeterminantName, New: NewDeterminant},
	}
}
