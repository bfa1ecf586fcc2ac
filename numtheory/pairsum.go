package numtheory

import (
	"fmt"

	"github.com/quizium/mathgen/question"
)

// Fixed generate-mode defaults. 75 and 12 share a factor of 3 but do not
// divide each other, so the pair satisfies PairSumParams' own rule.
const (
	defaultM = 75
	defaultN = 12
)

// PairSumName is the registry name of the PairSum generator under
// question.NumberTheory.
const PairSumName = "PairSum"

// PairSumParams is the parameter bundle for PairSum: two integers m and n.
//
// Domain rules (enforced in validate mode, honored by the defaults):
//   - m and n are ints and nonzero;
//   - m and n must not divide each other, which forbids exactly the pairs
//     of equal magnitude (m == n or m == -n). One-sided divisibility, like
//     (3, 9), is fine.
type PairSumParams struct {
	M, N int
}

// Validate reads "m" and "n" through the view, applies the domain rules,
// and assigns both fields only after every check passes.
//
// Errors:
//   - question.ErrMissingParam — "m" or "n" absent.
//   - question.ErrParamDomain  — non-int value, a zero, or a pair whose
//     sides divide each other.
func (p *PairSumParams) Validate(view *question.ParamView) error {
	m, err := view.Int("m")
	if err != nil {
		return err
	}
	n, err := view.Int("n")
	if err != nil {
		return err
	}
	if m == 0 || n == 0 {
		return fmt.Errorf("%w: m and n must be nonzero, got m=%d n=%d", question.ErrParamDomain, m, n)
	}
	if m%n == 0 && n%m == 0 {
		return fmt.Errorf("%w: m and n must not divide each other, got m=%d n=%d", question.ErrParamDomain, m, n)
	}
	p.M, p.N = m, n

	return nil
}

// Generate assigns the fixed defaults.
func (p *PairSumParams) Generate() {
	p.M = defaultM
	p.N = defaultN
}

// PairSum asks for the sum of the validated pair. Sum is the derived
// answer, fixed at construction.
type PairSum struct {
	Params PairSumParams
	Sum    int
}

// NewPairSum builds a PairSum from an optional parameter mapping.
// ParamSpec errors propagate untouched; on error no instance is returned.
func NewPairSum(params question.Params) (question.Question, error) {
	q := &PairSum{}
	if err := question.BuildSpec(&q.Params, params); err != nil {
		return nil, err
	}
	q.Sum = q.Params.M + q.Params.N

	return q, nil
}

// Topic classifies PairSum under number theory.
func (q *PairSum) Topic() question.Topic { return question.NumberTheory }

// Definitions returns this package's registrable question definitions.
func Definitions() []question.Definition {
	return []question.Definition{
		{Topic: question.NumberTheory, Name: PairSumName, New: NewPairSum},
	}
}
