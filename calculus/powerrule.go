package calculus

import (
	"fmt"

	"github.com/quizium/mathgen/question"
)

// Defaults encode 3·x⁴, whose derivative is 12·x³.
const (
	defaultCoeff = 3
	defaultExp   = 4
)

// PowerRuleName is the registry name of the PowerRule generator under
// question.Calculus.
const PowerRuleName = "PowerRule"

// PowerRuleParams holds the monomial k·x^p to differentiate.
//
// Domain rules:
//   - coeff (k) is a nonzero int;
//   - exp (p) is an int ≥ 1, so the derivative stays a monomial with a
//     nonnegative exponent.
type PowerRuleParams struct {
	Coeff, Exp int
}

// Validate reads "coeff" and "exp" and applies the domain rules.
func (p *PowerRuleParams) Validate(view *question.ParamView) error {
	coeff, err := view.Int("coeff")
	if err != nil {
		return err
	}
	exp, err := view.Int("exp")
	if err != nil {
		return err
	}
	if coeff == 0 {
		return fmt.Errorf("%w: coeff must be nonzero", question.ErrParamDomain)
	}
	if exp < 1 {
		return fmt.Errorf("%w: exp must be >= 1, got %d", question.ErrParamDomain, exp)
	}
	p.Coeff, p.Exp = coeff, exp

	return nil
}

// Generate assigns the fixed defaults.
func (p *PowerRuleParams) Generate() {
	p.Coeff = defaultCoeff
	p.Exp = defaultExp
}

// PowerRule asks for the derivative of k·x^p. DCoeff and DExp are the
// derived coefficient and exponent of the answer k·p·x^(p−1).
type PowerRule struct {
	Params PowerRuleParams
	DCoeff int
	DExp   int
}

// NewPowerRule builds a PowerRule from an optional parameter mapping.
func NewPowerRule(params question.Params) (question.Question, error) {
	q := &PowerRule{}
	if err := question.BuildSpec(&q.Params, params); err != nil {
		return nil, err
	}
	q.DCoeff = q.Params.Coeff * q.Params.Exp
	q.DExp = q.Params.Exp - 1

	return q, nil
}

// Topic classifies PowerRule under calculus.
func (q *PowerRule) Topic() question.Topic { return question.Calculus }

// Definitions returns this package's registrable question definitions.
func Definitions() []question.Definition {
	return []question.Definition{
		{Topic: question.Calculus, Name: PowerRuleName, New: NewPowerRule},
	}
}
