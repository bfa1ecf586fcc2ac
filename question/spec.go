package question

import "fmt"

// Spec is the dual-mode parameter bundle contract. A concrete spec is a
// plain struct whose fields hold the validated or generated parameters of
// one question type; BuildSpec drives exactly one of the two methods.
//
// Validate reads every parameter it needs through the supplied view (this
// is how consumption is tracked), applies type, range and relational
// checks, and assigns the struct's fields only after all checks pass, so a
// failed validation never leaves partially-assigned state behind. It must
// not touch the view beyond reading.
//
// Generate assigns the same set of fields Validate would, from fixed
// deterministic constants — no randomness, no external input. It has no
// error return on purpose: defaults that violate the spec's own domain
// rules are a programming error, not a runtime condition.
type Spec interface {
	Validate(view *ParamView) error
	Generate()
}

// BuildSpec constructs s from params, choosing the mode by presence of
// input:
//
//   - params non-empty → validate mode: wrap params in a fresh ParamView,
//     run s.Validate, then require the view to be fully consumed.
//   - params nil or empty → generate mode: run s.Generate.
//
// Errors:
//   - any error from s.Validate, propagated untouched
//     (ErrMissingParam / ErrParamDomain from well-behaved validators);
//   - ErrIrrelevantParams — naming the keys Validate never read.
//
// Complexity: O(len(params)) plus the cost of the validator itself.
func BuildSpec(s Spec, params Params) error {
	if len(params) == 0 {
		s.Generate()

		return nil
	}

	view := NewParamView(params)
	if err := s.Validate(view); err != nil {
		return err
	}
	if unused := view.Unused(); len(unused) > 0 {
		return fmt.Errorf("%w: %v", ErrIrrelevantParams, unused)
	}

	return nil
}
