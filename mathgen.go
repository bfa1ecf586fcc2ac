package mathgen

import (
	"github.com/quizium/mathgen/algebra"
	"github.com/quizium/mathgen/calculus"
	"github.com/quizium/mathgen/linalg"
	"github.com/quizium/mathgen/numtheory"
	"github.com/quizium/mathgen/question"
)

// BuiltinDefinitions returns every question definition shipped with
// mathgen, in canonical topic order. The slice is rebuilt per call;
// callers may reorder or filter it before registering.
func BuiltinDefinitions() []question.Definition {
	var defs []question.Definition
	defs = append(defs, calculus.Definitions()...)
	defs = append(defs, algebra.Definitions()...)
	defs = append(defs, linalg.Definitions()...)
	defs = append(defs, numtheory.Definitions()...)

	return defs
}

// NewRegistry runs the explicit startup registration pass: it constructs
// a fresh registry and registers every built-in definition. This is the
// single-writer phase — once NewRegistry returns, the registry is only
// read and is safe to share.
//
// Errors:
//   - question.ErrBadDefinition / question.ErrDuplicate — a miswired
//     built-in, which is a startup defect: fail the process, do not
//     continue with a partial registry.
func NewRegistry() (*question.Registry, error) {
	reg := question.NewRegistry()
	for _, def := range BuiltinDefinitions() {
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
