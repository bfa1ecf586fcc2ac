// Package question is the core of mathgen: self-validating, parameterized
// question generators grouped under closed topics, discoverable through a
// conflict-checked registry.
//
// 🚀 What does it provide?
//
//	Three small contracts and one store:
//	  • ParamView — a read-tracking wrapper over a raw parameter mapping,
//	    so validators written as plain sequential Get calls still let the
//	    framework detect any parameter nobody ever looked at.
//	  • Spec     — the dual-mode parameter bundle: Validate consumes a
//	    supplied ParamView, Generate assigns fixed deterministic defaults.
//	    BuildSpec picks the mode and enforces full consumption of input.
//	  • Question / Definition — a constructed instance vs. the registrable
//	    unit (topic, name, constructor) that produces instances.
//	  • Registry — (topic, name) → Definition, populated once during an
//	    explicit single-writer registration phase, never overwritten.
//
// ✨ Guarantees:
//   - Every supplied parameter must be meaningful: unconsumed keys are a
//     hard ErrIrrelevantParams, never a warning.
//   - Generate mode never fails and uses no external input or randomness.
//   - Construction either fully succeeds or returns an error with no
//     partially-initialized instance visible to the caller.
//   - A second registration under the same (topic, name) is ErrDuplicate,
//     never a silent overwrite.
//
// ⚙️ Usage:
//
//	import "github.com/quizium/mathgen/question"
//
//	reg := question.NewRegistry()
//	if err := reg.Register(numtheory.Definition); err != nil { ... }
//
//	def, err := reg.Lookup(question.NumberTheory, "PairSum")
//	q, err := def.New(question.Params{"m": 75, "n": 12})
//
// Concurrency: complete all Register calls before sharing the registry;
// after the registration phase, Lookup and Snapshot are read-only and safe
// for concurrent use. The registry takes no locks of its own.
//
// All failures are sentinel errors (errors.Is); see errors.go.
package question
