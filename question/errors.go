// errors.go — sentinel errors for the question package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     failure sites attach context with %w instead.
//   • Parameter errors (ErrMissingParam, ErrIrrelevantParams, ErrParamDomain)
//     are expected, caller-recoverable conditions raised at instantiation.
//   • Registration errors (ErrBadDefinition, ErrDuplicate) are startup
//     defects: a miswired composition root should fail to come up.

package question

import "errors"

// ErrMissingParam indicates that a validator asked the ParamView for a key
// the caller never supplied.
// Usage: if errors.Is(err, ErrMissingParam) { /* report required key */ }.
var ErrMissingParam = errors.New("question: missing required param")

// ErrIrrelevantParams indicates that the caller supplied one or more keys
// the validator never consumed. Full consumption is a hard requirement:
// silently ignoring unrecognized input would mask caller mistakes.
// Usage: if errors.Is(err, ErrIrrelevantParams) { /* reject extra keys */ }.
var ErrIrrelevantParams = errors.New("question: unexpected params")

// ErrParamDomain indicates a supplied value is present but has the wrong
// primitive type, or violates a relational/domain rule between parameters
// (e.g. a forbidden divisibility relationship).
// Usage: if errors.Is(err, ErrParamDomain) { /* report invalid value */ }.
var ErrParamDomain = errors.New("question: param out of domain")

// ErrBadDefinition indicates a structurally invalid Definition: a topic
// outside the closed vocabulary, an empty name, or a nil constructor.
// Usage: if errors.Is(err, ErrBadDefinition) { /* fix the definition */ }.
var ErrBadDefinition = errors.New("question: invalid definition")

// ErrDuplicate indicates a second registration under an already-taken
// (topic, name) key. The registry never overwrites.
// Usage: if errors.Is(err, ErrDuplicate) { /* rename or drop one */ }.
var ErrDuplicate = errors.New("question: duplicate registration")

// ErrUnknownQuestion indicates a Lookup for a (topic, name) pair that was
// never registered.
// Usage: if errors.Is(err, ErrUnknownQuestion) { /* 404-style handling */ }.
var ErrUnknownQuestion = errors.New("question: no such question")
