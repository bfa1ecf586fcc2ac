// Package mathgen is a small library of self-validating, parameterized
// math-question generators, discoverable by (topic, name) through a
// conflict-checked registry.
//
// 🚀 What is mathgen?
//
//	A synchronous, in-process construction library that brings together:
//		• Core contracts: read-tracked parameter views, dual-mode parameter
//		  specs (validate supplied input, or generate fixed defaults)
//		• A registry keyed by (topic, name), populated once during an
//		  explicit startup phase, never overwritten
//		• Question generators per topic: algebra, calculus, linear algebra,
//		  number theory
//		• A deterministic catalog manifest (YAML/JSON) for enumeration
//
// ✨ Why choose mathgen?
//
//   - Strict parameter contracts – every supplied key must be consumed,
//     every value must satisfy its domain rules, or construction fails
//   - Deterministic – generate mode uses fixed constants, no randomness
//   - Sentinel errors – branch with errors.Is, never string matching
//   - Pure Go – no network, no persistence, no hidden state
//
// Everything is organized under small topical packages:
//
//	question/  — ParamView, Spec, Question, Definition, Registry, errors
//	algebra/   — LinearEquation
//	calculus/  — PowerRule
//	linalg/    — Determinant
//	numtheory/ — PairSum
//	catalog/   — deterministic registry manifest (YAML/JSON)
//
// Quick start:
//
//	reg, err := mathgen.NewRegistry()
//	def, err := reg.Lookup(question.NumberTheory, "PairSum")
//	q, err := def.New(question.Params{"m": 75, "n": 12})
//
// The root package is the composition root: NewRegistry runs the explicit
// registration pass over every built-in generator. Applications with their
// own generators build a question.Registry directly and register a mix of
// built-in and custom definitions.
package mathgen
