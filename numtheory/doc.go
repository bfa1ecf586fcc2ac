// Package numtheory provides number-theory question generators for the
// mathgen registry.
//
// Currently implemented:
//   - PairSum — given two nonzero integers m and n that do not divide
//     each other, ask for their sum. The rule rejects exactly the
//     degenerate pairs of equal magnitude.
//
// Each generator follows the question package contract: a params struct
// implementing Spec (Validate/Generate), a question struct with exported
// derived fields, a constructor, and a Definitions() slice the composition
// root registers at startup.
package numtheory
