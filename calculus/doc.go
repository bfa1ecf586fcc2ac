// Package calculus provides calculus question generators for the mathgen
// registry.
//
// Currently implemented:
//   - PowerRule — differentiate k·x^p by the power rule.
package calculus
