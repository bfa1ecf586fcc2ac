// Package algebra provides algebra question generators for the mathgen
// registry.
//
// Currently implemented:
//   - LinearEquation — solve a·x + b = c over the integers; parameters
//     are constrained so the root is always an integer.
package algebra
