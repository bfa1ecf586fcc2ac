// Package linalg provides linear-algebra question generators for the
// mathgen registry.
//
// Currently implemented:
//   - Determinant — compute the determinant of an invertible 2×2 integer
//     matrix.
package linalg
