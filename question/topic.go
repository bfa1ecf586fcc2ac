package question

import "fmt"

// Topic is the closed category vocabulary under which questions are
// grouped. The wire values below are a versioned contract shared with
// every consumer of a registry snapshot; adding a topic is a breaking
// change and must be coordinated, so the set is fixed at build time and
// not runtime-extensible.
type Topic string

const (
	Calculus      Topic = "calculus"
	Algebra       Topic = "algebra"
	LinearAlgebra Topic = "linear_algebra"
	NumberTheory  Topic = "number_theory"
)

// allTopics fixes the canonical enumeration order.
var allTopics = []Topic{Calculus, Algebra, LinearAlgebra, NumberTheory}

// Valid reports whether t is one of the closed Topic values.
func (t Topic) Valid() bool {
	for _, known := range allTopics {
		if t == known {
			return true
		}
	}

	return false
}

// String returns the wire value.
func (t Topic) String() string { return string(t) }

// ParseTopic maps a wire value (e.g. "number_theory") back to its Topic.
//
// Errors:
//   - ErrBadDefinition — s is outside the closed vocabulary.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown topic %q", ErrBadDefinition, s)
	}

	return t, nil
}

// Topics returns the closed vocabulary in canonical order. The returned
// slice is a copy; callers may not grow the vocabulary through it.
func Topics() []Topic {
	out := make([]Topic, len(allTopics))
	copy(out, allTopics)

	return out
}
