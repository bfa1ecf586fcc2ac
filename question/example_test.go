package question_test

import (
	"errors"
	"fmt"

	"github.com/quizium/mathgen/question"
)

// ExampleBuildSpec demonstrates the two construction modes and the hard
// rejection of unconsumed input.
//
// Scenario:
//
//	pairSpec needs ints "lo" and "hi" with hi > lo. We build it three
//	ways: from a full mapping, from no mapping (fixed defaults), and from
//	a mapping carrying a key the validator never reads.
func ExampleBuildSpec() {
	var s pairSpec
	if err := question.BuildSpec(&s, question.Params{"lo": 3, "hi": 8}); err == nil {
		fmt.Println("validated:", s.Lo, s.Hi)
	}

	var d pairSpec
	if err := question.BuildSpec(&d, nil); err == nil {
		fmt.Println("generated:", d.Lo, d.Hi)
	}

	var bad pairSpec
	err := question.BuildSpec(&bad, question.Params{"lo": 3, "hi": 8, "speed": 1})
	fmt.Println("rejected:", errors.Is(err, question.ErrIrrelevantParams))

	// Output:
	// validated: 3 8
	// generated: 1 10
	// rejected: true
}

// ExampleRegistry demonstrates the explicit registration phase and
// (topic, name) discovery.
func ExampleRegistry() {
	reg := question.NewRegistry()
	_ = reg.Register(stubDef(question.Algebra, "Quadratic"))

	def, err := reg.Lookup(question.Algebra, "Quadratic")
	if err == nil {
		fmt.Println("found:", def.Topic, def.Name)
	}

	_, err = reg.Lookup(question.Algebra, "Cubic")
	fmt.Println("missing:", errors.Is(err, question.ErrUnknownQuestion))

	// Output:
	// found: algebra Quadratic
	// missing: true
}
