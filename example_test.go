package mathgen_test

import (
	"errors"
	"fmt"

	"github.com/quizium/mathgen"
	"github.com/quizium/mathgen/numtheory"
	"github.com/quizium/mathgen/question"
)

// Example walks the whole surface: startup registration, lookup by
// (topic, name), validate-mode and generate-mode construction, and the
// hard rejection of unconsumed parameters.
func Example() {
	reg, err := mathgen.NewRegistry()
	if err != nil {
		fmt.Println("startup:", err)

		return
	}

	def, _ := reg.Lookup(question.NumberTheory, numtheory.PairSumName)

	q, _ := def.New(question.Params{"m": 75, "n": 12})
	fmt.Println("validated sum:", q.(*numtheory.PairSum).Sum)

	q, _ = def.New(nil)
	fmt.Println("generated sum:", q.(*numtheory.PairSum).Sum)

	_, err = def.New(question.Params{"m": 3, "n": 9, "extra": 1})
	fmt.Println("extra key rejected:", errors.Is(err, question.ErrIrrelevantParams))

	// Output:
	// validated sum: 87
	// generated sum: 87
	// extra key rejected: true
}
