package question_test

import (
	"testing"

	"github.com/quizium/mathgen/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopic_Valid checks membership of the closed vocabulary.
func TestTopic_Valid(t *testing.T) {
	for _, topic := range question.Topics() {
		assert.True(t, topic.Valid(), "%q must be valid", topic)
	}
	assert.False(t, question.Topic("geometry").Valid())
	assert.False(t, question.Topic("").Valid())
}

// TestParseTopic verifies wire-value round trips and rejection of unknown
// identifiers.
func TestParseTopic(t *testing.T) {
	topic, err := question.ParseTopic("number_theory")
	require.NoError(t, err)
	assert.Equal(t, question.NumberTheory, topic)

	_, err = question.ParseTopic("topology")
	assert.ErrorIs(t, err, question.ErrBadDefinition)
}

// TestTopics_CanonicalOrder pins the enumeration order, which consumers
// of catalog listings rely on.
func TestTopics_CanonicalOrder(t *testing.T) {
	want := []question.Topic{
		question.Calculus,
		question.Algebra,
		question.LinearAlgebra,
		question.NumberTheory,
	}
	assert.Equal(t, want, question.Topics())

	got := question.Topics()
	got[0] = question.Topic("mutated")
	assert.Equal(t, want, question.Topics(), "Topics must return a copy")
}
