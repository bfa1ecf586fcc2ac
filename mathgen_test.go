package mathgen_test

import (
	"testing"

	"github.com/quizium/mathgen"
	"github.com/quizium/mathgen/catalog"
	"github.com/quizium/mathgen/numtheory"
	"github.com/quizium/mathgen/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRegistry_Builtins verifies the startup pass registers one
// generator per topic and that lookups return the registered constructors.
func TestNewRegistry_Builtins(t *testing.T) {
	reg, err := mathgen.NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	for _, topic := range question.Topics() {
		snap := reg.Snapshot()
		assert.Len(t, snap[topic], 1, "topic %q must carry exactly one built-in", topic)
	}
}

// TestNewRegistry_LookupAndConstruct runs the full path: lookup by
// (topic, name), construct with explicit params, read the derived field.
func TestNewRegistry_LookupAndConstruct(t *testing.T) {
	reg, err := mathgen.NewRegistry()
	require.NoError(t, err)

	def, err := reg.Lookup(question.NumberTheory, numtheory.PairSumName)
	require.NoError(t, err)

	q, err := def.New(question.Params{"m": 75, "n": 12})
	require.NoError(t, err)
	assert.Equal(t, 87, q.(*numtheory.PairSum).Sum)

	// generate mode through the same constructor reference
	q, err = def.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 87, q.(*numtheory.PairSum).Sum)
}

// TestNewRegistry_UnknownLookup verifies ErrUnknownQuestion end to end.
func TestNewRegistry_UnknownLookup(t *testing.T) {
	reg, err := mathgen.NewRegistry()
	require.NoError(t, err)

	_, err = reg.Lookup(question.Calculus, "ChainRule")
	assert.ErrorIs(t, err, question.ErrUnknownQuestion)
}

// TestNewRegistry_CatalogManifest pins the full built-in catalog listing.
func TestNewRegistry_CatalogManifest(t *testing.T) {
	reg, err := mathgen.NewRegistry()
	require.NoError(t, err)

	want := []catalog.Entry{
		{Topic: "calculus", Name: "PowerRule"},
		{Topic: "algebra", Name: "LinearEquation"},
		{Topic: "linear_algebra", Name: "Determinant"},
		{Topic: "number_theory", Name: "PairSum"},
	}
	assert.Equal(t, want, catalog.Build(reg).Questions)
}

// TestBuiltinDefinitions_AllConstructible verifies every built-in
// constructs in generate mode and reports the topic it was registered
// under.
func TestBuiltinDefinitions_AllConstructible(t *testing.T) {
	for _, def := range mathgen.BuiltinDefinitions() {
		q, err := def.New(nil)
		require.NoError(t, err, "%s/%s must construct with defaults", def.Topic, def.Name)
		assert.Equal(t, def.Topic, q.Topic())
	}
}
