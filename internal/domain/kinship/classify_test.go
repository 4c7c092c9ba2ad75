package kinship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/testutil"
)

func TestClassifySpouses(t *testing.T) {
	idx := coupleWithChild(t)
	c := NewClassifier(idx)

	assert.Equal(t, RelHusbandOf, c.Classify("@I1@", "@I2@"))
	assert.Equal(t, RelWifeOf, c.Classify("@I2@", "@I1@"))
}

func TestClassifyParents(t *testing.T) {
	idx := coupleWithChild(t)
	c := NewClassifier(idx)

	assert.Equal(t, RelFatherOf, c.Classify("@I1@", "@I3@"))
	assert.Equal(t, RelMotherOf, c.Classify("@I2@", "@I3@"))
}

func TestClassifyChildren(t *testing.T) {
	idx := coupleWithChild(t)
	c := NewClassifier(idx)

	assert.Equal(t, RelSonOf, c.Classify("@I3@", "@I1@"))
	assert.Equal(t, RelSonOf, c.Classify("@I3@", "@I2@"))
}

func TestClassifyDaughter(t *testing.T) {
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@I1@", Name: "Dad", Gender: tree.GenderMale},
			{ID: "@I2@", Name: "Daughter", Gender: tree.GenderFemale},
		},
		[]*tree.Family{
			{ID: "@F1@", HusbandID: "@I1@", ChildIDs: []string{"@I2@"}},
		},
	)
	require.NoError(t, err)

	c := NewClassifier(idx)
	assert.Equal(t, RelDaughterOf, c.Classify("@I2@", "@I1@"))
}

func TestClassifyUnknownIndividual(t *testing.T) {
	idx := coupleWithChild(t)
	c := NewClassifier(idx)

	assert.Equal(t, RelUnknown, c.Classify("@I1@", "@I99@"))
	assert.Equal(t, RelUnknown, c.Classify("@I99@", "@I1@"))
}

func TestClassifyRelativeFallbackLogs(t *testing.T) {
	idx := coupleWithChild(t)
	logger := testutil.NewMockLogger()
	c := NewClassifier(idx, WithLogger(logger))

	// @I2@ and @I4@ are not adjacent; no canonical rule matches.
	assert.Equal(t, RelRelative, c.Classify("@I2@", "@I4@"))
	assert.True(t, logger.HasMessage("warn", "no canonical relationship"))
}

func TestClassifyGenderDefault(t *testing.T) {
	newIdx := func(t *testing.T) *tree.Index {
		idx, err := tree.NewIndex(
			[]*tree.Individual{
				{ID: "@I1@", Name: "Ambiguous"}, // no recorded gender
				{ID: "@I2@", Name: "Spouse", Gender: tree.GenderFemale},
			},
			[]*tree.Family{
				{ID: "@F1@", HusbandID: "@I1@", WifeID: "@I2@"},
			},
		)
		require.NoError(t, err)
		return idx
	}

	// Default fallback is male, for parity with the source data convention.
	c := NewClassifier(newIdx(t))
	assert.Equal(t, RelHusbandOf, c.Classify("@I1@", "@I2@"))

	c = NewClassifier(newIdx(t), WithDefaultGender(tree.GenderFemale))
	assert.Equal(t, RelWifeOf, c.Classify("@I1@", "@I2@"))
}

// Every parent-child edge the builder creates must classify canonically in
// both directions, and spouse edges likewise: the classifier never falls
// back to "relative" on a correctly built graph.
func TestClassifyConsistentWithGraph(t *testing.T) {
	idx := coupleWithChild(t)
	g := BuildGraph(idx)
	logger := testutil.NewMockLogger()
	c := NewClassifier(idx, WithLogger(logger))

	canonical := map[Relationship]bool{
		RelHusbandOf: true, RelWifeOf: true,
		RelFatherOf: true, RelMotherOf: true,
		RelSonOf: true, RelDaughterOf: true,
	}

	for _, a := range g.Nodes() {
		for _, b := range g.Neighbors(a) {
			rel := c.Classify(a, b)
			assert.True(t, canonical[rel], "edge (%s,%s) classified as %s", a, b, rel)
		}
	}
	assert.Equal(t, 0, logger.Count("warn"))
}
