package kinship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
)

func TestRenderPath(t *testing.T) {
	idx := coupleWithChild(t)
	g := BuildGraph(idx)
	c := NewClassifier(idx)

	path, ok := g.ShortestPath("@I1@", "@I4@")
	require.True(t, ok)
	require.Equal(t, 2, len(path)-1)

	rendered := c.RenderPath(path, nil)
	assert.Equal(t, "John Doe (father-of) Peter Doe (husband-of) Mary Roe", rendered)
}

func TestRenderPathReversed(t *testing.T) {
	idx := coupleWithChild(t)
	g := BuildGraph(idx)
	c := NewClassifier(idx)

	path, ok := g.ShortestPath("@I1@", "@I4@")
	require.True(t, ok)

	rendered := c.RenderPath(Reverse(path), nil)
	assert.Equal(t, "Mary Roe (wife-of) Peter Doe (son-of) John Doe", rendered)
}

func TestRenderPathCustomLabeler(t *testing.T) {
	idx := coupleWithChild(t)
	c := NewClassifier(idx)

	hebrew := map[Relationship]string{
		RelHusbandOf: "בעל של",
	}
	rendered := c.RenderPath([]string{"@I1@", "@I2@"}, func(r Relationship) string {
		return hebrew[r]
	})
	assert.Equal(t, "John Doe (בעל של) Jane Doe", rendered)
}

func TestRenderPathDegenerate(t *testing.T) {
	idx := coupleWithChild(t)
	c := NewClassifier(idx)

	assert.Equal(t, "", c.RenderPath(nil, nil))
	assert.Equal(t, "John Doe", c.RenderPath([]string{"@I1@"}, nil))
}

func TestReverse(t *testing.T) {
	in := []string{"a", "b", "c"}
	assert.Equal(t, []string{"c", "b", "a"}, Reverse(in))
	assert.Equal(t, []string{"a", "b", "c"}, in, "input must not be mutated")
}

// Two cousins share only a grandparent couple: the shortest route climbs
// parent → grandparent → parent → cousin (distance 4) and every adjacent
// pair on it is canonical.
func TestGrandparentChain(t *testing.T) {
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@G1@", Name: "Grandpa", Gender: tree.GenderMale},
			{ID: "@G2@", Name: "Grandma", Gender: tree.GenderFemale},
			{ID: "@P1@", Name: "Uncle", Gender: tree.GenderMale},
			{ID: "@P2@", Name: "Mother", Gender: tree.GenderFemale},
			{ID: "@C1@", Name: "Cousin", Gender: tree.GenderFemale},
			{ID: "@C2@", Name: "Me", Gender: tree.GenderMale},
		},
		[]*tree.Family{
			{ID: "@F1@", HusbandID: "@G1@", WifeID: "@G2@", ChildIDs: []string{"@P1@", "@P2@"}},
			{ID: "@F2@", HusbandID: "@P1@", ChildIDs: []string{"@C1@"}},
			{ID: "@F3@", WifeID: "@P2@", ChildIDs: []string{"@C2@"}},
		},
	)
	require.NoError(t, err)

	g := BuildGraph(idx)
	c := NewClassifier(idx)

	path, ok := g.ShortestPath("@C2@", "@C1@")
	require.True(t, ok)
	assert.Equal(t, 4, len(path)-1)

	canonical := map[Relationship]bool{
		RelHusbandOf: true, RelWifeOf: true,
		RelFatherOf: true, RelMotherOf: true,
		RelSonOf: true, RelDaughterOf: true,
	}
	for i := 0; i < len(path)-1; i++ {
		rel := c.Classify(path[i], path[i+1])
		assert.True(t, canonical[rel], "pair (%s,%s) got %s", path[i], path[i+1], rel)
	}
}
