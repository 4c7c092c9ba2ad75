package kinship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
)

// coupleWithChild has @I1@ married to @I2@, their child @I3@ married to
// @I4@, and @I5@ isolated.  Mirrors the shape used by the upstream tests.
func coupleWithChild(t *testing.T) *tree.Index {
	t.Helper()
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@I1@", Name: "John Doe", Gender: tree.GenderMale},
			{ID: "@I2@", Name: "Jane Doe", Gender: tree.GenderFemale},
			{ID: "@I3@", Name: "Peter Doe", Gender: tree.GenderMale},
			{ID: "@I4@", Name: "Mary Roe", Gender: tree.GenderFemale},
			{ID: "@I5@", Name: "Hermit Stone", Gender: tree.GenderMale},
		},
		[]*tree.Family{
			{ID: "@F1@", HusbandID: "@I1@", WifeID: "@I2@", ChildIDs: []string{"@I3@"}},
			{ID: "@F2@", HusbandID: "@I3@", WifeID: "@I4@"},
		},
	)
	require.NoError(t, err)
	return idx
}

func TestBuildGraphEdges(t *testing.T) {
	g := BuildGraph(coupleWithChild(t))

	assert.Equal(t, 5, g.NodeCount())
	assert.True(t, g.HasEdge("@I1@", "@I2@"), "spouse edge")
	assert.True(t, g.HasEdge("@I1@", "@I3@"), "father-child edge")
	assert.True(t, g.HasEdge("@I2@", "@I3@"), "mother-child edge")
	assert.True(t, g.HasEdge("@I3@", "@I4@"), "second spouse edge")
	assert.False(t, g.HasEdge("@I1@", "@I4@"))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestBuildGraphIsolatedNode(t *testing.T) {
	g := BuildGraph(coupleWithChild(t))
	assert.True(t, g.HasNode("@I5@"))
	assert.Empty(t, g.Neighbors("@I5@"))
}

func TestBuildGraphDanglingReferences(t *testing.T) {
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@I1@", Name: "Solo Parent", Gender: tree.GenderFemale},
			{ID: "@I2@", Name: "Real Child"},
		},
		[]*tree.Family{
			// Husband and one child point at records that do not exist.
			{ID: "@F1@", HusbandID: "@GHOST@", WifeID: "@I1@", ChildIDs: []string{"@I2@", "@MISSING@"}},
		},
	)
	require.NoError(t, err)

	g := BuildGraph(idx)
	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasEdge("@I1@", "@I2@"))
	assert.False(t, g.HasNode("@GHOST@"))
	assert.False(t, g.HasNode("@MISSING@"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuildGraphChildrenWithoutParents(t *testing.T) {
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@I1@", Name: "A"},
			{ID: "@I2@", Name: "B"},
		},
		[]*tree.Family{
			{ID: "@F1@", ChildIDs: []string{"@I1@", "@I2@"}},
		},
	)
	require.NoError(t, err)

	g := BuildGraph(idx)
	// No recorded parents: the family contributes no edges at all.
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuildGraphSingleParentLinksChildren(t *testing.T) {
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@I1@", Name: "Widow", Gender: tree.GenderFemale},
			{ID: "@I2@", Name: "Kid One"},
			{ID: "@I3@", Name: "Kid Two"},
		},
		[]*tree.Family{
			{ID: "@F1@", WifeID: "@I1@", ChildIDs: []string{"@I2@", "@I3@"}},
		},
	)
	require.NoError(t, err)

	g := BuildGraph(idx)
	assert.True(t, g.HasEdge("@I1@", "@I2@"))
	assert.True(t, g.HasEdge("@I1@", "@I3@"))
	assert.False(t, g.HasEdge("@I2@", "@I3@"), "siblings are linked through the parent only")
}

func TestMultiEdgeCollapses(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
}

func TestSelfLoopIgnored(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "a")
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasNode("a"))
}

func TestNeighborOrderIsInsertionOrder(t *testing.T) {
	g := NewGraph()
	g.AddEdge("hub", "first")
	g.AddEdge("hub", "second")
	g.AddEdge("hub", "third")
	assert.Equal(t, []string{"first", "second", "third"}, g.Neighbors("hub"))
}
