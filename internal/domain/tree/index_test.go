package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

func testRecords() ([]*Individual, []*Family) {
	individuals := []*Individual{
		{ID: "@I1@", Name: "John Doe", Gender: GenderMale},
		{ID: "@I2@", Name: "Jane Doe", Gender: GenderFemale},
		{ID: "@I3@", Name: "Peter Doe", Gender: GenderMale},
		{ID: "@I4@", Name: "Mary Roe", Gender: GenderFemale},
	}
	families := []*Family{
		{ID: "@F1@", HusbandID: "@I1@", WifeID: "@I2@", ChildIDs: []string{"@I3@"}},
		{ID: "@F2@", HusbandID: "@I3@", WifeID: "@I4@"},
	}
	return individuals, families
}

func TestNewIndex(t *testing.T) {
	individuals, families := testRecords()
	idx, err := NewIndex(individuals, families)
	require.NoError(t, err)

	assert.Equal(t, 4, idx.IndividualCount())
	assert.Equal(t, 2, idx.FamilyCount())

	ind, ok := idx.Individual("@I1@")
	require.True(t, ok)
	assert.Equal(t, "John Doe", ind.Name)

	_, ok = idx.Individual("@I99@")
	assert.False(t, ok)

	fam, ok := idx.Family("@F1@")
	require.True(t, ok)
	assert.True(t, fam.HasChild("@I3@"))
}

func TestNewIndexDuplicateIndividual(t *testing.T) {
	individuals := []*Individual{
		{ID: "@I1@", Name: "John Doe"},
		{ID: "@I1@", Name: "John Doe again"},
	}
	_, err := NewIndex(individuals, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDuplicateIdentifier))
}

func TestNewIndexDuplicateFamily(t *testing.T) {
	families := []*Family{
		{ID: "@F1@"},
		{ID: "@F1@"},
	}
	_, err := NewIndex(nil, families)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDuplicateIdentifier))
}

func TestFamiliesAsSpouse(t *testing.T) {
	individuals, families := testRecords()
	idx, err := NewIndex(individuals, families)
	require.NoError(t, err)

	fams := idx.FamiliesAsSpouse("@I3@")
	require.Len(t, fams, 1)
	assert.Equal(t, "@F2@", fams[0].ID)

	assert.Empty(t, idx.FamiliesAsSpouse("@I99@"))
}

func TestFamilyAsChild(t *testing.T) {
	individuals, families := testRecords()
	idx, err := NewIndex(individuals, families)
	require.NoError(t, err)

	fam := idx.FamilyAsChild("@I3@")
	require.NotNil(t, fam)
	assert.Equal(t, "@F1@", fam.ID)

	assert.Nil(t, idx.FamilyAsChild("@I1@"))
}

func TestInsertionOrderPreserved(t *testing.T) {
	individuals, families := testRecords()
	idx, err := NewIndex(individuals, families)
	require.NoError(t, err)

	got := idx.Individuals()
	require.Len(t, got, 4)
	assert.Equal(t, "@I1@", got[0].ID)
	assert.Equal(t, "@I4@", got[3].ID)

	fams := idx.Families()
	require.Len(t, fams, 2)
	assert.Equal(t, "@F1@", fams[0].ID)
}

func TestName(t *testing.T) {
	individuals, families := testRecords()
	idx, err := NewIndex(individuals, families)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", idx.Name("@I1@"))
	assert.Equal(t, "@I99@", idx.Name("@I99@"))
}

func TestDisplayNameFallback(t *testing.T) {
	anon := &Individual{ID: "@I9@"}
	assert.Equal(t, UnknownName, anon.DisplayName())
	var nilInd *Individual
	assert.Equal(t, UnknownName, nilInd.DisplayName())
}

func TestFamilyHelpers(t *testing.T) {
	fam := &Family{ID: "@F1@", HusbandID: "@I1@", WifeID: "@I2@", ChildIDs: []string{"@I3@"}}
	assert.True(t, fam.HasSpousePair())
	assert.Equal(t, "@I2@", fam.OtherSpouse("@I1@"))
	assert.Equal(t, "@I1@", fam.OtherSpouse("@I2@"))
	assert.Equal(t, "", fam.OtherSpouse("@I3@"))
	assert.Equal(t, []string{"@I1@", "@I2@"}, fam.Parents())

	single := &Family{ID: "@F2@", WifeID: "@I2@"}
	assert.False(t, single.HasSpousePair())
	assert.Equal(t, []string{"@I2@"}, single.Parents())
}
