package gedcom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/hebdate"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/testutil"
)

const sampleGedcom = `0 HEAD
1 SOUR test
0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
1 BIRT
2 DATE @#DHEBREW@ 15 KSL 5710 (1949)
0 @I2@ INDI
1 NAME Jane /Doe/
1 SEX F
1 DEAT
2 DATE @#DHEBREW@ 3 TSH 5780
0 @I3@ INDI
1 NAME Peter /Doe/
1 SEX M
0 @I4@ INDI
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE @#DHEBREW@ 7 SVN 5708
0 @F2@ FAM
1 HUSB @I3@
1 WIFE @I4@
`

func decodeSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Decode(strings.NewReader(sampleGedcom), testutil.NewMockLogger())
	require.NoError(t, err)
	return doc
}

func TestDecodeIndividuals(t *testing.T) {
	doc := decodeSample(t)
	require.Len(t, doc.Individuals, 4)

	john := doc.Individuals[0]
	assert.Equal(t, "@I1@", john.ID)
	assert.Equal(t, "John Doe", john.Name)
	assert.Equal(t, tree.GenderMale, john.Gender)
	assert.Equal(t, 1949, john.BirthYear)

	jane := doc.Individuals[1]
	assert.Equal(t, tree.GenderFemale, jane.Gender)
	assert.Equal(t, 5780, jane.DeathYear)

	// No NAME or SEX lines at all.
	anon := doc.Individuals[3]
	assert.Equal(t, tree.UnknownName, anon.Name)
	assert.Equal(t, tree.GenderUnknown, anon.Gender)
}

func TestDecodeFamilies(t *testing.T) {
	doc := decodeSample(t)
	require.Len(t, doc.Families, 2)

	f1 := doc.Families[0]
	assert.Equal(t, "@F1@", f1.ID)
	assert.Equal(t, "@I1@", f1.HusbandID)
	assert.Equal(t, "@I2@", f1.WifeID)
	assert.Equal(t, []string{"@I3@"}, f1.ChildIDs)
}

func TestDecodeEvents(t *testing.T) {
	doc := decodeSample(t)
	require.Len(t, doc.Events, 3)

	byType := make(map[tree.EventType]*tree.Event)
	for _, ev := range doc.Events {
		byType[ev.Type] = ev
		assert.NotEmpty(t, ev.ID)
	}

	birth := byType[tree.EventBirth]
	require.NotNil(t, birth)
	assert.Equal(t, "@I1@", birth.SubjectID)
	assert.Equal(t, hebdate.Date{Year: 5710, Month: 3, Day: 15}, birth.Date)
	assert.Equal(t, 1949, birth.Year)

	death := byType[tree.EventDeath]
	require.NotNil(t, death)
	assert.Equal(t, "@I2@", death.SubjectID)
	assert.Equal(t, hebdate.Key{Month: 1, Day: 3}, death.Date.Key())

	marriage := byType[tree.EventMarriage]
	require.NotNil(t, marriage)
	assert.Equal(t, "@I1@", marriage.SubjectID, "husband represents the couple")
	assert.Equal(t, "John Doe & Jane Doe", marriage.SubjectName)
	assert.Equal(t, "@I1@", marriage.HusbandID)
	assert.Equal(t, "@I2@", marriage.WifeID)
}

func TestDecodeIndexRoundTrip(t *testing.T) {
	doc := decodeSample(t)
	idx, err := doc.Index()
	require.NoError(t, err)
	assert.Equal(t, 4, idx.IndividualCount())
	assert.Equal(t, 2, idx.FamilyCount())
}

func TestDecodeSkipsGarbageLines(t *testing.T) {
	logger := testutil.NewMockLogger()
	doc, err := Decode(strings.NewReader("0 @I1@ INDI\ngarbage!\n1 NAME A /B/\n"), logger)
	require.NoError(t, err)
	require.Len(t, doc.Individuals, 1)
	assert.Equal(t, "A B", doc.Individuals[0].Name)
	assert.True(t, logger.HasMessage("warn", "skipping unparseable"))
}

func TestDecodeMarriageWithoutDateProducesNoEvent(t *testing.T) {
	src := "0 @F1@ FAM\n1 HUSB @I1@\n1 WIFE @I2@\n"
	doc, err := Decode(strings.NewReader(src), testutil.NewMockLogger())
	require.NoError(t, err)
	assert.Empty(t, doc.Events)
}
