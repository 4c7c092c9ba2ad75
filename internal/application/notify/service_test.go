package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/hebdate"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/kinship"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

type stubConverter struct {
	window map[hebdate.Key]time.Time
	err    error
}

func (s *stubConverter) DateRange(context.Context, time.Time, int) (map[hebdate.Key]time.Time, error) {
	return s.window, s.err
}

// familyFixture is a couple with one child plus an unconnected individual.
func familyFixture(t *testing.T) (*tree.Index, *kinship.Graph) {
	t.Helper()
	idx, err := tree.NewIndex(
		[]*tree.Individual{
			{ID: "@I1@", Name: "John Doe", Gender: tree.GenderMale},
			{ID: "@I2@", Name: "Mary Doe", Gender: tree.GenderFemale},
			{ID: "@I3@", Name: "Peter Doe", Gender: tree.GenderMale},
			{ID: "@I4@", Name: "Far Cousin"},
		},
		[]*tree.Family{
			{ID: "@F1@", HusbandID: "@I1@", WifeID: "@I2@", ChildIDs: []string{"@I3@"}},
		},
	)
	require.NoError(t, err)
	return idx, kinship.BuildGraph(idx)
}

func TestUpcomingMatchesAndSorts(t *testing.T) {
	_, graph := familyFixture(t)

	day1 := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	conv := &stubConverter{window: map[hebdate.Key]time.Time{
		{Month: 3, Day: 14}: day1,
		{Month: 3, Day: 15}: day2,
	}}

	events := []*tree.Event{
		// Same day as the child's birthday but farther from the reference
		// person; the sort puts it second.
		{ID: "e1", Type: tree.EventDeath, SubjectID: "@I2@", SubjectName: "Mary Doe",
			Date: hebdate.Date{Month: 3, Day: 14}},
		{ID: "e2", Type: tree.EventBirth, SubjectID: "@I3@", SubjectName: "Peter Doe",
			Date: hebdate.Date{Month: 3, Day: 14}},
		{ID: "e3", Type: tree.EventBirth, SubjectID: "@I1@", SubjectName: "John Doe",
			Date: hebdate.Date{Month: 3, Day: 15}},
		// Outside the window.
		{ID: "e4", Type: tree.EventBirth, SubjectID: "@I1@", SubjectName: "John Doe",
			Date: hebdate.Date{Month: 4, Day: 1}},
	}

	svc := NewService(events, graph, conv, "@I3@", nil)
	matches, window, err := svc.Upcoming(context.Background(), day1, 7)
	require.NoError(t, err)
	assert.Len(t, window, 2)
	require.Len(t, matches, 3)

	assert.Equal(t, "e2", matches[0].Event.ID)
	assert.Equal(t, 0, matches[0].Distance)
	assert.Equal(t, []string{"@I3@"}, matches[0].Path)

	assert.Equal(t, "e1", matches[1].Event.ID)
	assert.Equal(t, 1, matches[1].Distance)
	assert.Equal(t, []string{"@I3@", "@I2@"}, matches[1].Path)

	assert.Equal(t, "e3", matches[2].Event.ID)
	assert.Equal(t, day2, matches[2].Day)
}

func TestUpcomingUnreachableSubject(t *testing.T) {
	_, graph := familyFixture(t)

	day := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	conv := &stubConverter{window: map[hebdate.Key]time.Time{
		{Month: 3, Day: 14}: day,
	}}
	events := []*tree.Event{
		{ID: "e1", Type: tree.EventDeath, SubjectID: "@I4@", SubjectName: "Far Cousin",
			Date: hebdate.Date{Month: 3, Day: 14}},
	}

	svc := NewService(events, graph, conv, "@I3@", nil)
	matches, _, err := svc.Upcoming(context.Background(), day, 7)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, UnreachableDistance, matches[0].Distance)
	assert.Nil(t, matches[0].Path)
}

func TestUpcomingConverterFailure(t *testing.T) {
	_, graph := familyFixture(t)
	conv := &stubConverter{err: errors.New(errors.ErrCodeHebcalRequestFailed, "boom")}

	svc := NewService(nil, graph, conv, "@I3@", nil)
	_, _, err := svc.Upcoming(context.Background(), time.Now(), 7)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeHebcalRequestFailed))
}
