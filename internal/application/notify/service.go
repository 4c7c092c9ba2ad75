// Package notify finds the family events that fall inside an upcoming
// Gregorian window and annotates each with its kinship distance and path
// from a reference person.
package notify

import (
	"context"
	"sort"
	"time"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/hebdate"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/kinship"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
)

// UnreachableDistance is the sentinel distance for subjects with no path to
// the reference person.  It sorts such events after everything else while
// keeping the distance field a plain int.
const UnreachableDistance = 999

// Converter maps a Gregorian window onto the Hebrew calendar.  Satisfied by
// the hebcal client.
type Converter interface {
	DateRange(ctx context.Context, start time.Time, days int) (map[hebdate.Key]time.Time, error)
}

// Match is one event falling inside the requested window.
type Match struct {
	Event tree.Event

	// Day is the Gregorian day in the window on which the event's Hebrew
	// date falls.
	Day time.Time

	// Distance is the kinship distance from the reference person to the
	// event's subject, or UnreachableDistance when no path exists.
	Distance int

	// Path runs from the reference person to the subject; nil when
	// unreachable.
	Path []string
}

// Service matches events against upcoming Hebrew dates.
type Service struct {
	events    []*tree.Event
	graph     *kinship.Graph
	converter Converter
	personID  string
	logger    logging.Logger
}

// NewService builds a Service.  personID is the reference person for
// distance annotations; it may be empty, in which case every match is
// reported as unreachable.
func NewService(events []*tree.Event, graph *kinship.Graph, converter Converter, personID string, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		events:    events,
		graph:     graph,
		converter: converter,
		personID:  personID,
		logger:    logger,
	}
}

// Upcoming returns the events whose recurring Hebrew date falls within the
// days-long Gregorian window starting at start, sorted by day first and
// kinship distance second.  The window map is returned alongside so callers
// can report the covered range.
func (s *Service) Upcoming(ctx context.Context, start time.Time, days int) ([]Match, map[hebdate.Key]time.Time, error) {
	window, err := s.converter.DateRange(ctx, start, days)
	if err != nil {
		return nil, nil, err
	}

	var matches []Match
	for _, ev := range s.events {
		day, ok := window[ev.Date.Key()]
		if !ok {
			continue
		}
		m := Match{Event: *ev, Day: day, Distance: UnreachableDistance}
		if path, found := s.graph.ShortestPath(s.personID, ev.SubjectID); found {
			m.Distance = len(path) - 1
			m.Path = path
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Day.Equal(matches[j].Day) {
			return matches[i].Day.Before(matches[j].Day)
		}
		return matches[i].Distance < matches[j].Distance
	})

	s.logger.Info("matched events in window",
		logging.Int("window_days", days),
		logging.Int("events", len(s.events)),
		logging.Int("matches", len(matches)))
	return matches, window, nil
}
