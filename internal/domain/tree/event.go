package tree

import "github.com/baobabprince/HebrewFamilyTree/internal/domain/hebdate"

// EventType classifies a recurring calendar event extracted from the records.
// The values are the GEDCOM tags they originate from.
type EventType string

const (
	EventBirth    EventType = "BIRT"
	EventDeath    EventType = "DEAT"
	EventMarriage EventType = "MARR"
)

// Event is a yearly-recurring Hebrew calendar occurrence tied to an
// individual (birthday, yahrzeit) or to a family (anniversary).
type Event struct {
	// ID is a run-local identifier assigned at decode time.
	ID string `json:"id"`

	Type EventType `json:"type"`

	// SubjectID is the individual the event belongs to.  For marriage events
	// it is the husband when recorded, otherwise the wife; it is the node
	// used for distance and path queries.
	SubjectID string `json:"subject_id"`

	// SubjectName is the display form: the individual's name, or
	// "Husband & Wife" for marriage events.
	SubjectName string `json:"subject_name"`

	// Date is the recurring Hebrew date; Date.Year carries the original
	// Hebrew year when one was recorded.
	Date hebdate.Date `json:"date"`

	// Year is the best-effort Gregorian year of the original occurrence,
	// 0 when none could be recovered.  Used for "N years since" annotations.
	Year int `json:"year,omitempty"`

	// HusbandID and WifeID are set for marriage events only.
	HusbandID string `json:"husband_id,omitempty"`
	WifeID    string `json:"wife_id,omitempty"`
}
