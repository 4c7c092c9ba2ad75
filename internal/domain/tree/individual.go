// Package tree holds the normalized genealogical record model: individuals,
// families, the record index over both, and the calendar events extracted
// from them.  Records are built once per run by the GEDCOM decoder and are
// immutable afterwards.
package tree

// UnknownName is the display name used when a record carries no NAME line.
const UnknownName = "Unknown Name"

// Gender is the recorded gender of an individual.
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderUnknown Gender = "U"
)

// Known reports whether g carries an actual recorded value.
func (g Gender) Known() bool {
	return g == GenderMale || g == GenderFemale
}

// Individual is a single person record.  BirthYear and DeathYear are 0 when
// unrecorded; they are best-effort Gregorian years recovered from the source
// date text and used only for age annotations in reports.
type Individual struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    Gender `json:"gender"`
	BirthYear int    `json:"birth_year,omitempty"`
	DeathYear int    `json:"death_year,omitempty"`
}

// DisplayName returns the individual's name, or UnknownName when absent.
func (i *Individual) DisplayName() string {
	if i == nil || i.Name == "" {
		return UnknownName
	}
	return i.Name
}

// Deceased reports whether a death year is recorded for the individual.
func (i *Individual) Deceased() bool {
	return i != nil && i.DeathYear != 0
}
