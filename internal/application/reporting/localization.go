package reporting

import (
	"fmt"
	"time"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/kinship"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
)

// Bundle holds the display strings for one output language.  The issue body
// is produced in Hebrew by default; the English bundle exists for previewing
// and tests.
type Bundle struct {
	lang string

	relationships map[kinship.Relationship]string
	weekdays      map[time.Weekday]string
	eventNames    map[tree.EventType]string

	header      string // printf: from, to
	eventField  string
	nameField   string
	distField   string
	pathField   string
	noEvents    string
	titleSuffix string // printf: date
}

var hebrewBundle = &Bundle{
	lang: "he",
	relationships: map[kinship.Relationship]string{
		kinship.RelHusbandOf:  "בעל של",
		kinship.RelWifeOf:     "אישה של",
		kinship.RelFatherOf:   "אבא של",
		kinship.RelMotherOf:   "אמא של",
		kinship.RelSonOf:      "בן של",
		kinship.RelDaughterOf: "בת של",
		kinship.RelRelative:   "קרוב משפחה של",
	},
	weekdays: map[time.Weekday]string{
		time.Sunday:    "יום ראשון",
		time.Monday:    "יום שני",
		time.Tuesday:   "יום שלישי",
		time.Wednesday: "יום רביעי",
		time.Thursday:  "יום חמישי",
		time.Friday:    "יום שישי",
		time.Saturday:  "יום שבת",
	},
	eventNames: map[tree.EventType]string{
		tree.EventBirth:    "יומולדת",
		tree.EventDeath:    "יאהרצייט",
		tree.EventMarriage: "יום נישואין",
	},
	header:      "## תאריכים עבריים קרובים (%s עד %s)",
	eventField:  "אירוע",
	nameField:   "אדם/משפחה",
	distField:   "מרחק",
	pathField:   "נתיב",
	noEvents:    "אין תאריכים עבריים קרובים בשבוע הקרוב.",
	titleSuffix: "תאריכים עבריים קרובים: %s",
}

var englishBundle = &Bundle{
	lang: "en",
	relationships: map[kinship.Relationship]string{
		kinship.RelHusbandOf:  "husband of",
		kinship.RelWifeOf:     "wife of",
		kinship.RelFatherOf:   "father of",
		kinship.RelMotherOf:   "mother of",
		kinship.RelSonOf:      "son of",
		kinship.RelDaughterOf: "daughter of",
		kinship.RelRelative:   "relative of",
	},
	weekdays: nil, // falls back to time.Weekday.String
	eventNames: map[tree.EventType]string{
		tree.EventBirth:    "Birthday",
		tree.EventDeath:    "Yahrzeit",
		tree.EventMarriage: "Anniversary",
	},
	header:      "## Upcoming Hebrew dates (%s to %s)",
	eventField:  "Event",
	nameField:   "Person/Family",
	distField:   "Distance",
	pathField:   "Path",
	noEvents:    "No upcoming Hebrew calendar events this week.",
	titleSuffix: "Upcoming Hebrew dates: %s",
}

// BundleFor returns the bundle for a language code, defaulting to Hebrew.
func BundleFor(lang string) *Bundle {
	if lang == "en" {
		return englishBundle
	}
	return hebrewBundle
}

// RelationshipLabel is a kinship.Labeler over this bundle.
func (b *Bundle) RelationshipLabel(rel kinship.Relationship) string {
	if label, ok := b.relationships[rel]; ok {
		return label
	}
	return rel.String()
}

// Weekday returns the localized weekday name for a Gregorian day.
func (b *Bundle) Weekday(day time.Time) string {
	if name, ok := b.weekdays[day.Weekday()]; ok {
		return name
	}
	return day.Weekday().String()
}

// EventName returns the localized display name of an event type.
func (b *Bundle) EventName(t tree.EventType) string {
	if name, ok := b.eventNames[t]; ok {
		return name
	}
	return string(t)
}

// eventEmoji is language independent.
var eventEmoji = map[tree.EventType]string{
	tree.EventBirth:    "🎂",
	tree.EventDeath:    "🕯️",
	tree.EventMarriage: "💍",
}

func (b *Bundle) yearsAndAge(years, age int) string {
	if b.lang == "en" {
		return fmt.Sprintf("%d years, age %d", years, age)
	}
	return fmt.Sprintf("%d שנים, גיל %d", years, age)
}

func (b *Bundle) years(years int) string {
	if b.lang == "en" {
		return fmt.Sprintf("%d years", years)
	}
	return fmt.Sprintf("%d שנים", years)
}

func (b *Bundle) spouseAge(gender tree.Gender, age int) string {
	if b.lang == "en" {
		if gender == tree.GenderFemale {
			return fmt.Sprintf("wife's age: %d", age)
		}
		return fmt.Sprintf("husband's age: %d", age)
	}
	if gender == tree.GenderFemale {
		return fmt.Sprintf("גיל האישה: %d", age)
	}
	return fmt.Sprintf("גיל הבעל: %d", age)
}

func (b *Bundle) ageAtDeath(gender tree.Gender, age int) string {
	if b.lang == "en" {
		return fmt.Sprintf("age %d at passing", age)
	}
	if gender == tree.GenderFemale {
		return fmt.Sprintf("בת %d בפטירתה", age)
	}
	return fmt.Sprintf("בן %d בפטירתו", age)
}

// metonicNote marks anniversaries divisible by 19, when the Hebrew and
// Gregorian dates of the original event coincide again.
func (b *Bundle) metonicNote() string {
	if b.lang == "en" {
		return " (19-year cycle)"
	}
	return " (שנת י\"ט)"
}
