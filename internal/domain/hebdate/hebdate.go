// Package hebdate holds the Hebrew calendar value types and name tables
// shared by the GEDCOM decoder, the Hebcal client, and the reporting layer.
// Month numbering runs Tishrei=1 through Elul=12; both Adar I and Adar II
// collapse to Adar (6), matching the upstream GEDCOM convention.
package hebdate

import "strconv"

// Date is a Hebrew calendar date.  Year is 0 when unrecorded; Day defaults
// to 1 when the source record names only a month.
type Date struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Key identifies a Hebrew calendar day independent of year.  Yearly events
// (birthdays, yahrzeits, anniversaries) recur on the same Key.
type Key struct {
	Month int
	Day   int
}

// Key returns the year-agnostic (month, day) pair of d.
func (d Date) Key() Key {
	return Key{Month: d.Month, Day: d.Day}
}

// IsZero reports whether d carries no month information.
func (d Date) IsZero() bool {
	return d.Month == 0
}

// String renders d as a Hebrew-lettered day followed by the Hebrew month
// name, e.g. "טו שבט".
func (d Date) String() string {
	return DayNumeral(d.Day) + " " + MonthNameHebrew(d.Month)
}

// gedcomMonthAbbr maps GEDCOM Hebrew month codes to month numbers.
// ADS is Adar Sheni and collapses to Adar.
var gedcomMonthAbbr = map[string]int{
	"TSH": 1, "CSH": 2, "KSL": 3, "TVT": 4, "SHV": 5, "ADR": 6,
	"ADS": 6,
	"NSN": 7, "IYR": 8, "SVN": 9, "TMZ": 10, "AAV": 11, "ELL": 12,
}

// englishMonthNames maps the month names that appear in Hebcal API
// responses to month numbers.
var englishMonthNames = map[string]int{
	"Tishrei": 1, "Cheshvan": 2, "Kislev": 3, "Tevet": 4, "Shevat": 5,
	"Adar": 6, "Adar I": 6, "Adar II": 6,
	"Nisan": 7, "Iyyar": 8, "Sivan": 9, "Tamuz": 10, "Av": 11, "Elul": 12,
}

// hebrewMonthNames maps month numbers to their Hebrew display names.
var hebrewMonthNames = map[int]string{
	1: "תשרי", 2: "חשון", 3: "כסלו", 4: "טבת", 5: "שבט", 6: "אדר",
	7: "ניסן", 8: "אייר", 9: "סיון", 10: "תמוז", 11: "אב", 12: "אלול",
}

// dayNumerals maps day-of-month numbers to their Hebrew letter forms.
var dayNumerals = map[int]string{
	1: "א", 2: "ב", 3: "ג", 4: "ד", 5: "ה", 6: "ו", 7: "ז", 8: "ח", 9: "ט", 10: "י",
	11: "יא", 12: "יב", 13: "יג", 14: "יד", 15: "טו", 16: "טז", 17: "יז", 18: "יח", 19: "יט",
	20: "כ", 21: "כא", 22: "כב", 23: "כג", 24: "כד", 25: "כה", 26: "כו", 27: "כז", 28: "כח",
	29: "כט", 30: "ל",
}

// MonthFromAbbr resolves a GEDCOM Hebrew month code (e.g. "KSL") to a month
// number.  The lookup is case-sensitive on the already-uppercased code;
// callers uppercase their input first.
func MonthFromAbbr(abbr string) (int, bool) {
	m, ok := gedcomMonthAbbr[abbr]
	return m, ok
}

// MonthFromEnglish resolves a Hebcal English month name (e.g. "Adar II") to
// a month number.
func MonthFromEnglish(name string) (int, bool) {
	m, ok := englishMonthNames[name]
	return m, ok
}

// MonthNameHebrew returns the Hebrew display name of a month number, or the
// empty string for an out-of-range month.
func MonthNameHebrew(month int) string {
	return hebrewMonthNames[month]
}

// DayNumeral converts a day-of-month to its Hebrew letter representation,
// falling back to the decimal form for out-of-range values.
func DayNumeral(day int) string {
	if s, ok := dayNumerals[day]; ok {
		return s
	}
	return strconv.Itoa(day)
}
