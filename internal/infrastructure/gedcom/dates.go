package gedcom

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/hebdate"
)

// hebrewPrefix marks a GEDCOM date recorded on the Hebrew calendar.
const hebrewPrefix = "@#DHEBREW@"

var (
	parenRegexp    = regexp.MustCompile(`\((.*?)\)`)
	yearRegexp     = regexp.MustCompile(`(\d{4})`)
	trailingYearRe = regexp.MustCompile(`\s(\d{4})$`)
)

// ParsedDate is the result of decoding a GEDCOM DATE value.
type ParsedDate struct {
	// Hebrew is the recurring Hebrew date; zero when the value is not a
	// Hebrew-calendar date or names no recognizable month.
	Hebrew hebdate.Date

	// GregorianYear is the best-effort Gregorian year, 0 when unrecoverable.
	// A parenthesized "(YYYY)" annotation wins; otherwise the first 4-digit
	// run in a non-Hebrew date, or the trailing Hebrew year as a stand-in
	// (an upstream convention this decoder preserves).
	GregorianYear int
}

// ParseDate decodes a GEDCOM DATE value such as
//
//	"@#DHEBREW@ 15 KSL 5785 (2024)"
//	"@#DHEBREW@ ADR 5700"
//	"12 MAY 1987"
//
// The day defaults to 1 when only a month is named.  Two-word month
// candidates are tried before single words so compound names are never
// split.  Unparseable values degrade to a zero ParsedDate, never an error:
// a bad date loses one event, not the run.
func ParseDate(value string) ParsedDate {
	var out ParsedDate
	value = strings.TrimSpace(value)
	if value == "" {
		return out
	}

	if m := parenRegexp.FindStringSubmatch(value); m != nil {
		if y := yearRegexp.FindStringSubmatch(m[1]); y != nil {
			out.GregorianYear, _ = strconv.Atoi(y[1])
		}
	}

	if !strings.HasPrefix(value, hebrewPrefix) {
		if out.GregorianYear == 0 {
			if y := yearRegexp.FindStringSubmatch(value); y != nil {
				out.GregorianYear, _ = strconv.Atoi(y[1])
			}
		}
		return out
	}

	// The parenthesized annotation is not part of the Hebrew date text.
	rest := strings.TrimSpace(parenRegexp.ReplaceAllString(value[len(hebrewPrefix):], ""))
	if rest == "" {
		return out
	}

	hebrewYear := 0
	if y := trailingYearRe.FindStringSubmatch(rest); y != nil {
		hebrewYear, _ = strconv.Atoi(y[1])
		if out.GregorianYear == 0 {
			out.GregorianYear = hebrewYear
		}
	}

	parts := strings.Fields(rest)

	day := 1
	month := 0
	monthIndex := -1

	// Two-word month candidates first.
	for i := 0; i+1 < len(parts); i++ {
		candidate := strings.ToUpper(parts[i]) + " " + strings.ToUpper(parts[i+1])
		if m, ok := hebdate.MonthFromAbbr(candidate); ok {
			month = m
			monthIndex = i
			break
		}
	}
	if month == 0 {
		for i := range parts {
			if m, ok := hebdate.MonthFromAbbr(strings.ToUpper(parts[i])); ok {
				month = m
				monthIndex = i
				break
			}
		}
	}
	if month == 0 {
		return out
	}

	if monthIndex > 0 {
		dayStr := strings.TrimSpace(strings.ReplaceAll(parts[monthIndex-1], `"`, ""))
		if d, err := strconv.Atoi(dayStr); err == nil {
			day = d
		}
	}

	out.Hebrew = hebdate.Date{Year: hebrewYear, Month: month, Day: day}
	return out
}
