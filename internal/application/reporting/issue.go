// Package reporting turns matched events into the Markdown issue posted by
// the weekly workflow.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/baobabprince/HebrewFamilyTree/internal/application/notify"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/kinship"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
)

// DefaultDistanceThreshold is the kinship distance above which the issue
// spells out who the person actually is.
const DefaultDistanceThreshold = 6

// Issue is a rendered report ready for the issue-creating workflow step.
type Issue struct {
	Title     string
	Body      string
	HasEvents bool
}

// Builder renders issues.  It precomputes per-individual Hebrew birth years
// and death markers from the full event list so age annotations do not
// depend on which events happen to fall in the window.
type Builder struct {
	idx        *tree.Index
	classifier *kinship.Classifier
	bundle     *Bundle
	threshold  int
	hebrewYear int

	birthYears map[string]int
	deaths     map[string]bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLanguage selects the output language ("he" or "en").
func WithLanguage(lang string) BuilderOption {
	return func(b *Builder) { b.bundle = BundleFor(lang) }
}

// WithDistanceThreshold sets the distance above which paths are included.
func WithDistanceThreshold(n int) BuilderOption {
	return func(b *Builder) {
		if n >= 0 {
			b.threshold = n
		}
	}
}

// WithHebrewYear sets the current Hebrew year used for age and anniversary
// counts.  Zero disables the counts.
func WithHebrewYear(year int) BuilderOption {
	return func(b *Builder) { b.hebrewYear = year }
}

// NewBuilder builds a Builder over the record index and the full decoded
// event list.
func NewBuilder(idx *tree.Index, classifier *kinship.Classifier, events []*tree.Event, opts ...BuilderOption) *Builder {
	b := &Builder{
		idx:        idx,
		classifier: classifier,
		bundle:     hebrewBundle,
		threshold:  DefaultDistanceThreshold,
		birthYears: make(map[string]int),
		deaths:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, ev := range events {
		switch ev.Type {
		case tree.EventBirth:
			if ev.Date.Year != 0 {
				if _, seen := b.birthYears[ev.SubjectID]; !seen {
					b.birthYears[ev.SubjectID] = ev.Date.Year
				}
			}
		case tree.EventDeath:
			b.deaths[ev.SubjectID] = true
		}
	}
	return b
}

// Build renders the issue for a window of matches.  parasha, when non-empty,
// prefixes the title with the week's Torah portion.
func (b *Builder) Build(matches []notify.Match, start time.Time, days int, parasha string) Issue {
	from := start.Format("2006-01-02")
	to := start.AddDate(0, 0, days).Format("2006-01-02")

	title := fmt.Sprintf(b.bundle.titleSuffix, from)
	if parasha != "" {
		title = parasha + " - " + title
	}

	var body strings.Builder
	fmt.Fprintf(&body, b.bundle.header, from, to)
	body.WriteString("\n\n")

	if len(matches) == 0 {
		body.WriteString(b.bundle.noEvents)
		body.WriteString("\n")
		return Issue{Title: title, Body: body.String()}
	}

	for _, m := range matches {
		heading := fmt.Sprintf("%s, %s", b.bundle.Weekday(m.Day), m.Event.Date.String())
		if details := b.details(m.Event); details != "" {
			heading += " " + details
		}
		fmt.Fprintf(&body, "#### **%s**\n", heading)
		fmt.Fprintf(&body, "* **%s**: `%s`\n", b.bundle.eventField, b.bundle.EventName(m.Event.Type))
		fmt.Fprintf(&body, "* **%s**: `%s`\n", b.bundle.nameField, m.Event.SubjectName)

		if m.Distance > b.threshold && len(m.Path) > 0 {
			rendered := b.classifier.RenderPath(kinship.Reverse(m.Path), b.bundle.RelationshipLabel)
			fmt.Fprintf(&body, "* **%s**: `%d`\n", b.bundle.distField, m.Distance)
			fmt.Fprintf(&body, "* **%s**: `%s`\n", b.bundle.pathField, rendered)
		}
		body.WriteString("\n")
	}

	return Issue{Title: title, Body: body.String(), HasEvents: true}
}

// alive reports whether no death is recorded for the individual.
func (b *Builder) alive(id string) bool {
	if b.deaths[id] {
		return false
	}
	ind, ok := b.idx.Individual(id)
	return !ok || !ind.Deceased()
}

// gender resolves a recorded gender, defaulting to male like the classifier.
func (b *Builder) gender(id string) tree.Gender {
	if ind, ok := b.idx.Individual(id); ok && ind.Gender.Known() {
		return ind.Gender
	}
	return tree.GenderMale
}

// details renders the parenthesized annotation after the heading date: the
// emoji for the event type plus age and anniversary counts where the source
// years allow them.
func (b *Builder) details(ev tree.Event) string {
	years := 0
	if b.hebrewYear != 0 && ev.Date.Year != 0 {
		years = b.hebrewYear - ev.Date.Year
	}

	var out string
	switch ev.Type {
	case tree.EventBirth:
		// A deceased person's recurring birth date gets no celebratory
		// annotation; their yahrzeit entry carries the details.
		if !b.alive(ev.SubjectID) {
			break
		}
		if years > 0 {
			out = fmt.Sprintf("%s (%s)", eventEmoji[ev.Type], b.bundle.yearsAndAge(years, years))
		} else {
			out = eventEmoji[ev.Type]
		}

	case tree.EventMarriage:
		var parts []string
		if years > 0 {
			parts = append(parts, b.bundle.years(years))
		}
		for _, id := range []string{ev.HusbandID, ev.WifeID} {
			if id == "" || !b.alive(id) {
				continue
			}
			if by := b.birthYears[id]; by != 0 && b.hebrewYear != 0 {
				parts = append(parts, b.bundle.spouseAge(b.gender(id), b.hebrewYear-by))
			}
		}
		if len(parts) > 0 {
			out = fmt.Sprintf("%s (%s)", eventEmoji[ev.Type], strings.Join(parts, ", "))
		} else {
			out = eventEmoji[ev.Type]
		}

	case tree.EventDeath:
		var parts []string
		if years > 0 {
			parts = append(parts, b.bundle.years(years))
		}
		if by := b.birthYears[ev.SubjectID]; by != 0 && ev.Date.Year != 0 {
			parts = append(parts, b.bundle.ageAtDeath(b.gender(ev.SubjectID), ev.Date.Year-by))
		}
		if len(parts) > 0 {
			out = fmt.Sprintf("%s (%s)", eventEmoji[ev.Type], strings.Join(parts, ", "))
		} else {
			out = eventEmoji[ev.Type]
		}
	}

	if years > 0 && years%19 == 0 {
		out += b.bundle.metonicNote()
	}
	return out
}
