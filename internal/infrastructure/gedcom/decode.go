package gedcom

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// Document is the decoded content of one GEDCOM file: the normalized
// records plus the recurring Hebrew-calendar events extracted from them.
type Document struct {
	Individuals []*tree.Individual
	Families    []*tree.Family
	Events      []*tree.Event
}

// Index builds the record index over the document's records.
func (d *Document) Index() (*tree.Index, error) {
	return tree.NewIndex(d.Individuals, d.Families)
}

// line is one parsed GEDCOM line.
type line struct {
	level int
	xref  string
	tag   string
	value string
}

// parseLines reads r into parsed lines, skipping structurally invalid ones
// with a warning.  Input is normally pre-normalized, but the decoder does
// not rely on that.
func parseLines(r io.Reader, logger logging.Logger) ([]line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufSize)

	var lines []line
	first := true
	for scanner.Scan() {
		raw := scanner.Text()
		if first {
			raw = strings.TrimPrefix(raw, "\uFEFF")
			first = false
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		m := lineRegexp.FindStringSubmatch(raw)
		if m == nil {
			logger.Warn("skipping unparseable GEDCOM line", logging.String("line", raw))
			continue
		}
		level, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		lines = append(lines, line{level: level, xref: m[2], tag: m[3], value: m[4]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGedcomReadFailed, "failed to read GEDCOM input")
	}
	return lines, nil
}

// cleanName strips the GEDCOM surname slashes: "John /Doe/" → "John Doe".
func cleanName(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, "/", ""))
}

// Decode parses GEDCOM text into a Document.  Malformed or missing fields
// degrade to absent data; the only fatal conditions are I/O failures.
func Decode(r io.Reader, logger logging.Logger) (*Document, error) {
	lines, err := parseLines(r, logger)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	names := make(map[string]string)

	// One record spans from its level-0 line to the next level-0 line.
	for i := 0; i < len(lines); {
		if lines[i].level != 0 {
			i++
			continue
		}
		end := i + 1
		for end < len(lines) && lines[end].level != 0 {
			end++
		}
		rec := lines[i:end]
		switch rec[0].tag {
		case "INDI":
			ind, events := decodeIndividual(rec)
			doc.Individuals = append(doc.Individuals, ind)
			names[ind.ID] = ind.Name
			doc.Events = append(doc.Events, events...)
		case "FAM":
			doc.Families = append(doc.Families, decodeFamily(rec))
		}
		i = end
	}

	// Family records resolve only after all individuals are named, so the
	// marriage events are extracted in a second pass.
	for i := 0; i < len(lines); {
		if lines[i].level != 0 || lines[i].tag != "FAM" {
			i++
			continue
		}
		end := i + 1
		for end < len(lines) && lines[end].level != 0 {
			end++
		}
		if ev := decodeMarriageEvent(lines[i:end], names); ev != nil {
			doc.Events = append(doc.Events, ev)
		}
		i = end
	}

	logger.Info("decoded GEDCOM document",
		logging.Int("individuals", len(doc.Individuals)),
		logging.Int("families", len(doc.Families)),
		logging.Int("events", len(doc.Events)))
	return doc, nil
}

// DecodeFile parses the GEDCOM file at path.
func DecodeFile(path string, logger logging.Logger) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGedcomReadFailed, "failed to open GEDCOM file").WithDetail(path)
	}
	defer f.Close()
	return Decode(f, logger)
}

// eventDate finds the DATE value nested under the event tag within rec, or
// "" when there is none.
func eventDate(rec []line, tag string) string {
	for i := 1; i < len(rec); i++ {
		if rec[i].level != 1 || rec[i].tag != tag {
			continue
		}
		for j := i + 1; j < len(rec) && rec[j].level > 1; j++ {
			if rec[j].level == 2 && rec[j].tag == "DATE" {
				return rec[j].value
			}
		}
	}
	return ""
}

func decodeIndividual(rec []line) (*tree.Individual, []*tree.Event) {
	ind := &tree.Individual{
		ID:     rec[0].xref,
		Name:   tree.UnknownName,
		Gender: tree.GenderUnknown,
	}

	for _, l := range rec[1:] {
		if l.level != 1 {
			continue
		}
		switch l.tag {
		case "NAME":
			if name := cleanName(l.value); name != "" && ind.Name == tree.UnknownName {
				ind.Name = name
			}
		case "SEX":
			switch strings.ToUpper(strings.TrimSpace(l.value)) {
			case "M":
				ind.Gender = tree.GenderMale
			case "F":
				ind.Gender = tree.GenderFemale
			}
		}
	}

	var events []*tree.Event
	for _, tag := range []tree.EventType{tree.EventBirth, tree.EventDeath} {
		parsed := ParseDate(eventDate(rec, string(tag)))
		if parsed.GregorianYear != 0 {
			switch tag {
			case tree.EventBirth:
				ind.BirthYear = parsed.GregorianYear
			case tree.EventDeath:
				ind.DeathYear = parsed.GregorianYear
			}
		}
		if parsed.Hebrew.IsZero() {
			continue
		}
		events = append(events, &tree.Event{
			ID:          uuid.NewString(),
			Type:        tag,
			SubjectID:   ind.ID,
			SubjectName: ind.Name,
			Date:        parsed.Hebrew,
			Year:        parsed.GregorianYear,
		})
	}
	return ind, events
}

func decodeFamily(rec []line) *tree.Family {
	fam := &tree.Family{ID: rec[0].xref}
	for _, l := range rec[1:] {
		if l.level != 1 {
			continue
		}
		switch l.tag {
		case "HUSB":
			fam.HusbandID = strings.TrimSpace(l.value)
		case "WIFE":
			fam.WifeID = strings.TrimSpace(l.value)
		case "CHIL":
			if c := strings.TrimSpace(l.value); c != "" {
				fam.ChildIDs = append(fam.ChildIDs, c)
			}
		}
	}
	return fam
}

func decodeMarriageEvent(rec []line, names map[string]string) *tree.Event {
	parsed := ParseDate(eventDate(rec, string(tree.EventMarriage)))
	if parsed.Hebrew.IsZero() {
		return nil
	}

	fam := decodeFamily(rec)

	subject := fam.HusbandID
	if subject == "" {
		subject = fam.WifeID
	}
	if subject == "" {
		return nil
	}

	displayName := func(id, fallback string) string {
		if name, ok := names[id]; ok && name != "" {
			return name
		}
		return fallback
	}

	return &tree.Event{
		ID:          uuid.NewString(),
		Type:        tree.EventMarriage,
		SubjectID:   subject,
		SubjectName: displayName(fam.HusbandID, "Unknown Husband") + " & " + displayName(fam.WifeID, "Unknown Wife"),
		Date:        parsed.Hebrew,
		Year:        parsed.GregorianYear,
		HusbandID:   fam.HusbandID,
		WifeID:      fam.WifeID,
	}
}
