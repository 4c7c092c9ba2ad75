// Package gedcom ingests GEDCOM exports: line-level normalization of the
// frequently hand-mangled source text, and decoding of individual and family
// records into the domain model.  Only the small subset of GEDCOM this
// system needs is understood (INDI, FAM, NAME, SEX, HUSB, WIFE, CHIL, and
// the BIRT/DEAT/MARR date events); everything else is carried through the
// normalizer untouched and ignored by the decoder.
package gedcom

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// lineRegexp matches a structurally valid GEDCOM line:
// level, optional @xref@, tag, optional value.
var lineRegexp = regexp.MustCompile(`^(\d+)\s+(?:(@\S+@)\s+)?(\S+)(?:\s+(.*))?$`)

// scanBufSize accommodates pathological single-line exports.
const scanBufSize = 1 << 20

// Normalize copies GEDCOM text from r to w with whitespace collapsed to
// single separators and every structurally invalid line dropped.  Dropped
// lines are logged at warn level; they are data loss, but a parseable file
// with a few missing lines beats an unparseable one.  Returns the number of
// lines written.
func Normalize(r io.Reader, w io.Writer, logger logging.Logger) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufSize)

	bw := bufio.NewWriter(w)
	written := 0
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := lineRegexp.FindStringSubmatch(line)
		if m == nil {
			logger.Warn("dropping non-compliant GEDCOM line", logging.String("line", line))
			continue
		}

		parts := []string{m[1]}
		if m[2] != "" {
			parts = append(parts, m[2])
		}
		parts = append(parts, m[3])
		if m[4] != "" {
			parts = append(parts, strings.Join(strings.Fields(m[4]), " "))
		}

		if _, err := bw.WriteString(strings.Join(parts, " ") + "\n"); err != nil {
			return written, errors.Wrap(err, errors.ErrCodeGedcomWriteFailed, "failed to write normalized line")
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return written, errors.Wrap(err, errors.ErrCodeGedcomReadFailed, "failed to read GEDCOM input")
	}
	if err := bw.Flush(); err != nil {
		return written, errors.Wrap(err, errors.ErrCodeGedcomWriteFailed, "failed to flush normalized output")
	}
	return written, nil
}

// NormalizeFile normalizes the GEDCOM file at inPath into outPath.
func NormalizeFile(inPath, outPath string, logger logging.Logger) error {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeGedcomReadFailed, "failed to open GEDCOM input").WithDetail(inPath)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeGedcomWriteFailed, "failed to create normalized output").WithDetail(outPath)
	}
	defer out.Close()

	n, err := Normalize(in, out, logger)
	if err != nil {
		return err
	}
	logger.Info("normalized GEDCOM file",
		logging.String("input", inPath),
		logging.String("output", outPath),
		logging.Int("lines", n))
	return nil
}
