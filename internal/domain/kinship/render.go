package kinship

import (
	"fmt"
	"strings"
)

// Labeler maps a relationship to its display text, enabling localized
// rendering without this package knowing about languages.
type Labeler func(Relationship) string

// RenderPath turns a path into a readable relationship chain:
//
//	"John Doe (father-of) Peter Doe (husband-of) Mary Roe"
//
// Each consecutive pair (path[i], path[i+1]) is classified and rendered as
// "Name (label)"; the final node is appended as a bare name.  Pairs are
// labeled in the order given.  Callers wanting the "target back to the
// reference person" framing reverse the path before rendering, as the
// notify pipeline does.
//
// A nil labeler falls back to the Relationship string form.  Empty and
// single-node paths render as the empty string and the bare name.
func (c *Classifier) RenderPath(path []string, label Labeler) string {
	if len(path) == 0 {
		return ""
	}
	if label == nil {
		label = Relationship.String
	}

	segments := make([]string, 0, len(path))
	for i := 0; i < len(path)-1; i++ {
		rel := c.Classify(path[i], path[i+1])
		segments = append(segments, fmt.Sprintf("%s (%s)", c.idx.Name(path[i]), label(rel)))
	}
	segments = append(segments, c.idx.Name(path[len(path)-1]))

	return strings.Join(segments, " ")
}

// Reverse returns a reversed copy of path, leaving the input untouched.
func Reverse(path []string) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[len(path)-1-i] = id
	}
	return out
}
