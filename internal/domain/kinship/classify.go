package kinship

import (
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
)

// Relationship is a directional, gender-aware description of the edge
// between an ordered pair (p1, p2), read literally as "p1 is the <label> of
// p2": RelSonOf means p1 is the son of p2.
type Relationship string

const (
	RelHusbandOf  Relationship = "husband-of"
	RelWifeOf     Relationship = "wife-of"
	RelFatherOf   Relationship = "father-of"
	RelMotherOf   Relationship = "mother-of"
	RelSonOf      Relationship = "son-of"
	RelDaughterOf Relationship = "daughter-of"

	// RelRelative is the vague fallback for graph edges that match none of
	// the canonical spouse/parent/child rules.  For adjacent path nodes on a
	// correctly built graph this cannot happen, so hitting it signals a
	// graph/path inconsistency and is logged.
	RelRelative Relationship = "relative"

	// RelUnknown is emitted when either identifier does not resolve to a
	// known individual.
	RelUnknown Relationship = "unknown/non-individual"
)

func (r Relationship) String() string { return string(r) }

// Classifier labels ordered adjacent pairs by inspecting the underlying
// family records.  It holds no mutable state; one Classifier serves any
// number of queries.
type Classifier struct {
	idx           *tree.Index
	defaultGender tree.Gender
	logger        logging.Logger
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithDefaultGender sets the gender assumed for individuals whose record
// carries none.  The default is male, matching the upstream data convention;
// this is a documented mislabeling source for unspecified-gender records,
// kept for behavioral parity rather than silently "fixed".
func WithDefaultGender(g tree.Gender) ClassifierOption {
	return func(c *Classifier) {
		if g == tree.GenderMale || g == tree.GenderFemale {
			c.defaultGender = g
		}
	}
}

// WithLogger sets the logger used for inconsistency warnings.
func WithLogger(l logging.Logger) ClassifierOption {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClassifier builds a Classifier over idx.
func NewClassifier(idx *tree.Index, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		idx:           idx,
		defaultGender: tree.GenderMale,
		logger:        logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// gender resolves an individual's gender, applying the configured default
// when the record carries none.
func (c *Classifier) gender(ind *tree.Individual) tree.Gender {
	if ind.Gender.Known() {
		return ind.Gender
	}
	return c.defaultGender
}

// Classify labels the relationship of p1 to p2.  It is meant for pairs that
// are adjacent on a path; for non-adjacent pairs the result is the fallback
// label.  Decision order, first match wins:
//
//  1. Spouse: some family has p1 and p2 as its two spouses.
//  2. Parent: p1 is a spouse of the family in which p2 is a child.
//  3. Child: p2 is a spouse of the family in which p1 is a child.
//
// Gendered variants are chosen from p1's gender for the spouse and child
// checks, and from p1's position (husband/wife) for the parent check.
func (c *Classifier) Classify(p1, p2 string) Relationship {
	ind1, ok1 := c.idx.Individual(p1)
	_, ok2 := c.idx.Individual(p2)
	if !ok1 || !ok2 {
		return RelUnknown
	}

	// Spouse check.
	for _, fam := range c.idx.FamiliesAsSpouse(p1) {
		if !fam.HasSpousePair() {
			continue
		}
		if fam.OtherSpouse(p1) == p2 {
			if c.gender(ind1) == tree.GenderMale {
				return RelHusbandOf
			}
			return RelWifeOf
		}
	}

	// Parent check: p1 a spouse of p2's family-as-child.
	if fam := c.idx.FamilyAsChild(p2); fam != nil {
		if fam.HusbandID != "" && fam.HusbandID == p1 {
			return RelFatherOf
		}
		if fam.WifeID != "" && fam.WifeID == p1 {
			return RelMotherOf
		}
	}

	// Child check: p2 a spouse of p1's family-as-child.
	if fam := c.idx.FamilyAsChild(p1); fam != nil {
		if fam.HasSpouse(p2) {
			if c.gender(ind1) == tree.GenderMale {
				return RelSonOf
			}
			return RelDaughterOf
		}
	}

	c.logger.Warn("no canonical relationship for adjacent pair",
		logging.String("p1", p1), logging.String("p2", p2))
	return RelRelative
}
