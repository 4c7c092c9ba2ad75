package tree

import "github.com/baobabprince/HebrewFamilyTree/pkg/errors"

// Index is the record index: flat lookup tables from individual identifier
// to individual record and from family identifier to family record.  It
// preserves record insertion order so that every traversal over the index,
// and therefore graph construction and path output, is deterministic.
//
// An Index is immutable once built.  References between records are not
// validated here: families may point at individuals absent from the index
// (common in hand-edited genealogical exports), and such dangling links are
// simply unresolvable through the lookup methods.
type Index struct {
	individuals map[string]*Individual
	families    map[string]*Family
	indOrder    []string
	famOrder    []string
}

// NewIndex builds an Index from decoded records.  A duplicate identifier in
// either record set is a fatal input error (ErrCodeDuplicateIdentifier):
// identity ambiguity cannot be repaired downstream.
func NewIndex(individuals []*Individual, families []*Family) (*Index, error) {
	idx := &Index{
		individuals: make(map[string]*Individual, len(individuals)),
		families:    make(map[string]*Family, len(families)),
		indOrder:    make([]string, 0, len(individuals)),
		famOrder:    make([]string, 0, len(families)),
	}

	for _, ind := range individuals {
		if _, exists := idx.individuals[ind.ID]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateIdentifier,
				"duplicate individual identifier").WithDetail("id=" + ind.ID)
		}
		idx.individuals[ind.ID] = ind
		idx.indOrder = append(idx.indOrder, ind.ID)
	}

	for _, fam := range families {
		if _, exists := idx.families[fam.ID]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateIdentifier,
				"duplicate family identifier").WithDetail("id=" + fam.ID)
		}
		idx.families[fam.ID] = fam
		idx.famOrder = append(idx.famOrder, fam.ID)
	}

	return idx, nil
}

// Individual returns the individual record for id.
func (idx *Index) Individual(id string) (*Individual, bool) {
	ind, ok := idx.individuals[id]
	return ind, ok
}

// Family returns the family record for id.
func (idx *Index) Family(id string) (*Family, bool) {
	fam, ok := idx.families[id]
	return fam, ok
}

// Name returns the display name for an individual identifier, falling back
// to the identifier itself when the record is unknown.
func (idx *Index) Name(id string) string {
	if ind, ok := idx.individuals[id]; ok {
		return ind.DisplayName()
	}
	return id
}

// Individuals returns all individual records in insertion order.
func (idx *Index) Individuals() []*Individual {
	out := make([]*Individual, 0, len(idx.indOrder))
	for _, id := range idx.indOrder {
		out = append(out, idx.individuals[id])
	}
	return out
}

// Families returns all family records in insertion order.
func (idx *Index) Families() []*Family {
	out := make([]*Family, 0, len(idx.famOrder))
	for _, id := range idx.famOrder {
		out = append(out, idx.families[id])
	}
	return out
}

// FamiliesAsSpouse returns the families in which id appears as husband or
// wife, in insertion order.
func (idx *Index) FamiliesAsSpouse(id string) []*Family {
	var out []*Family
	for _, fid := range idx.famOrder {
		if fam := idx.families[fid]; fam.HasSpouse(id) {
			out = append(out, fam)
		}
	}
	return out
}

// FamilyAsChild returns the first family (in insertion order) that lists id
// as a child, or nil when there is none.
func (idx *Index) FamilyAsChild(id string) *Family {
	for _, fid := range idx.famOrder {
		if fam := idx.families[fid]; fam.HasChild(id) {
			return fam
		}
	}
	return nil
}

// IndividualCount returns the number of indexed individuals.
func (idx *Index) IndividualCount() int { return len(idx.indOrder) }

// FamilyCount returns the number of indexed families.
func (idx *Index) FamilyCount() int { return len(idx.famOrder) }
