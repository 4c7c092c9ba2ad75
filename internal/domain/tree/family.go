package tree

// Family is a relationship unit linking up to two parents to zero or more
// children.  Any of the identifier fields may be empty or dangling; resolving
// them against the Index is the caller's concern.
type Family struct {
	ID        string   `json:"id"`
	HusbandID string   `json:"husband_id,omitempty"`
	WifeID    string   `json:"wife_id,omitempty"`
	ChildIDs  []string `json:"child_ids,omitempty"`
}

// HasSpousePair reports whether both a husband and a wife are recorded.
func (f *Family) HasSpousePair() bool {
	return f.HusbandID != "" && f.WifeID != ""
}

// OtherSpouse returns the spouse opposite id, or "" when id is not a spouse
// of this family or the other spouse is unrecorded.
func (f *Family) OtherSpouse(id string) string {
	switch id {
	case f.HusbandID:
		return f.WifeID
	case f.WifeID:
		return f.HusbandID
	}
	return ""
}

// HasSpouse reports whether id is recorded as husband or wife.
func (f *Family) HasSpouse(id string) bool {
	return id != "" && (id == f.HusbandID || id == f.WifeID)
}

// HasChild reports whether id is recorded among the family's children.
func (f *Family) HasChild(id string) bool {
	for _, c := range f.ChildIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Parents returns the recorded parent identifiers, husband first.
func (f *Family) Parents() []string {
	parents := make([]string, 0, 2)
	if f.HusbandID != "" {
		parents = append(parents, f.HusbandID)
	}
	if f.WifeID != "" {
		parents = append(parents, f.WifeID)
	}
	return parents
}
