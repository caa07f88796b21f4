package grid

// Selection tracks the set of selected row identifiers. It never
// reconciles stale identifiers when the dataset changes; clearing on a
// dataset swap is the caller's decision.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds or removes a single identifier.
func (s *Selection) Toggle(id string, selected bool) {
	if selected {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}

// Has reports whether the identifier is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Replace sets the selection to exactly the supplied identifiers.
func (s *Selection) Replace(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Len returns the number of selected identifiers, including any that no
// longer resolve to a row.
func (s *Selection) Len() int {
	return len(s.ids)
}
