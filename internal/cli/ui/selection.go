package ui

// Selection is a multi-select checkbox set over string IDs.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// ToggleAll implements the header checkbox: when the selection already
// equals the full eligible set it empties the selection, otherwise it
// selects every eligible ID.
func (s *Selection) ToggleAll(eligible []string) {
	if len(s.ids) == len(eligible) && len(eligible) > 0 {
		s.Clear()
		return
	}
	s.ids = make(map[string]struct{}, len(eligible))
	for _, id := range eligible {
		s.ids[id] = struct{}{}
	}
}

// SelectAll selects every eligible ID unconditionally (used by the
// create-shipment flow's opt-out preselection).
func (s *Selection) SelectAll(eligible []string) {
	s.ids = make(map[string]struct{}, len(eligible))
	for _, id := range eligible {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// Ordered returns the selected IDs in the order of the given eligible list.
func (s *Selection) Ordered(eligible []string) []string {
	out := make([]string, 0, len(s.ids))
	for _, id := range eligible {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
