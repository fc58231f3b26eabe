package explorer

// ExpandState holds the expanded flag of every folder node, keyed by
// structural position. Nodes missing from the map are collapsed.
type ExpandState struct {
	expanded map[string]bool
}

func NewExpandState() *ExpandState {
	return &ExpandState{expanded: make(map[string]bool)}
}

func (s *ExpandState) IsExpanded(p NodePath) bool {
	if s == nil {
		return false
	}
	return s.expanded[p.Key()]
}

// Toggle flips the flag of a single node and returns the new value.
// Ancestors, siblings and descendants are left as they are.
// The zero value is ready to use.
func (s *ExpandState) Toggle(p NodePath) bool {
	key := p.Key()
	expanded := !s.expanded[key]
	if !expanded {
		delete(s.expanded, key)
		return false
	}
	if s.expanded == nil {
		s.expanded = make(map[string]bool)
	}
	s.expanded[key] = true
	return true
}
