// Package selection keeps the set of row IDs chosen for export. Membership is
// independent of which page is shown; only Clear and Replace remove IDs.
package selection

import "sort"

// Set is a set of object IDs. The zero value is ready to use. It is not safe
// for concurrent use.
type Set struct {
	ids map[string]struct{}
}

// New creates a set holding ids.
func New(ids ...string) *Set {
	s := &Set{}
	s.Add(ids...)
	return s
}

// Toggle flips membership of id and reports whether it is now selected.
func (s *Set) Toggle(id string) bool {
	if s.Contains(id) {
		delete(s.ids, id)
		return false
	}
	s.Add(id)
	return true
}

// Add unions ids into the set.
func (s *Set) Add(ids ...string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{}, len(ids))
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Replace discards the current members and keeps exactly ids.
func (s *Set) Replace(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	s.Add(ids...)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.ids = nil
}

// Contains reports whether id is selected.
func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected IDs.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in ascending order.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
