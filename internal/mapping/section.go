package mapping

import (
	"maps"
	"slices"
)

// Section is the raw options mapping of one output as decoded from the
// document.
type Section map[string]any

// Get returns the value stored under key.
func (s Section) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Has reports whether key is present.
func (s Section) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the section keys in sorted order.
func (s Section) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// AsSection converts a decoded document value to a Section. A nil value is
// an empty section.
func AsSection(v any) (Section, bool) {
	switch m := v.(type) {
	case nil:
		return Section{}, true
	case Section:
		return m, true
	case map[string]any:
		return Section(m), true
	default:
		return nil, false
	}
}
