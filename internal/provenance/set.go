package provenance

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Union returns a new set with the members of s and every other set.
func (s Set[T]) Union(others ...Set[T]) Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	for _, o := range others {
		for v := range o {
			out[v] = struct{}{}
		}
	}
	return out
}

// Intersect returns the members of s also present in o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if o.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Difference returns the members of s found in none of others.
func (s Set[T]) Difference(others ...Set[T]) Set[T] {
	out := make(Set[T])
outer:
	for v := range s {
		for _, o := range others {
			if o.Has(v) {
				continue outer
			}
		}
		out[v] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set[T]) Equal(o Set[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

// Items returns the members in no particular order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
