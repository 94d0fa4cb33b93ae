// Package container provides generic containment and lookup helpers
// over map-kinded containers. All helpers are pure and side-effect
// free; they are consumed by every higher layer of the storage library.
package container

// Set is a map-backed set of comparable elements.
type Set[E comparable] map[E]struct{}

// NewSet returns a set holding the given elements.
func NewSet[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element into the set.
func (s Set[E]) Add(e E) {
	s[e] = struct{}{}
}

// Remove deletes an element from the set.
func (s Set[E]) Remove(e E) {
	delete(s, e)
}

// Has reports whether the set holds the element.
func (s Set[E]) Has(e E) bool {
	_, ok := s[e]
	return ok
}

// CheckSet reports whether a set-like container holds an element.
func CheckSet[S ~map[E]struct{}, E comparable](set S, elem E) bool {
	_, ok := set[elem]
	return ok
}

// CheckMap reports whether an associative container holds a key.
func CheckMap[M ~map[K]V, K comparable, V any](m M, key K) bool {
	_, ok := m[key]
	return ok
}

// SearchMap returns the value stored under key, or defaultValue when
// the key is absent.
func SearchMap[M ~map[K]V, K comparable, V any](m M, key K, defaultValue V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return defaultValue
}
