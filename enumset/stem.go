package enumset

import "strconv"

// newStem creates an identifier allocator for generated source. The namespace
// lists identifiers that are already taken (the generated constants, the type
// name); nil is treated as a free namespace.
func newStem(namespace map[string]struct{}) *stem {
	return &stem{taken: namespace}
}

type stem struct {
	taken map[string]struct{}
}

// next returns name itself when free, otherwise the first numbered variant
// name2, name3, ... that does not collide. The result is marked taken.
func (s *stem) next(name string) string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	candidate := name
	for n := 2; ; n++ {
		if _, ok := s.taken[candidate]; !ok {
			s.taken[candidate] = struct{}{}
			return candidate
		}

		candidate = name + strconv.Itoa(n)
	}
}
