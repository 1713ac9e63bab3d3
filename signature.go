package archway

// ComponentKind is a user-assigned, small non-negative integer identifying
// a component type. The engine never interprets a kind id beyond equality
// and ordering — mapping a kind id back to a Go type is entirely the
// caller's responsibility (see KindRegistry for an optional helper).
type ComponentKind uint16

// Signature is the canonical, byte-comparable identity of an archetype: a
// strictly ascending, sentinel-padded tuple of component-kind ids. Two
// signatures naming the same kinds in the same order are `==` in Go,
// since Signature is a plain array — spec.md's "memcmp" equality falls out
// of that for free.
type Signature [MaxComponentsPerArchetype]ComponentKind

// emptySignature is every slot set to Sentinel — the signature of a
// zero-component "tag archetype".
var emptySignature = func() Signature {
	var s Signature
	for i := range s {
		s[i] = Sentinel
	}
	return s
}()

// NewSignature builds a Signature from kinds already in strictly ascending
// order. It panics if that precondition is violated — callers that cannot
// guarantee sortedness should sort first (sortKinds does this with
// insertion sort, matching create_archetype's step 1).
func NewSignature(sortedKinds []ComponentKind) Signature {
	if len(sortedKinds) > MaxComponentsPerArchetype {
		panic(ErrTooManyKinds{Limit: MaxComponentsPerArchetype})
	}
	s := emptySignature
	prev := ComponentKind(0)
	for i, k := range sortedKinds {
		if i > 0 && k <= prev {
			panic("archway: NewSignature requires strictly ascending, duplicate-free kinds")
		}
		s[i] = k
		prev = k
	}
	return s
}

// Len returns the number of real (non-sentinel) kinds in the signature.
func (s Signature) Len() int {
	for i, k := range s {
		if k == Sentinel {
			return i
		}
	}
	return len(s)
}

// Kinds returns the signature's real kinds as a freshly allocated slice.
func (s Signature) Kinds() []ComponentKind {
	n := s.Len()
	out := make([]ComponentKind, n)
	copy(out, s[:n])
	return out
}

// Contains reports whether kind appears in the signature.
func (s Signature) Contains(kind ComponentKind) bool {
	n := s.Len()
	// Linear scan is fine: n ≤ MaxComponentsPerArchetype, and binary
	// search would only pay off well past the sizes this bound allows.
	for i := 0; i < n; i++ {
		if s[i] == kind {
			return true
		}
		if s[i] > kind {
			return false
		}
	}
	return false
}

// ContainsAll reports whether every kind in other appears in s — the
// subset-match predicate queries use (spec.md §4.6: archetype signature is
// a superset of the query's required kinds).
func (s Signature) ContainsAll(other []ComponentKind) bool {
	for _, k := range other {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one kind in other appears in s.
func (s Signature) ContainsAny(other []ComponentKind) bool {
	for _, k := range other {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// ContainsNone reports whether no kind in other appears in s.
func (s Signature) ContainsNone(other []ComponentKind) bool {
	return !s.ContainsAny(other)
}

// Insert returns a new signature with kind inserted in sorted position, and
// reports whether kind was already present (in which case s is returned
// unchanged, "flagged duplicate" per spec.md §4.1).
func (s Signature) Insert(kind ComponentKind) (Signature, bool) {
	n := s.Len()
	for i := 0; i < n; i++ {
		if s[i] == kind {
			return s, true
		}
	}
	if n >= MaxComponentsPerArchetype {
		panic(ErrTooManyKinds{Limit: MaxComponentsPerArchetype})
	}
	out := s
	i := n
	for i > 0 && out[i-1] > kind {
		out[i] = out[i-1]
		i--
	}
	out[i] = kind
	return out, false
}

// Remove returns a new signature with kind removed, shifting later entries
// left and padding the freed tail slot with Sentinel.
func (s Signature) Remove(kind ComponentKind) Signature {
	n := s.Len()
	out := s
	i := 0
	for i < n && out[i] != kind {
		i++
	}
	if i == n {
		return s
	}
	for ; i < n-1; i++ {
		out[i] = out[i+1]
	}
	out[n-1] = Sentinel
	return out
}

// sortKinds insertion-sorts a small descriptor-id slice in place — stable,
// appropriate for the small N (≤ MaxComponentsPerArchetype) create_archetype
// deals with, per spec.md §4.8.1 step 1.
func sortKinds(kinds []ComponentKind) {
	for i := 1; i < len(kinds); i++ {
		k := kinds[i]
		j := i - 1
		for j >= 0 && kinds[j] > k {
			kinds[j+1] = kinds[j]
			j--
		}
		kinds[j+1] = k
	}
}
