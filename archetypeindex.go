package archway

// archetypeIndex holds parallel archetype records and supports lookup by
// signature and append. Lookup goes through a map keyed by Signature, so it
// uses Signature equality (spec.md §4.4) without a linear scan.
type archetypeIndex struct {
	bySignature map[Signature]ArchetypeID
	all         []*archetype
}

func newArchetypeIndex(capacityHint int) *archetypeIndex {
	return &archetypeIndex{
		bySignature: make(map[Signature]ArchetypeID, capacityHint),
		all:         make([]*archetype, 0, capacityHint),
	}
}

// lookup finds the archetype matching signature, or (nil, false).
//
// Signature is comparable (a plain array), so a map keyed on it gives O(1)
// lookup while still satisfying spec.md §4.4's "equality is signature byte
// identity" requirement — the map uses exactly that equality. A literal
// linear scan over packed records, as spec.md describes, is equivalent in
// behavior; this is the permitted hash-index upgrade spec.md names.
func (idx *archetypeIndex) lookup(sig Signature) (*archetype, bool) {
	id, ok := idx.bySignature[sig]
	if !ok {
		return nil, false
	}
	return idx.all[id], true
}

// insert allocates a new archetype for sig with the given descriptors and
// registers it. The returned archetype's id is its index into idx.all.
func (idx *archetypeIndex) insert(sig Signature, descriptors []ComponentDescriptor, initialRowCapacity int) *archetype {
	id := ArchetypeID(len(idx.all))
	a := newArchetype(id, sig, descriptors, initialRowCapacity)
	idx.all = append(idx.all, a)
	idx.bySignature[sig] = id
	return a
}

func (idx *archetypeIndex) get(id ArchetypeID) *archetype {
	return idx.all[id]
}
