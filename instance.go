package archway

// Instance owns the four containers — the Archetype Index, the Entity
// Table, the registered queries, and the bookkeeping for outstanding
// iterators — and is the only way to mutate them. Multiple Instances are
// fully independent ECS worlds; nothing is shared via package-level state
// (spec.md §9's "Global state" design note).
type Instance struct {
	archetypes *archetypeIndex
	entities   *entityTable
	queries    []*query

	// generation increments on every structural change. Iterators
	// snapshot it at creation and compare on each step, catching the "no
	// structural change during iteration" contract violation spec.md §4.7
	// otherwise leaves as convention. Cursors do not check it.
	generation uint64

	// lockCount counts live iterators/cursors. While > 0, structural
	// mutator calls are queued instead of applied immediately, and flushed
	// the moment the count returns to zero.
	lockCount int
	queue     operationQueue
}

// NewInstance creates an empty Instance — instance_create in spec.md §6.
func NewInstance() *Instance {
	return &Instance{
		archetypes: newArchetypeIndex(Config.DefaultArchetypeCapacity),
		entities:   newEntityTable(Config.DefaultEntityCapacity),
		queries:    make([]*query, 0, Config.DefaultQueryCapacity),
	}
}

// Locked reports whether any iterator or cursor is currently live.
func (ins *Instance) Locked() bool {
	return ins.lockCount > 0
}

// addLock is called by NewIterator and by Cursor.Initialize.
func (ins *Instance) addLock() {
	ins.lockCount++
}

// removeLock is called when an iterator/cursor finishes (reaches END or is
// explicitly closed). Once the count returns to zero, any structural
// operations queued while locked are flushed in enqueue order.
func (ins *Instance) removeLock() {
	if ins.lockCount == 0 {
		return
	}
	ins.lockCount--
	if ins.lockCount == 0 {
		ins.queue.flush(ins)
	}
}

func (ins *Instance) bumpGeneration() {
	ins.generation++
}

// archetypeByID is a small helper shared by the mutator and iteration code.
func (ins *Instance) archetypeByID(id ArchetypeID) *archetype {
	return ins.archetypes.get(id)
}
