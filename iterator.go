package archway

import "unsafe"

// Iterator is a cursor over a query, producing component-tuple views in
// packed order — spec.md §4.7. archCursor/rowCursor mirror spec.md's field
// names exactly; rowCursor starts at -1 (pre-first).
type Iterator struct {
	instance *Instance
	q        *query

	archCursor int
	rowCursor  int

	generation uint64
	closed     bool
}

// NewIterator creates an iterator over query id — iterator_create in
// spec.md §6/§4.7. While the returned Iterator is live, the Instance is
// locked: CreateEntity/DestroyEntity/AddComponent/RemoveComponent calls are
// queued rather than applied (spec.md §4.7's no-structural-change-during-
// iteration contract, enforced cooperatively rather than left to
// convention).
func (ins *Instance) NewIterator(id QueryID) *Iterator {
	q := ins.queries[id]
	ins.addLock()
	return &Iterator{
		instance:   ins,
		q:          q,
		archCursor: 0,
		rowCursor:  -1,
		generation: ins.generation,
	}
}

// checkGeneration implements the generation-counter safety check spec.md
// §9 recommends: in Config.Debug mode, a structural change observed mid-
// iteration panics via bark.AddTrace; in release mode the iterator simply
// reports END rather than risk reading stale/moved rows.
func (it *Iterator) checkGeneration() bool {
	if it.generation == it.instance.generation {
		return true
	}
	assertOrError(errGenerationMismatch{})
	return false
}

type errGenerationMismatch struct{}

func (errGenerationMismatch) Error() string {
	return "archway: iterator stepped after a structural change invalidated it"
}

func (it *Iterator) close() {
	if it.closed {
		return
	}
	it.closed = true
	it.instance.removeLock()
}

// Close releases the iterator's lock on the Instance early, without
// walking to END. Safe to call more than once, and safe to call after
// Next has already returned false.
func (it *Iterator) Close() {
	it.close()
}

// advance rolls row_cursor/arch_cursor forward to the next live row,
// spec.md §4.7 step 2, generalized with a loop so archetypes with zero
// rows (tag archetypes, or archetypes emptied by destruction) are skipped
// rather than yielding a row out of bounds.
func (it *Iterator) advance() bool {
	it.rowCursor++
	for it.archCursor < len(it.q.archetypeRefs) {
		a := it.instance.archetypeByID(it.q.archetypeRefs[it.archCursor])
		if it.rowCursor < a.rowCount {
			return true
		}
		it.archCursor++
		it.rowCursor = 0
	}
	return false
}

// Next implements the step algorithm of spec.md §4.7: advance row_cursor,
// roll to the next archetype when exhausted, and fill out with one raw
// pointer per kind in the query's component_ids, in the order the query
// was created. Returns false (END) once every matched archetype is
// exhausted.
func (it *Iterator) Next(out []unsafe.Pointer) bool {
	if it.closed || !it.checkGeneration() {
		return false
	}
	if !it.advance() {
		it.close()
		return false
	}
	a := it.instance.archetypeByID(it.q.archetypeRefs[it.archCursor])
	for i, kind := range it.q.componentIDs {
		out[i] = a.get(kind, it.rowCursor)
	}
	return true
}

// NextWithEntity behaves like Next but also reports the current row's
// owning entity id.
func (it *Iterator) NextWithEntity(out []unsafe.Pointer) (EntityID, bool) {
	if it.closed || !it.checkGeneration() {
		return 0, false
	}
	if !it.advance() {
		it.close()
		return 0, false
	}
	a := it.instance.archetypeByID(it.q.archetypeRefs[it.archCursor])
	for i, kind := range it.q.componentIDs {
		out[i] = a.get(kind, it.rowCursor)
	}
	return a.entityIDs[it.rowCursor], true
}
