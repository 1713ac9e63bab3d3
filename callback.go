package archway

import "unsafe"

// Each walks every entity matching query id, calling fn once per entity
// with a reused pointer-tuple buffer — iterate_callback in spec.md §4.9.
// It is a thin loop over NewIterator/Next so push-style systems don't need
// to manage a cursor by hand.
func (ins *Instance) Each(id QueryID, fn func(components []unsafe.Pointer)) {
	it := ins.NewIterator(id)
	buf := make([]unsafe.Pointer, len(it.q.componentIDs))
	for it.Next(buf) {
		fn(buf)
	}
}

// EachWithEntity behaves like Each but also passes the current entity id —
// iterate_callback_with_entity in spec.md §4.9.
func (ins *Instance) EachWithEntity(id QueryID, fn func(entity EntityID, components []unsafe.Pointer)) {
	it := ins.NewIterator(id)
	buf := make([]unsafe.Pointer, len(it.q.componentIDs))
	for {
		e, ok := it.NextWithEntity(buf)
		if !ok {
			return
		}
		fn(e, buf)
	}
}
