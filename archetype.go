package archway

import (
	"unsafe"

	"github.com/archway-ecs/archway/internal/colbuf"
)

// ArchetypeID identifies an archetype within an Instance's Archetype Index.
type ArchetypeID uint32

// EntityID identifies an entity. Ids are dense and append-only; destroying
// an entity never frees its id for reuse (spec.md §9's open question on
// recycling is resolved as "not implemented").
type EntityID uint32

// archetype is a bundle of parallel, same-length arrays: one Component
// Array per kind in its signature, plus the entity_ids array, all indexed
// by row. Component arrays are addressed by raw kind id (arrays has length
// MaxComponentKinds) so lookup by kind is O(1) with no hashing — entries
// for kinds outside the signature are nil.
type archetype struct {
	id        ArchetypeID
	signature Signature
	strides   [MaxComponentKinds]int
	arrays    [MaxComponentKinds]*colbuf.Buffer
	entityIDs []EntityID
	rowCount  int
	rowCap    int
}

// newArchetype allocates an archetype for the given descriptors (already
// sorted and signature-built by the caller) at the given initial row
// capacity.
func newArchetype(id ArchetypeID, sig Signature, descriptors []ComponentDescriptor, initialRowCapacity int) *archetype {
	if initialRowCapacity < 1 {
		initialRowCapacity = 1
	}
	a := &archetype{
		id:        id,
		signature: sig,
		entityIDs: make([]EntityID, 0, initialRowCapacity),
		rowCap:    initialRowCapacity,
	}
	for _, d := range descriptors {
		a.strides[d.Kind] = d.Stride
		a.arrays[d.Kind] = colbuf.New(d.Stride, initialRowCapacity, CacheLineAlignment)
	}
	return a
}

// grow doubles row capacity across every array and the entity_ids array in
// lock-step, preserving the invariant that all arrays in the signature
// share the same row_count/row_capacity.
func (a *archetype) grow(minCapacity int) {
	newCap := a.rowCap
	for newCap < minCapacity {
		newCap *= 2
	}
	if newCap == a.rowCap {
		return
	}
	for k := 0; k < MaxComponentKinds; k++ {
		if a.arrays[k] != nil {
			a.arrays[k].GrowTo(newCap, a.rowCount)
		}
	}
	grown := make([]EntityID, a.rowCount, newCap)
	copy(grown, a.entityIDs)
	a.entityIDs = grown
	a.rowCap = newCap
}

// pushEntity appends entity e as a new row, growing storage first if the
// scratch-slot invariant (row_count + 2 ≥ row_capacity) would be violated.
// Component bytes at the new row are left uninitialized — the caller's
// responsibility, per spec.md §4.8.2.
func (a *archetype) pushEntity(e EntityID) int {
	if a.rowCount+2 >= a.rowCap {
		a.grow(a.rowCap * 2)
	}
	row := a.rowCount
	a.entityIDs = append(a.entityIDs, e)
	a.rowCount++
	return row
}

// popSwap swap-removes row, copying the last row's data into it for every
// array in the signature and for entity_ids, then decrementing row_count.
// It returns the entity id that was moved into `row` and whether a move
// actually happened (false when row was already last).
func (a *archetype) popSwap(row int) (moved EntityID, didMove bool) {
	last := a.rowCount - 1
	if row != last {
		moved = a.entityIDs[last]
		a.entityIDs[row] = moved
		for k := 0; k < MaxComponentKinds; k++ {
			if a.arrays[k] != nil {
				a.arrays[k].MoveRow(last, row)
			}
		}
		didMove = true
	}
	a.entityIDs = a.entityIDs[:last]
	a.rowCount--
	return moved, didMove
}

// get returns a raw pointer to kind's component at row. Callers are
// expected to have already checked signature.Contains(kind) — get itself
// trusts the caller on the hot path, per spec.md §4.2's "no bounds checking
// in release builds" rule.
func (a *archetype) get(kind ComponentKind, row int) unsafe.Pointer {
	return a.arrays[kind].Ptr(row)
}

// stride reports the recorded byte width for kind within this archetype.
func (a *archetype) stride(kind ComponentKind) int {
	return a.strides[kind]
}
