package archway

import (
	"testing"
)

func newTestArchetype(t *testing.T, kinds ...ComponentKind) *archetype {
	t.Helper()
	sig := NewSignature(kinds)
	descs := make([]ComponentDescriptor, len(kinds))
	for i, k := range kinds {
		descs[i] = ComponentDescriptor{Kind: k, Stride: 8}
	}
	return newArchetype(1, sig, descs, 2)
}

func TestArchetypePushEntityGrowsOnScratchInvariant(t *testing.T) {
	a := newTestArchetype(t, 0)
	for i := 0; i < 10; i++ {
		a.pushEntity(EntityID(i + 1))
		if a.rowCount+2 > a.rowCap {
			t.Fatalf("scratch slot invariant violated: rowCount=%d rowCap=%d", a.rowCount, a.rowCap)
		}
	}
	if a.rowCount != 10 {
		t.Fatalf("rowCount = %d, want 10", a.rowCount)
	}
}

func TestArchetypeParallelArraysStayInLockstep(t *testing.T) {
	a := newTestArchetype(t, 0, 1)
	for i := 0; i < 5; i++ {
		a.pushEntity(EntityID(i + 1))
	}
	if len(a.entityIDs) != a.rowCount {
		t.Fatalf("entityIDs length %d != rowCount %d", len(a.entityIDs), a.rowCount)
	}
	if a.arrays[0].Capacity() != a.arrays[1].Capacity() {
		t.Fatalf("component arrays diverged in capacity")
	}
}

func TestArchetypePopSwapMovesLastRow(t *testing.T) {
	// Scenario C: 4 entities e0..e3 at rows 0..3; destroy e1 (row 1).
	a := newTestArchetype(t, 0)
	for i := 0; i < 4; i++ {
		row := a.pushEntity(EntityID(i))
		*(*int64)(a.get(0, row)) = int64(i)
	}
	moved, didMove := a.popSwap(1)
	if !didMove || moved != 3 {
		t.Fatalf("popSwap(1) = (%d, %v), want (3, true)", moved, didMove)
	}
	if a.rowCount != 3 {
		t.Fatalf("rowCount = %d, want 3", a.rowCount)
	}
	want := []EntityID{0, 3, 2}
	for i, e := range want {
		if a.entityIDs[i] != e {
			t.Fatalf("entityIDs = %v, want %v", a.entityIDs, want)
		}
	}
	if got := *(*int64)(a.get(0, 1)); got != 3 {
		t.Fatalf("component data at row 1 = %d, want 3 (moved from row 3)", got)
	}
}

func TestArchetypePopSwapLastRowNoMove(t *testing.T) {
	a := newTestArchetype(t, 0)
	a.pushEntity(1)
	a.pushEntity(2)
	moved, didMove := a.popSwap(1)
	if didMove || moved != 0 {
		t.Fatalf("popSwap(last) = (%d, %v), want (0, false)", moved, didMove)
	}
	if a.rowCount != 1 {
		t.Fatalf("rowCount = %d, want 1", a.rowCount)
	}
}

func TestArchetypeComponentArrayAlignment(t *testing.T) {
	// Scenario F: every component-array base address is aligned.
	a := newTestArchetype(t, 0, 5)
	a.pushEntity(1)
	if addr := uintptr(a.get(0, 0)); addr%CacheLineAlignment != 0 {
		t.Fatalf("kind 0 array base %x not %d-byte aligned", addr, CacheLineAlignment)
	}
	if addr := uintptr(a.get(5, 0)); addr%CacheLineAlignment != 0 {
		t.Fatalf("kind 5 array base %x not %d-byte aligned", addr, CacheLineAlignment)
	}
}

func TestArchetypeTagArchetypeHasNoComponentArrays(t *testing.T) {
	sig := NewSignature(nil)
	a := newArchetype(1, sig, nil, 4)
	row := a.pushEntity(1)
	if row != 0 {
		t.Fatalf("row = %d, want 0", row)
	}
	if a.rowCount != 1 {
		t.Fatalf("rowCount = %d, want 1", a.rowCount)
	}
	for _, arr := range a.arrays {
		if arr != nil {
			t.Fatalf("tag archetype should have no component arrays allocated")
		}
	}
}
