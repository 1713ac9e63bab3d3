package archway

import "testing"

// TestCursorVisitsEveryMatchingEntity checks Cursor.Next walks every row of
// every matched archetype exactly once.
func TestCursorVisitsEveryMatchingEntity(t *testing.T) {
	ins := NewInstance()
	const k ComponentKind = 0
	archA, _ := ins.CreateArchetype(ComponentDescriptor{Kind: k, Stride: strideOf[posXY]()})
	archB, _ := ins.CreateArchetype(
		ComponentDescriptor{Kind: k, Stride: strideOf[posXY]()},
		ComponentDescriptor{Kind: 1, Stride: strideOf[velXY]()},
	)

	for i := 0; i < 3; i++ {
		ins.CreateEntity(archA)
	}
	for i := 0; i < 2; i++ {
		ins.CreateEntity(archB)
	}

	queryID, err := ins.CreateQuery(k)
	if err != nil {
		t.Fatalf("CreateQuery: %v", err)
	}

	cursor := ins.NewCursor(queryID)
	count := 0
	for cursor.Next() {
		if _, err := cursor.CurrentEntity(); err != nil {
			t.Fatalf("CurrentEntity: %v", err)
		}
		count++
	}
	if count != 5 {
		t.Fatalf("expected 5 rows visited, got %d", count)
	}
	if ins.Locked() {
		t.Fatal("expected cursor to release its lock once exhausted")
	}
}

// TestCursorTotalMatched checks the total-count convenience resets the
// cursor afterward.
func TestCursorTotalMatched(t *testing.T) {
	ins := NewInstance()
	const k ComponentKind = 0
	arch, _ := ins.CreateArchetype(ComponentDescriptor{Kind: k, Stride: strideOf[posXY]()})
	for i := 0; i < 4; i++ {
		ins.CreateEntity(arch)
	}
	queryID, _ := ins.CreateQuery(k)

	cursor := ins.NewCursor(queryID)
	if total := cursor.TotalMatched(); total != 4 {
		t.Fatalf("expected TotalMatched=4, got %d", total)
	}
	if ins.Locked() {
		t.Fatal("expected TotalMatched to release the lock")
	}

	// Cursor should still work normally for a fresh pass afterward.
	count := 0
	for cursor.Next() {
		count++
	}
	if count != 4 {
		t.Fatalf("expected 4 rows on a fresh pass, got %d", count)
	}
}

// TestAccessibleComponentGetFromCursor exercises the typed accessor sugar
// against a live cursor.
func TestAccessibleComponentGetFromCursor(t *testing.T) {
	DefaultKindRegistry.Clear()
	ins := NewInstance()

	position := NewComponent[posXY]()
	archID, err := ins.CreateArchetype(position.Descriptor())
	if err != nil {
		t.Fatalf("CreateArchetype: %v", err)
	}
	e0, _ := ins.CreateEntity(archID)
	ptr, _ := ins.GetComponent(e0, position.Kind)
	(*posXY)(ptr).X = 5

	queryID, _ := ins.CreateQuery(position.Kind)
	cursor := ins.NewCursor(queryID)
	if !cursor.Next() {
		t.Fatal("expected at least one matching row")
	}
	got := position.GetFromCursor(cursor)
	if got.X != 5 {
		t.Fatalf("expected X=5, got %v", got.X)
	}
	if !position.CheckCursor(cursor) {
		t.Fatal("expected CheckCursor true for the matched kind")
	}
}
