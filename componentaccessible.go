package archway

import "unsafe"

// AccessibleComponent wraps a ComponentDescriptor with typed accessors, so
// call sites work in *T instead of unsafe.Pointer + stride — the "typed
// accessor sugar" of SPEC_FULL.md §6. Grounded on the teacher library's
// AccessibleComponent[T]/table.Accessor[T], adapted from table-row indexing
// to archetype+row indexing since there is no separate table.Accessor type
// in this module's storage layer.
type AccessibleComponent[T any] struct {
	Kind   ComponentKind
	Stride int
}

// Descriptor returns the ComponentDescriptor this accessor was built from,
// for use with CreateArchetype/AddComponent.
func (c AccessibleComponent[T]) Descriptor() ComponentDescriptor {
	return ComponentDescriptor{Kind: c.Kind, Stride: c.Stride}
}

// GetFromCursor retrieves the component for the entity at the cursor's
// current position.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	row := cursor.entityIndex - 1
	return (*T)(cursor.currentArchetype.get(c.Kind, row))
}

// GetFromCursorSafe behaves like GetFromCursor but first checks that the
// cursor's current archetype actually carries this kind.
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if !c.CheckCursor(cursor) {
		return false, nil
	}
	return true, c.GetFromCursor(cursor)
}

// CheckCursor reports whether the cursor's current archetype carries this
// kind.
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return cursor.currentArchetype != nil && cursor.currentArchetype.signature.Contains(c.Kind)
}

// GetFromEntity retrieves the component for entity id directly from an
// Instance, without going through a Cursor.
func (c AccessibleComponent[T]) GetFromEntity(ins *Instance, id EntityID) (*T, error) {
	ptr, err := ins.GetComponent(id, c.Kind)
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// componentSize computes T's in-memory size the way NewComponent uses to
// derive Stride, factored out so tests can check it without unsafe.Sizeof
// boilerplate at call sites.
func componentSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
