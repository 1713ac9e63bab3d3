package archway

import "reflect"

// factory implements the factory pattern for archway components, mirroring
// the teacher library's package-level Factory instance.
type factory struct{}

// Factory is the global factory instance for creating archway components.
var Factory factory

// NewQueryBuilder returns a fresh composite-query builder.
func (f factory) NewQueryBuilder() QueryBuilder {
	return NewQueryBuilder()
}

// NewCursor creates a new Cursor over the given query on the given
// Instance.
func (f factory) NewCursor(ins *Instance, id QueryID) *Cursor {
	return ins.NewCursor(id)
}

// NewComponent assigns T a kind from DefaultKindRegistry (registering it on
// first use) and returns an AccessibleComponent[T] with Stride set to
// unsafe.Sizeof(T{}) — the teacher library's FactoryNewComponent, adapted
// from table.FactoryNewElementType/table.FactoryNewAccessor to this
// module's KindRegistry + archetype-row accessors.
func NewComponent[T any]() AccessibleComponent[T] {
	return NewComponentIn[T](DefaultKindRegistry)
}

// NewComponentIn behaves like NewComponent but assigns the kind from an
// explicit registry, for callers running more than one independent
// component vocabulary in the same process.
func NewComponentIn[T any](registry *KindRegistry) AccessibleComponent[T] {
	var zero T
	typ := reflect.TypeOf(zero)
	kind, err := registry.kindFor(typ)
	if err != nil {
		panic(err)
	}
	return AccessibleComponent[T]{Kind: kind, Stride: componentSize[T]()}
}

// FactoryNewCache creates a KindRegistry sized to capacity — kept for
// callers migrating from the teacher library's FactoryNewCache[T], though
// the registry is no longer parameterized by a payload type: a kind
// registry only ever stores ComponentKind values.
func FactoryNewCache(capacity int) *KindRegistry {
	return NewKindRegistry(capacity)
}
