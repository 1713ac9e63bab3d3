/*
Package archway provides an archetype-based Entity-Component-System (ECS)
storage core.

Archway keeps entities with the same component set packed together in
parallel, cache-aligned arrays, so systems iterating over a query walk
contiguous memory rather than chasing pointers. It deliberately stays at the
storage layer: creating/destroying entities, adding/removing components, and
answering "give me every entity with these components" — not rendering,
physics, or any other game-specific system.

Core Concepts:

  - Entity: a dense, append-only integer id.
  - Component: a fixed-stride value identified by a small integer kind.
  - Archetype: the set of entities sharing an exact component set, stored as
    one packed array per component kind plus an entity id array.
  - Signature: the sorted, sentinel-terminated kind tuple that identifies an
    archetype.
  - Query: a pre-resolved list of archetypes whose signature is a superset
    of the requested kinds, kept current as new archetypes appear.

Basic Usage:

	ins := archway.NewInstance()

	position := archway.NewComponent[Position]()
	velocity := archway.NewComponent[Velocity]()

	archID, _ := ins.CreateArchetype(position.Descriptor(), velocity.Descriptor())
	entity, _ := ins.CreateEntity(archID)

	queryID, _ := ins.CreateQuery(position.Kind, velocity.Kind)

	cursor := ins.NewCursor(queryID)
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

The same query also supports a pointer-slice style, for systems that work
with raw pointers instead of typed accessors:

	it := ins.NewIterator(queryID)
	buf := make([]unsafe.Pointer, 2)
	for it.Next(buf) {
		pos := (*Position)(buf[0])
		vel := (*Velocity)(buf[1])
		pos.X += vel.X
		pos.Y += vel.Y
	}

Archway is a standalone storage library; it does not assume or depend on any
particular game loop or rendering framework.
*/
package archway
