package archway_test

import (
	"fmt"

	"github.com/archway-ecs/archway"
)

// Position is a simple component for 2D coordinates.
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement.
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification.
type Name struct {
	Value string
}

// Example_basic shows basic archway usage with entity creation and queries.
func Example_basic() {
	ins := archway.NewInstance()

	position := archway.NewComponent[Position]()
	velocity := archway.NewComponent[Velocity]()
	name := archway.NewComponent[Name]()

	archPos, _ := ins.CreateArchetype(position.Descriptor())
	archPosVel, _ := ins.CreateArchetype(position.Descriptor(), velocity.Descriptor())
	archPosVelName, _ := ins.CreateArchetype(position.Descriptor(), velocity.Descriptor(), name.Descriptor())

	for i := 0; i < 5; i++ {
		ins.CreateEntity(archPos)
	}
	for i := 0; i < 3; i++ {
		ins.CreateEntity(archPosVel)
	}

	// Create one named entity.
	namedEntity, _ := ins.CreateEntity(archPosVelName)
	nameComp, _ := name.GetFromEntity(ins, namedEntity)
	nameComp.Value = "Player"

	pos, _ := position.GetFromEntity(ins, namedEntity)
	vel, _ := velocity.GetFromEntity(ins, namedEntity)
	pos.X, pos.Y = 10.0, 20.0
	vel.X, vel.Y = 1.0, 2.0

	// Query for all entities with position and velocity.
	queryID, _ := ins.CreateQuery(position.Kind, velocity.Kind)
	matchCursor := ins.NewCursor(queryID)
	fmt.Printf("Found %d entities with position and velocity\n", matchCursor.TotalMatched())

	// Query for just the named entity.
	nameQueryID, _ := ins.CreateQuery(name.Kind)
	cursor := ins.NewCursor(nameQueryID)
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		nme := name.GetFromCursor(cursor)

		pos.X += vel.X
		pos.Y += vel.Y

		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_queries shows how to use the composite And/Or/Not query
// predicates.
func Example_queries() {
	ins := archway.NewInstance()

	position := archway.NewComponent[Position]()
	velocity := archway.NewComponent[Velocity]()
	name := archway.NewComponent[Name]()

	archPos, _ := ins.CreateArchetype(position.Descriptor())
	archPosVel, _ := ins.CreateArchetype(position.Descriptor(), velocity.Descriptor())
	archPosName, _ := ins.CreateArchetype(position.Descriptor(), name.Descriptor())
	archPosVelName, _ := ins.CreateArchetype(position.Descriptor(), velocity.Descriptor(), name.Descriptor())

	for i := 0; i < 3; i++ {
		ins.CreateEntity(archPos)
		ins.CreateEntity(archPosVel)
		ins.CreateEntity(archPosName)
		ins.CreateEntity(archPosVelName)
	}

	qb := archway.NewQueryBuilder()

	// AND query: entities with position AND velocity.
	andQueryID, _ := ins.CreateQueryFromPredicate(
		qb.And(position.Kind, velocity.Kind),
		[]archway.ComponentKind{position.Kind, velocity.Kind},
	)
	fmt.Printf("AND query matched %d entities\n", ins.NewCursor(andQueryID).TotalMatched())

	// OR query: entities with velocity OR name.
	orQueryID, _ := ins.CreateQueryFromPredicate(
		qb.Or(velocity.Kind, name.Kind),
		[]archway.ComponentKind{position.Kind},
	)
	fmt.Printf("OR query matched %d entities\n", ins.NewCursor(orQueryID).TotalMatched())

	// NOT query: entities without velocity.
	notQueryID, _ := ins.CreateQueryFromPredicate(
		qb.Not(velocity.Kind),
		[]archway.ComponentKind{position.Kind},
	)
	fmt.Printf("NOT query matched %d entities\n", ins.NewCursor(notQueryID).TotalMatched())

	// Output:
	// AND query matched 6 entities
	// OR query matched 9 entities
	// NOT query matched 6 entities
}
