package archway

import "iter"

// Cursor is an alternative to Iterator for callers that want push-based
// position tracking (CurrentEntity, EntityAtOffset, TotalMatched) rather
// than a fill-this-slice Next. It is grounded on the teacher library's
// Cursor/iCursor, adapted from Storage/ArchetypeImpl/QueryNode to
// Instance/archetype/QueryID: matchedStorages becomes the query's
// pre-resolved archetypeRefs, so Initialize does no archetype scanning of
// its own — CreateQuery already did that.
type Cursor struct {
	instance *Instance
	q        *query

	currentArchetype *archetype
	archIndex        int
	entityIndex      int
	remaining        int

	initialized bool
}

// NewCursor builds a Cursor over query id. Unlike NewIterator, it does not
// lock the Instance itself: the lock is taken by Initialize (on the first
// Next, Entities or TotalMatched call) and released by Reset or Close.
func (ins *Instance) NewCursor(id QueryID) *Cursor {
	return &Cursor{instance: ins, q: ins.queries[id]}
}

// Next advances to the next matching entity and reports whether one exists.
func (c *Cursor) Next() bool {
	if c.entityIndex < c.remaining {
		c.entityIndex++
		return true
	}
	return c.advance()
}

// advance moves to the next archetype with rows left to visit.
func (c *Cursor) advance() bool {
	if !c.initialized {
		c.Initialize()
	}

	for c.archIndex < len(c.q.archetypeRefs) {
		c.currentArchetype = c.instance.archetypeByID(c.q.archetypeRefs[c.archIndex])
		c.remaining = c.currentArchetype.rowCount
		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.archIndex++
		c.entityIndex = 0
	}

	c.Reset()
	return false
}

// Entities returns an iterator sequence yielding (row, entity id) pairs for
// every entity the cursor's query matches.
func (c *Cursor) Entities() iter.Seq2[int, EntityID] {
	return func(yield func(int, EntityID) bool) {
		c.Initialize()

		for c.archIndex < len(c.q.archetypeRefs) {
			c.currentArchetype = c.instance.archetypeByID(c.q.archetypeRefs[c.archIndex])
			c.remaining = c.currentArchetype.rowCount

			for c.entityIndex < c.remaining {
				if !yield(c.entityIndex, c.currentArchetype.entityIDs[c.entityIndex]) {
					c.Reset()
					return
				}
				c.entityIndex++
			}

			c.entityIndex = 0
			c.archIndex++
		}

		c.Reset()
	}
}

// Initialize locks the Instance and positions the cursor at its first
// matching archetype. Called automatically by Next/Entities/TotalMatched;
// exposed so callers can pay the lock cost up front.
func (c *Cursor) Initialize() {
	if c.initialized {
		return
	}
	c.instance.addLock()
	if len(c.q.archetypeRefs) > 0 {
		c.archIndex = 0
		c.currentArchetype = c.instance.archetypeByID(c.q.archetypeRefs[0])
		c.remaining = c.currentArchetype.rowCount
	}
	c.initialized = true
}

// Reset clears cursor state and releases the Instance lock. Called
// automatically once the cursor is exhausted; safe to call more than once.
func (c *Cursor) Reset() {
	if !c.initialized {
		return
	}
	c.archIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.initialized = false
	c.instance.removeLock()
}

// CurrentEntity returns the entity at the cursor's current position.
func (c *Cursor) CurrentEntity() (EntityID, error) {
	return c.EntityAtOffset(0)
}

// EntityAtOffset returns the entity at offset rows from the current
// position, within the current archetype only.
func (c *Cursor) EntityAtOffset(offset int) (EntityID, error) {
	row := c.entityIndex - 1 + offset
	if c.currentArchetype == nil || row < 0 || row >= c.currentArchetype.rowCount {
		return 0, ErrUnknownEntity{}
	}
	return c.currentArchetype.entityIDs[row], nil
}

// EntityIndex returns the cursor's 1-based position within the current
// archetype: after Next returns true, the current row is EntityIndex()-1.
func (c *Cursor) EntityIndex() int {
	return c.entityIndex
}

// RemainingInArchetype returns the number of rows left in the current
// archetype after the current one.
func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

// TotalMatched returns the total entity count across every archetype the
// cursor's query matches, then resets the cursor.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.Initialize()
	}
	total := 0
	for _, id := range c.q.archetypeRefs {
		total += c.instance.archetypeByID(id).rowCount
	}
	c.Reset()
	return total
}

// Close releases the cursor's lock on the Instance without visiting the
// remaining rows. Safe to call after the cursor has already been reset.
func (c *Cursor) Close() {
	c.Reset()
}
