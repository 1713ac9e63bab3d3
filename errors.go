package archway

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// Programming errors: the caller violated an invariant. In Config.Debug
// mode these are raised as panics (via bark.AddTrace) instead of returned,
// matching the "debug builds assert" rule of the structural mutator.

// ErrUnknownEntity is returned for an entity id that was never created, or
// was destroyed. Entity ids are never recycled, so reuse of a destroyed id
// is indistinguishable from an id that never existed.
type ErrUnknownEntity struct {
	EntityID EntityID
}

func (e ErrUnknownEntity) Error() string {
	return fmt.Sprintf("archway: unknown entity %d", e.EntityID)
}

// ErrStrideMismatch is returned when add_component targets a pre-existing
// destination archetype whose recorded stride for the kind differs from
// the caller-supplied stride.
type ErrStrideMismatch struct {
	Kind           ComponentKind
	Stride, Wanted int
}

func (e ErrStrideMismatch) Error() string {
	return fmt.Sprintf("archway: stride mismatch for kind %d: archetype has %d, caller gave %d", e.Kind, e.Stride, e.Wanted)
}

// ErrTooManyKinds is returned when an archetype's signature would exceed
// MaxComponentsPerArchetype, a kind id is ≥ MaxComponentKinds, a query names
// more than MaxQueryComponents kinds, or a KindRegistry has no kind left.
type ErrTooManyKinds struct {
	Limit int
}

func (e ErrTooManyKinds) Error() string {
	return fmt.Sprintf("archway: exceeds component limit of %d", e.Limit)
}

// ErrDuplicateKind is returned when create_archetype is given the same kind
// id twice.
type ErrDuplicateKind struct {
	Kind ComponentKind
}

func (e ErrDuplicateKind) Error() string {
	return fmt.Sprintf("archway: duplicate component kind %d", e.Kind)
}

// ErrNotPresent is returned by remove_component when the entity's archetype
// does not carry the named kind.
type ErrNotPresent struct {
	Kind ComponentKind
}

func (e ErrNotPresent) Error() string {
	return fmt.Sprintf("archway: component kind %d not present", e.Kind)
}

// Benign conditions: not fatal, but callers may want to know.

// ErrAlreadyPresent is returned by add_component as a non-fatal signal that
// the entity already carries the kind; the call is a no-op.
type ErrAlreadyPresent struct {
	Kind ComponentKind
}

func (e ErrAlreadyPresent) Error() string {
	return fmt.Sprintf("archway: component kind %d already present", e.Kind)
}

// ErrNoMatchingArchetype is a warning-class condition: create_query
// succeeded but no archetype yet satisfies it. The query is still created
// and will begin matching archetypes created later.
type ErrNoMatchingArchetype struct {
	Components []ComponentKind
}

func (e ErrNoMatchingArchetype) Error() string {
	return fmt.Sprintf("archway: no archetype currently matches query %v", e.Components)
}

// ErrOutOfMemory describes an allocation failure. No function in this
// package returns it: the containers allocate with make and append, which
// do not report failure as an error.
type ErrOutOfMemory struct {
	Reason string
}

func (e ErrOutOfMemory) Error() string {
	return fmt.Sprintf("archway: out of memory: %s", e.Reason)
}

// assertOrError implements the Config.Debug split: in debug mode it panics
// with a stack trace attached via bark.AddTrace; in release mode it returns
// the error unchanged for the caller to handle.
func assertOrError(err error) error {
	if Config.Debug {
		panic(bark.AddTrace(err))
	}
	return err
}
