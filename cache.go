package archway

import (
	"fmt"
	"reflect"
	"sync"
)

// KindRegistry assigns a stable ComponentKind to a Go type the first time it
// is seen, and caches the mapping until Clear is called — the ergonomic
// layer spec.md §9 invites implementers to add on
// top of "component id to component struct mapping is the caller's
// responsibility" (SPEC_FULL.md §3). Grounded on the teacher library's
// SimpleCache[T], generalized from a single string-keyed cache to a
// type-keyed registry of kind ids.
type KindRegistry struct {
	mu      sync.Mutex
	indices map[reflect.Type]ComponentKind
	next    ComponentKind
	cap     ComponentKind
}

// NewKindRegistry creates a registry that assigns at most capacity distinct
// kinds before returning ErrTooManyKinds.
func NewKindRegistry(capacity int) *KindRegistry {
	return &KindRegistry{
		indices: make(map[reflect.Type]ComponentKind),
		cap:     ComponentKind(capacity),
	}
}

// kindFor returns typ's assigned kind, assigning one from the next free slot
// the first time typ is seen.
func (r *KindRegistry) kindFor(typ reflect.Type) (ComponentKind, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if kind, ok := r.indices[typ]; ok {
		return kind, nil
	}
	if r.next >= r.cap {
		return 0, fmt.Errorf("archway: kind registry at maximum capacity (%d): %w", r.cap, ErrTooManyKinds{Limit: int(r.cap)})
	}
	kind := r.next
	r.indices[typ] = kind
	r.next++
	return kind, nil
}

// Lookup reports the kind already assigned to typ, if any, without
// assigning a new one.
func (r *KindRegistry) Lookup(typ reflect.Type) (ComponentKind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kind, ok := r.indices[typ]
	return kind, ok
}

// Clear discards every assignment. AccessibleComponents built from the
// registry before a Clear no longer name a valid kind afterward.
func (r *KindRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indices = make(map[reflect.Type]ComponentKind)
	r.next = 0
}

// DefaultKindRegistry is the registry NewComponent[T] uses when no explicit
// registry is supplied, sized to MaxComponentKinds — one ECS vocabulary per
// program is the common case.
var DefaultKindRegistry = NewKindRegistry(MaxComponentKinds)
