package archway

import (
	"unsafe"
)

// CreateArchetype registers a new archetype for the given component
// descriptors (or finds/returns nothing — CreateArchetype always creates;
// callers that want find-or-create should keep their own descriptor→id
// cache, or use AddComponent/RemoveComponent which already find-or-create
// their destination archetype). Descriptors need not be pre-sorted: step 1
// sorts them (spec.md §4.8.1).
//
// An empty descriptor list is permitted — a "tag archetype" that still
// allocates entity_ids (spec.md §4.8.1).
func (ins *Instance) CreateArchetype(descriptors ...ComponentDescriptor) (ArchetypeID, error) {
	kinds := make([]ComponentKind, len(descriptors))
	byKind := make(map[ComponentKind]ComponentDescriptor, len(descriptors))
	for i, d := range descriptors {
		kinds[i] = d.Kind
		if int(d.Kind) >= MaxComponentKinds {
			return 0, assertOrError(ErrTooManyKinds{Limit: MaxComponentKinds})
		}
		if _, dup := byKind[d.Kind]; dup {
			return 0, assertOrError(ErrDuplicateKind{Kind: d.Kind})
		}
		byKind[d.Kind] = d
	}
	if len(descriptors) > MaxComponentsPerArchetype {
		return 0, assertOrError(ErrTooManyKinds{Limit: MaxComponentsPerArchetype})
	}
	sortKinds(kinds)
	sig := NewSignature(kinds)
	sorted := make([]ComponentDescriptor, len(kinds))
	for i, k := range kinds {
		sorted[i] = byKind[k]
	}

	a := ins.archetypes.insert(sig, sorted, Config.DefaultArchetypeRowCapacity)
	ins.onArchetypeCreated(a)
	return a.id, nil
}

// CreateEntity creates one entity in the named archetype — create_entity
// in spec.md §4.8.2. If the Instance is locked by a live iterator, the
// creation is instead queued and applied once iteration completes, and the
// returned id is 0, which names no entity; the queued entity's id is not
// reported to the caller.
func (ins *Instance) CreateEntity(archetypeID ArchetypeID) (EntityID, error) {
	if ins.Locked() {
		ins.queue.enqueue(createEntityOp{archetypeID: archetypeID})
		return 0, nil
	}
	return ins.createEntityNow(archetypeID)
}

// EnqueueCreateEntity defers creation to the next unlock while the instance
// is locked; when it is unlocked, creation runs immediately, same as
// CreateEntity. It does not return the new entity's id.
func (ins *Instance) EnqueueCreateEntity(archetypeID ArchetypeID) error {
	if !ins.Locked() {
		_, err := ins.createEntityNow(archetypeID)
		return err
	}
	ins.queue.enqueue(createEntityOp{archetypeID: archetypeID})
	return nil
}

func (ins *Instance) createEntityNow(archetypeID ArchetypeID) (EntityID, error) {
	a := ins.archetypeByID(archetypeID)
	id := ins.entities.insert(archetypeID, 0)
	row := a.pushEntity(id)
	ins.entities.relocate(id, archetypeID, row)
	ins.bumpGeneration()
	return id, nil
}

// DestroyEntity removes an entity — destroy_entity in spec.md §4.8.3.
func (ins *Instance) DestroyEntity(id EntityID) error {
	if ins.Locked() {
		ins.queue.enqueue(destroyEntityOp{entityID: id})
		return nil
	}
	return ins.destroyEntityNow(id)
}

// EnqueueDestroyEntity defers destruction to the next unlock while the
// instance is locked; otherwise it runs immediately.
func (ins *Instance) EnqueueDestroyEntity(id EntityID) error {
	if !ins.Locked() {
		return ins.destroyEntityNow(id)
	}
	ins.queue.enqueue(destroyEntityOp{entityID: id})
	return nil
}

func (ins *Instance) destroyEntityNow(id EntityID) error {
	rec, ok := ins.entities.get(id)
	if !ok {
		return assertOrError(ErrUnknownEntity{EntityID: id})
	}
	a := ins.archetypeByID(rec.archetypeID)
	moved, didMove := a.popSwap(rec.row)
	if didMove {
		ins.entities.setRow(moved, rec.row)
	}
	ins.entities.kill(id)
	ins.bumpGeneration()
	return nil
}

// AddComponent moves entity id to the archetype signature ∪ {kind},
// preserving its data for every kind it already carried — add_component in
// spec.md §4.8.4, the costliest structural operation. Adding a kind the
// entity already has is a no-op that returns ErrAlreadyPresent (benign,
// per spec.md §7).
func (ins *Instance) AddComponent(id EntityID, kind ComponentKind, stride int) error {
	if ins.Locked() {
		ins.queue.enqueue(addComponentOp{entityID: id, kind: kind, stride: stride})
		return nil
	}
	return ins.addComponentNow(id, kind, stride)
}

// EnqueueAddComponent defers the add to the next unlock while the instance
// is locked; otherwise it runs immediately.
func (ins *Instance) EnqueueAddComponent(id EntityID, kind ComponentKind, stride int) error {
	if !ins.Locked() {
		return ins.addComponentNow(id, kind, stride)
	}
	ins.queue.enqueue(addComponentOp{entityID: id, kind: kind, stride: stride})
	return nil
}

func (ins *Instance) addComponentNow(id EntityID, kind ComponentKind, stride int) error {
	rec, ok := ins.entities.get(id)
	if !ok {
		return assertOrError(ErrUnknownEntity{EntityID: id})
	}
	if int(kind) >= MaxComponentKinds {
		return assertOrError(ErrTooManyKinds{Limit: MaxComponentKinds})
	}
	src := ins.archetypeByID(rec.archetypeID)
	if src.signature.Contains(kind) {
		return ErrAlreadyPresent{Kind: kind}
	}
	if src.signature.Len() >= MaxComponentsPerArchetype {
		return assertOrError(ErrTooManyKinds{Limit: MaxComponentsPerArchetype})
	}

	destSig, _ := src.signature.Insert(kind)
	dest, err := ins.findOrCreateDestination(src, destSig, kind, stride)
	if err != nil {
		return err
	}

	// Grow the destination before copying any byte, so a failure here
	// leaves the model unchanged (spec.md §7's ordering guarantee).
	if dest.rowCount+2 >= dest.rowCap {
		dest.grow(dest.rowCap * 2)
	}
	newRow := dest.pushEntity(id)
	for k := 0; k < MaxComponentKinds; k++ {
		if src.arrays[k] != nil && dest.arrays[k] != nil {
			dest.arrays[k].CopyRowFrom(newRow, src.arrays[k], rec.row)
		}
	}
	ins.entities.relocate(id, dest.id, newRow)

	moved, didMove := src.popSwap(rec.row)
	if didMove {
		ins.entities.setRow(moved, rec.row)
	}
	ins.bumpGeneration()
	return nil
}

// RemoveComponent moves entity id to the archetype signature ∖ {kind} —
// remove_component in spec.md §4.8.5, symmetric to AddComponent.
func (ins *Instance) RemoveComponent(id EntityID, kind ComponentKind) error {
	if ins.Locked() {
		ins.queue.enqueue(removeComponentOp{entityID: id, kind: kind})
		return nil
	}
	return ins.removeComponentNow(id, kind)
}

// EnqueueRemoveComponent defers the removal to the next unlock while the
// instance is locked; otherwise it runs immediately.
func (ins *Instance) EnqueueRemoveComponent(id EntityID, kind ComponentKind) error {
	if !ins.Locked() {
		return ins.removeComponentNow(id, kind)
	}
	ins.queue.enqueue(removeComponentOp{entityID: id, kind: kind})
	return nil
}

func (ins *Instance) removeComponentNow(id EntityID, kind ComponentKind) error {
	rec, ok := ins.entities.get(id)
	if !ok {
		return assertOrError(ErrUnknownEntity{EntityID: id})
	}
	src := ins.archetypeByID(rec.archetypeID)
	if !src.signature.Contains(kind) {
		return assertOrError(ErrNotPresent{Kind: kind})
	}

	destSig := src.signature.Remove(kind)
	descriptors := descriptorsForSignature(src, destSig)
	dest, found := ins.archetypes.lookup(destSig)
	if !found {
		dest = ins.archetypes.insert(destSig, descriptors, Config.DefaultArchetypeRowCapacity)
		ins.onArchetypeCreated(dest)
	}

	if dest.rowCount+2 >= dest.rowCap {
		dest.grow(dest.rowCap * 2)
	}
	newRow := dest.pushEntity(id)
	for k := 0; k < MaxComponentKinds; k++ {
		if k == int(kind) {
			continue
		}
		if src.arrays[k] != nil && dest.arrays[k] != nil {
			dest.arrays[k].CopyRowFrom(newRow, src.arrays[k], rec.row)
		}
	}
	ins.entities.relocate(id, dest.id, newRow)

	moved, didMove := src.popSwap(rec.row)
	if didMove {
		ins.entities.setRow(moved, rec.row)
	}
	ins.bumpGeneration()
	return nil
}

// findOrCreateDestination resolves add_component's target archetype
// (spec.md §4.8.4 steps 2–3), validating that a pre-existing destination's
// recorded stride for kind matches the caller's.
func (ins *Instance) findOrCreateDestination(src *archetype, destSig Signature, kind ComponentKind, stride int) (*archetype, error) {
	if dest, found := ins.archetypes.lookup(destSig); found {
		if existing := dest.stride(kind); existing != stride {
			return nil, assertOrError(ErrStrideMismatch{Kind: kind, Stride: existing, Wanted: stride})
		}
		return dest, nil
	}
	descriptors := descriptorsForSignature(src, destSig)
	descriptors = append(descriptors, ComponentDescriptor{Kind: kind, Stride: stride})
	dest := ins.archetypes.insert(destSig, descriptors, Config.DefaultArchetypeRowCapacity)
	ins.onArchetypeCreated(dest)
	return dest, nil
}

// descriptorsForSignature rebuilds the descriptor list for every kind sig
// names, using src's recorded strides for the kinds src and sig share.
func descriptorsForSignature(src *archetype, sig Signature) []ComponentDescriptor {
	kinds := sig.Kinds()
	out := make([]ComponentDescriptor, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, ComponentDescriptor{Kind: k, Stride: src.stride(k)})
	}
	return out
}

// GetComponent returns a raw pointer to entity id's component of the given
// kind — get_component in spec.md §6. The pointer is a borrow, valid only
// until the next structural change on id's archetype.
func (ins *Instance) GetComponent(id EntityID, kind ComponentKind) (unsafe.Pointer, error) {
	rec, ok := ins.entities.get(id)
	if !ok {
		return nil, assertOrError(ErrUnknownEntity{EntityID: id})
	}
	a := ins.archetypeByID(rec.archetypeID)
	if !a.signature.Contains(kind) {
		return nil, assertOrError(ErrNotPresent{Kind: kind})
	}
	return a.get(kind, rec.row), nil
}

// ComponentsOf returns one ComponentView per kind in entity id's archetype
// — get_components_of_entity in spec.md §6.
func (ins *Instance) ComponentsOf(id EntityID) ([]ComponentView, error) {
	rec, ok := ins.entities.get(id)
	if !ok {
		return nil, assertOrError(ErrUnknownEntity{EntityID: id})
	}
	a := ins.archetypeByID(rec.archetypeID)
	kinds := a.signature.Kinds()
	views := make([]ComponentView, len(kinds))
	for i, k := range kinds {
		views[i] = ComponentView{Kind: k, Stride: a.stride(k), Ptr: a.get(k, rec.row)}
	}
	return views, nil
}
