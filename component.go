package archway

import "unsafe"

// ComponentDescriptor names one component kind and its byte width, the
// input create_archetype expects (spec.md §4.8.1): a list of
// (kind_id, stride) pairs.
type ComponentDescriptor struct {
	Kind   ComponentKind
	Stride int
}

// ComponentView is one entry of get_components_of_entity's result: a kind,
// its stride, and a raw pointer to that component's bytes for one entity.
// The pointer is a borrow — valid only until the next structural change on
// the owning entity's archetype.
type ComponentView struct {
	Kind   ComponentKind
	Stride int
	Ptr    unsafe.Pointer
}
