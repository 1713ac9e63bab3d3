package archway

import (
	"reflect"
	"testing"
)

type tagA struct{}
type tagB struct{}

var tagAType = reflect.TypeOf(tagA{})
var tagBType = reflect.TypeOf(tagB{})

func TestKindRegistryAssignsStableKinds(t *testing.T) {
	r := NewKindRegistry(4)

	k1, err := r.kindFor(tagAType)
	if err != nil {
		t.Fatalf("kindFor: %v", err)
	}
	k2, err := r.kindFor(tagAType)
	if err != nil {
		t.Fatalf("kindFor (repeat): %v", err)
	}
	if k1 != k2 {
		t.Fatalf("expected stable kind across repeated calls, got %d then %d", k1, k2)
	}

	k3, err := r.kindFor(tagBType)
	if err != nil {
		t.Fatalf("kindFor (second type): %v", err)
	}
	if k3 == k1 {
		t.Fatal("expected distinct types to receive distinct kinds")
	}
}

func TestKindRegistryEnforcesCapacity(t *testing.T) {
	r := NewKindRegistry(1)
	if _, err := r.kindFor(tagAType); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	if _, err := r.kindFor(tagBType); err == nil {
		t.Fatal("expected an error once capacity is exhausted")
	}
}

func TestKindRegistryClearResets(t *testing.T) {
	r := NewKindRegistry(4)
	first, _ := r.kindFor(tagAType)
	r.Clear()
	second, err := r.kindFor(tagAType)
	if err != nil {
		t.Fatalf("kindFor after Clear: %v", err)
	}
	if second != first {
		t.Fatalf("expected Clear to reset assignment back to %d, got %d", first, second)
	}
	if _, ok := r.Lookup(tagBType); ok {
		t.Fatal("expected Lookup to report false for a never-registered type")
	}
}
