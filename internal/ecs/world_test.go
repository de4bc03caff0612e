package ecs

import (
	"slices"
	"testing"
)

// stub component used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if other := w.CreateEntity(); other == id {
		t.Fatal("entity IDs must be unique")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestAddReplacesSameKind(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})
	w.Add(id, testComp{val: 2})

	if got := w.Get(id, ComponentType(1)).(testComp).val; got != 2 {
		t.Fatalf("expected replaced val=2, got %d", got)
	}
	if n := len(w.Query(ComponentType(1))); n != 1 {
		t.Fatalf("expected one holder after replace, got %d", n)
	}
}

func TestDestroyEntityDeferredUntilMaintain(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if !w.Alive(id) {
		t.Fatal("entity should stay alive until Maintain")
	}
	if len(w.Query(ComponentType(1))) != 1 {
		t.Fatal("query results must not change mid-frame")
	}

	w.Maintain()

	if w.Alive(id) {
		t.Fatal("entity should not be alive after Maintain")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after Maintain")
	}
}

func TestDestroyTwiceIsHarmless(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	w.DestroyEntity(id)
	w.Maintain()
	w.DestroyEntity(id)
	w.Maintain()
	if w.Alive(id) {
		t.Fatal("entity should be dead")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQueryOrderIsStable(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := 0; i < 50; i++ {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
		ids = append(ids, id)
	}
	first := w.Query(ComponentType(1))
	if !slices.Equal(first, ids) {
		t.Fatalf("expected ascending IDs, got %v", first)
	}
	for i := 0; i < 5; i++ {
		if again := w.Query(ComponentType(1)); !slices.Equal(again, first) {
			t.Fatalf("query order changed between calls: %v vs %v", again, first)
		}
	}
}

func TestQueryNoTypes(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	if got := w.Query(); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
	w.Add(id, testComp{val: 3})
	w.Remove(id, ComponentType(2))
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("unrelated component must survive")
	}
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)
	w.Maintain()

	results := w.Query(ComponentType(1))
	for _, id := range results {
		if id == dead {
			t.Fatal("Query returned a destroyed entity")
		}
	}
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestCountTracksAliveEntities(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.CreateEntity()
	if w.Count() != 2 {
		t.Fatalf("Count = %d; want 2", w.Count())
	}
	w.DestroyEntity(a)
	if w.Count() != 2 {
		t.Error("destroy must not take effect before Maintain")
	}
	w.Maintain()
	if w.Count() != 1 {
		t.Errorf("Count after Maintain = %d; want 1", w.Count())
	}
}

func TestEntityIDString(t *testing.T) {
	if got := EntityID(42).String(); got != "e42" {
		t.Errorf("String = %q; want e42", got)
	}
}
