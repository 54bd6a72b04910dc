package game

import "testing"

func TestRegistryIteratesInInsertionOrder(t *testing.T) {
	t.Parallel()

	r := newRegistry()
	ids := []string{"c", "a", "b", "z", "m"}
	for _, id := range ids {
		r.add(&Troop{ID: id})
	}

	for i, troop := range r.all() {
		if troop.ID != ids[i] {
			t.Fatalf("position %d holds %q, want %q", i, troop.ID, ids[i])
		}
	}

	// Removal keeps the relative order of the survivors.
	r.remove("a")
	r.remove("z")
	want := []string{"c", "b", "m"}
	got := r.all()
	if len(got) != len(want) || r.count() != len(want) {
		t.Fatalf("count = %d, want %d", r.count(), len(want))
	}
	for i, troop := range got {
		if troop.ID != want[i] {
			t.Fatalf("after removal, position %d holds %q, want %q", i, troop.ID, want[i])
		}
	}

	if r.get("a") != nil {
		t.Fatal("removed troop still retrievable")
	}
	// Removing an unknown id is a no-op.
	r.remove("a")
	if r.count() != len(want) {
		t.Fatal("double removal changed the count")
	}
}
