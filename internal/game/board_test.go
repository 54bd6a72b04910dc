package game

import "testing"

func TestMirrorIsAnInvolution(t *testing.T) {
	t.Parallel()

	cases := []Position{
		{X: 0, Y: 0},
		{X: 23, Y: 38},
		{X: 6, Y: 6},
		{X: 11, Y: 20},
	}
	for _, p := range cases {
		m := Mirror(p)
		if got := Mirror(m); got != p {
			t.Fatalf("Mirror(Mirror(%v)) = %v, want %v", p, got, p)
		}
	}

	if got := Mirror(Position{X: 0, Y: 0}); got != (Position{X: 23, Y: 38}) {
		t.Fatalf("Mirror(0,0) = %v, want (23,38)", got)
	}
	// Column 11 does not map to itself: the 24-column grid has no center.
	if got := Mirror(Position{X: 11, Y: 38}); got != (Position{X: 12, Y: 0}) {
		t.Fatalf("Mirror(11,38) = %v, want (12,0)", got)
	}
}

func TestClampAndInBounds(t *testing.T) {
	t.Parallel()

	if got := (Position{X: -5, Y: 50}).Clamp(); got != (Position{X: 0, Y: 38}) {
		t.Fatalf("Clamp(-5,50) = %v, want (0,38)", got)
	}
	if got := (Position{X: 24, Y: -1}).Clamp(); got != (Position{X: 23, Y: 0}) {
		t.Fatalf("Clamp(24,-1) = %v, want (23,0)", got)
	}
	if p := (Position{X: 10, Y: 10}); p.Clamp() != p {
		t.Fatal("in-bounds position must be unchanged by Clamp")
	}

	if !(Position{X: 0, Y: 0}).InBounds() || !(Position{X: 23, Y: 38}).InBounds() {
		t.Fatal("grid corners must be in bounds")
	}
	if (Position{X: 24, Y: 0}).InBounds() || (Position{X: 0, Y: 39}).InBounds() {
		t.Fatal("positions past the grid edge must be out of bounds")
	}
}

func TestOnMainPath(t *testing.T) {
	t.Parallel()

	for _, p := range []Position{{X: 6, Y: 30}, {X: 17, Y: 2}, {X: 9, Y: 6}} {
		if !OnMainPath(p) {
			t.Fatalf("%v should be on the main path", p)
		}
	}
	if OnMainPath(Position{X: 10, Y: 20}) {
		t.Fatal("(10,20) should be off the main path")
	}
}

func TestDistanceIsEuclidean(t *testing.T) {
	t.Parallel()

	if got := Distance(Position{X: 0, Y: 0}, Position{X: 3, Y: 4}); got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if got := Distance(Position{X: 7, Y: 7}, Position{X: 7, Y: 7}); got != 0 {
		t.Fatalf("Distance of identical points = %v, want 0", got)
	}
}
