package geo

import "testing"

func TestBoxContains(t *testing.T) {
	b, _ := NewBox(-10, -10, 10, 10)
	in, _, _ := NewPoint(0, 0)
	out, _, _ := NewPoint(20, 20)
	if !b.Contains(in) {
		t.Errorf("expected box to contain %v", in)
	}
	if b.Contains(out) {
		t.Errorf("expected box to not contain %v", out)
	}
}

func TestBoxCrossesAntimeridian(t *testing.T) {
	b, _ := NewBox(-10, 170, 10, -170)
	if !b.CrossesAntimeridian() {
		t.Fatal("expected box to cross the antimeridian")
	}
	east, _, _ := NewPoint(0, 175)
	west, _, _ := NewPoint(0, -175)
	mid, _, _ := NewPoint(0, 0)
	if !b.Contains(east) || !b.Contains(west) {
		t.Errorf("expected box to contain both sides of the seam")
	}
	if b.Contains(mid) {
		t.Errorf("expected box to not contain %v", mid)
	}
}

func TestBoxOverlapsWraparound(t *testing.T) {
	a, _ := NewBox(-10, 170, 10, -170)
	b, _ := NewBox(-5, 175, 5, 179)
	if !a.Overlaps(b) {
		t.Errorf("expected overlap across the seam")
	}
}

func TestBoxEmpty(t *testing.T) {
	e := EmptyBox()
	if !e.IsEmpty() {
		t.Fatal("expected EmptyBox to be empty")
	}
	p, _, _ := NewPoint(0, 0)
	if e.Contains(p) {
		t.Errorf("empty box should not contain any point")
	}
}

func TestBoxToClusterWraparound(t *testing.T) {
	b, _ := NewBox(-5, 170, 5, -170)
	c, err := b.ToCluster()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(entries))
	}
	for _, e := range entries {
		_, span := unwrapEntry(e.Points)
		if span >= 180 {
			t.Errorf("entry span %v >= 180", span)
		}
	}
}

func TestBoxToClusterSimple(t *testing.T) {
	b, _ := NewBox(-5, -5, 5, 5)
	c, err := b.ToCluster()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(c.Entries()))
	}
}
