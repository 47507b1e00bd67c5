package geo

import "testing"

func TestPointTextRoundTrip(t *testing.T) {
	cases := []struct{ lat, lon float64 }{
		{45.5, -122.6}, {-33.9, 151.2}, {0, 0}, {90, 0}, {-90, 180},
	}
	for _, c := range cases {
		p, _, err := NewPoint(c.lat, c.lon)
		if err != nil {
			t.Fatalf("NewPoint: %v", err)
		}
		s := FormatPoint(p)
		got, err := ParsePoint(s)
		if err != nil {
			t.Fatalf("ParsePoint(%q): %v", s, err)
		}
		if !got.Equal(p) {
			t.Errorf("round trip mismatch for %v: got %v via %q", p, got, s)
		}
	}
}

func TestParsePointOrderIndependent(t *testing.T) {
	a, err := ParsePoint("N45.000000000000 W122.000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ParsePoint("W122.000000000000 N45.000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("expected order-independent parse to agree: %v vs %v", a, b)
	}
}

func TestBoxTextRoundTrip(t *testing.T) {
	b, err := NewBox(-10, -20, 10, 20)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	s := FormatBox(b)
	got, err := ParseBox(s)
	if err != nil {
		t.Fatalf("ParseBox(%q): %v", s, err)
	}
	if got != b {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, b)
	}
}

func TestBoxCrossingTextRoundTrip(t *testing.T) {
	// A box built through the two-corner constructor (naive corner gap
	// >= 240, reconstructed as a narrow crossing box) and a box whose
	// crossing span is wide enough that the constructor's heuristic
	// cannot produce it directly (built here via struct literal to
	// model a box arriving by some other route, e.g. box algebra),
	// both still need to round-trip through Format/ParseBox.
	narrow, err := NewBox(-10, 170, 10, -170)
	if err != nil {
		t.Fatalf("narrow crossing: NewBox: %v", err)
	}
	wide := Box{latMin: -10, latMax: 10, lonMin: 10, lonMax: -10}

	for name, b := range map[string]Box{"narrow crossing": narrow, "wide crossing": wide} {
		if !b.CrossesAntimeridian() {
			t.Fatalf("%s: expected crossing box", name)
		}
		s := FormatBox(b)
		got, err := ParseBox(s)
		if err != nil {
			t.Fatalf("%s: ParseBox(%q): %v", name, s, err)
		}
		if got != b {
			t.Errorf("%s: round trip mismatch via %q: got %+v, want %+v", name, s, got, b)
		}
	}
}

func TestBoxTextEmpty(t *testing.T) {
	s := FormatBox(EmptyBox())
	if s != "empty" {
		t.Errorf("expected 'empty', got %q", s)
	}
	got, err := ParseBox(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("expected parsed box to be empty")
	}
}

func TestCircleTextRoundTrip(t *testing.T) {
	center, _, _ := NewPoint(12.5, -45.25)
	c, _, err := NewCircle(center, 123456.789)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	s := FormatCircle(c)
	got, err := ParseCircle(s)
	if err != nil {
		t.Fatalf("ParseCircle(%q): %v", s, err)
	}
	if got.Center() != c.Center() || got.Radius() != c.Radius() {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, c)
	}
}

func TestClusterTextRoundTrip(t *testing.T) {
	pts := []Point{mustPoint(t, 0, 0), mustPoint(t, 0, 10), mustPoint(t, 10, 10), mustPoint(t, 10, 0)}
	c, err := NewCluster([]Entry{{Kind: EntryPolygon, Points: pts}})
	if err != nil {
		t.Fatalf("NewCluster: %v", err)
	}
	s := FormatCluster(c)
	got, err := ParseCluster(s)
	if err != nil {
		t.Fatalf("ParseCluster(%q): %v", s, err)
	}
	gotEntries := got.Entries()
	wantEntries := c.Entries()
	if len(gotEntries) != len(wantEntries) {
		t.Fatalf("entry count mismatch: got %d, want %d", len(gotEntries), len(wantEntries))
	}
	for i := range gotEntries {
		if gotEntries[i].Kind != wantEntries[i].Kind {
			t.Errorf("entry %d kind mismatch: got %v, want %v", i, gotEntries[i].Kind, wantEntries[i].Kind)
		}
	}
}

func TestClusterTextEmpty(t *testing.T) {
	c, err := ParseCluster("empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Entries()) != 0 {
		t.Errorf("expected empty cluster")
	}
}

func TestParseBoxRejectsMalformed(t *testing.T) {
	_, err := ParseBox("not a box")
	if err == nil {
		t.Fatal("expected parse error")
	}
}
