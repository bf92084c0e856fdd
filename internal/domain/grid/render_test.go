package grid

import "testing"

func TestRender_Precedence(t *testing.T) {
	b, err := NewBoard(4, 2)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	start, end := Point{X: 0, Y: 0}, Point{X: 3, Y: 1}
	b.Seed([]Hazard{NewHazard(start, HazardFire)})
	if _, err := b.PrimaryClick(start); err != nil {
		t.Fatalf("PrimaryClick error: %v", err)
	}
	if _, err := b.PrimaryClick(end); err != nil {
		t.Fatalf("PrimaryClick error: %v", err)
	}
	if _, err := b.PrimaryClick(Point{X: 2, Y: 0}); err != nil {
		t.Fatalf("PrimaryClick error: %v", err)
	}
	if err := b.SetPath(Path{start, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, end}); err != nil {
		t.Fatalf("SetPath error: %v", err)
	}

	f := Render(b)

	cases := []struct {
		p    Point
		want Category
	}{
		{start, CategoryStart},
		{end, CategoryEnd},
		{Point{X: 2, Y: 0}, CategoryHazard},
		{Point{X: 1, Y: 0}, CategoryPath},
		{Point{X: 2, Y: 1}, CategoryPath},
		{Point{X: 0, Y: 1}, CategoryEmpty},
	}
	for _, tc := range cases {
		cell, ok := f.At(tc.p)
		if !ok {
			t.Fatalf("At(%v) missing", tc.p)
		}
		if cell.Category != tc.want {
			t.Fatalf("cell %v category=%s want %s", tc.p, cell.Category, tc.want)
		}
	}
	if got, want := f.String(), "S*f.\n..*E\n"; got != want {
		t.Fatalf("String()=%q want %q", got, want)
	}
}

func TestRender_IsIdempotent(t *testing.T) {
	b, err := NewBoard(3, 3)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	b.Seed([]Hazard{NewHazard(Point{X: 1, Y: 1}, HazardBlocked)})
	first := Render(b).String()
	second := Render(b).String()
	if first != second {
		t.Fatalf("render not idempotent:\n%s\n%s", first, second)
	}
}

func TestRender_HazardGlyphs(t *testing.T) {
	b, err := NewBoard(6, 1)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	types := []HazardType{HazardFire, HazardSmoke, HazardWater, HazardChemical, HazardBlocked, "structural"}
	for i, ht := range types {
		b.Seed([]Hazard{NewHazard(Point{X: i, Y: 0}, ht)})
	}
	f := Render(b)
	want := []string{"🔥", "💨", "💧", "☣️", "🚧", GlyphWarning}
	for i := range types {
		cell, _ := f.At(Point{X: i, Y: 0})
		if cell.Glyph != want[i] {
			t.Fatalf("glyph for %q=%q want %q", types[i], cell.Glyph, want[i])
		}
		if cell.Class != "hazard-"+string(types[i]) {
			t.Fatalf("class for %q=%q", types[i], cell.Class)
		}
	}
	if got := f.String(); got != "fswc#!\n" {
		t.Fatalf("String()=%q", got)
	}
}

func TestRender_AddThenRemoveRendersEmpty(t *testing.T) {
	b, err := NewBoard(3, 3)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	p := Point{X: 2, Y: 2}
	if _, err := b.hazards.Add(p, HazardFire); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	b.hazards.Remove(p)
	cell, _ := Render(b).At(p)
	if cell.Category != CategoryEmpty || cell.Glyph != "" {
		t.Fatalf("expected empty cell, got %+v", cell)
	}
	if Render(b).Count(CategoryEmpty) != 9 {
		t.Fatalf("expected all cells empty")
	}
}
