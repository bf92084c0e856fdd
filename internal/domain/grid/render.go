package grid

import "strings"

type Category string

const (
	CategoryEmpty  Category = "empty"
	CategoryStart  Category = "start"
	CategoryEnd    Category = "end"
	CategoryHazard Category = "hazard"
	CategoryPath   Category = "path"
)

const (
	GlyphStart   = "🚩"
	GlyphEnd     = "🏁"
	GlyphPath    = "•"
	GlyphWarning = "⚠️"
)

var hazardGlyphs = map[HazardType]string{
	HazardFire:     "🔥",
	HazardSmoke:    "💨",
	HazardWater:    "💧",
	HazardChemical: "☣️",
	HazardBlocked:  "🚧",
}

var hazardMarks = map[HazardType]byte{
	HazardFire:     'f',
	HazardSmoke:    's',
	HazardWater:    'w',
	HazardChemical: 'c',
	HazardBlocked:  '#',
}

// GlyphFor falls back to the warning glyph for types the client does not know.
func GlyphFor(t HazardType) string {
	if g, ok := hazardGlyphs[t]; ok {
		return g
	}
	return GlyphWarning
}

// CellView is the resolved visual state of one cell. Mark is a single
// ASCII byte for text and bitmap-font output.
type CellView struct {
	Pos      Point
	Category Category
	Class    string
	Glyph    string
	Mark     byte
	Hazard   HazardType
}

type Frame struct {
	Bounds Bounds
	Cells  []CellView
}

// Render resolves every cell from scratch with precedence
// start > end > hazard > path > empty.
func Render(b *Board) Frame {
	onPath := make(map[Point]struct{}, len(b.path))
	for _, p := range b.path {
		onPath[p] = struct{}{}
	}

	cells := make([]CellView, 0, b.bounds.Area())
	for y := 0; y < b.bounds.Height; y++ {
		for x := 0; x < b.bounds.Width; x++ {
			p := Point{X: x, Y: y}
			cells = append(cells, resolveCell(b, p, onPath))
		}
	}
	return Frame{Bounds: b.bounds, Cells: cells}
}

func resolveCell(b *Board, p Point, onPath map[Point]struct{}) CellView {
	if b.hasStart && b.start == p {
		return CellView{Pos: p, Category: CategoryStart, Class: "start", Glyph: GlyphStart, Mark: 'S'}
	}
	if b.hasEnd && b.end == p {
		return CellView{Pos: p, Category: CategoryEnd, Class: "end", Glyph: GlyphEnd, Mark: 'E'}
	}
	if h, ok := b.hazards.Get(p); ok {
		mark, known := hazardMarks[h.Type]
		if !known {
			mark = '!'
		}
		return CellView{
			Pos:      p,
			Category: CategoryHazard,
			Class:    "hazard-" + string(h.Type),
			Glyph:    GlyphFor(h.Type),
			Mark:     mark,
			Hazard:   h.Type,
		}
	}
	if _, ok := onPath[p]; ok {
		return CellView{Pos: p, Category: CategoryPath, Class: "path", Glyph: GlyphPath, Mark: '*'}
	}
	return CellView{Pos: p, Category: CategoryEmpty, Mark: '.'}
}

func (f Frame) At(p Point) (CellView, bool) {
	if !f.Bounds.Contains(p) {
		return CellView{}, false
	}
	return f.Cells[f.Bounds.Index(p)], true
}

// String draws the frame one row per line using cell marks.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.Bounds.Area() + f.Bounds.Height)
	for y := 0; y < f.Bounds.Height; y++ {
		for x := 0; x < f.Bounds.Width; x++ {
			sb.WriteByte(f.Cells[y*f.Bounds.Width+x].Mark)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Count returns how many cells resolved to c.
func (f Frame) Count(c Category) int {
	n := 0
	for _, cell := range f.Cells {
		if cell.Category == c {
			n++
		}
	}
	return n
}
