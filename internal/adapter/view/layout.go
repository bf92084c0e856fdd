package view

import "evacplanner/internal/domain/grid"

const (
	ToolbarHeight = 36
	StatusHeight  = 44
	MinWidth      = 520

	buttonGap    = 6
	buttonHeight = 24
	actionWidth  = 96
	swatchWidth  = 30
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type ButtonID string

const (
	ButtonCalculate ButtonID = "calculate"
	ButtonClearPath ButtonID = "clear_path"
	ButtonClearAll  ButtonID = "clear_all"
	ButtonSwatch    ButtonID = "swatch"
)

// Button is a toolbar hit box. Hazard is set for swatches only.
type Button struct {
	ID     ButtonID
	Label  string
	Hazard grid.HazardType
	Rect   Rect
}

// Layout places the toolbar above the grid and the status area below.
type Layout struct {
	CellSize int
	Bounds   grid.Bounds
	Buttons  []Button
}

func NewLayout(bounds grid.Bounds, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = 40
	}
	l := Layout{CellSize: cellSize, Bounds: bounds}

	x := buttonGap
	y := (ToolbarHeight - buttonHeight) / 2
	for _, b := range []Button{
		{ID: ButtonCalculate, Label: "Calculate"},
		{ID: ButtonClearPath, Label: "Clear Path"},
		{ID: ButtonClearAll, Label: "Clear All"},
	} {
		b.Rect = Rect{X: x, Y: y, W: actionWidth, H: buttonHeight}
		l.Buttons = append(l.Buttons, b)
		x += actionWidth + buttonGap
	}
	for _, t := range grid.HazardTypes() {
		l.Buttons = append(l.Buttons, Button{
			ID:     ButtonSwatch,
			Label:  string(t),
			Hazard: t,
			Rect:   Rect{X: x, Y: y, W: swatchWidth, H: buttonHeight},
		})
		x += swatchWidth + buttonGap
	}
	return l
}

func (l Layout) ScreenSize() (int, int) {
	w := l.Bounds.Width * l.CellSize
	if w < MinWidth {
		w = MinWidth
	}
	return w, ToolbarHeight + l.Bounds.Height*l.CellSize + StatusHeight
}

func (l Layout) CellRect(p grid.Point) Rect {
	return Rect{X: p.X * l.CellSize, Y: ToolbarHeight + p.Y*l.CellSize, W: l.CellSize, H: l.CellSize}
}

// CellAt maps a screen position to a grid cell.
func (l Layout) CellAt(x, y int) (grid.Point, bool) {
	if x < 0 || y < ToolbarHeight {
		return grid.Point{}, false
	}
	p := grid.Point{X: x / l.CellSize, Y: (y - ToolbarHeight) / l.CellSize}
	if !l.Bounds.Contains(p) {
		return grid.Point{}, false
	}
	return p, true
}

func (l Layout) ButtonAt(x, y int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// StatusOrigin is the top-left of the status area.
func (l Layout) StatusOrigin() (int, int) {
	return 0, ToolbarHeight + l.Bounds.Height*l.CellSize
}
