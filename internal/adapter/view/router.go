package view

import (
	"log"

	"evacplanner/internal/domain/grid"
)

type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
)

type Shortcut int

const (
	ShortcutNone Shortcut = iota
	ShortcutCompute
	ShortcutClearPath
	ShortcutClearAll
	ShortcutDismiss
)

// Target is the session surface the router drives.
type Target interface {
	PrimaryClick(p grid.Point) (grid.Change, error)
	SecondaryClick(p grid.Point) (grid.Change, error)
	SelectHazardType(t grid.HazardType) error
	ClearPath()
	ClearAll()
	DismissNotice()
}

// Router turns classified pointer presses and shortcuts into session
// calls. Compute is invoked for path requests and must not block.
type Router struct {
	Layout  Layout
	Target  Target
	Compute func()
	Logger  *log.Logger
}

// Press handles a pointer press at screen position (x, y). Toolbar
// buttons react to the primary button only.
func (r Router) Press(button PointerButton, x, y int) {
	if b, ok := r.Layout.ButtonAt(x, y); ok {
		if button == PointerPrimary {
			r.activate(b)
		}
		return
	}
	p, ok := r.Layout.CellAt(x, y)
	if !ok {
		return
	}
	switch button {
	case PointerPrimary:
		_, _ = r.Target.PrimaryClick(p)
	case PointerSecondary:
		_, _ = r.Target.SecondaryClick(p)
	}
}

func (r Router) activate(b Button) {
	switch b.ID {
	case ButtonCalculate:
		r.Shortcut(ShortcutCompute)
	case ButtonClearPath:
		r.Shortcut(ShortcutClearPath)
	case ButtonClearAll:
		r.Shortcut(ShortcutClearAll)
	case ButtonSwatch:
		r.SelectHazard(b.Hazard)
	}
}

func (r Router) Shortcut(s Shortcut) {
	switch s {
	case ShortcutCompute:
		if r.Compute != nil {
			r.Compute()
		}
	case ShortcutClearPath:
		r.Target.ClearPath()
	case ShortcutClearAll:
		r.Target.ClearAll()
	case ShortcutDismiss:
		r.Target.DismissNotice()
	}
}

// SelectHazardIndex selects the n-th hazard type, counting from zero.
func (r Router) SelectHazardIndex(n int) {
	types := grid.HazardTypes()
	if n < 0 || n >= len(types) {
		return
	}
	r.SelectHazard(types[n])
}

func (r Router) SelectHazard(t grid.HazardType) {
	if err := r.Target.SelectHazardType(t); err != nil && r.Logger != nil {
		r.Logger.Printf("[view] select hazard %q: %v", t, err)
	}
}
