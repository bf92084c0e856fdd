package grid

type Phase string

const (
	PhaseNeedStart  Phase = "need_start"
	PhaseNeedEnd    Phase = "need_end"
	PhaseHazardEdit Phase = "hazard_edit"
)

type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeStartSet
	ChangeEndSet
	ChangeStartCleared
	ChangeEndCleared
	ChangeHazardAdded
	ChangeHazardRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeStartSet:
		return "start_set"
	case ChangeEndSet:
		return "end_set"
	case ChangeStartCleared:
		return "start_cleared"
	case ChangeEndCleared:
		return "end_cleared"
	case ChangeHazardAdded:
		return "hazard_added"
	case ChangeHazardRemoved:
		return "hazard_removed"
	default:
		return "none"
	}
}

// Change describes the single transition one click produced.
type Change struct {
	Kind   ChangeKind
	Pos    Point
	Hazard Hazard
}

func (c Change) Mutated() bool {
	return c.Kind != ChangeNone
}

// Board holds the placement state of one building grid.
type Board struct {
	bounds   Bounds
	start    Point
	hasStart bool
	end      Point
	hasEnd   bool
	hazards  *HazardRegistry
	selected HazardType
	path     Path
}

func NewBoard(width, height int) (*Board, error) {
	bounds, err := NewBounds(width, height)
	if err != nil {
		return nil, err
	}
	return &Board{
		bounds:   bounds,
		hazards:  NewHazardRegistry(bounds),
		selected: DefaultHazardType,
	}, nil
}

func (b *Board) Bounds() Bounds { return b.bounds }

func (b *Board) Start() (Point, bool) { return b.start, b.hasStart }

func (b *Board) End() (Point, bool) { return b.end, b.hasEnd }

func (b *Board) SelectedHazardType() HazardType { return b.selected }

func (b *Board) Path() Path { return b.path.Clone() }

func (b *Board) HasPath() bool { return b.path != nil }

func (b *Board) HazardAt(p Point) (Hazard, bool) { return b.hazards.Get(p) }

func (b *Board) Hazards() []Hazard { return b.hazards.List() }

func (b *Board) HazardCount() int { return b.hazards.Len() }

func (b *Board) Phase() Phase {
	switch {
	case !b.hasStart:
		return PhaseNeedStart
	case !b.hasEnd:
		return PhaseNeedEnd
	default:
		return PhaseHazardEdit
	}
}

func (b *Board) SelectHazardType(t HazardType) error {
	if !t.Known() {
		return ErrUnknownHazardType
	}
	b.selected = t
	return nil
}

func (b *Board) isAnchor(p Point) bool {
	return (b.hasStart && b.start == p) || (b.hasEnd && b.end == p)
}

// PrimaryClick applies the anchors-first precedence: start, then end,
// then hazard toggling. Start may be layered over an existing hazard.
// Anchor cells are never toggled into hazards.
func (b *Board) PrimaryClick(p Point) (Change, error) {
	if err := b.bounds.Check(p); err != nil {
		return Change{}, err
	}
	if !b.hasStart {
		b.start, b.hasStart = p, true
		return Change{Kind: ChangeStartSet, Pos: p}, nil
	}
	if b.isAnchor(p) {
		return Change{Pos: p}, nil
	}
	if !b.hasEnd && !b.hazards.Has(p) {
		b.end, b.hasEnd = p, true
		return Change{Kind: ChangeEndSet, Pos: p}, nil
	}
	return b.toggleHazard(p)
}

// SecondaryClick erases whatever sits under p: hazard first, then start,
// then end.
func (b *Board) SecondaryClick(p Point) (Change, error) {
	if err := b.bounds.Check(p); err != nil {
		return Change{}, err
	}
	if h, ok := b.hazards.Remove(p); ok {
		return Change{Kind: ChangeHazardRemoved, Pos: p, Hazard: h}, nil
	}
	if b.hasStart && b.start == p {
		b.start, b.hasStart = Point{}, false
		return Change{Kind: ChangeStartCleared, Pos: p}, nil
	}
	if b.hasEnd && b.end == p {
		b.end, b.hasEnd = Point{}, false
		return Change{Kind: ChangeEndCleared, Pos: p}, nil
	}
	return Change{Pos: p}, nil
}

func (b *Board) toggleHazard(p Point) (Change, error) {
	if h, ok := b.hazards.Remove(p); ok {
		return Change{Kind: ChangeHazardRemoved, Pos: p, Hazard: h}, nil
	}
	h, err := b.hazards.Add(p, b.selected)
	if err != nil {
		return Change{}, err
	}
	return Change{Kind: ChangeHazardAdded, Pos: p, Hazard: h}, nil
}

// Seed installs hazards that already exist on the backend. Entries on
// anchors or outside the bounds are skipped and returned.
func (b *Board) Seed(hazards []Hazard) []Hazard {
	var skipped []Hazard
	for _, h := range hazards {
		if b.isAnchor(h.Pos) {
			skipped = append(skipped, h)
			continue
		}
		if _, err := b.hazards.Put(h); err != nil {
			skipped = append(skipped, h)
		}
	}
	return skipped
}

func (b *Board) SetPath(p Path) error {
	if err := p.Validate(b.bounds); err != nil {
		return err
	}
	if p == nil {
		p = Path{}
	}
	b.path = p.Clone()
	return nil
}

func (b *Board) ClearPath() {
	b.path = nil
}

// Reset drops anchors, hazards and the path in one step. The selected
// hazard type is kept.
func (b *Board) Reset() {
	b.start, b.hasStart = Point{}, false
	b.end, b.hasEnd = Point{}, false
	b.hazards.Clear()
	b.path = nil
}
