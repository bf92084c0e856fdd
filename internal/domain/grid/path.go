package grid

import "fmt"

// Path is the overlay returned by a successful computation. It is
// display-only: nothing in placement consults it.
type Path []Point

func (p Path) Contains(pt Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

func (p Path) Validate(b Bounds) error {
	for i, pt := range p {
		if !b.Contains(pt) {
			return fmt.Errorf("%w: path[%d]=%s in %dx%d", ErrOutOfBounds, i, pt, b.Width, b.Height)
		}
	}
	return nil
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// PathFromPairs converts the backend's [[x, y], ...] encoding.
func PathFromPairs(pairs [][]int) (Path, error) {
	out := make(Path, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("path[%d]: expected [x, y], got %d values", i, len(pair))
		}
		out = append(out, Point{X: pair[0], Y: pair[1]})
	}
	return out, nil
}
