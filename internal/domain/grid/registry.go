package grid

import "sort"

// HazardRegistry maps a grid point to the hazard on it. It carries no
// network behaviour; replication is driven by the Change values the
// Board returns.
type HazardRegistry struct {
	bounds Bounds
	byPos  map[Point]Hazard
}

func NewHazardRegistry(bounds Bounds) *HazardRegistry {
	return &HazardRegistry{
		bounds: bounds,
		byPos:  make(map[Point]Hazard),
	}
}

// Add upserts the hazard at p with the default intensity.
func (r *HazardRegistry) Add(p Point, t HazardType) (Hazard, error) {
	return r.Put(NewHazard(p, t))
}

// Put stores h as given, keeping whatever intensity it carries.
func (r *HazardRegistry) Put(h Hazard) (Hazard, error) {
	if err := r.bounds.Check(h.Pos); err != nil {
		return Hazard{}, err
	}
	if h.Intensity <= 0 {
		h.Intensity = DefaultIntensity
	}
	r.byPos[h.Pos] = h
	return h, nil
}

func (r *HazardRegistry) Remove(p Point) (Hazard, bool) {
	h, ok := r.byPos[p]
	if ok {
		delete(r.byPos, p)
	}
	return h, ok
}

func (r *HazardRegistry) Has(p Point) bool {
	_, ok := r.byPos[p]
	return ok
}

func (r *HazardRegistry) Get(p Point) (Hazard, bool) {
	h, ok := r.byPos[p]
	return h, ok
}

func (r *HazardRegistry) Clear() {
	clear(r.byPos)
}

func (r *HazardRegistry) Len() int {
	return len(r.byPos)
}

// List returns the hazards in row-major order.
func (r *HazardRegistry) List() []Hazard {
	out := make([]Hazard, 0, len(r.byPos))
	for _, h := range r.byPos {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}
