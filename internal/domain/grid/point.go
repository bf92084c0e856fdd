package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidBounds = errors.New("invalid grid bounds")
	ErrOutOfBounds   = errors.New("point out of bounds")
	ErrInvalidKey    = errors.New("invalid point key")
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key is the canonical "x,y" encoding used in logs and lookups.
func (p Point) Key() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func (p Point) String() string {
	return "(" + p.Key() + ")"
}

func ParsePoint(key string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(key), ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return Point{X: x, Y: y}, nil
}

type Bounds struct {
	Width  int
	Height int
}

func NewBounds(width, height int) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	return Bounds{Width: width, Height: height}, nil
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

func (b Bounds) Check(p Point) error {
	if !b.Contains(p) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, p, b.Width, b.Height)
	}
	return nil
}

func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Index maps p to its row-major offset. p must be in bounds.
func (b Bounds) Index(p Point) int {
	return p.Y*b.Width + p.X
}
