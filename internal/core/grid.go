package core

import (
	"errors"
	"fmt"
)

// WallThickness is the width in cells of walls stamped by HorizWall and VertWall.
const WallThickness = 32

// ErrEmptyMap is returned when a map is requested with a non-positive dimension.
var ErrEmptyMap = errors.New("map dimensions must be positive")

// Material identifies what a grid cell is made of. Empty marks an unoccupied
// cell; every other value is a solid wall.
type Material uint8

const (
	Empty Material = iota
	Dirt
	Brick
	Stone
	Crystal
)

// Materials lists the solid materials in declaration order.
var Materials = []Material{Dirt, Brick, Stone, Crystal}

// String returns the lower-case material name.
func (m Material) String() string {
	switch m {
	case Empty:
		return "empty"
	case Dirt:
		return "dirt"
	case Brick:
		return "brick"
	case Stone:
		return "stone"
	case Crystal:
		return "crystal"
	default:
		return fmt.Sprintf("material(%d)", uint8(m))
	}
}

// ParseMaterial maps a material name back to its value.
func ParseMaterial(name string) (Material, error) {
	for _, m := range append([]Material{Empty}, Materials...) {
		if m.String() == name {
			return m, nil
		}
	}
	return Empty, fmt.Errorf("unknown material %q", name)
}

// Solid reports whether the material occupies its cell.
func (m Material) Solid() bool { return m != Empty }

// Map stores the occupancy grid in row-major order. The grid never changes
// size after construction.
type Map struct {
	W, H  int
	cells []Material
}

// NewMap allocates an empty map with the given dimensions.
func NewMap(w, h int) (*Map, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new map %dx%d: %w", w, h, ErrEmptyMap)
	}
	return &Map{W: w, H: h, cells: make([]Material, w*h)}, nil
}

// Size returns the map dimensions.
func (m *Map) Size() Size { return Size{W: m.W, H: m.H} }

// Cells exposes the backing slice. Callers must treat it as read-only once the
// map has been generated.
func (m *Map) Cells() []Material { return m.cells }

// Index returns the linear slice index for coordinates (x, y).
func (m *Map) Index(x, y int) int { return y*m.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (m *Map) Contains(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// At returns the material at (x, y). Coordinates outside the grid are a
// programming error and panic.
func (m *Map) At(x, y int) Material {
	if !m.Contains(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d map", x, y, m.W, m.H))
	}
	return m.cells[m.Index(x, y)]
}

// Occupied reports whether a ray probe at (x, y) hits a wall. Probes outside
// the grid see open space.
func (m *Map) Occupied(x, y int) (Material, bool) {
	if !m.Contains(x, y) {
		return Empty, false
	}
	mat := m.cells[m.Index(x, y)]
	return mat, mat != Empty
}

// Stamp sets every cell in [x1,x2) x [y1,y2) to mat. Stamping Empty clears the
// rectangle. The rectangle must lie within the map.
func (m *Map) Stamp(x1, y1, x2, y2 int, mat Material) {
	if x1 < 0 || y1 < 0 || x2 > m.W || y2 > m.H {
		panic(fmt.Sprintf("core: rect [%d,%d)x[%d,%d) outside %dx%d map", x1, x2, y1, y2, m.W, m.H))
	}
	for y := y1; y < y2; y++ {
		row := y * m.W
		for x := x1; x < x2; x++ {
			m.cells[row+x] = mat
		}
	}
}

// HorizWall stamps a wall WallThickness cells tall spanning [x1,x2) from row y.
func (m *Map) HorizWall(x1, x2, y int, mat Material) {
	m.Stamp(x1, y, x2, y+WallThickness, mat)
}

// VertWall stamps a wall WallThickness cells wide spanning [y1,y2) from column x.
func (m *Map) VertWall(y1, y2, x int, mat Material) {
	m.Stamp(x, y1, x+WallThickness, y2, mat)
}

// Clear empties every cell.
func (m *Map) Clear() {
	for i := range m.cells {
		m.cells[i] = Empty
	}
}

// Count returns the number of cells made of mat.
func (m *Map) Count(mat Material) int {
	n := 0
	for _, c := range m.cells {
		if c == mat {
			n++
		}
	}
	return n
}
