package maps

import (
	"errors"
	"fmt"

	"raycaster/internal/core"
)

// ErrMapTooSmall is returned when a fixed layout does not fit the requested size.
var ErrMapTooSmall = errors.New("map too small for layout")

const classicMinSize = 450

// Classic builds the default test level: an outer dirt border, a small stone
// room on the west side, a brick hallway with three bumps along the south edge
// and a free-standing stone column.
func Classic(w, h int) (*core.Map, error) {
	if w < classicMinSize || h < classicMinSize {
		return nil, fmt.Errorf("classic %dx%d (need %dx%d): %w", w, h, classicMinSize, classicMinSize, ErrMapTooSmall)
	}
	m, err := core.NewMap(w, h)
	if err != nil {
		return nil, err
	}
	t := core.WallThickness

	// outer walls
	m.Stamp(0, 0, t, h, core.Dirt)
	m.Stamp(0, 0, w, t, core.Dirt)
	m.Stamp(w-t, 0, w, h, core.Dirt)
	m.Stamp(0, h-t, w, h, core.Dirt)

	// little room
	m.HorizWall(0, 150, 200, core.Stone)
	m.HorizWall(0, 150, 400, core.Stone)
	m.VertWall(200, 280, 150, core.Stone)
	m.VertWall(320, 400+t, 150, core.Stone)
	m.VertWall(200, 400, 0, core.Stone)

	// hallway
	m.VertWall(100, h, 250, core.Brick)
	m.HorizWall(100, 250, 100, core.Brick)
	m.HorizWall(340, w, 100, core.Brick)
	m.HorizWall(250+t, 450, 170, core.Brick)

	// bumps
	m.VertWall(450, h, 400, core.Brick)
	m.VertWall(450, h, 350, core.Brick)
	m.VertWall(450, h, 300, core.Brick)

	// column
	m.VertWall(300, 300+t, 380, core.Stone)

	return m, nil
}

func init() {
	core.Register("classic", func(size core.Size, _ map[string]string) (*core.Map, error) {
		return Classic(size.W, size.H)
	})
}
