package maps

import (
	"fmt"

	"raycaster/internal/core"
)

const spookySize = 512

// Spooky builds a stone maze with brick pillars, a crystal alcove and a dirt
// doorway in the south wall. The maze itself is laid out on a 512x512 region
// anchored at the origin; the border follows the requested size.
func Spooky(w, h int) (*core.Map, error) {
	if w < spookySize || h < spookySize {
		return nil, fmt.Errorf("spooky %dx%d (need %dx%d): %w", w, h, spookySize, spookySize, ErrMapTooSmall)
	}
	m, err := core.NewMap(w, h)
	if err != nil {
		return nil, err
	}
	t := core.WallThickness

	m.HorizWall(0, w, 0, core.Stone)
	m.HorizWall(0, w, h-t, core.Stone)
	m.VertWall(0, h, 0, core.Stone)
	m.VertWall(0, h, w-t, core.Stone)

	m.HorizWall(224, 256, 480, core.Dirt)

	m.VertWall(64, 192, 64, core.Stone)
	m.VertWall(224, 352, 64, core.Stone)
	m.VertWall(384, 448, 64, core.Stone)
	m.HorizWall(96, 448, 64, core.Stone)

	for _, y := range []int{128, 256} {
		m.HorizWall(128, 160, y, core.Brick)
		m.HorizWall(224, 256, y, core.Brick)
		m.HorizWall(320, 352, y, core.Brick)
	}

	m.HorizWall(384, 416, 192, core.Crystal)

	m.HorizWall(64, 480, 320, core.Stone)
	m.VertWall(64, 288, 416, core.Stone)
	m.VertWall(384, 480, 160, core.Stone)
	m.VertWall(384, 480, 288, core.Stone)
	m.HorizWall(64, 224, 384, core.Stone)
	m.HorizWall(256, 384, 384, core.Stone)
	m.HorizWall(416, 480, 384, core.Stone)

	return m, nil
}

func init() {
	core.Register("spooky", func(size core.Size, _ map[string]string) (*core.Map, error) {
		return Spooky(size.W, size.H)
	})
}
