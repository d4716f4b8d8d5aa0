package maps

import (
	"fmt"
	"strconv"

	"raycaster/internal/core"
	rng "raycaster/pkg/core"
)

// RoomsConfig controls the seeded rooms generator.
type RoomsConfig struct {
	Seed int64

	// Walls is the number of interior wall segments stamped.
	Walls int
	// MinLength and MaxLength bound each segment, in cells.
	MinLength int
	MaxLength int
	// Clearing keeps a square of this half-size around the map center free so
	// the default camera spawn is never inside a wall.
	Clearing int
}

// DefaultRoomsConfig returns the standard configuration.
func DefaultRoomsConfig() RoomsConfig {
	return RoomsConfig{
		Seed:      42,
		Walls:     14,
		MinLength: 64,
		MaxLength: 192,
		Clearing:  48,
	}
}

// RoomsFromMap populates the config from a string map (flag-style key/value pairs).
func RoomsFromMap(cfg map[string]string) RoomsConfig {
	c := DefaultRoomsConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["walls"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Walls = parsed
		}
	}
	if v, ok := cfg["min_length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinLength = parsed
		}
	}
	if v, ok := cfg["max_length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxLength = parsed
		}
	}
	if c.MaxLength < c.MinLength {
		c.MaxLength = c.MinLength
	}
	if v, ok := cfg["clearing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Clearing = parsed
		}
	}
	return c
}

// Rooms stamps a stone border and a seeded set of axis-aligned interior walls.
// Segments are snapped to the wall thickness so corridors line up. The same
// config always yields the same map.
func Rooms(w, h int, cfg RoomsConfig) (*core.Map, error) {
	t := core.WallThickness
	if w < 4*t || h < 4*t {
		return nil, fmt.Errorf("rooms %dx%d (need %dx%d): %w", w, h, 4*t, 4*t, ErrMapTooSmall)
	}
	m, err := core.NewMap(w, h)
	if err != nil {
		return nil, err
	}

	m.HorizWall(0, w, 0, core.Stone)
	m.HorizWall(0, w, h-t, core.Stone)
	m.VertWall(0, h, 0, core.Stone)
	m.VertWall(0, h, w-t, core.Stone)

	r := rng.NewRNG(cfg.Seed)
	interior := []core.Material{core.Dirt, core.Brick, core.Crystal}
	for i := 0; i < cfg.Walls; i++ {
		length := r.Range(cfg.MinLength, cfg.MaxLength+1)
		mat := rng.Pick(r, interior)
		if r.Bool() {
			x1 := r.Snap(t, w-t, t)
			y := r.Snap(t, h-2*t, t)
			x2 := min(x1+length, w-t)
			m.HorizWall(x1, x2, y, mat)
			continue
		}
		x := r.Snap(t, w-2*t, t)
		y1 := r.Snap(t, h-t, t)
		y2 := min(y1+length, h-t)
		m.VertWall(y1, y2, x, mat)
	}

	if cfg.Clearing > 0 {
		cx, cy := w/2, h/2
		x1, y1 := max(cx-cfg.Clearing, t), max(cy-cfg.Clearing, t)
		x2, y2 := min(cx+cfg.Clearing, w-t), min(cy+cfg.Clearing, h-t)
		if x1 < x2 && y1 < y2 {
			m.Stamp(x1, y1, x2, y2, core.Empty)
		}
	}
	return m, nil
}

func init() {
	core.Register("rooms", func(size core.Size, cfg map[string]string) (*core.Map, error) {
		return Rooms(size.W, size.H, RoomsFromMap(cfg))
	})
}
