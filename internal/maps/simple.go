package maps

import (
	"strconv"

	"raycaster/internal/core"
)

// Empty returns a map with no occupied cells.
func Empty(w, h int) (*core.Map, error) {
	return core.NewMap(w, h)
}

// Column returns an otherwise empty map with a single one-cell-wide wall of
// mat at column x, spanning the full height.
func Column(w, h, x int, mat core.Material) (*core.Map, error) {
	m, err := core.NewMap(w, h)
	if err != nil {
		return nil, err
	}
	if x < 0 || x >= w {
		x = w / 2
	}
	m.Stamp(x, 0, x+1, h, mat)
	return m, nil
}

func init() {
	core.Register("empty", func(size core.Size, _ map[string]string) (*core.Map, error) {
		return Empty(size.W, size.H)
	})
	core.Register("column", func(size core.Size, cfg map[string]string) (*core.Map, error) {
		x := 300
		mat := core.Stone
		if v, ok := cfg["x"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				x = parsed
			}
		}
		if v, ok := cfg["material"]; ok {
			parsed, err := core.ParseMaterial(v)
			if err != nil {
				return nil, err
			}
			mat = parsed
		}
		return Column(size.W, size.H, x, mat)
	})
}
