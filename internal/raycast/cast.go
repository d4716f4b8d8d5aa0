package raycast

import (
	"math"

	"golang.org/x/sync/errgroup"

	"raycaster/internal/core"
)

// RenderWidth is the canonical number of columns in a view.
const RenderWidth = 512

// Ray is the result of marching a single column.
type Ray struct {
	// Distance along the ray to the first hit, or MaxDistance on a miss.
	Distance float64
	// Angle is the absolute world angle in [0, 2π).
	Angle float64
	// Material of the hit cell; core.Empty when nothing was hit.
	Material core.Material
}

// Hit reports whether the ray stopped on a wall.
func (r Ray) Hit() bool { return r.Material != core.Empty }

// View holds one ray per screen column in increasing span order.
type View []Ray

// Offset returns the probe offset for a sample dist along angle, truncated
// toward zero.
func Offset(dist, angle float64) (int, int) {
	return int(dist * math.Cos(angle)), int(dist * math.Sin(angle))
}

// CastRay marches the ray for span with a fixed number of evenly spaced
// samples and stops at the first occupied cell.
func CastRay(m *core.Map, c Camera, span float64) Ray {
	angle := AngleForColumn(c, span)
	cos, sin := math.Cos(angle), math.Sin(angle)
	steps := float64(c.RaySteps)
	for step := 0; step < c.RaySteps; step++ {
		dist := c.MaxDistance * float64(step) / steps
		x := c.X + int(dist*cos)
		y := c.Y - int(dist*sin)
		if mat, hit := m.Occupied(x, y); hit {
			return Ray{Distance: dist, Angle: angle, Material: mat}
		}
	}
	return Ray{Distance: c.MaxDistance, Angle: angle, Material: core.Empty}
}

// CastFOV casts width rays across the field of view.
func CastFOV(m *core.Map, c Camera, width int) View {
	view := make(View, width)
	castColumns(m, c, view, 0, width)
	return view
}

// CastFOVParallel produces the same view as CastFOV, splitting the columns
// into contiguous bands cast on at most workers goroutines.
func CastFOVParallel(m *core.Map, c Camera, width, workers int) View {
	if workers <= 1 || width < 2 {
		return CastFOV(m, c, width)
	}
	workers = min(workers, width)
	view := make(View, width)
	band := (width + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < width; start += band {
		lo, hi := start, min(start+band, width)
		g.Go(func() error {
			castColumns(m, c, view, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	return view
}

func castColumns(m *core.Map, c Camera, view View, lo, hi int) {
	width := float64(len(view))
	for i := lo; i < hi; i++ {
		view[i] = CastRay(m, c, float64(i)/width)
	}
}

// Samples returns the cells probed by a ray cast at angle up to and
// excluding the sample at stop distance.
func Samples(c Camera, angle, stop float64) [][2]int {
	var out [][2]int
	for step := 0; step < c.RaySteps; step++ {
		dist := c.MaxDistance * float64(step) / float64(c.RaySteps)
		if dist >= stop {
			break
		}
		xOff, yOff := Offset(dist, angle)
		out = append(out, [2]int{c.X + xOff, c.Y - yOff})
	}
	return out
}
