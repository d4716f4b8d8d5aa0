package raycast

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"raycaster/internal/core"
)

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// ErrInvalidCamera is returned by Validate for cameras that cannot be cast from.
var ErrInvalidCamera = errors.New("invalid camera")

// Camera is the pose and optics of the viewer. Position shares the map's
// coordinate space; Y grows downward as in image space.
type Camera struct {
	X, Y int

	// Radians is the heading. It is treated modulo a full turn.
	Radians float64
	// FOV is the angular width of the view, also modulo a full turn.
	FOV float64

	// MaxDistance is the ray march ceiling.
	MaxDistance float64
	// RaySteps is the number of samples taken along each ray.
	RaySteps int
}

// Validate reports configuration errors that would otherwise surface deep
// inside the march loop.
func (c Camera) Validate() error {
	if !(c.MaxDistance > 0) || math.IsInf(c.MaxDistance, 1) {
		return fmt.Errorf("%w: max distance %v must be positive and finite", ErrInvalidCamera, c.MaxDistance)
	}
	if c.RaySteps <= 0 {
		return fmt.Errorf("%w: ray steps %d must be positive", ErrInvalidCamera, c.RaySteps)
	}
	if math.IsNaN(c.Radians) || math.IsInf(c.Radians, 0) || math.IsNaN(c.FOV) || math.IsInf(c.FOV, 0) {
		return fmt.Errorf("%w: heading and fov must be finite", ErrInvalidCamera)
	}
	return nil
}

// StepSize is the distance between two consecutive ray samples.
func (c Camera) StepSize() float64 {
	return c.MaxDistance / float64(c.RaySteps)
}

// NormalizeAngle maps a into [0, 2π). Negative angles wrap around instead of
// keeping their sign as math.Mod alone would.
func NormalizeAngle(a float64) float64 {
	return math.Mod(math.Mod(a, TwoPi)+TwoPi, TwoPi)
}

// AngleForColumn returns the world angle of the ray for a column at span in
// [0, 1]; 0.5 looks straight along the heading.
func AngleForColumn(c Camera, span float64) float64 {
	return NormalizeAngle(c.Radians + c.FOV*(span-0.5))
}

// Turn rotates the heading by delta radians and keeps it normalized.
func (c *Camera) Turn(delta float64) {
	c.Radians = NormalizeAngle(c.Radians + delta)
}

// Advance moves the camera delta units along its heading. Negative values
// move backwards.
func (c *Camera) Advance(delta float64) {
	c.X, c.Y = c.offset(c.Radians, delta)
}

// Strafe moves the camera delta units to its left; negative values move
// right.
func (c *Camera) Strafe(delta float64) {
	c.X, c.Y = c.offset(c.Radians+math.Pi/2, delta)
}

func (c *Camera) offset(angle, delta float64) (int, int) {
	dx := math.Round(delta * math.Cos(angle))
	dy := math.Round(delta * math.Sin(angle))
	return c.X + int(dx), c.Y - int(dy)
}

// Walk applies a forward and sideways move only when the destination stays
// inside the map and lands on an empty cell. It reports whether the camera
// moved.
func Walk(m *core.Map, c *Camera, forward, sideways float64) bool {
	next := *c
	if forward != 0 {
		next.Advance(forward)
	}
	if sideways != 0 {
		next.Strafe(sideways)
	}
	if !m.Contains(next.X, next.Y) {
		return false
	}
	if _, hit := m.Occupied(next.X, next.Y); hit {
		return false
	}
	c.X, c.Y = next.X, next.Y
	return true
}

// Parameters describes the camera for the HUD.
func (c Camera) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Camera",
		Params: []core.Parameter{
			{Key: "pos", Label: "pos", Value: fmt.Sprintf("%d,%d", c.X, c.Y)},
			{Key: "heading", Label: "heading", Value: formatDegrees(c.Radians)},
			{Key: "fov", Label: "fov", Value: formatDegrees(c.FOV)},
			{Key: "max_distance", Label: "dist", Value: strconv.FormatFloat(c.MaxDistance, 'f', -1, 64)},
			{Key: "ray_steps", Label: "steps", Value: strconv.Itoa(c.RaySteps)},
		},
	}}}
}

func formatDegrees(rad float64) string {
	return strconv.FormatFloat(NormalizeAngle(rad)*180/math.Pi, 'f', 1, 64) + "°"
}
