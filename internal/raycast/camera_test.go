package raycast

import (
	"errors"
	"math"
	"testing"

	"raycaster/internal/core"
)

func testCamera() Camera {
	return Camera{X: 256, Y: 256, Radians: 0, FOV: math.Pi / 3, MaxDistance: 512, RaySteps: 256}
}

func TestNormalizeAngleRange(t *testing.T) {
	inputs := []float64{0, 1, -1, TwoPi, -TwoPi, 7 * math.Pi, -7 * math.Pi, -1e-18, 1e-18, -100.3, 1234.5678, math.Nextafter(TwoPi, 0)}
	for _, a := range inputs {
		got := NormalizeAngle(a)
		if got < 0 || got >= TwoPi {
			t.Fatalf("NormalizeAngle(%v)=%v outside [0, 2π)", a, got)
		}
	}
	if got := NormalizeAngle(-math.Pi / 2); math.Abs(got-1.5*math.Pi) > 1e-12 {
		t.Fatalf("NormalizeAngle(-π/2)=%v, expected 3π/2", got)
	}
}

func TestAngleForColumnRange(t *testing.T) {
	cam := testCamera()
	for _, radians := range []float64{-20, -math.Pi, 0, 0.3, math.Pi, 50} {
		for _, fov := range []float64{0, 0.01, math.Pi / 2, TwoPi, 9} {
			for _, span := range []float64{0, 0.1, 0.5, 0.99, 1} {
				cam.Radians, cam.FOV = radians, fov
				got := AngleForColumn(cam, span)
				if got < 0 || got >= TwoPi {
					t.Fatalf("AngleForColumn(r=%v fov=%v span=%v)=%v outside [0, 2π)", radians, fov, span, got)
				}
			}
		}
	}
}

func TestAngleForColumnCenterAndEdges(t *testing.T) {
	cam := testCamera()
	for _, radians := range []float64{0, 1.2, -0.5, 5 * math.Pi} {
		cam.Radians = radians
		if got, want := AngleForColumn(cam, 0.5), NormalizeAngle(radians); got != want {
			t.Fatalf("center angle=%v, expected %v", got, want)
		}
		if got, want := AngleForColumn(cam, 0), NormalizeAngle(radians-cam.FOV/2); got != want {
			t.Fatalf("left edge angle=%v, expected %v", got, want)
		}
		if got, want := AngleForColumn(cam, 1), NormalizeAngle(radians+cam.FOV/2); got != want {
			t.Fatalf("right edge angle=%v, expected %v", got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := testCamera().Validate(); err != nil {
		t.Fatalf("valid camera rejected: %v", err)
	}
	bad := []func(*Camera){
		func(c *Camera) { c.RaySteps = 0 },
		func(c *Camera) { c.RaySteps = -4 },
		func(c *Camera) { c.MaxDistance = 0 },
		func(c *Camera) { c.MaxDistance = math.NaN() },
		func(c *Camera) { c.MaxDistance = math.Inf(1) },
		func(c *Camera) { c.Radians = math.NaN() },
		func(c *Camera) { c.FOV = math.Inf(-1) },
	}
	for i, mutate := range bad {
		cam := testCamera()
		mutate(&cam)
		if err := cam.Validate(); !errors.Is(err, ErrInvalidCamera) {
			t.Fatalf("case %d: expected ErrInvalidCamera, got %v", i, err)
		}
	}
}

func TestTurnNormalizes(t *testing.T) {
	cam := testCamera()
	cam.Turn(-0.25)
	if math.Abs(cam.Radians-(TwoPi-0.25)) > 1e-12 {
		t.Fatalf("heading=%v after turning right from 0", cam.Radians)
	}
	cam.Turn(0.5)
	if math.Abs(cam.Radians-0.25) > 1e-12 {
		t.Fatalf("heading=%v after turning back", cam.Radians)
	}
}

func TestAdvanceAndStrafe(t *testing.T) {
	cam := testCamera()
	cam.Advance(10)
	if cam.X != 266 || cam.Y != 256 {
		t.Fatalf("advance east ended at (%d,%d)", cam.X, cam.Y)
	}

	cam = testCamera()
	cam.Radians = math.Pi / 2
	cam.Advance(10)
	if cam.X != 256 || cam.Y != 246 {
		t.Fatalf("advance north should decrease y, ended at (%d,%d)", cam.X, cam.Y)
	}

	cam = testCamera()
	cam.Strafe(5)
	if cam.X != 256 || cam.Y != 251 {
		t.Fatalf("strafe left while facing east ended at (%d,%d)", cam.X, cam.Y)
	}
	cam.Advance(-6)
	if cam.X != 250 || cam.Y != 251 {
		t.Fatalf("negative advance ended at (%d,%d)", cam.X, cam.Y)
	}
}

func TestWalkRejectsWallsAndEdges(t *testing.T) {
	m, _ := core.NewMap(64, 64)
	m.Stamp(40, 0, 41, 64, core.Stone)

	cam := Camera{X: 30, Y: 32, MaxDistance: 64, RaySteps: 64}
	if !Walk(m, &cam, 5, 0) || cam.X != 35 {
		t.Fatalf("free move failed, camera at (%d,%d)", cam.X, cam.Y)
	}
	if Walk(m, &cam, 5, 0) {
		t.Fatal("move into wall should be rejected")
	}
	if cam.X != 35 || cam.Y != 32 {
		t.Fatalf("rejected move changed camera to (%d,%d)", cam.X, cam.Y)
	}

	cam = Camera{X: 2, Y: 2, Radians: math.Pi, MaxDistance: 64, RaySteps: 64}
	if Walk(m, &cam, 5, 0) {
		t.Fatal("move off the map should be rejected")
	}
	if !Walk(m, &cam, 0, 1) || cam.Y != 3 {
		t.Fatalf("strafe left while facing west should increase y, camera at (%d,%d)", cam.X, cam.Y)
	}
}

func TestParametersDescribeCamera(t *testing.T) {
	cam := testCamera()
	cam.Radians = math.Pi
	snap := cam.Parameters()
	if len(snap.Groups) != 1 || snap.Groups[0].Name != "Camera" {
		t.Fatalf("unexpected groups %+v", snap.Groups)
	}
	values := map[string]string{}
	for _, p := range snap.Groups[0].Params {
		values[p.Key] = p.Value
	}
	if values["pos"] != "256,256" || values["heading"] != "180.0°" || values["fov"] != "60.0°" || values["ray_steps"] != "256" {
		t.Fatalf("unexpected parameters %v", values)
	}
}
