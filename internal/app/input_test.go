package app

import (
	"math"
	"testing"
)

func TestApplyMovesAndTurns(t *testing.T) {
	cfg := NewConfig()
	cfg.HeadingDeg = 0
	scene, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	ctl := Controls{Move: 4, Turn: math.Pi / 2}

	if !scene.Apply(ActionForward, ctl) || scene.Camera.X != 384 {
		t.Fatalf("forward ended at (%d,%d)", scene.Camera.X, scene.Camera.Y)
	}
	if !scene.Apply(ActionBackward, ctl) || scene.Camera.X != 380 {
		t.Fatalf("backward ended at (%d,%d)", scene.Camera.X, scene.Camera.Y)
	}
	if !scene.Apply(ActionStrafeLeft, ctl) || scene.Camera.Y != 336 {
		t.Fatalf("strafe left ended at (%d,%d)", scene.Camera.X, scene.Camera.Y)
	}
	if !scene.Apply(ActionStrafeRight, ctl) || scene.Camera.Y != 340 {
		t.Fatalf("strafe right ended at (%d,%d)", scene.Camera.X, scene.Camera.Y)
	}
	if !scene.Apply(ActionTurnLeft, ctl) || math.Abs(scene.Camera.Radians-math.Pi/2) > 1e-12 {
		t.Fatalf("turn left heading=%v", scene.Camera.Radians)
	}
	if !scene.Apply(ActionTurnRight, ctl) || scene.Camera.Radians > 1e-12 {
		t.Fatalf("turn right heading=%v", scene.Camera.Radians)
	}
	if scene.Apply(ActionNone, ctl) || scene.Apply(ActionQuit, ctl) {
		t.Fatal("non-movement actions should not change the camera")
	}
}

func TestApplyBlockedByWall(t *testing.T) {
	cfg := NewConfig()
	cfg.X, cfg.Y = 390, 340
	cfg.HeadingDeg = 90
	scene, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	// The stone column occupies y in [300,332) directly north.
	ctl := Controls{Move: 10}
	if scene.Apply(ActionForward, ctl) {
		t.Fatalf("moved into the column, now at (%d,%d)", scene.Camera.X, scene.Camera.Y)
	}
}
