package app

import "raycaster/internal/raycast"

// Action represents a requested camera transition.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionStrafeLeft
	ActionStrafeRight
	ActionReset
	ActionQuit
)

// Controls holds the per-action movement step sizes.
type Controls struct {
	Move float64
	Turn float64
}

// Controls returns the step sizes configured on the command line.
func (c *Config) Controls() Controls {
	return Controls{Move: c.MoveSpeed, Turn: c.TurnRadians()}
}

// Apply performs a movement or turn on the scene camera. Moves that would
// leave the map or enter a wall are rejected. It reports whether the camera
// changed.
func (s *Scene) Apply(a Action, ctl Controls) bool {
	switch a {
	case ActionForward:
		return raycast.Walk(s.Map, &s.Camera, ctl.Move, 0)
	case ActionBackward:
		return raycast.Walk(s.Map, &s.Camera, -ctl.Move, 0)
	case ActionStrafeLeft:
		return raycast.Walk(s.Map, &s.Camera, 0, ctl.Move)
	case ActionStrafeRight:
		return raycast.Walk(s.Map, &s.Camera, 0, -ctl.Move)
	case ActionTurnLeft:
		s.Camera.Turn(ctl.Turn)
		return true
	case ActionTurnRight:
		s.Camera.Turn(-ctl.Turn)
		return true
	}
	return false
}
