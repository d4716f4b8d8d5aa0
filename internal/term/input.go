package term

import (
	"raycaster/internal/app"

	"github.com/gdamore/tcell/v2"
)

// keyToAction maps a tcell key event to a camera action.
func keyToAction(ev *tcell.EventKey) app.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return app.ActionForward
	case tcell.KeyDown:
		return app.ActionBackward
	case tcell.KeyLeft:
		return app.ActionTurnLeft
	case tcell.KeyRight:
		return app.ActionTurnRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.ActionQuit
	}

	switch ev.Rune() {
	case 'w', 'W':
		return app.ActionForward
	case 's', 'S':
		return app.ActionBackward
	case 'a', 'A':
		return app.ActionTurnLeft
	case 'd', 'D':
		return app.ActionTurnRight
	case 'q', 'Q':
		return app.ActionStrafeLeft
	case 'e', 'E':
		return app.ActionStrafeRight
	case 'r', 'R':
		return app.ActionReset
	case 'x', 'X':
		return app.ActionQuit
	}
	return app.ActionNone
}
