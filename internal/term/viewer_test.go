package term

import (
	"image"
	"strings"
	"testing"

	"raycaster/internal/app"
	_ "raycaster/internal/maps"
	"raycaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	ss.SetSize(48, 16)
	t.Cleanup(ss.Fini)
	return ss
}

func newTestViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	cfg := app.NewConfig()
	cfg.HeadingDeg = 0
	scene, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	ss := newSimScreen(t)
	return NewViewer(ss, scene, app.Controls{Move: 4, Turn: 0.1}, 2), ss
}

func rowText(s tcell.Screen, y int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want app.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), app.ActionForward},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), app.ActionBackward},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), app.ActionTurnLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), app.ActionTurnRight},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), app.ActionForward},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), app.ActionStrafeLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), app.ActionStrafeRight},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), app.ActionReset},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), app.ActionNone},
	}
	for i, c := range cases {
		if got := keyToAction(c.ev); got != c.want {
			t.Fatalf("case %d: action=%v, expected %v", i, got, c.want)
		}
	}
}

func TestDrawFillsHalfBlocksAndStatus(t *testing.T) {
	v, ss := newTestViewer(t)
	v.Draw()

	_, rows := ss.Size()
	if r, _, _, _ := ss.GetContent(0, 0); r != halfBlock {
		t.Fatalf("view cell rune=%q, expected half block", r)
	}
	status := rowText(ss, rows-1)
	if !strings.Contains(status, "pos 380,340") {
		t.Fatalf("status line %q missing camera position", status)
	}
}

func TestHandleMovesAndQuits(t *testing.T) {
	v, _ := newTestViewer(t)
	v.Draw()

	if !v.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("movement key should not quit")
	}
	if v.scene.Camera.X != 384 {
		t.Fatalf("camera x=%d after moving forward", v.scene.Camera.X)
	}
	v.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.scene.Camera != v.start {
		t.Fatal("reset should restore the starting camera")
	}
	if v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestCellColorsSamplesTwoRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, render.Palette[0])
		img.SetRGBA(x, 1, render.Palette[1])
		img.SetRGBA(x, 2, render.Palette[2])
		img.SetRGBA(x, 3, render.Palette[3])
	}
	top, bottom := cellColors(img, 1, 1, 2, 2)
	if top != render.Palette[2] || bottom != render.Palette[3] {
		t.Fatalf("cell (1,1)=(%v,%v)", top, bottom)
	}
	top, bottom = cellColors(img, 0, 0, 2, 2)
	if top != render.Palette[0] || bottom != render.Palette[1] {
		t.Fatalf("cell (0,0)=(%v,%v)", top, bottom)
	}
}
