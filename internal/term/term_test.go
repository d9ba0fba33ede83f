package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/snake/internal/game"
)

type cornerRand struct{}

func (cornerRand) Intn(n int) int { return n - 1 }

func newFrontend(t *testing.T, setup game.Setup) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	setup.Rand = cornerRand{}
	session, err := game.NewSession(setup, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return New(screen, session), screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawPlacesHeadAndFood(t *testing.T) {
	f, screen := newFrontend(t, game.Setup{
		Grid:      game.Grid{Width: 5, Height: 5},
		Start:     game.Point{X: 1, Y: 2},
		Length:    2,
		Direction: game.Right,
	})
	f.Draw()

	if r := runeAt(screen, 3, 3); r != headRune {
		t.Errorf("Expected head at (3, 3), got %q", r)
	}
	if r := runeAt(screen, 4, 3); r != headRune {
		t.Errorf("Expected head second column at (4, 3), got %q", r)
	}
	if r := runeAt(screen, 9, 5); r != foodRune {
		t.Errorf("Expected food at (9, 5), got %q", r)
	}
	if r := runeAt(screen, 0, 0); r != tcell.RuneULCorner {
		t.Errorf("Expected border corner, got %q", r)
	}

	f.session.Advance(100 * time.Millisecond)
	f.Draw()
	if r := runeAt(screen, 5, 3); r != headRune {
		t.Errorf("Expected head moved to (5, 3), got %q", r)
	}
	if r := runeAt(screen, 3, 3); r != bodyRune {
		t.Errorf("Expected body at (3, 3), got %q", r)
	}
}

func TestDrawGameOver(t *testing.T) {
	f, screen := newFrontend(t, game.Setup{
		Grid:      game.Grid{Width: 10, Height: 6},
		Start:     game.Point{X: 9, Y: 0},
		Length:    1,
		Direction: game.Right,
	})
	f.session.Advance(time.Second)
	if f.session.State.Running() {
		t.Fatalf("Expected game over")
	}
	f.Draw()

	// "GAME OVER" is centred on row Height/2+1 of a 22 column wide field.
	if r := runeAt(screen, 6, 4); r != 'G' {
		t.Errorf("Expected 'G' at (6, 4), got %q", r)
	}
}

func TestHandleKeys(t *testing.T) {
	f, _ := newFrontend(t, game.Setup{
		Grid:      game.Grid{Width: 10, Height: 10},
		Start:     game.Point{X: 5, Y: 5},
		Length:    3,
		Direction: game.Right,
	})

	if f.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)) {
		t.Fatalf("Expected arrow key not to quit")
	}
	if d := f.session.State.Direction(); d != game.Right {
		t.Errorf("Expected reversal ignored, direction is %v", d)
	}

	f.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if d := f.session.State.Direction(); d != game.Up {
		t.Errorf("Expected up, got %v", d)
	}
	f.Handle(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone))
	if d := f.session.State.Direction(); d != game.Left {
		t.Errorf("Expected left, got %v", d)
	}

	if !f.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Errorf("Expected q to quit")
	}
	if !f.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Errorf("Expected Esc to quit")
	}
}
