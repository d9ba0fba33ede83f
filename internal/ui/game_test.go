package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/snake/internal/game"
)

type cornerRand struct{}

func (cornerRand) Intn(n int) int { return n - 1 }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	session, err := game.NewSession(game.Setup{
		Grid:      game.Grid{Width: 10, Height: 10},
		Start:     game.Point{X: 5, Y: 5},
		Length:    3,
		Direction: game.Right,
		Rand:      cornerRand{},
	}, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return &Game{session: session, tile: 10, width: 100, height: 100}
}

func TestHandleKeysIgnoresReversal(t *testing.T) {
	g := newTestGame(t)
	if err := g.handleKeys([]ebiten.Key{ebiten.KeyArrowLeft}); err != nil {
		t.Fatalf("handleKeys: %v", err)
	}
	if d := g.session.State.Direction(); d != game.Right {
		t.Errorf("Expected reversal ignored, direction is %v", d)
	}
	g.session.Advance(100 * time.Millisecond)
	if h := g.session.State.Head(); h != (game.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head (6, 5), got %v", h)
	}
}

func TestHandleKeysWASD(t *testing.T) {
	g := newTestGame(t)
	steps := []struct {
		key  ebiten.Key
		want game.Direction
	}{
		{ebiten.KeyW, game.Up},
		{ebiten.KeyA, game.Left},
		{ebiten.KeyS, game.Down},
		{ebiten.KeyD, game.Right},
	}
	for _, st := range steps {
		if err := g.handleKeys([]ebiten.Key{st.key}); err != nil {
			t.Fatalf("handleKeys(%v): %v", st.key, err)
		}
		if d := g.session.State.Direction(); d != st.want {
			t.Errorf("Expected %v after %v, got %v", st.want, st.key, d)
		}
	}
}

func TestHandleKeysQuit(t *testing.T) {
	g := newTestGame(t)
	err := g.handleKeys([]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyEscape, ebiten.KeyArrowLeft})
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Expected ebiten.Termination, got %v", err)
	}
	if d := g.session.State.Direction(); d != game.Up {
		t.Errorf("Expected keys before Esc applied and after it dropped, direction is %v", d)
	}
	if err := g.handleKeys([]ebiten.Key{ebiten.KeyQ}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected Q to quit, got %v", err)
	}
}
