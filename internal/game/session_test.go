package game

import (
	"testing"
	"time"
)

func newTestSession(t *testing.T, setup Setup) *Session {
	t.Helper()
	if setup.Rand == nil {
		setup.Rand = cornerRand{}
	}
	s, err := NewSession(setup, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionRunsDueTicks(t *testing.T) {
	s := newTestSession(t, Setup{
		Grid:      Grid{Width: 20, Height: 20},
		Start:     Point{X: 0, Y: 0},
		Length:    3,
		Direction: Right,
	})
	if n := s.Advance(50 * time.Millisecond); n != 0 {
		t.Errorf("Expected no ticks yet, got %d", n)
	}
	if n := s.Advance(260 * time.Millisecond); n != 3 {
		t.Errorf("Expected 3 ticks, got %d", n)
	}
	if s.State.Head() != (Point{X: 3, Y: 0}) {
		t.Errorf("Expected head (3, 0), got %v", s.State.Head())
	}
}

func TestSessionEmitsEvents(t *testing.T) {
	s := newTestSession(t, Setup{
		Grid:      Grid{Width: 3, Height: 3},
		Start:     Point{X: 0, Y: 1},
		Length:    1,
		Direction: Right,
	})
	s.State.food = Point{X: 1, Y: 1}

	var eaten, over, turns []Event
	s.Bus.Subscribe(EventFoodEaten, func(e Event) { eaten = append(eaten, e) })
	s.Bus.Subscribe(EventGameOver, func(e Event) { over = append(over, e) })
	s.Bus.Subscribe(EventTurn, func(e Event) { turns = append(turns, e) })

	if s.Turn(Left) {
		t.Errorf("Expected reversal to be rejected")
	}
	// Eats at (1,1), moves to (2,1), then leaves the grid.
	s.Advance(time.Second)

	if len(eaten) != 1 {
		t.Fatalf("Expected 1 food event, got %d", len(eaten))
	}
	if eaten[0].Score != 1 || eaten[0].Length != 2 {
		t.Errorf("Expected score 1 length 2, got %+v", eaten[0])
	}
	if len(over) != 1 {
		t.Fatalf("Expected 1 game over event, got %d", len(over))
	}
	if over[0].Collision != WallCollision {
		t.Errorf("Expected wall collision, got %v", over[0].Collision)
	}
	if len(turns) != 0 {
		t.Errorf("Expected no turn events, got %d", len(turns))
	}
	if !s.Timer.Stopped() {
		t.Errorf("Expected timer stopped after game over")
	}

	s.Advance(time.Second)
	if len(over) != 1 {
		t.Errorf("Expected game over to be emitted once, got %d", len(over))
	}
}

func TestSessionTurnEmitsEvent(t *testing.T) {
	s := newTestSession(t, Setup{
		Grid:      Grid{Width: 10, Height: 10},
		Start:     Point{X: 5, Y: 5},
		Length:    3,
		Direction: Right,
	})
	var got []Direction
	s.Bus.Subscribe(EventTurn, func(e Event) { got = append(got, e.Direction) })

	s.Turn(Down)
	s.Turn(Up)
	s.Turn(Left)

	if len(got) != 2 || got[0] != Down || got[1] != Left {
		t.Errorf("Expected turns [down left], got %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(t, Setup{
		Grid:      Grid{Width: 10, Height: 10},
		Start:     Point{X: 1, Y: 1},
		Length:    2,
		Direction: Down,
	})
	s.Advance(100 * time.Millisecond)
	snap := s.Snapshot()
	snap.Body[0] = Point{X: 9, Y: 9}

	if s.State.Head() != (Point{X: 1, Y: 2}) {
		t.Errorf("Expected snapshot edits not to reach the state, head is %v", s.State.Head())
	}
	if snap.Ticks != 1 || !snap.Running {
		t.Errorf("Expected 1 tick while running, got %+v", snap)
	}
	if snap.Played != 100*time.Millisecond {
		t.Errorf("Expected 100ms played, got %v", snap.Played)
	}
}
