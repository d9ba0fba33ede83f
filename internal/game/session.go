package game

import "time"

// Session is what a frontend drives: the game state, its tick source and
// the bus that tells the rest of the program what happened.
type Session struct {
	State *State
	Timer *Timer
	Bus   *EventBus

	played time.Duration
}

func NewSession(setup Setup, interval time.Duration) (*Session, error) {
	st, err := NewState(setup)
	if err != nil {
		return nil, err
	}
	return &Session{
		State: st,
		Timer: NewTimer(interval),
		Bus:   NewEventBus(),
	}, nil
}

// Advance feeds dt of frame time to the timer and runs every tick that
// became due. It returns the number of ticks applied.
func (s *Session) Advance(dt time.Duration) int {
	if s.State.Running() && dt > 0 {
		s.played += dt
	}
	due := s.Timer.Advance(dt)
	applied := 0
	for i := 0; i < due && s.State.Running(); i++ {
		out := s.State.Tick()
		applied++
		if out.Ate {
			s.Bus.Emit(s.event(EventFoodEaten, NoCollision))
		}
		if out.Collision != NoCollision {
			s.Timer.Stop()
			s.Bus.Emit(s.event(EventGameOver, out.Collision))
		}
	}
	return applied
}

func (s *Session) Turn(d Direction) bool {
	if !s.State.Turn(d) {
		return false
	}
	s.Bus.Emit(s.event(EventTurn, NoCollision))
	return true
}

func (s *Session) event(t EventType, c Collision) Event {
	return Event{
		Type:      t,
		Head:      s.State.Head(),
		Score:     s.State.Score(),
		Length:    s.State.Len(),
		Direction: s.State.Direction(),
		Collision: c,
	}
}

// Snapshot is a copy of what a renderer needs.
type Snapshot struct {
	Grid    Grid
	Body    []Point
	Food    Point
	Score   int
	Ticks   int
	Running bool
	Played  time.Duration
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:    s.State.Grid(),
		Body:    s.State.Body(),
		Food:    s.State.Food(),
		Score:   s.State.Score(),
		Ticks:   s.State.Ticks(),
		Running: s.State.Running(),
		Played:  s.played,
	}
}
