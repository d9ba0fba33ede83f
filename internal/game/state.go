package game

import (
	"errors"
	"fmt"
)

var ErrInvalidSetup = errors.New("invalid game setup")

// Rand is the source used to place food. *math/rand.Rand and
// *golang.org/x/exp/rand.Rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// Setup describes a new game.
type Setup struct {
	Grid      Grid
	Start     Point
	Length    int
	Direction Direction
	Rand      Rand
}

type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

func (c Collision) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

// Outcome reports what a single tick did.
type Outcome struct {
	Ate       bool
	Collision Collision
}

// State is the whole game. It is not safe for concurrent use; the
// frontends deliver ticks and key presses from one goroutine.
type State struct {
	grid Grid
	rng  Rand

	// body has one slot per grid cell; only body[:length] is the snake.
	body   []Point
	length int

	food    Point
	dir     Direction
	score   int
	ticks   int
	running bool
}

func NewState(setup Setup) (*State, error) {
	if setup.Grid.Width <= 0 || setup.Grid.Height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidSetup, setup.Grid.Width, setup.Grid.Height)
	}
	if !setup.Grid.Contains(setup.Start) {
		return nil, fmt.Errorf("%w: start %v outside grid", ErrInvalidSetup, setup.Start)
	}
	if setup.Length < 1 || setup.Length > setup.Grid.Cells() {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSetup, setup.Length)
	}
	if setup.Rand == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidSetup)
	}

	s := &State{
		grid:    setup.Grid,
		rng:     setup.Rand,
		body:    make([]Point, setup.Grid.Cells()),
		length:  setup.Length,
		dir:     setup.Direction,
		running: true,
	}
	// All segments start stacked on the start cell and unfold as the snake moves.
	for i := 0; i < s.length; i++ {
		s.body[i] = setup.Start
	}
	s.placeFood()
	return s, nil
}

// Tick advances the game by one step. It does nothing once the game is over.
func (s *State) Tick() Outcome {
	if !s.running {
		return Outcome{}
	}
	s.move()

	var out Outcome
	out.Ate = s.checkFood()
	out.Collision = s.checkCollision()
	if out.Collision != NoCollision {
		s.running = false
	}
	s.ticks++
	return out
}

// Turn changes the direction of motion. Reversals and turns after game
// over are ignored. It reports whether the direction changed.
func (s *State) Turn(d Direction) bool {
	if !s.running || d == s.dir || d == s.dir.Reverse() {
		return false
	}
	s.dir = d
	return true
}

func (s *State) move() {
	// Shift one past the end so the old tail survives in body[length]
	// and growing just exposes it.
	for i := s.length; i > 0; i-- {
		if i < len(s.body) {
			s.body[i] = s.body[i-1]
		}
	}
	s.body[0] = s.body[0].Add(s.dir.Vector())
}

func (s *State) checkFood() bool {
	if s.body[0] != s.food {
		return false
	}
	if s.length < len(s.body) {
		s.length++
	}
	s.score++
	s.placeFood()
	return true
}

func (s *State) checkCollision() Collision {
	head := s.body[0]
	if !s.grid.Contains(head) {
		return WallCollision
	}
	for i := 1; i < s.length; i++ {
		if s.body[i] == head {
			return SelfCollision
		}
	}
	return NoCollision
}

// placeFood picks any cell, including ones under the snake.
func (s *State) placeFood() {
	s.food = Point{
		X: s.rng.Intn(s.grid.Width),
		Y: s.rng.Intn(s.grid.Height),
	}
}

func (s *State) Grid() Grid           { return s.grid }
func (s *State) Head() Point          { return s.body[0] }
func (s *State) Len() int             { return s.length }
func (s *State) Food() Point          { return s.food }
func (s *State) Direction() Direction { return s.dir }
func (s *State) Score() int           { return s.score }
func (s *State) Ticks() int           { return s.ticks }
func (s *State) Running() bool        { return s.running }

// Body returns a copy of the snake, head first.
func (s *State) Body() []Point {
	out := make([]Point, s.length)
	copy(out, s.body[:s.length])
	return out
}
