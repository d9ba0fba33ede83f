// Package term plays the game in a terminal using tcell.
package term

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/snake/internal/game"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	headRune = '█'
	bodyRune = '▓'
	foodRune = '●'
)

// Frontend draws a session on a tcell screen. Each grid cell takes two
// columns so the field looks square.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
}

func New(screen tcell.Screen, session *game.Session) *Frontend {
	return &Frontend{screen: screen, session: session}
}

// Run takes over the terminal until the player quits.
func Run(session *game.Session, frame time.Duration) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer s.Fini()
	s.HideCursor()

	return New(s, session).Loop(frame)
}

// Loop processes key events and frame ticks on the calling goroutine.
func (f *Frontend) Loop(frame time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go f.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	f.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.Handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			f.session.Advance(now.Sub(last))
			last = now
			f.Draw()
		}
	}
}

// Handle applies one terminal event and reports whether to quit.
func (f *Frontend) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			f.session.Turn(game.Up)
		case tcell.KeyDown:
			f.session.Turn(game.Down)
		case tcell.KeyLeft:
			f.session.Turn(game.Left)
		case tcell.KeyRight:
			f.session.Turn(game.Right)
		case tcell.KeyRune:
			switch unicode.ToLower(ev.Rune()) {
			case 'q':
				return true
			case 'w':
				f.session.Turn(game.Up)
			case 's':
				f.session.Turn(game.Down)
			case 'a':
				f.session.Turn(game.Left)
			case 'd':
				f.session.Turn(game.Right)
			}
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

// Draw renders the current snapshot.
func (f *Frontend) Draw() {
	snap := f.session.Snapshot()
	f.screen.Clear()

	f.drawBorder(snap.Grid)
	if snap.Running {
		f.putCell(snap.Food, foodRune, styleFood)
		for i := len(snap.Body) - 1; i >= 0; i-- {
			if i == 0 {
				f.putCell(snap.Body[i], headRune, styleHead)
			} else {
				f.putCell(snap.Body[i], bodyRune, styleBody)
			}
		}
	} else {
		f.drawGameOver(snap)
	}

	status := fmt.Sprintf("Score: %d  Time: %02d:%02d  arrows/WASD move, q quits",
		snap.Score, int(snap.Played.Minutes()), int(snap.Played.Seconds())%60)
	f.putText(0, snap.Grid.Height+2, status, styleText)
	f.screen.Show()
}

func (f *Frontend) drawBorder(g game.Grid) {
	right := g.Width*2 + 1
	bottom := g.Height + 1
	for x := 1; x < right; x++ {
		f.screen.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		f.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		f.screen.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		f.screen.SetContent(right, y, tcell.RuneVLine, nil, styleBorder)
	}
	f.screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	f.screen.SetContent(right, 0, tcell.RuneURCorner, nil, styleBorder)
	f.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, styleBorder)
	f.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleBorder)
}

func (f *Frontend) drawGameOver(snap game.Snapshot) {
	mid := snap.Grid.Height/2 + 1
	lines := []string{"GAME OVER", fmt.Sprintf("Final Score: %d", snap.Score)}
	for i, line := range lines {
		x := (snap.Grid.Width*2 + 2 - len(line)) / 2
		if x < 1 {
			x = 1
		}
		style := styleText
		if i == 0 {
			style = styleOver
		}
		f.putText(x, mid+i, line, style)
	}
}

// putCell draws a grid cell at its two screen columns, offset by the border.
func (f *Frontend) putCell(p game.Point, r rune, style tcell.Style) {
	x := 1 + p.X*2
	y := 1 + p.Y
	f.screen.SetContent(x, y, r, nil, style)
	f.screen.SetContent(x+1, y, r, nil, style)
}

func (f *Frontend) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
