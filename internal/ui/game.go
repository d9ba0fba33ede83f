package ui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/snake/internal/config"
	"github.com/iburimskiy/snake/internal/game"
)

// Game adapts a game.Session to ebiten's Update/Draw loop.
type Game struct {
	session *game.Session
	tile    int
	width   int
	height  int
	fonts   *fonts

	keys []ebiten.Key
}

func NewGame(session *game.Session, opts config.Options) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	w, h := opts.WindowSize()
	return &Game{
		session: session,
		tile:    opts.Tile,
		width:   w,
		height:  h,
		fonts:   f,
	}, nil
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	if err := g.handleKeys(g.keys); err != nil {
		return err
	}

	g.session.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// handleKeys applies this frame's key presses in order. It returns
// ebiten.Termination when a quit key was pressed.
func (g *Game) handleKeys(keys []ebiten.Key) error {
	for _, k := range keys {
		if isQuitKey(k) {
			return ebiten.Termination
		}
		if d, ok := keyDirection(k); ok {
			g.session.Turn(d)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.session.Snapshot()
	if !snap.Running {
		g.drawGameOver(screen, snap)
		return
	}

	g.drawFood(screen, snap.Food)
	g.drawSnake(screen, snap.Body)

	g.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), g.fonts.score, 10, 2, text.AlignStart, textColor)
	g.drawText(screen, formatDuration(snap.Played), g.fonts.score, float64(g.width-10), 2, text.AlignEnd, textColor)
}

func (g *Game) drawFood(screen *ebiten.Image, p game.Point) {
	r := float32(g.tile) / 2
	x := float32(p.X*g.tile) + r
	y := float32(p.Y*g.tile) + r
	vector.DrawFilledCircle(screen, x, y, r, foodColor, true)
}

func (g *Game) drawSnake(screen *ebiten.Image, body []game.Point) {
	// Tail first so the head stays on top while segments are stacked.
	for i := len(body) - 1; i >= 0; i-- {
		var c color.Color = headColor
		if i > 0 {
			c = bodyColor(i, len(body))
		}
		p := body[i]
		vector.DrawFilledRect(screen, float32(p.X*g.tile), float32(p.Y*g.tile), float32(g.tile), float32(g.tile), c, false)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	cx := float64(g.width) / 2
	cy := float64(g.height) / 2
	g.drawText(screen, "Game Over", g.fonts.title, cx, cy-g.fonts.title.Size, text.AlignCenter, gameOverColor)
	g.drawText(screen, fmt.Sprintf("Final Score: %d", snap.Score), g.fonts.final, cx, cy+10, text.AlignCenter, textColor)
}

func (g *Game) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(session *game.Session, opts config.Options, title string) error {
	g, err := NewGame(session, opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(opts.WindowSize())
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
