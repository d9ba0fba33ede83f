package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/snake/internal/game"
)

var directionKeys = map[ebiten.Key]game.Direction{
	ebiten.KeyArrowUp:    game.Up,
	ebiten.KeyW:          game.Up,
	ebiten.KeyArrowDown:  game.Down,
	ebiten.KeyS:          game.Down,
	ebiten.KeyArrowLeft:  game.Left,
	ebiten.KeyA:          game.Left,
	ebiten.KeyArrowRight: game.Right,
	ebiten.KeyD:          game.Right,
}

func keyDirection(k ebiten.Key) (game.Direction, bool) {
	d, ok := directionKeys[k]
	return d, ok
}

func isQuitKey(k ebiten.Key) bool {
	return k == ebiten.KeyEscape || k == ebiten.KeyQ
}
