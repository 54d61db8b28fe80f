package ui

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"airhockey/game"
)

// keyBindings maps physical keys to match keys
var keyBindings = []struct {
	physical ebiten.Key
	key      game.Key
}{
	{ebiten.KeyEnter, game.KeyConfirm},
	{ebiten.KeyNumpadEnter, game.KeyConfirm},
	{ebiten.KeyEscape, game.KeyEscape},
	{ebiten.KeyR, game.KeyRestart},
	{ebiten.KeyD, game.KeyDebug},
	{ebiten.KeyQ, game.KeyScoreTeam1},
	{ebiten.KeyW, game.KeyScoreTeam2},
}

// PointerInput reads the mouse cursor and freshly pressed keys
type PointerInput struct{}

// Poll implements game.InputSource
func (PointerInput) Poll() game.FrameInput {
	x, y := ebiten.CursorPosition()

	var keys game.KeySet
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.physical) {
			keys = keys.With(b.key)
		}
	}
	return game.FrameInput{
		Pointer: mgl64.Vec2{float64(x), float64(y)},
		Keys:    keys,
	}
}
