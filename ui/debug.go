package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"airhockey/game"
)

var (
	colorDebugWall     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorDebugSensor   = color.NRGBA{R: 255, G: 0, B: 255, A: 200}
	colorDebugBody     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorDebugVelocity = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
)

// velocityScale converts units/s into the drawn vector length
const velocityScale = 0.1

// drawDebug overlays collision geometry and a status readout
func drawDebug(screen *ebiten.Image, s game.Snapshot, world *game.World) {
	for _, wall := range world.Rink().Walls() {
		vector.StrokeLine(screen,
			float32(wall.A.X()), float32(wall.A.Y()),
			float32(wall.B.X()), float32(wall.B.Y()),
			1, colorDebugWall, true)
	}

	for _, g := range world.Goals() {
		n := len(g.Polygon)
		for i := range g.Polygon {
			a, b := g.Polygon[i], g.Polygon[(i+1)%n]
			vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 1, colorDebugSensor, false)
		}
	}

	bodies := []game.BodyView{s.Puck, s.Paddles[0], s.Paddles[1]}
	for _, b := range bodies {
		x, y := float32(b.X), float32(b.Y)
		vector.StrokeCircle(screen, x, y, float32(b.Radius), 1, colorDebugBody, true)
		vector.StrokeLine(screen, x, y, x+float32(b.VX*velocityScale), y+float32(b.VY*velocityScale), 1, colorDebugVelocity, true)
	}

	puck := world.Puck()
	msg := fmt.Sprintf("TPS: %.1f\nFPS: %.1f\nframe: %d\nstate: %s\nphase: %s (%.2fs)\nwarning: %s\npuck speed: %.1f\nmode: %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.Frame, s.State, s.ReadyPhase, s.PhaseTime,
		s.Warning, puck.Body.Speed(), world.Paddle(0).Collision)
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}
