package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"airhockey/game"
)

var (
	colorBackground = color.NRGBA{R: 18, G: 22, B: 30, A: 255}
	colorSurface    = color.NRGBA{R: 214, G: 232, B: 240, A: 255}
	colorWall       = color.NRGBA{R: 60, G: 70, B: 86, A: 255}
	colorMarking    = color.NRGBA{R: 200, G: 40, B: 52, A: 160}
	colorGoal       = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	colorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
	colorText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorGo         = color.NRGBA{R: 0, G: 255, B: 100, A: 255}
	colorWarning    = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	colorScore      = color.NRGBA{R: 255, G: 60, B: 60, A: 255}
	colorPuck       = color.NRGBA{R: 20, G: 20, B: 24, A: 255}
	colorPaddles    = [2]color.NRGBA{{R: 200, G: 30, B: 44, A: 255}, {R: 0, G: 0, B: 200, A: 255}}
)

var warningText = map[game.WarningKind]string{
	game.WarningNone:   "WARNING",
	game.WarningCenter: "MOVE AWAY FROM THE CENTER",
	game.WarningSide1:  "PLAYER 1: GO BACK TO YOUR SIDE",
	game.WarningSide2:  "PLAYER 2: GO BACK TO YOUR SIDE",
}

// Renderer draws a match snapshot onto the screen
type Renderer struct {
	width, height int
	centerRadius  float32
	sprites       *Sprites
	labels        map[string]*ebiten.Image
}

// NewRenderer creates a renderer for the configured screen
func NewRenderer(config game.Config, sprites *Sprites) *Renderer {
	if sprites == nil {
		sprites = &Sprites{}
	}
	return &Renderer{
		width:        config.ScreenWidth,
		height:       config.ScreenHeight,
		centerRadius: float32(config.CenterRadius),
		sprites:      sprites,
		labels:       make(map[string]*ebiten.Image),
	}
}

// Draw renders the table, bodies, scoreboard and state overlays
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot, world *game.World) {
	screen.Fill(colorBackground)
	r.drawRink(screen, world)
	r.drawBodies(screen, s)
	r.drawScoreboard(screen, s)
	r.drawOverlay(screen, s)
	if s.Debug {
		drawDebug(screen, s, world)
	}
}

func (r *Renderer) drawRink(screen *ebiten.Image, world *game.World) {
	rink := world.Rink()
	rc := rink.Rect()
	cr := float32(rink.CornerRadius())
	x, y, w, h := float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H)

	// rounded surface: two crossing rectangles plus a disc in every corner
	vector.DrawFilledRect(screen, x+cr, y, w-2*cr, h, colorSurface, false)
	vector.DrawFilledRect(screen, x, y+cr, w, h-2*cr, colorSurface, false)
	for _, c := range [][2]float32{{x + cr, y + cr}, {x + w - cr, y + cr}, {x + w - cr, y + h - cr}, {x + cr, y + h - cr}} {
		vector.DrawFilledCircle(screen, c[0], c[1], cr, colorSurface, true)
	}

	center := rink.Center()
	cx, cy := float32(center.X()), float32(center.Y())
	vector.StrokeLine(screen, cx, y, cx, y+h, 4, colorMarking, false)
	vector.StrokeCircle(screen, cx, cy, r.centerRadius, 4, colorMarking, true)

	for _, g := range world.Goals() {
		a, b := g.Polygon[0], g.Polygon[2]
		gx := float32((a.X() + b.X()) / 2)
		vector.StrokeLine(screen, gx, float32(a.Y()), gx, float32(b.Y()), 6, colorGoal, false)
	}

	for _, wall := range rink.Walls() {
		vector.StrokeLine(screen,
			float32(wall.A.X()), float32(wall.A.Y()),
			float32(wall.B.X()), float32(wall.B.Y()),
			float32(wall.Radius*2), colorWall, true)
	}
}

func (r *Renderer) drawBodies(screen *ebiten.Image, s game.Snapshot) {
	for i, p := range s.Paddles {
		r.drawBody(screen, p, r.sprites.Paddles[i], colorPaddles[i])
	}
	r.drawBody(screen, s.Puck, r.sprites.Puck, colorPuck)
}

func (r *Renderer) drawBody(screen *ebiten.Image, b game.BodyView, sprite *ebiten.Image, fallback color.Color) {
	alpha := float32(1)
	if b.Ghost {
		alpha = 0.5
	}

	if sprite == nil {
		c := color.NRGBAModel.Convert(fallback).(color.NRGBA)
		c.A = uint8(float32(c.A) * alpha)
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), c, true)
		return
	}

	size := sprite.Bounds().Dx()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.X-float64(size)/2, b.Y-float64(size)/2)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

func (r *Renderer) drawScoreboard(screen *ebiten.Image, s game.Snapshot) {
	minutes, seconds := int(s.TimeLeft/60), int(math.Mod(s.TimeLeft, 60))
	line := fmt.Sprintf("%02d   %02d:%02d   %02d", s.Score1, minutes, seconds, s.Score2)
	r.drawText(screen, line, float64(r.width)/2, 110, 6, colorScore, 1)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, s game.Snapshot) {
	cx, cy := float64(r.width)/2, float64(r.height)/2
	t := float64(s.Frame) / 60

	switch s.State {
	case game.StateReady:
		r.dim(screen)
		switch s.ReadyPhase {
		case game.PhaseCountdownReady:
			r.drawText(screen, "READY?", cx, cy, 10, colorText, float32(min(1, s.PhaseTime/0.5)))
		case game.PhaseCountdownGo:
			r.drawText(screen, "GO!", cx, cy, 10, colorGo, 1)
		case game.PhasePositioning:
			if s.Warning != game.WarningNone {
				r.drawText(screen, warningText[s.Warning], cx, cy, 5, colorWarning, 1)
			}
		}

	case game.StatePaused:
		r.dim(screen)
		if int(t*2)%2 == 0 {
			r.drawText(screen, "PAUSED", cx, cy, 10, colorText, 1)
		}

	case game.StateResetWarning:
		r.drawText(screen, warningText[s.Warning], cx, cy-200, 5, colorWarning, 1)

	case game.StateFinished:
		r.dim(screen)
		r.drawText(screen, s.ResultText, cx, cy-60, 10, colorText, 1)
		if s.ContinueTimer > 3 && !s.Terminal {
			alpha := (math.Sin(s.ContinueTimer*2*math.Pi) + 1) / 2
			r.drawText(screen, "CONTINUE?", cx, cy+80, 6, colorText, float32(alpha))
			r.drawText(screen, "ENTER: PLAY AGAIN   ESC: QUIT", cx, cy+160, 3, colorText, 1)
		}
	}
}

func (r *Renderer) dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), colorOverlay, false)
}

// drawText draws s centered on (cx, cy), scaled up from the 7x13 bitmap font
func (r *Renderer) drawText(screen *ebiten.Image, s string, cx, cy, scale float64, clr color.Color, alpha float32) {
	if s == "" {
		return
	}
	label := r.label(s)
	w, h := label.Bounds().Dx(), label.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(label, op)
}

// label returns a cached white rendering of s
func (r *Renderer) label(s string) *ebiten.Image {
	if img, ok := r.labels[s]; ok {
		return img
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	img := ebiten.NewImage(max(bounds.Dx(), 1), max(bounds.Dy(), 1))
	text.Draw(img, s, face, -bounds.Min.X, -bounds.Min.Y, color.White)
	r.labels[s] = img
	return img
}
