package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"airhockey/game"
)

// terminalHold is how long the final screen stays up before the window closes
const terminalHold = 2 * time.Second

// Game adapts a match to ebiten's update/draw loop
type Game struct {
	config   game.Config
	match    *game.Match
	input    game.InputSource
	renderer *Renderer
	clock    *game.Clock
	sink     game.SnapshotSink
	profiler *game.FrameProfiler

	terminalFrames int
}

// NewGame creates the window-side game. sink may be nil.
func NewGame(config game.Config, sink game.SnapshotSink) *Game {
	budget := time.Duration(config.FrameDelta() * float64(time.Second))
	return &Game{
		config:   config,
		match:    game.NewMatch(config),
		input:    PointerInput{},
		renderer: NewRenderer(config, LoadSprites(config.PuckRadius, config.PaddleRadius)),
		clock:    game.NewClock(config.TargetTPS),
		sink:     sink,
		profiler: game.NewFrameProfiler("profiles", budget),
	}
}

// Update advances the match by one fixed frame
func (g *Game) Update() error {
	start := time.Now()

	if g.match.Terminal() {
		g.terminalFrames++
		if float64(g.terminalFrames)*g.clock.FixedDelta() >= terminalHold.Seconds() {
			return ebiten.Termination
		}
		return nil
	}

	// ebiten calls Update at a fixed rate, so the nominal delta is exact
	g.match.Update(g.clock.FixedDelta(), g.input.Poll())
	if g.sink != nil {
		g.sink.Publish(g.match.Snapshot(), g.match.Events())
	}

	g.profiler.Observe(time.Now(), time.Since(start))
	return nil
}

// Draw renders the current match snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.match.Snapshot(), g.match.World())
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
