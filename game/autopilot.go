package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Autopilot is an InputSource that plays player 1 without a human.
// It parks the pointer on its home spot until play starts, then chases the
// puck whenever it is on the left half and strikes it towards the right goal.
type Autopilot struct {
	match *Match

	// Replay presses Confirm on the result screen; otherwise Escape ends the match
	Replay bool
	// Wander is the radius of the idle circle around the home spot
	Wander float64

	patternTime float64
}

// NewAutopilot creates an autopilot reading the given match
func NewAutopilot(m *Match, replay bool) *Autopilot {
	return &Autopilot{match: m, Replay: replay, Wander: 60}
}

// Poll implements InputSource
func (a *Autopilot) Poll() FrameInput {
	dt := a.match.Config().FrameDelta()
	a.patternTime += dt

	home := a.home()
	in := FrameInput{Pointer: home}

	switch a.match.State() {
	case StateRunning:
		in.Pointer = a.chase(home)
	case StateFinished:
		if a.match.ContinueTimer() >= continueLockout {
			if a.Replay {
				in.Keys = in.Keys.With(KeyConfirm)
			} else {
				in.Keys = in.Keys.With(KeyEscape)
			}
		}
	}
	return in
}

// home is a quarter of the way into the rink from the left wall
func (a *Autopilot) home() mgl64.Vec2 {
	rc := a.match.World().Rink().Rect()
	return mgl64.Vec2{rc.Left() + rc.W/4, rc.Center().Y()}
}

func (a *Autopilot) chase(home mgl64.Vec2) mgl64.Vec2 {
	world := a.match.World()
	puck := world.Puck()
	center := world.Rink().Center()

	pos := puck.Body.Position
	if pos.X() >= center.X() {
		// idle on a small circle until the puck comes back
		return home.Add(mgl64.Vec2{math.Cos(a.patternTime), math.Sin(a.patternTime)}.Mul(a.Wander))
	}

	// drive through the puck towards the middle of the opponent's goal mouth
	goal := mgl64.Vec2{world.Rink().Rect().Right(), center.Y()}
	dir := goal.Sub(pos)
	if dir.Len() == 0 {
		return pos
	}
	return pos.Add(dir.Normalize().Mul(world.Paddle(0).Radius))
}
