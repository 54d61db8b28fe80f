package game

import "github.com/go-gl/mathgl/mgl64"

// World owns the bodies and static geometry of one table and steps the physics
type World struct {
	config  Config
	rink    *Rink
	puck    *Puck
	paddles [2]*Paddle
	goals   [2]GoalSensor
	tuning  ContactTuning

	// touching remembers which goal sensors overlapped the puck on the previous substep
	touching [2]bool
}

// NewWorld builds the rink, goals, puck and both paddles from config
func NewWorld(config Config) *World {
	rink := BuildRink(config.RinkRect(), config.CornerRadius, config.WallThickness, config.ArcSegments)
	center := rink.Center()
	rc := rink.Rect()

	puck := NewPuck(center, config.PuckRadius, config.PuckMass, config.PuckMaxSpeed)
	left := NewPaddle(0, Team1, mgl64.Vec2{rc.Left() + rc.W/4, center.Y()}, config.PaddleRadius, config.PaddleMass)
	right := NewPaddle(1, Team2, mgl64.Vec2{rc.Right() - rc.W/4, center.Y()}, config.PaddleRadius, config.PaddleMass)

	return &World{
		config:  config,
		rink:    rink,
		puck:    puck,
		paddles: [2]*Paddle{left, right},
		goals:   NewGoalSensors(rink, config.GoalDepth, config.GoalMouth),
		tuning:  NewContactTuning(puck.Material, left.Material),
	}
}

func (w *World) Rink() *Rink { return w.rink }
func (w *World) Puck() *Puck { return w.puck }
func (w *World) Paddle(i int) *Paddle { return w.paddles[i] }
func (w *World) Paddles() [2]*Paddle { return w.paddles }
func (w *World) Goals() [2]GoalSensor { return w.goals }
func (w *World) ContactTuning() ContactTuning { return w.tuning }

// Advance runs one frame of physics split into equal substeps.
// Goal sensors write into pending; nothing else outside the bodies is touched.
func (w *World) Advance(dt float64, pending *PendingGoal) {
	if dt <= 0 {
		return
	}
	steps := max(w.config.Substeps, 1)
	h := dt / float64(steps)

	for range steps {
		w.substep(h, pending)
	}

	w.puck.LimitSpeed()
}

func (w *World) substep(h float64, pending *PendingGoal) {
	w.puck.Body.Integrate(h)
	for _, p := range w.paddles {
		p.Body.Integrate(h)
	}

	for _, p := range w.paddles {
		if !ContactFilter(p) {
			continue
		}
		contact, ok := FindPaddleContact(w.puck, p)
		if !ok {
			continue
		}
		ResolvePaddleContact(w.puck, p, contact, w.tuning.Classify(contact.RelativeSpeed))
	}

	w.puck.KeepInsideRink(w.rink)

	for i, g := range w.goals {
		overlapping := g.Overlaps(w.puck.Body.Position, w.puck.Radius)
		if overlapping && !w.touching[i] {
			pending.Record(g.Scorer)
		}
		w.touching[i] = overlapping
	}
}

// ResetPuck puts the puck back on the center spot at rest
func (w *World) ResetPuck() {
	w.puck.Reset(w.rink.Center())
	w.touching = [2]bool{}
}

// Freeze stops the puck and both paddles
func (w *World) Freeze() {
	w.puck.Body.Stop()
	for _, p := range w.paddles {
		p.Body.Stop()
	}
}
