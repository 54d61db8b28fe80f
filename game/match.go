package game

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	readyCountdown  = 1.5
	goCountdown     = 1.0
	continueLockout = 3.0

	// placementMargin is added to the center radius for placement checks
	placementMargin = 25.0

	// ResultGameOver is the final result text once the player quits
	ResultGameOver = "GAME OVER"
)

// Match runs the rules of one table: countdown, play, goals, clock and the result screen.
// All state is mutated from Update only.
type Match struct {
	config     Config
	world      *World
	scoreboard *Scoreboard
	pending    PendingGoal

	state         MatchState
	readyPhase    ReadyPhase
	phaseTime     float64
	warning       WarningKind
	resultText    string
	continueTimer float64
	debug         bool
	terminal      bool

	frame  uint64
	events []Event
}

// NewMatch creates a match waiting in the READY countdown
func NewMatch(config Config) *Match {
	m := &Match{
		config:     config,
		world:      NewWorld(config),
		scoreboard: NewScoreboard(config.MatchSeconds),
		state:      StateReady,
		readyPhase: PhaseCountdownReady,
	}
	return m
}

// Update advances the match by one frame
func (m *Match) Update(dt float64, in FrameInput) {
	m.events = m.events[:0]
	m.frame++
	if m.terminal {
		return
	}
	if dt < 0 {
		dt = 0
	}

	m.handleKeys(in.Keys)

	// A drained goal ends the frame: nothing moves while the goal is processed.
	if m.DrainPendingGoal() {
		return
	}

	switch m.state {
	case StateReady:
		m.updateReady(dt, in)
	case StateRunning:
		m.updateRunning(dt, in)
	case StateResetWarning:
		m.updateResetWarning(in)
	case StateFinished:
		m.updateFinished(dt, in)
	case StatePaused:
	}
}

func (m *Match) handleKeys(keys KeySet) {
	if keys.Has(KeyRestart) {
		m.restart()
		return
	}
	if keys.Has(KeyDebug) {
		m.debug = !m.debug
	}
	if keys.Has(KeyEscape) {
		switch m.state {
		case StateRunning:
			m.setState(StatePaused)
		case StatePaused:
			m.setState(StateRunning)
		}
	}
	if m.state != StateFinished {
		if keys.Has(KeyScoreTeam1) {
			m.scoreboard.AddPoint(Team1)
		}
		if keys.Has(KeyScoreTeam2) {
			m.scoreboard.AddPoint(Team2)
		}
	}
}

// DrainPendingGoal applies a goal recorded by the sensors, if any, and reports whether it did.
// The puck is re-centered, every body stops and the match waits in StateResetWarning.
func (m *Match) DrainPendingGoal() bool {
	team, ok := m.pending.Drain()
	if !ok {
		return false
	}

	m.world.Freeze()
	m.setState(StateResetWarning)
	m.scoreboard.AddPoint(team)
	m.world.ResetPuck()
	for _, p := range m.world.Paddles() {
		p.SetGhost(true)
	}

	m.emit(Event{Kind: EventGoalScored, From: m.state, To: m.state, Team: team})
	log.Printf("match: goal for %s, score %d-%d", team, m.scoreboard.Team1Score, m.scoreboard.Team2Score)
	return true
}

func (m *Match) updateReady(dt float64, in FrameInput) {
	for _, p := range m.world.Paddles() {
		p.Snap(in.Pointer)
		p.SetGhost(false)
	}

	m.phaseTime += dt
	switch m.readyPhase {
	case PhaseCountdownReady:
		if m.phaseTime > readyCountdown {
			m.readyPhase, m.phaseTime = PhaseCountdownGo, 0
		}
	case PhaseCountdownGo:
		if m.phaseTime > goCountdown {
			m.readyPhase, m.phaseTime = PhasePositioning, 0
		}
	case PhasePositioning:
		p0, p1 := m.world.Paddle(0), m.world.Paddle(1)
		if kind := m.placementWarning(p0.Body.Position, p1.Body.Position); kind != WarningNone {
			m.SetWarning(kind)
			return
		}
		m.ClearWarning()
		log.Printf("match: players in position")
		m.setState(StateRunning)
	}
}

// placementWarning checks paddle positions before play starts.
// Either paddle near the center spot is a center warning; paddle 0 must stay on the left half.
func (m *Match) placementWarning(p0, p1 mgl64.Vec2) WarningKind {
	center := m.world.Rink().Center()
	limit := m.config.CenterRadius + placementMargin
	if p0.Sub(center).Len() < limit || p1.Sub(center).Len() < limit {
		return WarningCenter
	}
	if p0.X() >= center.X() {
		return WarningSide1
	}
	return WarningNone
}

func (m *Match) updateRunning(dt float64, in FrameInput) {
	m.scoreboard.Tick(dt)
	if m.scoreboard.Expired() {
		m.finish()
		return
	}

	m.world.Paddle(0).Drive(m.world.Rink(), in.Pointer, dt)
	m.world.Paddle(1).Hold()
	m.world.Advance(dt, &m.pending)
}

func (m *Match) updateResetWarning(in FrameInput) {
	m.world.ResetPuck()
	for _, p := range m.world.Paddles() {
		p.Snap(in.Pointer)
		p.SetGhost(true)
	}

	if kind := m.placementWarning(in.Pointer, in.Pointer); kind != WarningNone {
		m.SetWarning(kind)
		return
	}

	m.ClearWarning()
	for _, p := range m.world.Paddles() {
		p.SetGhost(false)
	}
	m.setState(StateRunning)
}

func (m *Match) finish() {
	m.world.Freeze()
	m.setState(StateFinished)
	m.continueTimer = 0
	if m.resultText != "" {
		return
	}
	m.resultText = m.scoreboard.Result()
	m.emit(Event{Kind: EventMatchFinished, From: StateFinished, To: StateFinished, Result: m.resultText})
	log.Printf("match: finished %d-%d, %s", m.scoreboard.Team1Score, m.scoreboard.Team2Score, m.resultText)
}

func (m *Match) updateFinished(dt float64, in FrameInput) {
	if m.resultText == "" {
		m.finish()
	}
	m.continueTimer += dt
	if m.continueTimer < continueLockout {
		return
	}

	switch {
	case in.Keys.Has(KeyConfirm):
		m.resetMatch()
		m.setState(StateRunning)
	case in.Keys.Has(KeyEscape):
		m.resultText = ResultGameOver
		m.continueTimer = 0
		m.terminal = true
		log.Printf("match: game over")
	}
}

// restart goes back to the READY countdown with a fresh match
func (m *Match) restart() {
	m.resetMatch()
	m.readyPhase, m.phaseTime = PhaseCountdownReady, 0
	m.setState(StateReady)
	log.Printf("match: restarted")
}

func (m *Match) resetMatch() {
	m.pending.Drain()
	m.scoreboard.SetScore(0, 0)
	m.scoreboard.SetTime(m.config.MatchSeconds)
	m.resultText = ""
	m.continueTimer = 0
	m.warning = WarningNone
	m.world.Freeze()
	m.world.ResetPuck()
	for _, p := range m.world.Paddles() {
		p.SetGhost(false)
	}
}

// SetWarning raises a placement warning. Unknown kinds are logged and ignored.
func (m *Match) SetWarning(kind WarningKind) bool {
	if !kind.Valid() {
		log.Printf("match: rejected warning kind %d", int(kind))
		return false
	}
	if m.warning != kind {
		m.warning = kind
		m.emit(Event{Kind: EventWarningRaised, From: m.state, To: m.state, Warning: kind})
	}
	return true
}

// ClearWarning removes any active warning
func (m *Match) ClearWarning() {
	m.warning = WarningNone
}

func (m *Match) setState(to MatchState) {
	from := m.state
	if from == to {
		return
	}
	m.state = to
	m.emit(Event{Kind: EventStateChanged, From: from, To: to})
	log.Printf("match: %s -> %s", from, to)
}

func (m *Match) emit(e Event) {
	m.events = append(m.events, e)
}

// Events returns the events of the last Update. The slice is reused by the next Update.
func (m *Match) Events() []Event { return m.events }

func (m *Match) State() MatchState { return m.state }
func (m *Match) ReadyPhase() ReadyPhase { return m.readyPhase }
func (m *Match) Warning() WarningKind { return m.warning }
func (m *Match) ResultText() string { return m.resultText }
func (m *Match) ContinueTimer() float64 { return m.continueTimer }
func (m *Match) Debug() bool { return m.debug }
func (m *Match) Terminal() bool { return m.terminal }
func (m *Match) World() *World { return m.world }
func (m *Match) Scoreboard() Scoreboard { return *m.scoreboard }
func (m *Match) Config() Config { return m.config }

// Snapshot copies the current frame for renderers
func (m *Match) Snapshot() Snapshot {
	puck := m.world.Puck()
	s := Snapshot{
		Frame:         m.frame,
		State:         m.state,
		ReadyPhase:    m.readyPhase,
		PhaseTime:     m.phaseTime,
		Warning:       m.warning,
		Rink:          m.world.Rink().Rect(),
		Puck:          bodyView(puck.Body, puck.Radius, false),
		Score1:        m.scoreboard.Team1Score,
		Score2:        m.scoreboard.Team2Score,
		TimeLeft:      m.scoreboard.TimeLeft,
		ResultText:    m.resultText,
		ContinueTimer: m.continueTimer,
		Debug:         m.debug,
		Terminal:      m.terminal,
	}
	for i, p := range m.world.Paddles() {
		s.Paddles[i] = bodyView(p.Body, p.Radius, p.Ghost())
	}
	return s
}
