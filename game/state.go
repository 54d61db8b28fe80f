package game

// MatchState is the top-level phase of a match
type MatchState int

const (
	StateReady MatchState = iota
	StateRunning
	StatePaused
	StateResetWarning
	StateFinished
)

func (s MatchState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateResetWarning:
		return "reset-warning"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// ReadyPhase is the sub-state of StateReady
type ReadyPhase int

const (
	PhaseCountdownReady ReadyPhase = iota
	PhaseCountdownGo
	PhasePositioning
)

func (p ReadyPhase) String() string {
	switch p {
	case PhaseCountdownReady:
		return "countdown-ready"
	case PhaseCountdownGo:
		return "countdown-go"
	case PhasePositioning:
		return "positioning"
	}
	return "unknown"
}

// WarningKind is the placement problem shown to the player
type WarningKind int

const (
	WarningNone WarningKind = iota
	WarningCenter
	WarningSide1
	WarningSide2
)

func (w WarningKind) String() string {
	switch w {
	case WarningNone:
		return "none"
	case WarningCenter:
		return "center"
	case WarningSide1:
		return "player1"
	case WarningSide2:
		return "player2"
	}
	return "unknown"
}

// Valid reports whether w can be raised as a warning
func (w WarningKind) Valid() bool {
	return w == WarningCenter || w == WarningSide1 || w == WarningSide2
}

// EventKind identifies a match event
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventGoalScored
	EventWarningRaised
	EventMatchFinished
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state-changed"
	case EventGoalScored:
		return "goal-scored"
	case EventWarningRaised:
		return "warning-raised"
	case EventMatchFinished:
		return "match-finished"
	}
	return "unknown"
}

// Event is something that happened during one Match.Update
type Event struct {
	Kind    EventKind   `json:"kind" msgpack:"kind"`
	From    MatchState  `json:"from" msgpack:"from"`
	To      MatchState  `json:"to" msgpack:"to"`
	Team    Team        `json:"team,omitempty" msgpack:"team,omitempty"`
	Warning WarningKind `json:"warning,omitempty" msgpack:"warning,omitempty"`
	Result  string      `json:"result,omitempty" msgpack:"result,omitempty"`
}
