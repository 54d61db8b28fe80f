package game

// BodyView is the render view of a puck or paddle
type BodyView struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	VX     float64 `json:"vx" msgpack:"vx"`
	VY     float64 `json:"vy" msgpack:"vy"`
	Radius float64 `json:"r" msgpack:"r"`
	Ghost  bool    `json:"ghost,omitempty" msgpack:"ghost,omitempty"`
}

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Frame         uint64      `json:"frame" msgpack:"frame"`
	State         MatchState  `json:"state" msgpack:"state"`
	ReadyPhase    ReadyPhase  `json:"ready_phase" msgpack:"ready_phase"`
	PhaseTime     float64     `json:"phase_time" msgpack:"phase_time"`
	Warning       WarningKind `json:"warning" msgpack:"warning"`
	Rink          Rect        `json:"rink" msgpack:"rink"`
	Puck          BodyView    `json:"puck" msgpack:"puck"`
	Paddles       [2]BodyView `json:"paddles" msgpack:"paddles"`
	Score1        int         `json:"score1" msgpack:"score1"`
	Score2        int         `json:"score2" msgpack:"score2"`
	TimeLeft      float64     `json:"time_left" msgpack:"time_left"`
	ResultText    string      `json:"result,omitempty" msgpack:"result,omitempty"`
	ContinueTimer float64     `json:"continue_timer" msgpack:"continue_timer"`
	Debug         bool        `json:"debug,omitempty" msgpack:"debug,omitempty"`
	Terminal      bool        `json:"terminal,omitempty" msgpack:"terminal,omitempty"`
}

// SnapshotSink receives one snapshot per frame together with that frame's events.
// Publish must not block the update loop.
type SnapshotSink interface {
	Publish(Snapshot, []Event)
}

func bodyView(b RigidBody, radius float64, ghost bool) BodyView {
	return BodyView{
		X:      b.Position.X(),
		Y:      b.Position.Y(),
		VX:     b.Velocity.X(),
		VY:     b.Velocity.Y(),
		Radius: radius,
		Ghost:  ghost,
	}
}
