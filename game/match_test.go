package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

// awayPointer is on the left half, well clear of the center circle
var awayPointer = mgl64.Vec2{300, 400}

func newRunningMatch(t *testing.T) *Match {
	t.Helper()
	m := NewMatch(DefaultConfig())
	m.state = StateRunning
	m.world.Paddle(0).Snap(awayPointer)
	m.world.Paddle(1).Snap(mgl64.Vec2{1500, 300})
	return m
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestMatch_PuckIntoRightGoalScoresForTeam1(t *testing.T) {
	m := newRunningMatch(t)
	center := m.world.Rink().Center()
	m.world.Puck().Body.Velocity = mgl64.Vec2{2000, 0}

	var events []Event
	for i := 0; i < 600 && m.State() != StateResetWarning; i++ {
		m.Update(frame, FrameInput{Pointer: awayPointer})
		events = append(events, m.Events()...)
	}

	require.Equal(t, StateResetWarning, m.State())
	assert.Equal(t, 1, countEvents(events, EventGoalScored), "sensor fires exactly once")
	assert.Equal(t, 1, m.Scoreboard().Team1Score)
	assert.Equal(t, 0, m.Scoreboard().Team2Score)

	puck := m.world.Puck()
	assert.True(t, puck.Body.Position.ApproxEqual(center), "puck back on the center spot, got %v", puck.Body.Position)
	assert.Equal(t, mgl64.Vec2{}, puck.Body.Velocity)
	for _, p := range m.world.Paddles() {
		assert.Equal(t, mgl64.Vec2{}, p.Body.Velocity)
	}
}

func TestMatch_PuckIntoLeftGoalScoresForTeam2(t *testing.T) {
	m := newRunningMatch(t)
	m.world.Paddle(0).Snap(mgl64.Vec2{300, 900})
	pointer := mgl64.Vec2{300, 900}
	m.world.Puck().Body.Velocity = mgl64.Vec2{-2000, 0}

	for i := 0; i < 600 && m.State() != StateResetWarning; i++ {
		m.Update(frame, FrameInput{Pointer: pointer})
	}

	require.Equal(t, StateResetWarning, m.State())
	assert.Equal(t, 0, m.Scoreboard().Team1Score)
	assert.Equal(t, 1, m.Scoreboard().Team2Score)
}

func TestMatch_DrainPendingGoalIsIdempotent(t *testing.T) {
	m := newRunningMatch(t)
	m.pending.Record(Team2)

	assert.True(t, m.DrainPendingGoal())
	assert.False(t, m.DrainPendingGoal())
	assert.Equal(t, 1, m.Scoreboard().Team2Score)
	assert.Equal(t, StateResetWarning, m.State())
}

func TestMatch_ResetWarning(t *testing.T) {
	m := newRunningMatch(t)
	m.pending.Record(Team1)
	m.Update(frame, FrameInput{Pointer: awayPointer})
	require.Equal(t, StateResetWarning, m.State())

	center := m.world.Rink().Center()

	// pointer on the center spot keeps the match waiting
	m.Update(frame, FrameInput{Pointer: center.Add(mgl64.Vec2{-30, 0})})
	assert.Equal(t, StateResetWarning, m.State())
	assert.Equal(t, WarningCenter, m.Warning())
	for _, p := range m.world.Paddles() {
		assert.True(t, p.Ghost(), "paddles cannot touch the re-centered puck")
	}

	// pointer on the wrong half
	m.Update(frame, FrameInput{Pointer: mgl64.Vec2{1500, 400}})
	assert.Equal(t, StateResetWarning, m.State())
	assert.Equal(t, WarningSide1, m.Warning())

	m.Update(frame, FrameInput{Pointer: awayPointer})
	assert.Equal(t, StateRunning, m.State())
	assert.Equal(t, WarningNone, m.Warning())
	assert.Equal(t, center, m.world.Puck().Body.Position)
	for _, p := range m.world.Paddles() {
		assert.False(t, p.Ghost())
		assert.Equal(t, awayPointer, p.Body.Position)
	}
}

func TestMatch_TimerExpiryDecidesResultOnce(t *testing.T) {
	m := newRunningMatch(t)
	m.scoreboard.SetScore(3, 3)
	m.scoreboard.SetTime(0)

	var events []Event
	for range 300 {
		m.Update(frame, FrameInput{Pointer: awayPointer})
		events = append(events, m.Events()...)
		require.Equal(t, "TIE", m.ResultText())
	}

	assert.Equal(t, StateFinished, m.State())
	assert.Equal(t, 1, countEvents(events, EventMatchFinished))
}

func TestMatch_TimerCountsDownWhileRunning(t *testing.T) {
	m := newRunningMatch(t)
	for range 60 {
		m.Update(frame, FrameInput{Pointer: awayPointer})
	}
	assert.InDelta(t, 119, m.Scoreboard().TimeLeft, 1e-6)

	m.scoreboard.SetTime(2 * frame)
	m.scoreboard.SetScore(2, 1)
	m.Update(frame, FrameInput{Pointer: awayPointer})
	assert.Equal(t, StateRunning, m.State())
	m.Update(frame, FrameInput{Pointer: awayPointer})
	assert.Equal(t, StateFinished, m.State())
	assert.Equal(t, "PLAYER 1 WINS", m.ResultText())
}

func finishedMatch(t *testing.T) *Match {
	t.Helper()
	m := newRunningMatch(t)
	m.scoreboard.SetScore(1, 2)
	m.scoreboard.SetTime(0)
	m.Update(frame, FrameInput{})
	require.Equal(t, StateFinished, m.State())
	require.Equal(t, "PLAYER 2 WINS", m.ResultText())
	return m
}

func TestMatch_ContinueIsLockedForThreeSeconds(t *testing.T) {
	m := finishedMatch(t)

	m.Update(1.0, FrameInput{Keys: KeySet(0).With(KeyConfirm)})
	m.Update(1.0, FrameInput{Keys: KeySet(0).With(KeyEscape)})
	assert.Equal(t, StateFinished, m.State())
	assert.False(t, m.Terminal())

	m.Update(1.0, FrameInput{})
	m.Update(frame, FrameInput{Pointer: awayPointer, Keys: KeySet(0).With(KeyConfirm)})

	assert.Equal(t, StateRunning, m.State())
	sb := m.Scoreboard()
	assert.Equal(t, 0, sb.Team1Score)
	assert.Equal(t, 0, sb.Team2Score)
	assert.Equal(t, 120.0, sb.TimeLeft)
	assert.Empty(t, m.ResultText())
	assert.Equal(t, m.world.Rink().Center(), m.world.Puck().Body.Position)
}

func TestMatch_EscapeAfterLockoutIsGameOver(t *testing.T) {
	m := finishedMatch(t)
	for range 4 {
		m.Update(1.0, FrameInput{})
	}

	m.Update(frame, FrameInput{Keys: KeySet(0).With(KeyEscape)})
	assert.True(t, m.Terminal())
	assert.Equal(t, ResultGameOver, m.ResultText())

	// nothing is processed after game over
	m.Update(frame, FrameInput{Keys: KeySet(0).With(KeyRestart).With(KeyConfirm)})
	assert.Equal(t, StateFinished, m.State())
	assert.Equal(t, ResultGameOver, m.ResultText())
	assert.True(t, m.Snapshot().Terminal)
}

func TestMatch_ReadyCountdownAndPlacement(t *testing.T) {
	m := NewMatch(DefaultConfig())
	center := m.world.Rink().Center()
	require.Equal(t, StateReady, m.State())
	require.Equal(t, PhaseCountdownReady, m.ReadyPhase())

	right := FrameInput{Pointer: center.Add(mgl64.Vec2{200, 0})}

	m.Update(1.0, right)
	assert.Equal(t, PhaseCountdownReady, m.ReadyPhase())
	m.Update(0.6, right)
	assert.Equal(t, PhaseCountdownGo, m.ReadyPhase())
	m.Update(1.1, right)
	assert.Equal(t, PhasePositioning, m.ReadyPhase())
	assert.Equal(t, WarningNone, m.Warning(), "no check during the countdown")

	testCases := []struct {
		name        string
		pointer     mgl64.Vec2
		wantWarning WarningKind
		wantState   MatchState
	}{
		{name: "paddle on the right half", pointer: center.Add(mgl64.Vec2{200, 0}), wantWarning: WarningSide1, wantState: StateReady},
		{name: "paddle on the center spot", pointer: center.Add(mgl64.Vec2{-50, 20}), wantWarning: WarningCenter, wantState: StateReady},
		{name: "paddle just inside the margin", pointer: center.Add(mgl64.Vec2{-104, 0}), wantWarning: WarningCenter, wantState: StateReady},
		{name: "paddle in position", pointer: center.Add(mgl64.Vec2{-300, 0}), wantWarning: WarningNone, wantState: StateRunning},
	}

	for _, tc := range testCases {
		m.Update(frame, FrameInput{Pointer: tc.pointer})
		assert.Equal(t, tc.wantWarning, m.Warning(), tc.name)
		assert.Equal(t, tc.wantState, m.State(), tc.name)
	}
}

func TestMatch_PauseToggle(t *testing.T) {
	m := newRunningMatch(t)
	m.world.Puck().Body.Velocity = mgl64.Vec2{300, 0}
	esc := FrameInput{Pointer: awayPointer, Keys: KeySet(0).With(KeyEscape)}

	m.Update(frame, esc)
	require.Equal(t, StatePaused, m.State())

	pos := m.world.Puck().Body.Position
	left := m.Scoreboard().TimeLeft
	for range 30 {
		m.Update(frame, FrameInput{Pointer: awayPointer})
	}
	assert.Equal(t, pos, m.world.Puck().Body.Position)
	assert.Equal(t, left, m.Scoreboard().TimeLeft)

	m.Update(frame, esc)
	assert.Equal(t, StateRunning, m.State())
	assert.NotEqual(t, pos, m.world.Puck().Body.Position)
}

func TestMatch_Keys(t *testing.T) {
	m := newRunningMatch(t)

	m.Update(frame, FrameInput{Pointer: awayPointer, Keys: KeySet(0).With(KeyScoreTeam1).With(KeyDebug)})
	assert.Equal(t, 1, m.Scoreboard().Team1Score)
	assert.True(t, m.Debug())

	m.Update(frame, FrameInput{Pointer: awayPointer, Keys: KeySet(0).With(KeyScoreTeam2).With(KeyDebug)})
	assert.Equal(t, 1, m.Scoreboard().Team2Score)
	assert.False(t, m.Debug())

	m.pending.Record(Team1)
	m.Update(frame, FrameInput{Pointer: awayPointer, Keys: KeySet(0).With(KeyRestart)})
	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, PhaseCountdownReady, m.ReadyPhase())
	assert.Equal(t, 0, m.Scoreboard().Team1Score, "restart discards the pending goal")
	assert.False(t, m.pending.Pending())
}

func TestMatch_SetWarningRejectsUnknownKinds(t *testing.T) {
	m := NewMatch(DefaultConfig())
	require.True(t, m.SetWarning(WarningCenter))

	assert.False(t, m.SetWarning(WarningNone))
	assert.False(t, m.SetWarning(WarningKind(42)))
	assert.Equal(t, WarningCenter, m.Warning())
	assert.Equal(t, StateReady, m.State())
}

func TestMatch_PaddleStrikesPuck(t *testing.T) {
	m := newRunningMatch(t)
	center := m.world.Rink().Center()
	start := center.Add(mgl64.Vec2{-200, 0})
	m.world.Paddle(0).Snap(start)

	// sweep the pointer through the puck
	for i := 1; i <= 20; i++ {
		m.Update(frame, FrameInput{Pointer: start.Add(mgl64.Vec2{float64(i) * 15, 0})})
	}

	puck := m.world.Puck()
	assert.Greater(t, puck.Body.Velocity.X(), 0.0, "puck driven to the right")
	assert.LessOrEqual(t, puck.Body.Speed(), puck.MaxSpeed)
	assert.Greater(t, puck.Body.Position.X(), center.X())
}

func TestMatch_Snapshot(t *testing.T) {
	m := newRunningMatch(t)
	m.world.Paddle(1).SetGhost(true)
	m.Update(frame, FrameInput{Pointer: awayPointer})

	s := m.Snapshot()
	assert.Equal(t, StateRunning, s.State)
	assert.Equal(t, uint64(1), s.Frame)
	assert.Equal(t, 15.0, s.Puck.Radius)
	assert.Equal(t, 45.0, s.Paddles[0].Radius)
	assert.True(t, s.Paddles[1].Ghost)
	assert.InDelta(t, awayPointer.X(), s.Paddles[0].X, 1e-6)
	assert.Equal(t, m.Config().RinkRect(), s.Rink)
}
