package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutopilot_ParksAtHomeUntilRunning(t *testing.T) {
	m := NewMatch(DefaultConfig())
	a := NewAutopilot(m, false)

	for range 200 {
		if m.State() == StateRunning {
			break
		}
		m.Update(frame, a.Poll())
	}

	require.Equal(t, StateRunning, m.State(), "home spot passes the placement check")
	assert.Equal(t, WarningNone, m.Warning())
}

func TestAutopilot_ChasesPuckOnOwnHalf(t *testing.T) {
	m := newRunningMatch(t)
	a := NewAutopilot(m, false)

	m.World().Puck().Body.Position = mgl64.Vec2{400, 617}
	in := a.Poll()

	assert.Greater(t, in.Pointer.X(), 400.0, "pointer goes through the puck towards the right goal")
	assert.InDelta(t, 617, in.Pointer.Y(), 1e-9)
	assert.Zero(t, in.Keys)
}

func TestAutopilot_ResultScreenKeys(t *testing.T) {
	testCases := []struct {
		name   string
		replay bool
		want   Key
	}{
		{name: "replay confirms", replay: true, want: KeyConfirm},
		{name: "quit escapes", replay: false, want: KeyEscape},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := finishedMatch(t)
			a := NewAutopilot(m, tc.replay)

			assert.Zero(t, a.Poll().Keys, "no keys during the lockout")

			for m.ContinueTimer() < continueLockout {
				m.Update(frame, FrameInput{Pointer: awayPointer})
			}
			assert.True(t, a.Poll().Keys.Has(tc.want))
		})
	}
}
