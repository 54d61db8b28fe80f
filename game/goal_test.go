package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoalSensors_TeamTags(t *testing.T) {
	rink := testRink()
	goals := NewGoalSensors(rink, 10, 300)

	left, right := goals[0], goals[1]
	assert.Equal(t, Team1, left.Owner)
	assert.Equal(t, Team2, left.Scorer, "the left goal credits the right-hand team")
	assert.Equal(t, Team2, right.Owner)
	assert.Equal(t, Team1, right.Scorer, "the right goal credits the left-hand team")

	rc := rink.Rect()
	assert.InDelta(t, rc.Left()-1, left.Polygon[0].X(), 1e-9)
	assert.InDelta(t, rc.Right()+1, right.Polygon[1].X(), 1e-9)
}

func TestGoalSensor_Overlaps(t *testing.T) {
	g := GoalSensor{Polygon: box(0, 0, 10, 100)}

	testCases := []struct {
		name   string
		center mgl64.Vec2
		want   bool
	}{
		{name: "center inside", center: mgl64.Vec2{5, 50}, want: true},
		{name: "edge within radius", center: mgl64.Vec2{20, 50}, want: true},
		{name: "just out of reach", center: mgl64.Vec2{25, 50}, want: false},
		{name: "near a vertex", center: mgl64.Vec2{-10, -10}, want: true},
		{name: "far away", center: mgl64.Vec2{500, 500}, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Overlaps(tc.center, 15))
		})
	}
}

func TestPendingGoal(t *testing.T) {
	var p PendingGoal

	_, ok := p.Drain()
	assert.False(t, ok, "empty slot")

	p.Record(Team1)
	p.Record(Team2)
	require.True(t, p.Pending())

	team, ok := p.Drain()
	require.True(t, ok)
	assert.Equal(t, Team2, team, "last write wins")

	_, ok = p.Drain()
	assert.False(t, ok, "drain clears the slot")
}

func TestWorld_GoalSensorFiresOncePerContact(t *testing.T) {
	w := NewWorld(DefaultConfig())
	rc := w.Rink().Rect()
	w.Paddle(1).Snap(mgl64.Vec2{1500, 300})

	w.Puck().Reset(mgl64.Vec2{rc.Right() - 21, rc.Center().Y()})

	var pending PendingGoal
	w.Advance(1.0/60, &pending)

	team, ok := pending.Drain()
	require.True(t, ok)
	assert.Equal(t, Team1, team)

	// puck is still resting against the sensor: no second goal
	for range 10 {
		w.Advance(1.0/60, &pending)
	}
	assert.False(t, pending.Pending())

	// re-centering ends the contact so the next entry counts again
	w.ResetPuck()
	w.Puck().Reset(mgl64.Vec2{rc.Right() - 21, rc.Center().Y()})
	w.Advance(1.0/60, &pending)
	assert.True(t, pending.Pending())
}
