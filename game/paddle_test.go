package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPaddle_ResolveTarget(t *testing.T) {
	rink := testRink()
	rc := rink.Rect()
	clearance := 45 + rink.Thickness()

	testCases := []struct {
		name   string
		target mgl64.Vec2
		want   mgl64.Vec2
	}{
		{name: "inside is untouched", target: mgl64.Vec2{500, 600}, want: mgl64.Vec2{500, 600}},
		{name: "above the rink", target: mgl64.Vec2{900, 0}, want: mgl64.Vec2{900, rc.Top() + clearance}},
		{name: "left of the rink", target: mgl64.Vec2{-300, 600}, want: mgl64.Vec2{rc.Left() + clearance, 600}},
		{name: "below the rink", target: mgl64.Vec2{1200, 5000}, want: mgl64.Vec2{1200, rc.Bottom() - clearance}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(0, Team1, rink.Center(), 45, 200)
			got := p.ResolveTarget(rink, tc.target)
			assert.InDelta(t, tc.want.X(), got.X(), 1e-9)
			assert.InDelta(t, tc.want.Y(), got.Y(), 1e-9)
		})
	}
}

func TestPaddle_ResolveTargetCornerStaysInside(t *testing.T) {
	rink := testRink()
	p := NewPaddle(0, Team1, rink.Center(), 45, 200)

	for _, target := range []mgl64.Vec2{{0, 0}, {5000, 0}, {0, 5000}, {5000, 5000}} {
		got := p.ResolveTarget(rink, target)
		assert.True(t, rink.Contains(got), "target %v resolved to %v", target, got)
	}
}

func TestPaddle_Drive(t *testing.T) {
	rink := testRink()
	p := NewPaddle(0, Team1, mgl64.Vec2{500, 500}, 45, 200)

	p.Drive(rink, mgl64.Vec2{530, 490}, 1.0/60)

	assert.InDelta(t, 1800, p.Body.Velocity.X(), 1e-6)
	assert.InDelta(t, -600, p.Body.Velocity.Y(), 1e-6)
	assert.Equal(t, mgl64.Vec2{500, 500}, p.Body.Position, "drive only sets velocity")
}

func TestPaddle_DriveIgnoresZeroDelta(t *testing.T) {
	rink := testRink()
	p := NewPaddle(0, Team1, mgl64.Vec2{500, 500}, 45, 200)
	p.Body.Velocity = mgl64.Vec2{1, 1}

	p.Drive(rink, mgl64.Vec2{530, 490}, 0)

	assert.Equal(t, mgl64.Vec2{1, 1}, p.Body.Velocity)
}

func TestPaddle_SnapAndGhost(t *testing.T) {
	p := NewPaddle(1, Team2, mgl64.Vec2{500, 500}, 45, 200)
	p.Body.Velocity = mgl64.Vec2{10, 0}

	p.Snap(mgl64.Vec2{20, 30})
	p.SetGhost(true)

	assert.Equal(t, mgl64.Vec2{20, 30}, p.Body.Position)
	assert.Equal(t, mgl64.Vec2{}, p.Body.Velocity)
	assert.True(t, p.Ghost())
	assert.False(t, ContactFilter(p))

	p.SetGhost(false)
	assert.True(t, ContactFilter(p))
	assert.Equal(t, Kinematic, p.Body.Kind)
}
