package game

import "github.com/go-gl/mathgl/mgl64"

// Team identifies a side of the table. Team1 defends the left goal.
type Team int

const (
	Team1 Team = 1
	Team2 Team = 2
)

// Opponent returns the other team
func (t Team) Opponent() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

func (t Team) String() string {
	switch t {
	case Team1:
		return "team1"
	case Team2:
		return "team2"
	}
	return "none"
}

// GoalSensor is a non-colliding region in front of a goal.
// Scorer is the team credited when the puck enters it, always the owner's opponent.
type GoalSensor struct {
	Owner   Team
	Scorer  Team
	Polygon []mgl64.Vec2
}

// NewGoalSensors creates the left (Team1) and right (Team2) goal sensors.
// Each sensor straddles its side wall so the puck reaches it while touching the wall.
func NewGoalSensors(rink *Rink, depth, mouth float64) [2]GoalSensor {
	rc := rink.Rect()
	cy := rc.Center().Y()
	top, bottom := cy-mouth/2, cy+mouth/2

	left := rc.Left() - 1
	right := rc.Right() - depth + 1

	return [2]GoalSensor{
		{Owner: Team1, Scorer: Team2, Polygon: box(left, top, left+depth, bottom)},
		{Owner: Team2, Scorer: Team1, Polygon: box(right, top, right+depth, bottom)},
	}
}

func box(x0, y0, x1, y1 float64) []mgl64.Vec2 {
	return []mgl64.Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Overlaps reports whether a circle touches the sensor polygon
func (g GoalSensor) Overlaps(center mgl64.Vec2, radius float64) bool {
	if len(g.Polygon) < 3 {
		return false
	}
	if containsPoint(g.Polygon, center) {
		return true
	}
	for i := range g.Polygon {
		a, b := g.Polygon[i], g.Polygon[(i+1)%len(g.Polygon)]
		closest, ok := ClosestPointOnSegment(center, a, b)
		if !ok {
			continue
		}
		if center.Sub(closest).Len() < radius {
			return true
		}
	}
	return false
}

// containsPoint is a crossing-number test for a simple polygon
func containsPoint(poly []mgl64.Vec2, p mgl64.Vec2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) &&
			p.X() < (b.X()-a.X())*(p.Y()-a.Y())/(b.Y()-a.Y())+a.X() {
			inside = !inside
		}
	}
	return inside
}

// PendingGoal is a single-slot buffer between the goal sensors and the match.
// Sensors Record during a physics step; the match Drains at the start of the next frame.
type PendingGoal struct {
	team Team
	set  bool
}

// Record stores the scoring team. A second record before a drain overwrites the first.
func (p *PendingGoal) Record(team Team) {
	p.team = team
	p.set = true
}

// Drain returns the pending team, if any, and clears the slot
func (p *PendingGoal) Drain() (Team, bool) {
	if !p.set {
		return 0, false
	}
	team := p.team
	p.team, p.set = 0, false
	return team, true
}

// Pending reports whether a goal is waiting to be drained
func (p *PendingGoal) Pending() bool {
	return p.set
}
