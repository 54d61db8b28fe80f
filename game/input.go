package game

import "github.com/go-gl/mathgl/mgl64"

// Key is a discrete key event the match reacts to
type Key uint

const (
	KeyConfirm    Key = 1 << iota // Enter: continue after a match
	KeyEscape                     // pause toggle; quit on the result screen
	KeyRestart                    // R: start over from the countdown
	KeyDebug                      // D: toggle the debug overlay
	KeyScoreTeam1                 // Q: credit team 1
	KeyScoreTeam2                 // W: credit team 2
)

// KeySet is the set of keys pressed this frame
type KeySet uint

// Has reports whether k was pressed
func (s KeySet) Has(k Key) bool {
	return uint(s)&uint(k) != 0
}

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	return KeySet(uint(s) | uint(k))
}

// FrameInput is everything the match reads from the player in one frame
type FrameInput struct {
	Pointer mgl64.Vec2
	Keys    KeySet
}

// InputSource produces one FrameInput per frame
type InputSource interface {
	Poll() FrameInput
}
