package pong

import (
	"pong3d/internal/fixed"
	"pong3d/internal/levels"
)

// Rect is an axis aligned rectangle in stage units.
type Rect struct {
	Left, Top, Right, Bottom fixed.Fixed
}

// Stage is the immutable geometry and difficulty of the current level.
type Stage struct {
	Name     string
	Depth    fixed.Fixed
	GravityY fixed.Fixed
	GravityX fixed.Fixed
	Window   Rect

	BallSize         fixed.Fixed
	BallSpeed        fixed.Fixed
	PaddleHalfWidth  fixed.Fixed
	PaddleHalfHeight fixed.Fixed
	AISpeed          fixed.Fixed
	AIRecenter       bool
}

// ArenaCenter is the middle of the 0..100 pointer space the AI recenters on.
var ArenaCenter = fixed.FromInt(50)

// NewStage converts a descriptor into stage parameters. The window is always
// 0..99 on both axes; only depth varies.
func NewStage(d levels.Descriptor) Stage {
	return Stage{
		Name:     d.Name,
		Depth:    fixed.FromFloat(d.StageDepth),
		GravityY: fixed.FromFloat(d.StageYGravity),
		GravityX: fixed.FromFloat(d.StageXGravity),
		Window: Rect{
			Left:   0,
			Top:    0,
			Right:  fixed.FromInt(99),
			Bottom: fixed.FromInt(99),
		},
		BallSize:         fixed.FromFloat(d.BallSize),
		BallSpeed:        fixed.FromFloat(d.BallSpeed),
		PaddleHalfWidth:  fixed.FromFloat(d.PaddleWidth),
		PaddleHalfHeight: fixed.FromFloat(d.PaddleHeight),
		AISpeed:          fixed.FromFloat(d.AISpeed),
		AIRecenter:       d.Recenter(),
	}
}

// AI holds the opponent's tuning for the current level.
type AI struct {
	Speed    fixed.Fixed
	Recenter bool
}

func NewAI(s *Stage) AI {
	return AI{Speed: s.AISpeed, Recenter: s.AIRecenter}
}
