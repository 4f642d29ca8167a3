package pong

// CollisionKind classifies the last surface the ball was resolved against in a tick.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	// Back wall behind the AI paddle: the player scores.
	CollisionBackWall
	// Front wall behind the player paddle: the AI scores.
	CollisionFrontWall
	CollisionPlayerPaddle
	CollisionAIPaddle
	CollisionWall
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionBackWall:
		return "back_wall"
	case CollisionFrontWall:
		return "front_wall"
	case CollisionPlayerPaddle:
		return "player_paddle"
	case CollisionAIPaddle:
		return "ai_paddle"
	case CollisionWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Scores reports whether the collision awards a point.
func (k CollisionKind) Scores() bool {
	return k == CollisionBackWall || k == CollisionFrontWall
}
