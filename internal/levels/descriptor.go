// Package levels holds the named stage presets a game is played through and
// reads and writes stage lists from JSON journal documents and TOML files.
package levels

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLevels          = errors.New("level list is empty")
	ErrInvalidDescriptor = errors.New("invalid stage descriptor")
)

// Descriptor is the editable description of one stage. Numbers are in whole
// (possibly fractional) stage units as an editor produces them.
type Descriptor struct {
	Name          string  `json:"Name" toml:"name"`
	StageDepth    float64 `json:"StageDepth" toml:"stage_depth"`
	StageXGravity float64 `json:"StageXGravity" toml:"stage_x_gravity"`
	StageYGravity float64 `json:"StageYGravity" toml:"stage_y_gravity"`
	BallSize      float64 `json:"BallSize" toml:"ball_size"`
	BallSpeed     float64 `json:"BallSpeed" toml:"ball_speed"`
	PaddleWidth   float64 `json:"PaddleWidth" toml:"paddle_width"`
	PaddleHeight  float64 `json:"PaddleHeight" toml:"paddle_height"`
	AISpeed       float64 `json:"AISpeed" toml:"ai_speed"`
	AIRecenter    int     `json:"AIRecenter" toml:"ai_recenter"`

	// Last recorded result on this stage.
	PlayerScore int `json:"PlayerScore,omitempty" toml:"player_score"`
	AIScore     int `json:"AIScore,omitempty" toml:"ai_score"`
}

// Defaults returns a fresh copy of the built-in stage list.
func Defaults() []Descriptor {
	return []Descriptor{
		{Name: "normal", StageDepth: 160, StageXGravity: 0, StageYGravity: 0, BallSize: 1, BallSpeed: 3, PaddleWidth: 20, PaddleHeight: 20, AISpeed: 1, AIRecenter: 1},
		{Name: "bounce", StageDepth: 160, StageXGravity: 0, StageYGravity: 1, BallSize: 1, BallSpeed: 3, PaddleWidth: 20, PaddleHeight: 20, AISpeed: 2, AIRecenter: 1},
		{Name: "wide", StageDepth: 160, StageXGravity: 0, StageYGravity: 1, BallSize: 1, BallSpeed: 4, PaddleWidth: 50, PaddleHeight: 15, AISpeed: 4, AIRecenter: 1},
		{Name: "deep", StageDepth: 500, StageXGravity: 0, StageYGravity: 0, BallSize: 1, BallSpeed: 10, PaddleWidth: 25, PaddleHeight: 25, AISpeed: 5, AIRecenter: 0},
		{Name: "rotate", StageDepth: 160, StageXGravity: 1, StageYGravity: 0, BallSize: 1, BallSpeed: 5, PaddleWidth: 25, PaddleHeight: 20, AISpeed: 5, AIRecenter: 1},
	}
}

// NewStage is the preset the editor appends.
func NewStage() Descriptor {
	return Descriptor{Name: "new stage", StageDepth: 160, BallSize: 1, BallSpeed: 3, PaddleWidth: 20, PaddleHeight: 20, AISpeed: 1, AIRecenter: 1}
}

// Validate rejects descriptors the simulation cannot be set up from.
// Zero ball speed and zero gravity are allowed.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidDescriptor)
	}
	if d.StageDepth <= 0 {
		return fmt.Errorf("%w: %q stage depth must be positive, got %v", ErrInvalidDescriptor, d.Name, d.StageDepth)
	}
	if d.BallSize < 0 || d.BallSpeed < 0 {
		return fmt.Errorf("%w: %q ball size and speed must not be negative", ErrInvalidDescriptor, d.Name)
	}
	if d.PaddleWidth < 0 || d.PaddleHeight < 0 {
		return fmt.Errorf("%w: %q paddle size must not be negative", ErrInvalidDescriptor, d.Name)
	}
	if d.AISpeed < 0 {
		return fmt.Errorf("%w: %q ai speed must not be negative", ErrInvalidDescriptor, d.Name)
	}
	return nil
}

// Recenter reports whether the AI paddle drifts back to the middle.
func (d Descriptor) Recenter() bool { return d.AIRecenter != 0 }
