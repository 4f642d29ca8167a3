package pong

import (
	"log/slog"

	"pong3d/internal/fixed"
	"pong3d/internal/levels"
)

// EditField is a stage property the editor adjusts.
type EditField int

const (
	EditDepth EditField = iota
	EditGravityX
	EditGravityY
	EditBallSize
	EditBallSpeed
	EditPaddleWidth
	EditPaddleHeight
	EditAISpeed

	numEditFields
)

type editRange struct {
	name           string
	min, max, step float64
}

var editRanges = [numEditFields]editRange{
	EditDepth:        {"depth", 10, 1000, 10},
	EditGravityX:     {"gravity_x", -3, 3, 1},
	EditGravityY:     {"gravity_y", -3, 3, 1},
	EditBallSize:     {"ball_size", 1, 5, 1},
	EditBallSpeed:    {"ball_speed", 1, 20, 1},
	EditPaddleWidth:  {"paddle_width", 1, 50, 1},
	EditPaddleHeight: {"paddle_height", 1, 50, 1},
	EditAISpeed:      {"ai_speed", 1, 10, 1},
}

func (f EditField) String() string {
	if f < 0 || f >= numEditFields {
		return "unknown"
	}
	return editRanges[f].name
}

func (f EditField) value(d *levels.Descriptor) *float64 {
	switch f {
	case EditDepth:
		return &d.StageDepth
	case EditGravityX:
		return &d.StageXGravity
	case EditGravityY:
		return &d.StageYGravity
	case EditBallSize:
		return &d.BallSize
	case EditBallSpeed:
		return &d.BallSpeed
	case EditPaddleWidth:
		return &d.PaddleWidth
	case EditPaddleHeight:
		return &d.PaddleHeight
	default:
		return &d.AISpeed
	}
}

func (g *Game) EditField() EditField { return g.editField }

// edit carries out an editor command. Outside edit mode they do nothing.
func (g *Game) edit(c Command) {
	if g.mode != ModeEdit {
		return
	}
	switch c {
	case CommandAddStage:
		g.AddLevel()
	case CommandDeleteStage:
		if err := g.DeleteLevel(); err != nil {
			slog.Debug("stage not deleted", slog.Any("error", err))
		}
	case CommandNextField:
		g.editField = (g.editField + 1) % numEditFields
	case CommandRaiseField:
		g.adjustField(1)
	case CommandLowerField:
		g.adjustField(-1)
	}
}

// adjustField moves the selected property one step in dir, within its range,
// and reloads the stage.
func (g *Game) adjustField(dir float64) {
	r := editRanges[g.editField]
	d := g.levels.At(g.curLevel)
	v := g.editField.value(&d)
	*v = fixed.Clamp(*v+dir*r.step, r.min, r.max)
	if err := g.EditLevel(d); err != nil {
		slog.Debug("stage edit rejected", slog.String("field", g.editField.String()), slog.Any("error", err))
	}
}

func (g *Game) editValue() fixed.Fixed {
	d := g.levels.At(g.curLevel)
	return fixed.FromFloat(*g.editField.value(&d))
}
