package netwrk

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"pong3d/internal/fixed"
	"pong3d/internal/pong"
)

// ErrMalformed is returned when a frame does not decode as the expected message.
var ErrMalformed = errors.New("malformed message")

// CommandQuit ends the match. It is handled by the server and never reaches the game.
const CommandQuit = "quit"

// InputMessage is sent by the client whenever its pointer state changes or the
// player issues a command. A message carrying a Command leaves the pointer untouched.
type InputMessage struct {
	Seq     uint64
	X       fixed.Fixed
	Y       fixed.Fixed
	Down    bool
	Held    bool
	Command string
}

// Input converts the pointer part of the message for the simulation.
func (m InputMessage) Input() pong.Input {
	return pong.Input{X: m.X, Y: m.Y, Down: m.Down, Held: m.Held}
}

func (m InputMessage) Marshal() []byte {
	var b []byte
	b = appendUint(b, 1, m.Seq)
	b = appendInt(b, 2, int64(m.X))
	b = appendInt(b, 3, int64(m.Y))
	b = appendBool(b, 4, m.Down)
	b = appendBool(b, 5, m.Held)
	b = appendString(b, 6, m.Command)
	return b
}

func UnmarshalInput(b []byte) (InputMessage, error) {
	var m InputMessage
	err := walk(b, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		var err error
		switch num {
		case 1:
			m.Seq, err = varint(typ, raw)
		case 2:
			m.X, err = fixedField(typ, raw)
		case 3:
			m.Y, err = fixedField(typ, raw)
		case 4:
			m.Down, err = boolField(typ, raw)
		case 5:
			m.Held, err = boolField(typ, raw)
		case 6:
			m.Command, err = stringField(typ, raw)
		}
		return err
	})
	return m, err
}

type BallState struct {
	Pos  fixed.Vec3
	Size fixed.Fixed
}

type PaddleState struct {
	Pos        fixed.Vec3
	HalfWidth  fixed.Fixed
	HalfHeight fixed.Fixed
	Score      int
}

// SnapshotMessage is the per-tick state broadcast to the client.
type SnapshotMessage struct {
	MatchID    string
	Tick       uint64
	Sequence   pong.SequenceID
	Timer0     int
	Timer1     int
	Brightness int
	Mode       pong.Mode
	Paused     bool
	Level      int
	LevelName  string
	Depth      fixed.Fixed
	Ball       BallState
	Paddle1    PaddleState
	Paddle2    PaddleState
	Collision  pong.CollisionKind

	// Score flourish state: the Score sequence's step and the ball at the
	// start of the tick.
	Step        int
	BallLastPos fixed.Vec3
	BallLastVel fixed.Vec3

	EditField pong.EditField
	EditValue fixed.Fixed
}

func NewSnapshotMessage(matchID string, s pong.Snapshot) SnapshotMessage {
	return SnapshotMessage{
		MatchID:    matchID,
		Tick:       s.Tick,
		Sequence:   s.Sequence,
		Timer0:     s.Timer0,
		Timer1:     s.Timer1,
		Brightness: s.Brightness,
		Mode:       s.Mode,
		Paused:     s.Paused,
		Level:      s.Level,
		LevelName:  s.LevelName,
		Depth:      s.Depth,
		Ball:       BallState{Pos: s.Ball.Pos, Size: s.Ball.Size},
		Paddle1:    paddleState(s.Paddle1),
		Paddle2:    paddleState(s.Paddle2),
		Collision:  s.Collision,

		Step:        s.Step,
		BallLastPos: s.Ball.LastPos,
		BallLastVel: s.Ball.LastVel,
		EditField:   s.EditField,
		EditValue:   s.EditValue,
	}
}

func paddleState(p pong.PaddleView) PaddleState {
	return PaddleState{Pos: p.Pos, HalfWidth: p.HalfWidth, HalfHeight: p.HalfHeight, Score: p.Score}
}

func (m SnapshotMessage) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.MatchID)
	b = appendUint(b, 2, m.Tick)
	b = appendInt(b, 3, int64(m.Sequence))
	b = appendInt(b, 4, int64(m.Timer0))
	b = appendInt(b, 5, int64(m.Timer1))
	b = appendInt(b, 6, int64(m.Brightness))
	b = appendInt(b, 7, int64(m.Mode))
	b = appendBool(b, 8, m.Paused)
	b = appendInt(b, 9, int64(m.Level))
	b = appendString(b, 10, m.LevelName)
	b = appendInt(b, 11, int64(m.Depth))
	b = appendMessage(b, 12, m.Ball.marshal())
	b = appendMessage(b, 13, m.Paddle1.marshal())
	b = appendMessage(b, 14, m.Paddle2.marshal())
	b = appendInt(b, 15, int64(m.Collision))
	b = appendInt(b, 16, int64(m.Step))
	b = appendMessage(b, 17, marshalVec(m.BallLastPos))
	b = appendMessage(b, 18, marshalVec(m.BallLastVel))
	b = appendInt(b, 19, int64(m.EditField))
	b = appendInt(b, 20, int64(m.EditValue))
	return b
}

func UnmarshalSnapshot(b []byte) (SnapshotMessage, error) {
	var m SnapshotMessage
	err := walk(b, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		var (
			v   int64
			sub []byte
			err error
		)
		switch num {
		case 1:
			m.MatchID, err = stringField(typ, raw)
		case 2:
			m.Tick, err = varint(typ, raw)
		case 3:
			v, err = intField(typ, raw)
			m.Sequence = pong.SequenceID(v)
		case 4:
			v, err = intField(typ, raw)
			m.Timer0 = int(v)
		case 5:
			v, err = intField(typ, raw)
			m.Timer1 = int(v)
		case 6:
			v, err = intField(typ, raw)
			m.Brightness = int(v)
		case 7:
			v, err = intField(typ, raw)
			m.Mode = pong.Mode(v)
		case 8:
			m.Paused, err = boolField(typ, raw)
		case 9:
			v, err = intField(typ, raw)
			m.Level = int(v)
		case 10:
			m.LevelName, err = stringField(typ, raw)
		case 11:
			m.Depth, err = fixedField(typ, raw)
		case 12:
			if sub, err = bytesField(typ, raw); err == nil {
				m.Ball, err = unmarshalBall(sub)
			}
		case 13:
			if sub, err = bytesField(typ, raw); err == nil {
				m.Paddle1, err = unmarshalPaddle(sub)
			}
		case 14:
			if sub, err = bytesField(typ, raw); err == nil {
				m.Paddle2, err = unmarshalPaddle(sub)
			}
		case 15:
			v, err = intField(typ, raw)
			m.Collision = pong.CollisionKind(v)
		case 16:
			v, err = intField(typ, raw)
			m.Step = int(v)
		case 17:
			if sub, err = bytesField(typ, raw); err == nil {
				m.BallLastPos, err = unmarshalVec(sub)
			}
		case 18:
			if sub, err = bytesField(typ, raw); err == nil {
				m.BallLastVel, err = unmarshalVec(sub)
			}
		case 19:
			v, err = intField(typ, raw)
			m.EditField = pong.EditField(v)
		case 20:
			m.EditValue, err = fixedField(typ, raw)
		}
		return err
	})
	return m, err
}

func (s BallState) marshal() []byte {
	var b []byte
	b = appendMessage(b, 1, marshalVec(s.Pos))
	b = appendInt(b, 2, int64(s.Size))
	return b
}

func unmarshalBall(b []byte) (BallState, error) {
	var s BallState
	err := walk(b, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			sub, err := bytesField(typ, raw)
			if err != nil {
				return err
			}
			s.Pos, err = unmarshalVec(sub)
			return err
		case 2:
			var err error
			s.Size, err = fixedField(typ, raw)
			return err
		}
		return nil
	})
	return s, err
}

func (p PaddleState) marshal() []byte {
	var b []byte
	b = appendMessage(b, 1, marshalVec(p.Pos))
	b = appendInt(b, 2, int64(p.HalfWidth))
	b = appendInt(b, 3, int64(p.HalfHeight))
	b = appendInt(b, 4, int64(p.Score))
	return b
}

func unmarshalPaddle(b []byte) (PaddleState, error) {
	var p PaddleState
	err := walk(b, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		var err error
		switch num {
		case 1:
			var sub []byte
			if sub, err = bytesField(typ, raw); err == nil {
				p.Pos, err = unmarshalVec(sub)
			}
		case 2:
			p.HalfWidth, err = fixedField(typ, raw)
		case 3:
			p.HalfHeight, err = fixedField(typ, raw)
		case 4:
			var v int64
			v, err = intField(typ, raw)
			p.Score = int(v)
		}
		return err
	})
	return p, err
}

func marshalVec(v fixed.Vec3) []byte {
	var b []byte
	b = appendInt(b, 1, int64(v.X))
	b = appendInt(b, 2, int64(v.Y))
	b = appendInt(b, 3, int64(v.Z))
	return b
}

func unmarshalVec(b []byte) (fixed.Vec3, error) {
	var v fixed.Vec3
	err := walk(b, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		var err error
		switch num {
		case 1:
			v.X, err = fixedField(typ, raw)
		case 2:
			v.Y, err = fixedField(typ, raw)
		case 3:
			v.Z, err = fixedField(typ, raw)
		}
		return err
	})
	return v, err
}

// Zero values are left out, as proto3 does.

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// walk calls fn for every field in b with the field's raw value. Unknown
// fields are the caller's to ignore.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, raw []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		if err := fn(num, typ, b[:n]); err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func varint(typ protowire.Type, raw []byte) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("%w: wire type %d, want varint", ErrMalformed, typ)
	}
	v, n := protowire.ConsumeVarint(raw)
	if n < 0 {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
	}
	return v, nil
}

func intField(typ protowire.Type, raw []byte) (int64, error) {
	v, err := varint(typ, raw)
	return protowire.DecodeZigZag(v), err
}

func fixedField(typ protowire.Type, raw []byte) (fixed.Fixed, error) {
	v, err := intField(typ, raw)
	return fixed.Fixed(v), err
}

func boolField(typ protowire.Type, raw []byte) (bool, error) {
	v, err := varint(typ, raw)
	return protowire.DecodeBool(v), err
}

func bytesField(typ protowire.Type, raw []byte) ([]byte, error) {
	if typ != protowire.BytesType {
		return nil, fmt.Errorf("%w: wire type %d, want bytes", ErrMalformed, typ)
	}
	v, n := protowire.ConsumeBytes(raw)
	if n < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
	}
	return v, nil
}

func stringField(typ protowire.Type, raw []byte) (string, error) {
	v, err := bytesField(typ, raw)
	return string(v), err
}
