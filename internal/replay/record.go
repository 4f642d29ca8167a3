package replay

import (
	"encoding/binary"

	"pong3d/internal/fixed"
	"pong3d/internal/pong"
)

// RecordSize is the encoded size of one Record: tick, pointer x and y, a
// flags byte and a command byte, little endian.
const RecordSize = 8 + 8 + 8 + 1 + 1

const (
	flagDown = 1 << iota
	flagHeld
)

// Record is everything the driver fed the game on one tick.
type Record struct {
	Tick    uint64
	Input   pong.Input
	Command pong.Command
}

func (r Record) appendBinary(b []byte) []byte {
	var flags byte
	if r.Input.Down {
		flags |= flagDown
	}
	if r.Input.Held {
		flags |= flagHeld
	}
	b = binary.LittleEndian.AppendUint64(b, r.Tick)
	b = binary.LittleEndian.AppendUint64(b, uint64(r.Input.X))
	b = binary.LittleEndian.AppendUint64(b, uint64(r.Input.Y))
	return append(b, flags, byte(r.Command))
}

// decodeRecord reads one record; b must hold at least RecordSize bytes.
func decodeRecord(b []byte) Record {
	flags := b[24]
	return Record{
		Tick: binary.LittleEndian.Uint64(b[0:8]),
		Input: pong.Input{
			X:    fixed.Fixed(binary.LittleEndian.Uint64(b[8:16])),
			Y:    fixed.Fixed(binary.LittleEndian.Uint64(b[16:24])),
			Down: flags&flagDown != 0,
			Held: flags&flagHeld != 0,
		},
		Command: pong.Command(b[25]),
	}
}

// Step feeds r to g and advances one tick. Live matches and replays both go
// through here so they cannot drift apart.
func Step(g *pong.Game, r Record) {
	g.Apply(r.Command)
	g.SetInput(r.Input)
	g.Tick()
}
