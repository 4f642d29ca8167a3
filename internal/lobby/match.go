package lobby

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pong3d/internal/levels"
	"pong3d/internal/netwrk"
	"pong3d/internal/pong"
	"pong3d/internal/replay"
)

// Match is one player against the AI.
type Match struct {
	ID      string
	Remote  string
	Started time.Time

	game     *pong.Game
	input    pong.Input
	pending  []pong.Command
	tick     uint64
	recorder *replay.Writer
}

func (l *Lobby) newMatch(remote string) (*Match, error) {
	c, j, err := l.levels()
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}

	id := uuid.NewString()
	h := replay.Header{
		SchemaVersion: replay.HeaderSchemaVersion,
		MatchID:       id,
		Levels:        c.Stages(),
		StartLevel:    c.Index(j.CurLevel),
		StartPaused:   len(j.Stages) > 0,
	}
	if j.Mode == int(pong.ModeEdit) {
		h.StartMode = pong.ModeEdit
	}
	g, err := replay.NewGame(h)
	if err != nil {
		return nil, fmt.Errorf("starting game: %w", err)
	}

	m := &Match{
		ID:      id,
		Remote:  remote,
		Started: time.Now(),
		game:    g,
	}

	if l.replayDir != "" {
		w, _, err := replay.NewWriter(l.replayDir, h, nil)
		if err != nil {
			slog.Error("replay disabled for match", slog.String("match", m.ID), slog.Any("error", err))
			return m, nil
		}
		if err := w.Begin(m.game.Snapshot()); err != nil {
			slog.Error("replay disabled for match", slog.String("match", m.ID), slog.Any("error", err))
			w.Close()
			return m, nil
		}
		m.recorder = w
	}
	return m, nil
}

// handleClientMessage applies one message from the client. It reports whether
// the player asked to leave. Commands queue up and are applied one per tick.
func (m *Match) handleClientMessage(msg netwrk.InputMessage) bool {
	switch msg.Command {
	case "":
		m.input = msg.Input()
	case netwrk.CommandQuit:
		return true
	default:
		c, ok := pong.ParseCommand(msg.Command)
		if !ok {
			slog.Debug("unknown command from client", slog.String("match", m.ID), slog.String("command", msg.Command))
			return false
		}
		m.pending = append(m.pending, c)
	}
	return false
}

// step advances the game one tick and returns the snapshot to send.
func (m *Match) step() pong.Snapshot {
	m.tick++
	r := replay.Record{Tick: m.tick, Input: m.input}
	if len(m.pending) > 0 {
		r.Command = m.pending[0]
		m.pending = m.pending[1:]
	}

	replay.Step(m.game, r)
	s := m.game.Snapshot()

	if m.recorder != nil {
		if err := m.recorder.Capture(r, s); err != nil {
			slog.Error("replay capture failed, recording stopped", slog.String("match", m.ID), slog.Any("error", err))
			m.recorder.Close()
			m.recorder = nil
		}
	}
	return s
}

// finish saves the match's stage list when the lobby keeps one, then closes
// the recording.
func (l *Lobby) finish(m *Match) {
	if l.savePath != "" {
		l.saveMu.Lock()
		err := levels.Save(l.savePath, m.game.Levels(), m.game.Level(), int(m.game.Mode()))
		l.saveMu.Unlock()
		if err != nil {
			slog.Error("failed to save levels", slog.String("match", m.ID), slog.String("path", l.savePath), slog.Any("error", err))
		} else {
			slog.Debug("levels saved", slog.String("match", m.ID), slog.String("path", l.savePath))
		}
	}
	m.close()
}

func (m *Match) close() {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Close(); err != nil {
		slog.Error("failed to finish replay", slog.String("match", m.ID), slog.Any("error", err))
		return
	}
	slog.Info("replay saved", slog.String("match", m.ID), slog.String("dir", m.recorder.Directory()))
}
