// Package lobby runs matches for connected players. Each connection gets its
// own game against the AI, advanced on a fixed ticker.
package lobby

import (
	"bufio"
	"errors"
	"io"
	"log"
	"log/slog"
	"net"
	"sort"
	"sync"
	"time"

	"pong3d/internal/levels"
	"pong3d/internal/netwrk"
)

const DefaultTickRate = 20

type Lobby struct {
	matches   sync.Map
	tickRate  int
	replayDir string
	levels    func() (*levels.Catalog, levels.Journal, error)

	savePath string
	saveMu   sync.Mutex
}

type Options struct {
	// Ticks per second. Zero uses DefaultTickRate.
	TickRate int

	// When set, every match is recorded under this directory.
	ReplayDir string

	// Levels returns a fresh catalog for each match; matches edit their own copy.
	// A journal with stages in it resumes at its level and mode, paused.
	// Nil uses the built-in stages.
	Levels func() (*levels.Catalog, levels.Journal, error)

	// When set, a match writes its stage list here when it ends.
	SavePath string
}

func CreateLobby(opts Options) *Lobby {
	l := &Lobby{
		tickRate:  opts.TickRate,
		replayDir: opts.ReplayDir,
		levels:    opts.Levels,
		savePath:  opts.SavePath,
	}
	if l.tickRate <= 0 {
		l.tickRate = DefaultTickRate
	}
	if l.levels == nil {
		l.levels = func() (*levels.Catalog, levels.Journal, error) {
			return levels.DefaultCatalog(), levels.Journal{}, nil
		}
	}
	return l
}

// Len is the number of running matches.
func (l *Lobby) Len() int {
	n := 0
	l.matches.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// MatchIDs lists the running matches in lexical order.
func (l *Lobby) MatchIDs() []string {
	var ids []string
	l.matches.Range(func(id, _ any) bool {
		ids = append(ids, id.(string))
		return true
	})
	sort.Strings(ids)
	return ids
}

// HandleConnection plays one match over conn and returns when the player quits
// or disconnects.
func (l *Lobby) HandleConnection(conn net.Conn) {
	defer conn.Close()

	m, err := l.newMatch(conn.RemoteAddr().String())
	if err != nil {
		slog.Error("could not start match", slog.Any("error", err))
		return
	}
	defer l.finish(m)

	l.matches.Store(m.ID, m)
	defer l.matches.Delete(m.ID)
	slog.Info("match started", slog.String("match", m.ID), slog.String("remote", m.Remote))

	ingress := make(chan netwrk.InputMessage, 16)
	egress := make(chan netwrk.SnapshotMessage, 4)
	done := make(chan struct{})
	defer close(done)
	defer close(egress)

	// Network reader
	go func() {
		defer close(ingress)
		r := bufio.NewReader(conn)
		for {
			frame, err := netwrk.ReadFrame(r)
			if err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.ErrClosedPipe) {
					log.Println("Error reading message", err)
				}
				return
			}
			msg, err := netwrk.UnmarshalInput(frame)
			if err != nil {
				log.Println("Invalid message received from client", err)
				continue
			}
			select {
			case ingress <- msg:
			case <-done:
				return
			}
		}
	}()

	// Network writer
	go func() {
		for msg := range egress {
			if err := netwrk.WriteFrame(conn, msg.Marshal()); err != nil {
				slog.Debug("player has disconnected", slog.String("match", msg.MatchID), slog.Any("error", err))
				conn.Close()
				for range egress {
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ingress:
			if !ok {
				slog.Info("match ended, player disconnected", slog.String("match", m.ID))
				return
			}
			if m.handleClientMessage(msg) {
				slog.Info("match ended, player quit", slog.String("match", m.ID))
				return
			}
		case <-ticker.C:
			s := m.step()
			select {
			case egress <- netwrk.NewSnapshotMessage(m.ID, s):
			default:
				slog.Debug("dropping snapshot for slow client", slog.String("match", m.ID), slog.Uint64("tick", s.Tick))
			}
		}
	}
}
