package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"pong3d/internal/pong"
)

var writerMatchCleaner = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

const (
	manifestName = "manifest.json"
	headerName   = "header.json"
	eventsName   = "events.jsonl.sz"
	inputsName   = "inputs.bin.zst"
)

// Manifest describes the replay bundle layout so tooling can locate artefacts.
type Manifest struct {
	Version    int    `json:"version"`
	CreatedAt  string `json:"created_at"`
	MatchID    string `json:"match_id"`
	RecordSize int    `json:"record_size"`
	HeaderPath string `json:"header_path"`
	EventsPath string `json:"events_path"`
	InputsPath string `json:"inputs_path"`
}

// Writer records one match: a record per tick into a zstd stream and notable
// moments as JSON lines into a snappy stream. The header is written on Close.
type Writer struct {
	mu          sync.Mutex
	dir         string
	now         func() time.Time
	eventFile   *os.File
	eventStream *snappy.Writer
	inputFile   *os.File
	inputStream *zstd.Encoder
	header      Header
	lastSeq     pong.SequenceID
	buf         []byte
}

// NewWriter creates the bundle directory <match>-<timestamp> under root and
// opens the compressed sinks. Ticks and Final in h are filled in by the writer.
func NewWriter(root string, h Header, clock func() time.Time) (*Writer, Manifest, error) {
	if root == "" {
		return nil, Manifest{}, fmt.Errorf("replay root must be provided")
	}
	if clock == nil {
		clock = time.Now
	}
	h.SchemaVersion = HeaderSchemaVersion
	h.Ticks = 0
	if err := h.Validate(); err != nil {
		return nil, Manifest{}, err
	}

	cleaned := writerMatchCleaner.ReplaceAllString(h.MatchID, "")
	if cleaned == "" {
		cleaned = "match"
	}
	created := clock().UTC()
	path := filepath.Join(root, fmt.Sprintf("%s-%s", cleaned, created.Format("20060102T150405Z")))
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, Manifest{}, err
	}

	manifest := Manifest{
		Version:    1,
		CreatedAt:  created.Format(time.RFC3339Nano),
		MatchID:    h.MatchID,
		RecordSize: RecordSize,
		HeaderPath: headerName,
		EventsPath: eventsName,
		InputsPath: inputsName,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, Manifest{}, err
	}
	if err := os.WriteFile(filepath.Join(path, manifestName), append(data, '\n'), 0o644); err != nil {
		return nil, Manifest{}, err
	}

	eventFile, err := os.Create(filepath.Join(path, eventsName))
	if err != nil {
		return nil, Manifest{}, err
	}
	inputFile, err := os.Create(filepath.Join(path, inputsName))
	if err != nil {
		eventFile.Close()
		return nil, Manifest{}, err
	}
	inputStream, err := zstd.NewWriter(inputFile)
	if err != nil {
		eventFile.Close()
		inputFile.Close()
		return nil, Manifest{}, err
	}

	w := &Writer{
		dir:         path,
		now:         clock,
		eventFile:   eventFile,
		eventStream: snappy.NewBufferedWriter(eventFile),
		inputFile:   inputFile,
		inputStream: inputStream,
		header:      h,
	}
	return w, manifest, nil
}

// Directory exposes the directory backing the replay bundle.
func (w *Writer) Directory() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// Begin logs the state the match starts from.
func (w *Writer) Begin(s pong.Snapshot) error {
	w.mu.Lock()
	w.lastSeq = s.Sequence
	w.header.Final = s
	w.mu.Unlock()

	return w.AppendEvent(s.Tick, "start", startEvent{Level: s.Level, Name: s.LevelName, Sequence: s.Sequence.String()})
}

type startEvent struct {
	Level    int    `json:"level"`
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

type collisionEvent struct {
	Kind   string `json:"kind"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
}

type sequenceEvent struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Level int    `json:"level"`
}

// Capture appends the record for one tick along with events for anything
// visible in s, the snapshot taken right after the tick.
func (w *Writer) Capture(r Record, s pong.Snapshot) error {
	if w == nil {
		return fmt.Errorf("writer not initialised")
	}

	w.mu.Lock()
	w.buf = r.appendBinary(w.buf[:0])
	if _, err := w.inputStream.Write(w.buf); err != nil {
		w.mu.Unlock()
		return err
	}
	w.header.Ticks++
	w.header.Final = s
	prev := w.lastSeq
	w.lastSeq = s.Sequence
	w.mu.Unlock()

	if s.Collision != pong.CollisionNone {
		ev := collisionEvent{Kind: s.Collision.String(), Score1: s.Paddle1.Score, Score2: s.Paddle2.Score}
		if err := w.AppendEvent(r.Tick, "collision", ev); err != nil {
			return err
		}
	}
	if s.Sequence != prev {
		ev := sequenceEvent{From: prev.String(), To: s.Sequence.String(), Level: s.Level}
		if err := w.AppendEvent(r.Tick, "sequence", ev); err != nil {
			return err
		}
	}
	return nil
}

// AppendEvent writes a single JSON event line to the compressed event log.
func (w *Writer) AppendEvent(tick uint64, eventType string, payload any) error {
	if w == nil {
		return fmt.Errorf("writer not initialised")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	line, err := json.Marshal(Event{
		Tick:       tick,
		CapturedAt: w.now().UTC().Format(time.RFC3339Nano),
		Type:       eventType,
		Payload:    body,
	})
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.eventStream.Write(append(line, '\n')); err != nil {
		return err
	}
	return w.eventStream.Flush()
}

// Close writes the header and releases file handles. Every step is attempted
// and the first failure is returned.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	keep(WriteHeader(filepath.Join(w.dir, headerName), w.header))
	keep(w.eventStream.Close())
	keep(w.eventFile.Close())
	keep(w.inputStream.Close())
	keep(w.inputFile.Close())
	return firstErr
}
