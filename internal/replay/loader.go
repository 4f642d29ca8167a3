package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

var ErrCorrupt = errors.New("corrupt replay")

// Event is one line of the event log.
type Event struct {
	Tick       uint64          `json:"tick"`
	CapturedAt string          `json:"captured_at"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
}

// Recording is a replay bundle loaded back from disk.
type Recording struct {
	Dir      string
	Manifest Manifest
	Header   Header
	Inputs   []Record
}

// Load reads the manifest, header and every input record of the bundle in dir.
func Load(dir string) (*Recording, error) {
	if dir == "" {
		return nil, fmt.Errorf("replay path must be provided")
	}
	manifest, err := readManifest(dir)
	if err != nil {
		return nil, err
	}
	header, err := ReadHeader(filepath.Join(dir, manifest.HeaderPath))
	if err != nil {
		return nil, err
	}
	if manifest.RecordSize != RecordSize {
		return nil, fmt.Errorf("%w: record size %d, want %d", ErrCorrupt, manifest.RecordSize, RecordSize)
	}

	file, err := os.Open(filepath.Join(dir, manifest.InputsPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(data)%RecordSize)
	}
	if n := uint64(len(data) / RecordSize); n != header.Ticks {
		return nil, fmt.Errorf("%w: %d records, header says %d", ErrCorrupt, n, header.Ticks)
	}

	inputs := make([]Record, 0, header.Ticks)
	for off := 0; off < len(data); off += RecordSize {
		inputs = append(inputs, decodeRecord(data[off:off+RecordSize]))
	}

	return &Recording{Dir: dir, Manifest: manifest, Header: header, Inputs: inputs}, nil
}

// LoadEvents decodes the event log of the bundle in dir, in write order.
func LoadEvents(dir string) ([]Event, error) {
	manifest, err := readManifest(dir)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, manifest.EventsPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(snappy.NewReader(file))
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrCorrupt, len(events), err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return events, nil
}

func readManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: manifest: %v", ErrCorrupt, err)
	}
	return m, nil
}
