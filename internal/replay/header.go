package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pong3d/internal/levels"
	"pong3d/internal/pong"
)

// HeaderSchemaVersion tracks the schema version for replay header documents.
const HeaderSchemaVersion = 1

var ErrInvalidHeader = errors.New("invalid replay header")

// Header describes how a recording starts and how it ended. Final is the
// snapshot after the last recorded tick; re-running the inputs must reproduce it.
type Header struct {
	SchemaVersion int                 `json:"schema_version"`
	MatchID       string              `json:"match_id"`
	Levels        []levels.Descriptor `json:"levels"`
	StartLevel    int                 `json:"start_level"`
	StartMode     pong.Mode           `json:"start_mode,omitempty"`
	StartPaused   bool                `json:"start_paused,omitempty"`
	Ticks         uint64              `json:"ticks"`
	Final         pong.Snapshot       `json:"final"`
}

func (h Header) Validate() error {
	if h.SchemaVersion <= 0 {
		return fmt.Errorf("%w: schema_version must be positive", ErrInvalidHeader)
	}
	if strings.TrimSpace(h.MatchID) == "" {
		return fmt.Errorf("%w: match_id must not be empty", ErrInvalidHeader)
	}
	if len(h.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalidHeader)
	}
	if h.StartLevel < 0 || h.StartLevel >= len(h.Levels) {
		return fmt.Errorf("%w: start_level %d out of range", ErrInvalidHeader, h.StartLevel)
	}
	if h.StartMode != pong.ModeGame && h.StartMode != pong.ModeEdit {
		return fmt.Errorf("%w: unknown start_mode %d", ErrInvalidHeader, h.StartMode)
	}
	return nil
}

// WriteHeader persists the supplied header to path as indented JSON.
func WriteHeader(path string, header Header) error {
	if err := header.Validate(); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(header, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(payload, '\n'), 0o644)
}

func ReadHeader(path string) (Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Header{}, err
	}
	var header Header
	if err := json.Unmarshal(data, &header); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if err := header.Validate(); err != nil {
		return Header{}, err
	}
	return header, nil
}
