package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Journal is the saved game document: the stage list plus where the player was.
type Journal struct {
	Stages   []Descriptor `json:"Stages"`
	CurLevel int          `json:"curlevel"`
	Mode     int          `json:"mode"`
}

type tomlFile struct {
	Stage []Descriptor `toml:"stage"`
}

// Load reads a stage list, picking the format from the file extension.
func Load(path string) (*Catalog, Journal, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		c, err := LoadTOML(path)
		if err != nil {
			return nil, Journal{}, err
		}
		return c, Journal{Stages: c.Stages()}, nil
	default:
		return LoadJSON(path)
	}
}

// Save writes c back in the format Load would pick for path. TOML stage
// lists have no place for the current level or mode, so those are dropped.
func Save(path string, c *Catalog, curLevel, mode int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SaveTOML(path, c)
	default:
		return SaveJSON(path, c, curLevel, mode)
	}
}

func LoadJSON(path string) (*Catalog, Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Journal{}, fmt.Errorf("read levels: %w", err)
	}
	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, Journal{}, fmt.Errorf("decode levels %s: %w", path, err)
	}
	c, err := NewCatalog(j.Stages)
	if err != nil {
		return nil, Journal{}, err
	}
	j.CurLevel = c.Index(j.CurLevel)
	return c, j, nil
}

func SaveJSON(path string, c *Catalog, curLevel, mode int) error {
	j := Journal{Stages: c.Stages(), CurLevel: curLevel, Mode: mode}
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func LoadTOML(path string) (*Catalog, error) {
	var f tomlFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode levels %s: %w", path, err)
	}
	return NewCatalog(f.Stage)
}

func SaveTOML(path string, c *Catalog) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	if err := toml.NewEncoder(fh).Encode(tomlFile{Stage: c.Stages()}); err != nil {
		return fmt.Errorf("encode levels: %w", err)
	}
	return nil
}
