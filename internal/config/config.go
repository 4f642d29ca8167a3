package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

var Config Configuration

type Configuration struct {
	LogLevel   int    `json:"logLevel"`
	ListenAddr string `json:"listenAddr"`
	TickRate   int    `json:"tickRate"`
	LevelsPath string `json:"levelsPath"`
	SaveLevels bool   `json:"saveLevels"`
	ReplayDir  string `json:"replayDir"`
}

const (
	DefaultListenAddr = "127.0.0.1:12345"
	DefaultTickRate   = 20
)

func Default() Configuration {
	return Configuration{
		ListenAddr: DefaultListenAddr,
		TickRate:   DefaultTickRate,
	}
}

// LoadConfig reads the JSON config at path, or config.json when path is empty.
// Missing or unreadable files fall back to the defaults; fields left out of the
// file keep their default values.
func LoadConfig(path string) Configuration {
	var c = Default()

	if path == "" {
		path = "config.json"
	}
	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
		Config = c
		return c
	}

	err = json.Unmarshal(cf, &c)
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		c = Default()
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}

	Config = c
	return c
}
