package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"pong3d/internal/config"
	"pong3d/internal/levels"
	"pong3d/internal/lobby"
	"pong3d/internal/netwrk"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	slog.SetLogLoggerLevel(slog.Level(config.Config.LogLevel))

	opts := lobby.Options{
		TickRate:  config.Config.TickRate,
		ReplayDir: config.Config.ReplayDir,
	}
	if path := config.Config.LevelsPath; path != "" {
		// Fail fast on a broken stage file rather than on the first connection.
		if _, _, err := levels.Load(path); err != nil {
			log.Fatalf("failed to load levels from %s: %v", path, err)
		}
		opts.Levels = func() (*levels.Catalog, levels.Journal, error) {
			return levels.Load(path)
		}
		if config.Config.SaveLevels {
			opts.SavePath = path
		}
	}

	l := lobby.CreateLobby(opts)

	fmt.Println("Starting pong3d server on", config.Config.ListenAddr)
	if err := netwrk.Listen(config.Config.ListenAddr, l.HandleConnection); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
