package main

import (
	"fmt"
	"log/slog"
	"os"

	"pong3d/internal/client"
	"pong3d/internal/config"
	"pong3d/internal/netwrk"
)

// Usage: client [config.json] [host:port]
func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	slog.SetLogLoggerLevel(slog.Level(config.Config.LogLevel))

	addr := config.Config.ListenAddr
	if len(os.Args) > 2 {
		addr = os.Args[2]
	}

	fmt.Println("Welcome to pong3d!")

	c, err := netwrk.Connect(addr)
	if err != nil {
		fmt.Println("Sorry, failed to connect to server...", err)
		os.Exit(1)
	}
	defer c.Close()

	if err := client.Game(c); err != nil {
		fmt.Println(err)
	}
}
