package client

import (
	"fmt"
	"log/slog"
	"os"

	"pong3d/internal/ansii"
	"pong3d/internal/netwrk"
	"pong3d/internal/renderer"
)

// Game runs the terminal client until the player quits or the connection
// drops.
func Game(c *netwrk.Client) error {
	fmt.Println("Connected to game!")

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return fmt.Errorf("failed to make terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.HideCursor))
	defer os.Stdout.WriteString(string(ansii.Screen.ShowCursor))

	ctl := NewController()
	quit := make(chan error, 2)

	// Network reader
	go func() {
		for {
			s, err := c.ReadSnapshot()
			if err != nil {
				slog.Debug("failed to read from game connection", slog.Any("error", err))
				quit <- fmt.Errorf("lost connection to server: %w", err)
				return
			}
			ctl.Observe(s)
			renderer.Render(s)
		}
	}()

	// Input handler
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				quit <- fmt.Errorf("error reading from stdin: %w", err)
				return
			}
			for _, key := range renderer.DecodeKeys(buf[:n]) {
				msg, send, done := ctl.HandleAction(renderer.ProcessInput(key))
				if send {
					if err := c.SendInput(msg); err != nil {
						quit <- fmt.Errorf("failed to send input: %w", err)
						return
					}
				}
				if done {
					quit <- nil
					return
				}
			}
		}
	}()

	return <-quit
}
