// Command sim plays a headless match with a scripted bot, optionally records
// it and checks the recording replays to the same final state.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pong3d/internal/levels"
	"pong3d/internal/replay"
)

func main() {
	ticks := flag.Int("ticks", 3000, "number of ticks to simulate")
	seed := flag.Uint64("seed", 1, "bot random seed")
	jitter := flag.Int("jitter", 6, "bot aim error in stage units")
	level := flag.Int("level", -1, "starting level; the stage file's saved level when negative")
	levelsPath := flag.String("levels", "", "stage list (.json or .toml); built-in stages when empty")
	replayDir := flag.String("replay", "", "directory to record the match into")
	verify := flag.Bool("verify", false, "replay the recording and compare final states")
	save := flag.String("save", "", "write the stage list with this run's results (.json or .toml)")
	logLevel := flag.Int("log", int(slog.LevelInfo), "slog level")
	flag.Parse()

	slog.SetLogLoggerLevel(slog.Level(*logLevel))

	if err := run(*ticks, *seed, *jitter, *level, *levelsPath, *replayDir, *save, *verify); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ticks int, seed uint64, jitter, level int, levelsPath, replayDir, savePath string, verify bool) error {
	c := levels.DefaultCatalog()
	var j levels.Journal
	if levelsPath != "" {
		var err error
		c, j, err = levels.Load(levelsPath)
		if err != nil {
			return fmt.Errorf("failed to load levels: %w", err)
		}
	}
	if level < 0 {
		level = j.CurLevel
	}

	header := replay.Header{
		SchemaVersion: replay.HeaderSchemaVersion,
		MatchID:       fmt.Sprintf("sim-%d", seed),
		Levels:        c.Stages(),
		StartLevel:    c.Index(level),
	}
	g, err := replay.NewGame(header)
	if err != nil {
		return err
	}

	var w *replay.Writer
	if replayDir != "" {
		w, _, err = replay.NewWriter(replayDir, header, time.Now)
		if err != nil {
			return fmt.Errorf("failed to start recording: %w", err)
		}
		if err := w.Begin(g.Snapshot()); err != nil {
			w.Close()
			return fmt.Errorf("failed to start recording: %w", err)
		}
	}

	b := newBot(seed, jitter)
	for range ticks {
		r := b.next(g.Snapshot())
		replay.Step(g, r)
		if w != nil {
			if err := w.Capture(r, g.Snapshot()); err != nil {
				w.Close()
				return fmt.Errorf("failed to record tick %d: %w", r.Tick, err)
			}
		}
	}

	s := g.Snapshot()
	fmt.Printf("tick %d level %d %s sequence %s score %d:%d total %d rating %d\n",
		s.Tick, s.Level, s.LevelName, s.Sequence, s.Paddle1.Score, s.Paddle2.Score, g.TotalScore(), g.Rating())

	if savePath != "" {
		if err := levels.Save(savePath, g.Levels(), g.Level(), int(g.Mode())); err != nil {
			if w != nil {
				w.Close()
			}
			return fmt.Errorf("failed to save levels: %w", err)
		}
	}

	if w == nil {
		return nil
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish recording: %w", err)
	}
	fmt.Println("recorded", w.Directory())

	if !verify {
		return nil
	}
	rec, err := replay.Load(w.Directory())
	if err != nil {
		return err
	}
	if err := replay.Verify(rec); err != nil {
		return err
	}
	fmt.Println("replay verified")
	return nil
}
