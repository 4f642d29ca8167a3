package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	cases := []struct {
		name string
		path string
		want Configuration
	}{
		{
			name: "full",
			path: write("full.json", `{"logLevel": -4, "listenAddr": ":9000", "tickRate": 60, "levelsPath": "stages.toml", "saveLevels": true, "replayDir": "replays"}`),
			want: Configuration{LogLevel: -4, ListenAddr: ":9000", TickRate: 60, LevelsPath: "stages.toml", SaveLevels: true, ReplayDir: "replays"},
		},
		{
			name: "partial keeps defaults",
			path: write("partial.json", `{"replayDir": "out"}`),
			want: Configuration{ListenAddr: DefaultListenAddr, TickRate: DefaultTickRate, ReplayDir: "out"},
		},
		{
			name: "bad tick rate",
			path: write("zero.json", `{"tickRate": 0}`),
			want: Default(),
		},
		{
			name: "malformed",
			path: write("bad.json", `{"logLevel": `),
			want: Default(),
		},
		{
			name: "missing",
			path: filepath.Join(dir, "missing.json"),
			want: Default(),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LoadConfig(c.path)
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
			if Config != got {
				t.Fatalf("package config not updated")
			}
		})
	}
}
