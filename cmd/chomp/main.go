// Command chomp plays a level in a desktop window.
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/chomp/config"
	"github.com/plus3/chomp/debugui"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/render/ebitensurface"
	"github.com/plus3/chomp/replay"
	"github.com/plus3/chomp/scores"
)

const debugPanelWidth = 420

func main() {
	cfg, err := config.Load("chomp", os.Args[1:], ".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lvl, err := cfg.LoadLevel()
	if err != nil {
		log.Fatalf("Failed to load level %q: %v", cfg.Level, err)
	}

	h := &host{
		cfg:     cfg,
		game:    game.New(lvl),
		surface: ebitensurface.New(lvl, cfg.Scale),
	}

	switch {
	case cfg.Replay != "":
		rl, err := replay.Load(cfg.Replay)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if rl.Level != lvl.Name {
			log.Fatalf("Replay was recorded on level %q, not %q", rl.Level, lvl.Name)
		}
		h.playback = replay.NewCursor(rl)
	case cfg.Record != "":
		h.recorder = replay.Attach(h.game)
	}

	// Opened last: nothing after this exits without going through finish.
	if cfg.DB != "" {
		h.scores, err = scores.Open(cfg.DB)
		if err != nil {
			log.Fatalf("Failed to open scoreboard: %v", err)
		}
		h.trackRuns()
	}

	w, ht := h.surface.Size()
	title := "chomp - " + lvl.Name
	if cfg.Debug {
		h.overlay = debugui.New(title, w+debugPanelWidth, ht)
		h.overlay.AddGameWindows(h.game)
	} else {
		ebiten.SetWindowSize(w, ht)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(cfg.TPS)

	err = ebiten.RunGame(h)
	h.finish()
	if err != nil {
		log.Printf("Game exited with error: %v", err)
		os.Exit(1)
	}
}
