package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/chomp/config"
	"github.com/plus3/chomp/debugui"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/render/ebitensurface"
	"github.com/plus3/chomp/replay"
	"github.com/plus3/chomp/scores"
)

var steerKeys = map[ebiten.Key]game.Direction{
	ebiten.KeyArrowLeft:  game.DirLeft,
	ebiten.KeyArrowRight: game.DirRight,
	ebiten.KeyArrowUp:    game.DirUp,
	ebiten.KeyArrowDown:  game.DirDown,
}

// host implements ebiten.Game.
type host struct {
	cfg     config.Config
	game    *game.Game
	surface *ebitensurface.Surface
	overlay *debugui.Overlay

	scores   *scores.DB
	recorder *replay.Recorder
	playback *replay.Cursor

	// One scoreboard row per run; runStart is the tick the run began on.
	recorded bool
	runStart uint64
}

func (h *host) Update() error {
	if h.overlay != nil {
		h.overlay.Update()
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.playback != nil {
		if h.playback.Done() {
			return nil
		}
		h.playback.Apply(h.game)
	} else if h.overlay == nil || !h.overlay.WantCaptureKeyboard() {
		h.readKeys()
	}

	h.game.AdvanceFrame(h.surface)

	if h.playback != nil && !h.playback.Advance(h.game) {
		if err := h.playback.Verify(h.game); err != nil {
			log.Printf("Replay: %v", err)
		} else {
			log.Printf("Replay finished: %s, score %d", h.game.State(), h.game.Session().Score)
		}
	}

	h.recordScore()
	return nil
}

func (h *host) readKeys() {
	for key, dir := range steerKeys {
		if inpututil.IsKeyJustPressed(key) {
			h.game.Steer(dir)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		h.game.Reset()
	}
}

// trackRuns starts a new scoreboard run on every reset, including those
// issued from the debug overlay.
func (h *host) trackRuns() {
	h.game.ObserveCommands(func(tick uint64, cmd game.Command) {
		if cmd.Kind == game.CommandReset {
			h.recorded = false
			h.runStart = tick
		}
	})
}

// recordScore stores the run once it has ended.
func (h *host) recordScore() {
	if h.scores == nil || h.recorded || h.playback != nil || !h.game.State().Terminal() {
		return
	}
	h.recorded = true

	e := scores.FromSession(h.cfg.Player, h.game.Session(), h.game.Tick()-h.runStart)
	if _, err := h.scores.Record(e); err != nil {
		log.Printf("Failed to record score: %v", err)
		return
	}
	if best, err := h.scores.Best(e.Level); err == nil && best != nil {
		log.Printf("Run over: %s with %d/%d, best on %s is %d by %s", e.Outcome, e.Score, e.Total, e.Level, best.Score, best.Player)
	}
}

// finish flushes the recording and closes the scoreboard.
func (h *host) finish() {
	if h.scores != nil {
		if err := h.scores.Close(); err != nil {
			log.Printf("Failed to close scoreboard: %v", err)
		}
	}
	if h.recorder == nil {
		return
	}
	rl := h.recorder.Finish()
	if err := replay.Save(h.cfg.Record, rl); err != nil {
		log.Printf("Failed to save replay: %v", err)
		return
	}
	log.Printf("Saved %d commands over %d frames to %s", len(rl.Entries), rl.Frames, h.cfg.Record)
}

func (h *host) Draw(screen *ebiten.Image) {
	h.surface.DrawTo(screen)
	if h.overlay != nil {
		h.overlay.Draw(screen)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.overlay != nil {
		h.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.surface.Size()
}
