// Command chomp-soak runs a level headlessly under generated input and
// reports throughput, per-system timings and how the runs ended.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/chomp/config"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/plus3/chomp/replay"
)

var directions = []game.Direction{game.DirLeft, game.DirRight, game.DirUp, game.DirDown}

func main() {
	var (
		dumpLevel      bool
		gcPauseMetrics bool
		turnEvery      int
	)
	cfg, err := config.LoadFlags("chomp-soak", os.Args[1:], func(flags *flag.FlagSet) {
		flags.BoolVar(&dumpLevel, "dump-level", false, "Print the level as YAML and exit.")
		flags.BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
		flags.IntVar(&turnEvery, "turn-every", 15, "Average number of frames between generated turns.")
	}, ".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lvl, err := cfg.LoadLevel()
	if err != nil {
		log.Fatalf("Failed to load level %q: %v", cfg.Level, err)
	}

	if dumpLevel {
		if err := level.Encode(os.Stdout, lvl); err != nil {
			log.Fatalf("Failed to encode level: %v", err)
		}
		return
	}

	if cfg.Replay != "" {
		verifyReplay(lvl, cfg.Replay)
		return
	}

	if turnEvery < 1 {
		turnEvery = 1
	}

	log.Printf("Soaking level %q for %d frames...", lvl.Name, cfg.Frames)

	g := game.New(lvl)
	surface := &game.Recorder{}

	report := &Report{
		Level:          lvl.Name,
		Frames:         cfg.Frames,
		Limit:          cfg.Duration,
		Seed:           cfg.Seed,
		GCPauseMetrics: gcPauseMetrics,
		Outcomes:       make(map[string]int),
		Events:         make(map[string]int),
		UpdateTime:     Stats{Samples: make([]time.Duration, 0, cfg.Frames)},
	}
	g.Subscribe(func(ev game.Event) {
		report.Events[ev.Kind.String()]++
	})

	var rec *replay.Recorder
	if cfg.Record != "" {
		rec = replay.Attach(g)
	}

	ctx := context.Background()
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if rng.IntN(turnEvery) == 0 {
			g.Steer(directions[rng.IntN(len(directions))])
		}

		surface.Reset()
		updateStart := time.Now()
		g.AdvanceFrame(surface)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.DrawCalls += int64(len(surface.Calls))
		report.TotalFrames++

		if s := g.Session(); s.State.Terminal() {
			report.Outcomes[s.State.String()]++
			if s.Score > report.BestScore {
				report.BestScore = s.Score
			}
			g.Reset()
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Systems = g.Stats().Systems
	report.RailTriggers = g.RailTriggers()

	if rec != nil {
		rl := rec.Finish()
		if err := replay.Save(cfg.Record, rl); err != nil {
			log.Fatalf("Failed to save replay: %v", err)
		}
		log.Printf("Saved %d commands to %s", len(rl.Entries), cfg.Record)
	}

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func verifyReplay(lvl *level.Level, path string) {
	rl, err := replay.Load(path)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}

	surface := &game.Recorder{}
	g, err := replay.Play(lvl, rl, surface)
	if err != nil {
		log.Fatalf("Replay %s: %v", path, err)
	}

	s := g.Session()
	log.Printf("Replay %s verified: %d frames, %d commands, %s with %d/%d",
		path, rl.Frames, len(rl.Entries), s.State, s.Score, s.Total())
}
