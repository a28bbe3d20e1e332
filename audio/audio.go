// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/chomp/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	// Scales the unit-amplitude tones down to a comfortable level.
	cueGain = -0.8
)

// Cue is a sound effect.
type Cue uint8

const (
	CueCollect Cue = iota
	CueTeleport
	CueLevelComplete
	CueCaptured
	CueWon
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueCollect:       {{880, 30 * time.Millisecond}},
	CueTeleport:      {{440, 40 * time.Millisecond}, {660, 40 * time.Millisecond}},
	CueLevelComplete: {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 120 * time.Millisecond}},
	CueCaptured:      {{330, 120 * time.Millisecond}, {247, 120 * time.Millisecond}, {165, 240 * time.Millisecond}},
	CueWon:           {{523, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 300 * time.Millisecond}},
}

// CueFor maps an event to its cue.
func CueFor(ev game.Event) (Cue, bool) {
	switch ev.Kind {
	case game.EventCollected:
		return CueCollect, true
	case game.EventTeleported:
		return CueTeleport, true
	case game.EventLevelComplete:
		return CueLevelComplete, true
	case game.EventCaptured:
		return CueCaptured, true
	case game.EventWon:
		return CueWon, true
	}
	return 0, false
}

// Streamer renders c as a finite stream.
func Streamer(c Cue) (beep.Streamer, error) {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: cueGain}, nil
}

// Player mixes cues onto the speaker. The zero value is silent until Init
// succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues c.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Streamer(c)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Handle plays the cue for ev; it can be passed to game.Game.Subscribe.
func (p *Player) Handle(ev game.Event) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
