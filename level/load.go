package level

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid level")

// railTraceLimit bounds TraceRail during validation; a rail on a 500x500
// canvas cannot be longer than a few thousand frames at speed 1.
const railTraceLimit = 1 << 16

// Load decodes a YAML level and validates it.
func Load(r io.Reader) (*Level, error) {
	var lvl Level
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lvl); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := lvl.Validate(false); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lvl, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// Encode writes lvl as YAML.
func Encode(w io.Writer, lvl *Level) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lvl); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the level for values the game loop cannot run with. In
// strict mode every rail must also close into a loop and must not contain
// conflicting duplicate triggers.
func (l *Level) Validate(strict bool) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if l.Width <= 0 || l.Height <= 0 {
		fail("size %vx%v", l.Width, l.Height)
	}
	if l.Player.Radius <= 0 || l.Player.Step <= 0 {
		fail("player radius %v step %v", l.Player.Radius, l.Player.Step)
	}
	switch l.Player.Facing {
	case "left", "right", "up", "down":
	default:
		fail("player facing %q", l.Player.Facing)
	}
	if len(l.Chasers) == 0 {
		fail("no chasers")
	}
	if l.CollectibleSize <= 0 {
		fail("collectible size %v", l.CollectibleSize)
	}
	if l.MouthCycle <= 0 || l.MouthOpen < 0 || l.MouthOpen >= l.MouthCycle {
		fail("mouth cycle %d open %d", l.MouthCycle, l.MouthOpen)
	}
	if l.RevertFactor <= 0 {
		fail("revert factor %v", l.RevertFactor)
	}
	for i, r := range l.Obstacles {
		if r.W <= 0 || r.H <= 0 {
			fail("obstacle %d has size %vx%v", i, r.W, r.H)
		}
	}
	for _, t := range l.Teleports {
		switch t.Edge {
		case EdgeLeft, EdgeRight, EdgeBottom:
		default:
			fail("teleport %q: unknown edge %q", t.Name, t.Edge)
		}
	}
	for _, c := range l.Chasers {
		if c.Radius <= 0 || c.Speed <= 0 {
			fail("chaser %q radius %d speed %d", c.Name, c.Radius, c.Speed)
			continue
		}
		if !strict {
			continue
		}
		for _, p := range Conflicts(c.Rail) {
			errs = append(errs, fmt.Errorf("%w: chaser %q at (%d,%d): %w", ErrInvalid, c.Name, p.X, p.Y, ErrRailConflict))
		}
		if _, err := c.TraceRail(railTraceLimit); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
	return errors.Join(errs...)
}
