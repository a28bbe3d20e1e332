package level

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

var (
	// ErrRailOpen is returned when a chaser leaves its rail or does not get
	// back to its start state within the trace limit.
	ErrRailOpen = errors.New("rail does not close")
	// ErrRailConflict is returned by strict validation when two waypoints
	// share a trigger position but disagree on the outcome.
	ErrRailConflict = errors.New("conflicting waypoints")
)

// RailTable is a compiled rail: an exact-position lookup from trigger
// coordinates to the waypoint that fires there.
type RailTable struct {
	waypoints []Waypoint
	index     *intmap.Map[uint64, int]
}

func railKey(v Vec) uint64 {
	return uint64(uint32(int32(v.X)))<<32 | uint64(uint32(int32(v.Y)))
}

// CompileRail builds the lookup for a rail. Waypoints are inserted in order,
// so a later entry for the same position replaces an earlier one.
func CompileRail(rail []Waypoint) *RailTable {
	t := &RailTable{
		waypoints: rail,
		index:     intmap.New[uint64, int](len(rail)),
	}
	for i, wp := range rail {
		t.index.Put(railKey(wp.At), i)
	}
	return t
}

// Lookup returns the waypoint triggered at pos, if any.
func (t *RailTable) Lookup(pos Vec) (Waypoint, bool) {
	if t == nil {
		return Waypoint{}, false
	}
	i, ok := t.index.Get(railKey(pos))
	if !ok {
		return Waypoint{}, false
	}
	return t.waypoints[i], true
}

// Len returns the number of distinct trigger positions.
func (t *RailTable) Len() int {
	if t == nil {
		return 0
	}
	return t.index.Len()
}

// Conflicts lists trigger positions that appear more than once with a
// different direction or snap.
func Conflicts(rail []Waypoint) []Vec {
	seen := intmap.New[uint64, int](len(rail))
	var out []Vec
	for i, wp := range rail {
		key := railKey(wp.At)
		if j, ok := seen.Get(key); ok && !sameOutcome(rail[j], wp) {
			out = append(out, wp.At)
		}
		seen.Put(key, i)
	}
	return out
}

func sameOutcome(a, b Waypoint) bool {
	if a.Dir != b.Dir {
		return false
	}
	switch {
	case a.Snap == nil && b.Snap == nil:
		return true
	case a.Snap == nil || b.Snap == nil:
		return false
	}
	return *a.Snap == *b.Snap
}

// RailStep advances a chaser one frame along its rail: move by vel, then let
// the waypoint at the new position (if any) snap it and replace the velocity.
// It reports whether a waypoint fired.
func RailStep(t *RailTable, pos, vel Vec, speed int) (Vec, Vec, bool) {
	pos = Vec{X: pos.X + vel.X, Y: pos.Y + vel.Y}
	wp, ok := t.Lookup(pos)
	if !ok {
		return pos, vel, false
	}
	if wp.Snap != nil {
		pos = *wp.Snap
	}
	return pos, wp.Dir.Scale(speed), true
}

// TraceRail walks the chaser from its start state until it is back in that
// state and returns the loop length in frames. It fails with ErrRailOpen if
// the loop does not close within limit frames or the chaser stands still.
func (c ChaserSpec) TraceRail(limit int) (int, error) {
	if c.Velocity == (Vec{}) {
		return 0, fmt.Errorf("chaser %q: zero start velocity: %w", c.Name, ErrRailOpen)
	}
	table := CompileRail(c.Rail)
	pos, vel := c.Start, c.Velocity
	for n := 1; n <= limit; n++ {
		pos, vel, _ = RailStep(table, pos, vel, c.Speed)
		if vel == (Vec{}) {
			return 0, fmt.Errorf("chaser %q stopped at (%d,%d): %w", c.Name, pos.X, pos.Y, ErrRailOpen)
		}
		if pos == c.Start && vel == c.Velocity {
			return n, nil
		}
	}
	return 0, fmt.Errorf("chaser %q: no loop within %d frames (at %d,%d): %w",
		c.Name, limit, pos.X, pos.Y, ErrRailOpen)
}
