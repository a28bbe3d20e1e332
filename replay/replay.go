// Package replay records the commands applied to a game and plays them back
// frame for frame. The game loop is deterministic, so a log of commands keyed
// by tick reproduces the whole session.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/vmihailenco/msgpack/v5"
)

// Version of the on-disk format.
const Version = 1

var (
	ErrVersion       = errors.New("unsupported replay version")
	ErrLevelMismatch = errors.New("replay recorded on a different level")
	ErrDiverged      = errors.New("replay diverged")
)

// Entry is one command applied before frame Tick.
type Entry struct {
	Tick uint64 `msgpack:"t"`
	Kind uint8  `msgpack:"k"`
	Dir  uint8  `msgpack:"d,omitempty"`
}

// Command converts the entry back into a game command.
func (e Entry) Command() game.Command {
	return game.Command{Kind: game.CommandKind(e.Kind), Dir: game.Direction(e.Dir)}
}

// Outcome is the session state at the end of a recording.
type Outcome struct {
	Score int     `msgpack:"score"`
	State uint8   `msgpack:"state"`
	Frame uint64  `msgpack:"frame"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
}

func outcomeOf(s *game.Session) Outcome {
	return Outcome{
		Score: s.Score,
		State: uint8(s.State),
		Frame: s.Frame,
		X:     s.Player.Pos.X,
		Y:     s.Player.Pos.Y,
	}
}

// Log is a complete recording.
type Log struct {
	Version int     `msgpack:"version"`
	Level   string  `msgpack:"level"`
	Frames  uint64  `msgpack:"frames"`
	Entries []Entry `msgpack:"entries"`
	Final   Outcome `msgpack:"final"`
}

// Recorder captures commands applied to a game.
type Recorder struct {
	g     *game.Game
	start uint64
	log   Log
}

// Attach starts recording g and restarts its session, so every log begins
// from the level's initial state. Ticks in the log are relative to the
// moment of attachment; the restart is the first entry, at tick 0.
func Attach(g *game.Game) *Recorder {
	r := &Recorder{
		g:     g,
		start: g.Tick(),
		log:   Log{Version: Version, Level: g.Level().Name},
	}
	g.ObserveCommands(func(tick uint64, cmd game.Command) {
		r.log.Entries = append(r.log.Entries, Entry{
			Tick: tick - r.start,
			Kind: uint8(cmd.Kind),
			Dir:  uint8(cmd.Dir),
		})
	})
	g.Reset()
	return r
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.log.Entries)
}

// Finish seals the recording with the current frame count and outcome.
func (r *Recorder) Finish() *Log {
	out := r.log
	out.Entries = append([]Entry(nil), r.log.Entries...)
	out.Frames = r.g.Tick() - r.start
	out.Final = outcomeOf(r.g.Session())
	return &out
}

// Write encodes log to w.
func Write(w io.Writer, log *Log) error {
	return msgpack.NewEncoder(w).Encode(log)
}

// Read decodes a log from r and checks its version.
func Read(r io.Reader) (*Log, error) {
	var log Log
	if err := msgpack.NewDecoder(r).Decode(&log); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if log.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, log.Version)
	}
	return &log, nil
}

// Save writes log to path.
func Save(path string, log *Log) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, log); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a log from path.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Cursor feeds a log's commands into a live game as its ticks come due.
type Cursor struct {
	log  *Log
	next int
	tick uint64
}

// NewCursor starts at the first frame of log.
func NewCursor(log *Log) *Cursor {
	return &Cursor{log: log}
}

// Apply applies every command due before the next frame of g.
func (c *Cursor) Apply(g *game.Game) {
	for c.next < len(c.log.Entries) && c.log.Entries[c.next].Tick == c.tick {
		g.Apply(c.log.Entries[c.next].Command())
		c.next++
	}
}

// Advance records that a frame has run. It reports false once the recording
// is exhausted, after applying any trailing commands.
func (c *Cursor) Advance(g *game.Game) bool {
	c.tick++
	if c.tick < c.log.Frames {
		return true
	}
	for ; c.next < len(c.log.Entries); c.next++ {
		g.Apply(c.log.Entries[c.next].Command())
	}
	return false
}

// Done reports whether every recorded frame has been played.
func (c *Cursor) Done() bool {
	return c.tick >= c.log.Frames
}

// Verify compares g with the recorded outcome.
func (c *Cursor) Verify(g *game.Game) error {
	if got := outcomeOf(g.Session()); got != c.log.Final {
		return fmt.Errorf("%w: got %+v, recorded %+v", ErrDiverged, got, c.log.Final)
	}
	return nil
}

// Play runs log against a fresh game on lvl, drawing into surface, and
// checks that it ends where the recording ended.
func Play(lvl *level.Level, log *Log, surface game.Surface) (*game.Game, error) {
	if log.Level != lvl.Name {
		return nil, fmt.Errorf("%w: recorded %q, playing %q", ErrLevelMismatch, log.Level, lvl.Name)
	}

	g := game.New(lvl)
	cur := NewCursor(log)
	for !cur.Done() {
		cur.Apply(g)
		g.AdvanceFrame(surface)
		cur.Advance(g)
	}
	if log.Frames == 0 {
		cur.Advance(g)
	}
	return g, cur.Verify(g)
}
