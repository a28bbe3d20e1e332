package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestGenerateReport(t *testing.T) {
	g := game.New(level.Classic())
	g.AdvanceFrame(nil)

	r := &Report{
		Level:        "classic",
		Frames:       10,
		TotalFrames:  10,
		TotalTime:    time.Second,
		DrawCalls:    25,
		RailTriggers: 4,
		Outcomes:     map[string]int{"captured": 2, "won": 1},
		Events:       map[string]int{"collected": 7},
		Systems:      g.Stats().Systems,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "- **Level:** classic")
	assert.Contains(t, out, "- **Time Limit:** none")
	assert.Contains(t, out, "- **Throughput:** 10 frames/s")
	assert.Contains(t, out, "- **Draw Calls:** 2.5 per frame")
	assert.Contains(t, out, "- **Rail Triggers:** 4")
	assert.Contains(t, out, "- captured: 2\n- won: 1\n")
	assert.Contains(t, out, "- collected: 7")
	assert.Contains(t, out, "| PlayerSystem | 1 |")
}
