package level_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plus3/chomp/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicGeometry(t *testing.T) {
	lvl := level.Classic()

	assert.Len(t, lvl.Obstacles, 40)
	assert.Len(t, lvl.Collectibles, 171)
	assert.Len(t, lvl.Chasers, 3)
	assert.Len(t, lvl.Teleports, 3)
	assert.Equal(t, level.Point{X: 30, Y: 30}, lvl.Player.Start)
	assert.Equal(t, 2.5, lvl.RevertFactor)
	assert.Equal(t, 3.0, lvl.CaptureTolerance)

	require.NoError(t, lvl.Validate(false))
}

func TestClassicRailsClose(t *testing.T) {
	for _, c := range level.Classic().Chasers {
		t.Run(c.Name, func(t *testing.T) {
			n, err := c.TraceRail(10000)
			require.NoError(t, err)
			assert.Greater(t, n, 100)
		})
	}
}

func TestStrictValidationReportsDuplicateTrigger(t *testing.T) {
	err := level.Classic().Validate(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, level.ErrRailConflict)
	assert.ErrorIs(t, err, level.ErrInvalid)
	assert.NotErrorIs(t, err, level.ErrRailOpen)
	assert.Contains(t, err.Error(), `"red" at (278,78)`)
}

func TestRailTableLastEntryWins(t *testing.T) {
	red, ok := level.Classic().Chaser("red")
	require.True(t, ok)

	table := level.CompileRail(red.Rail)
	wp, ok := table.Lookup(level.Vec{X: 278, Y: 78})
	require.True(t, ok)
	assert.Equal(t, level.Vec{X: 0, Y: -1}, wp.Dir)

	_, ok = table.Lookup(level.Vec{X: 279, Y: 78})
	assert.False(t, ok)

	assert.Equal(t, len(red.Rail)-1, table.Len())
}

func TestRailStep(t *testing.T) {
	blue, _ := level.Classic().Chaser("blue")
	table := level.CompileRail(blue.Rail)

	t.Run("no trigger keeps velocity", func(t *testing.T) {
		pos, vel, fired := level.RailStep(table, blue.Start, blue.Velocity, blue.Speed)
		assert.False(t, fired)
		assert.Equal(t, level.Vec{X: 466, Y: 459}, pos)
		assert.Equal(t, blue.Velocity, vel)
	})

	t.Run("trigger replaces velocity", func(t *testing.T) {
		pos, vel, fired := level.RailStep(table, level.Vec{X: 381, Y: 459}, level.Vec{X: -1}, 1)
		assert.True(t, fired)
		assert.Equal(t, level.Vec{X: 380, Y: 459}, pos)
		assert.Equal(t, level.Vec{X: 0, Y: -1}, vel)
	})

	t.Run("snap relocates", func(t *testing.T) {
		pos, vel, fired := level.RailStep(table, level.Vec{X: 466, Y: 460}, level.Vec{X: 1}, 1)
		assert.True(t, fired)
		assert.Equal(t, level.Vec{X: 467, Y: 459}, pos)
		assert.Equal(t, level.Vec{X: -1, Y: 0}, vel)
	})
}

func TestTraceRailDetectsOpenRail(t *testing.T) {
	c := level.ChaserSpec{
		Name:     "lost",
		Start:    level.Vec{X: 10, Y: 10},
		Velocity: level.Vec{X: 1},
		Radius:   8,
		Speed:    1,
		Rail: []level.Waypoint{
			{At: level.Vec{X: 20, Y: 10}, Dir: level.Vec{Y: 1}},
		},
	}
	_, err := c.TraceRail(500)
	assert.ErrorIs(t, err, level.ErrRailOpen)
}

const tinyLevel = `
name: tiny
width: 100
height: 100
player:
  start: {x: 50, y: 50}
  radius: 5
  step: 1
  facing: left
chasers:
  - name: lone
    color: red
    start: {x: 20, y: 20}
    velocity: {x: 1, y: 0}
    radius: 4
    speed: 1
    rail:
      - {at: {x: 80, y: 20}, dir: {x: 0, y: 1}}
      - {at: {x: 80, y: 80}, dir: {x: -1, y: 0}}
      - {at: {x: 20, y: 80}, dir: {x: 0, y: -1}}
      - {at: {x: 20, y: 20}, dir: {x: 1, y: 0}}
obstacles:
  - {x: 0, y: 0, w: 100, h: 5}
collectibles:
  - {x: 40, y: 40}
collectible_size: 5
teleports:
  - {name: exit, edge: bottom, threshold: 100, target: {x: 50, y: 50}, next_level: true}
revert_factor: 2.5
capture_tolerance: 3
mouth_cycle: 20
mouth_open: 10
`

func TestLoadYAML(t *testing.T) {
	lvl, err := level.Load(strings.NewReader(tinyLevel))
	require.NoError(t, err)

	assert.Equal(t, "tiny", lvl.Name)
	assert.Equal(t, level.EdgeBottom, lvl.Teleports[0].Edge)
	assert.True(t, lvl.Teleports[0].NextLevel)
	require.NoError(t, lvl.Validate(true))

	n, err := lvl.Chasers[0].TraceRail(1000)
	require.NoError(t, err)
	assert.Equal(t, 240, n)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := level.Load(strings.NewReader("name: x\nwalls: []\n"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	bad := strings.Replace(tinyLevel, "edge: bottom", "edge: top", 1)
	bad = strings.Replace(bad, "mouth_open: 10", "mouth_open: 20", 1)

	_, err := level.Load(strings.NewReader(bad))
	require.ErrorIs(t, err, level.ErrInvalid)
	assert.Contains(t, err.Error(), `unknown edge "top"`)
	assert.Contains(t, err.Error(), "mouth cycle 20 open 20")
}

func TestEncodeClassic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, level.Encode(&buf, level.Classic()))

	lvl, err := level.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, level.Classic(), lvl)
}

func TestTeleportCrossed(t *testing.T) {
	tests := []struct {
		name string
		tp   level.Teleport
		at   level.Point
		want bool
	}{
		{"left inside", level.Teleport{Edge: level.EdgeLeft, Threshold: 1}, level.Point{X: 11, Y: 238}, false},
		{"left crossed", level.Teleport{Edge: level.EdgeLeft, Threshold: 1}, level.Point{X: 10.5, Y: 238}, true},
		{"right inside", level.Teleport{Edge: level.EdgeRight, Threshold: 499}, level.Point{X: 489, Y: 238}, false},
		{"right crossed", level.Teleport{Edge: level.EdgeRight, Threshold: 499}, level.Point{X: 490, Y: 238}, true},
		{"bottom crossed", level.Teleport{Edge: level.EdgeBottom, Threshold: 500}, level.Point{X: 250, Y: 491}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tp.Crossed(tt.at, 10))
		})
	}
}
