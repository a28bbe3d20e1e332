package termsurface_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/plus3/chomp/render/termsurface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(50, 25)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestOngoingFrame(t *testing.T) {
	lvl := level.Classic()
	screen := newScreen(t)
	surface := termsurface.New(screen, lvl, termsurface.DefaultCellW, termsurface.DefaultCellH)
	assert.Equal(t, 50, surface.Cols())
	assert.Equal(t, 25, surface.Rows())

	g := game.New(lvl)
	g.AdvanceFrame(surface)
	surface.Present()

	assert.Equal(t, 'S', runeAt(screen, 21, 12))
	assert.Equal(t, 'c', runeAt(screen, 22, 12))
	assert.Equal(t, 'ᗧ', runeAt(screen, 3, 1))
	assert.Equal(t, 'ᗣ', runeAt(screen, 46, 22))
	assert.Equal(t, '·', runeAt(screen, 10, 2))
	assert.Equal(t, '█', runeAt(screen, 0, 0))
}

func TestCapturedFrame(t *testing.T) {
	lvl := level.Classic()
	screen := newScreen(t)
	surface := termsurface.New(screen, lvl, termsurface.DefaultCellW, termsurface.DefaultCellH)

	g := game.New(lvl)
	g.Session().Player.Pos = level.Point{X: 455, Y: 30}
	g.AdvanceFrame(nil)
	require.Equal(t, game.Captured, g.State())

	g.AdvanceFrame(surface)

	assert.Equal(t, 'G', runeAt(screen, 20, 12))
	assert.Equal(t, 'F', runeAt(screen, 20, 13))
	assert.Equal(t, ' ', runeAt(screen, 3, 1))
}
