// Package debugui provides Dear ImGui debug windows for a running game on top
// of the ebiten backend.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/chomp/game"
)

// Item is a window render function called once per UI frame.
type Item struct {
	Render func()
}

// Overlay owns the ImGui backend and the windows drawn through it.
type Overlay struct {
	backend      *ebitenbackend.EbitenBackend
	items        []Item
	wantKeyboard bool
}

// New creates the backend and its window. Call before ebiten.RunGame.
func New(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

// Add registers a window.
func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// AddGameWindows registers the session, chaser and system windows for g.
func (o *Overlay) AddGameWindows(g *game.Game) {
	session := NewSessionWindow(g)
	stats := NewSystemStatsWindow(g, 120)
	o.Add(Item{Render: session.Render})
	o.Add(Item{Render: session.RenderChasers})
	o.Add(Item{Render: stats.Render})
}

// Update builds one UI frame. Call from ebiten's Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()

	o.wantKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}

	o.backend.EndFrame()
}

// WantCaptureKeyboard reports whether ImGui consumed keyboard input in the
// last frame; game input should be ignored then.
func (o *Overlay) WantCaptureKeyboard() bool {
	return o.wantKeyboard
}

// Draw renders the UI on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the window size to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
