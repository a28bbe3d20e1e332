package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/chomp/game"
)

// SessionWindow shows the live session and offers a reset button.
type SessionWindow struct {
	g      *game.Game
	events map[game.EventKind]int
	last   game.Event
}

func NewSessionWindow(g *game.Game) *SessionWindow {
	w := &SessionWindow{g: g, events: make(map[game.EventKind]int)}
	g.Subscribe(func(ev game.Event) {
		w.events[ev.Kind]++
		w.last = ev
	})
	return w
}

func (w *SessionWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sess := w.g.Session()
	p := sess.Player

	imgui.Text(fmt.Sprintf("Level: %s", sess.Level.Name))
	imgui.Text(fmt.Sprintf("State: %s", sess.State))
	imgui.Text(fmt.Sprintf("Score: %d / %d", sess.Score, sess.Total()))
	imgui.Text(fmt.Sprintf("Tick: %d  Animation frame: %d", w.g.Tick(), sess.Frame))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Player: (%.1f, %.1f) v(%.1f, %.1f) facing %s", p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Facing))

	if imgui.Button("Reset") {
		w.g.Reset()
	}

	if imgui.TreeNodeStr("Events") {
		for _, k := range []game.EventKind{
			game.EventCollected, game.EventTeleported, game.EventLevelComplete, game.EventCaptured, game.EventWon,
		} {
			imgui.BulletText(fmt.Sprintf("%s: %d", k, w.events[k]))
		}
		imgui.Text(fmt.Sprintf("Last: %s on frame %d", w.last.Kind, w.last.Frame))
		imgui.TreePop()
	}

	imgui.End()
}

func (w *SessionWindow) RenderChasers() {
	if !imgui.BeginV("Chasers", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ChaserTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Velocity")
		imgui.TableSetupColumn("Sprite")
		imgui.TableHeadersRow()

		for _, c := range w.g.Session().Chasers {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(c.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%d, %d)", c.Pos.X, c.Pos.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%d, %d)", c.Vel.X, c.Vel.Y))
			imgui.TableNextColumn()
			imgui.Text(c.Sprite.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
