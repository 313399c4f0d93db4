package game

import (
	"fmt"
	"log"

	"orbitrig/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel   = rl.NewColor(24, 24, 32, 230)
	colorAccent  = rl.NewColor(99, 102, 241, 255)
	colorText    = rl.NewColor(220, 220, 230, 255)
	colorMuted   = rl.NewColor(140, 140, 160, 255)
	colorElement = rl.NewColor(40, 40, 52, 255)
)

// hudBounds is the screen area owned by the HUD panel.
var hudBounds = rl.Rectangle{X: 10, Y: 10, Width: 300, Height: 330}

func setupHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

func (g *Game) DrawUI(oc *components.OrbitController) {
	x, y := int32(hudBounds.X)+10, int32(hudBounds.Y)+10
	rl.DrawRectangleRec(hudBounds, colorPanel)
	rl.DrawRectangleLinesEx(hudBounds, 1, colorAccent)

	rl.DrawText("WASD move, drag to orbit, wheel to zoom", x, y, 14, colorText)
	y += 18
	rl.DrawText("Ctrl+drag pan, Alt+drag zoom, Shift sprint", x, y, 14, colorText)
	y += 18
	rl.DrawText("R reset, F1 debug", x, y, 14, colorMuted)
	y += 26

	f := oc.LastFrame()
	rl.DrawText(fmt.Sprintf("Mode:  %s", f.Mode), x, y, 16, colorAccent)
	y += 20
	rl.DrawText(fmt.Sprintf("Pivot: (%.2f, %.2f, %.2f)", f.PivotPosition.X, f.PivotPosition.Y, f.PivotPosition.Z), x, y, 14, colorText)
	y += 18
	rl.DrawText(fmt.Sprintf("Pitch %.1f  Yaw %.1f", f.PivotRotation.X, f.PivotRotation.Y), x, y, 14, colorText)
	y += 18
	rl.DrawText(fmt.Sprintf("Zoom:  %.2f of range (%.2f / %.2f)", f.NormalizedZoom, f.Distance, f.TargetDistance), x, y, 14, colorText)
	y += 26

	r := g.World.Renderer
	r.ShowColliders = gui.CheckBox(rect(x, y, 16, 16), "Show colliders", r.ShowColliders)
	y += 22
	r.ShowPivot = gui.CheckBox(rect(x, y, 16, 16), "Show pivot", r.ShowPivot)
	y += 26

	if rig := oc.Rig(); rig != nil {
		s := rig.Settings()
		rl.DrawText("Rotation", x, y+3, 14, colorMuted)
		s.Rotation.Sensitivity = gui.Slider(rect(x+90, y, 150, 18), "", fmt.Sprintf("%.0f", s.Rotation.Sensitivity), s.Rotation.Sensitivity, 1, 100)
		y += 24
		rl.DrawText("Zoom", x, y+3, 14, colorMuted)
		s.Zoom.Sensitivity = gui.Slider(rect(x+90, y, 150, 18), "", fmt.Sprintf("%.1f", s.Zoom.Sensitivity), s.Zoom.Sensitivity, 0.5, 10)
		y += 28
		if s != rig.Settings() {
			if err := rig.SetSettings(s); err != nil {
				log.Printf("Game: %v", err)
			}
		}
	}

	if gui.Button(rect(x, y, 120, 24), "Reset rig") {
		g.ResetRig()
	}

	if g.DebugMode {
		rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), int32(rl.GetScreenWidth())-160, 35, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), int32(rl.GetScreenWidth())-160, 55, 16, rl.Green)
		if g.Telemetry != nil {
			rl.DrawText(fmt.Sprintf("Telemetry clients: %d", g.Telemetry.Clients()), int32(rl.GetScreenWidth())-220, 75, 16, rl.Lime)
		}
	}
}

func rect(x, y int32, w, h float32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: h}
}
