package world

import (
	"orbitrig/internal/components"
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colliderColor = rl.Lime
	pivotColor    = rl.Gold
)

type Renderer struct {
	ShowColliders bool
	ShowPivot     bool
	GridSlices    int32
}

func NewRenderer() *Renderer {
	return &Renderer{
		ShowPivot:  true,
		GridSlices: 60,
	}
}

// Draw renders the scene from camera. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject, pivot *engine.GameObject) {
	rl.BeginMode3D(camera)

	if r.GridSlices > 0 {
		rl.DrawGrid(r.GridSlices, 1)
	}
	for _, g := range gameObjects {
		r.drawObject(g)
	}
	if r.ShowPivot && pivot != nil {
		pos := pivot.WorldPosition()
		rl.DrawSphere(pos, 0.15, pivotColor)
		rl.DrawLine3D(pos, rl.Vector3{X: pos.X, Y: pos.Y - 100, Z: pos.Z}, rl.Fade(pivotColor, 0.4))
	}

	rl.EndMode3D()
}

func (r *Renderer) drawObject(g *engine.GameObject) {
	if !g.Active {
		return
	}
	if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
		mr.Draw()
	}
	if r.ShowColliders {
		if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
			rl.DrawCubeWiresV(box.GetCenter(), box.GetWorldSize(), colliderColor)
		}
		if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
			rl.DrawSphereWires(sphere.GetCenter(), sphere.Radius, 8, 8, colliderColor)
		}
	}
	for _, child := range g.Children {
		r.drawObject(child)
	}
}
