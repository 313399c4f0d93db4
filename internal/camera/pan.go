package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// panMinVertical is the smallest |ray.Direction.Y| the pan solver will
// project onto the ground plane. Flatter rays produce no displacement.
const panMinVertical = 1e-4

// pan drags the pivot so the ground point under the previous pointer
// position follows the pointer.
func (r *Rig) pan(in Input, viewport Viewport) rl.Vector3 {
	current := r.state.PivotPosition
	if viewport == nil {
		return current
	}

	from, ok := planePoint(viewport.ScreenRay(r.state.LastPointer), current.Y)
	if !ok {
		return current
	}
	to, ok := planePoint(viewport.ScreenRay(in.Pointer), current.Y)
	if !ok {
		return current
	}

	delta := rl.Vector3Subtract(from, to)
	delta.Y = 0
	moved := rl.Vector3Add(current, delta)
	if !isFinite(moved) {
		return current
	}
	return moved
}

// planePoint intersects ray with the horizontal plane y = height.
func planePoint(ray rl.Ray, height float32) (rl.Vector3, bool) {
	dy := ray.Direction.Y
	if math.Abs(float64(dy)) < panMinVertical {
		return rl.Vector3{}, false
	}
	t := (height - ray.Position.Y) / dy
	if t < 0 || math.IsInf(float64(t), 0) || math.IsNaN(float64(t)) {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}
