package camera

import (
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of sampled controls.
//
// Move, PointerDelta and Scroll are axis values: Move components lie in
// [-1, 1], PointerDelta is positive right/up and Scroll is positive when
// zooming in. Pointer is the screen position in pixels.
type Input struct {
	Move         rl.Vector2
	PointerDelta rl.Vector2
	Scroll       float32
	Pointer      rl.Vector2
	RotateHeld   bool
	PanModifier  bool
	ZoomModifier bool
	Sprint       bool
	DeltaTime    float32
}

// InputSource is sampled once at the top of each frame.
type InputSource interface {
	Sample() Input
}

// SceneQuery answers synchronous raycasts against the scene. The backface
// flag is shared by every user of the query.
type SceneQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool)
	RaycastAllCount(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) int
	HitBackfaces() bool
	SetHitBackfaces(enabled bool)
}

// Viewport turns a screen position into a world-space ray.
type Viewport interface {
	ScreenRay(pointer rl.Vector2) rl.Ray
}

// TransformSink receives the rig output.
type TransformSink interface {
	SetPivot(position, rotation rl.Vector3)
	SetCameraOffset(offset rl.Vector3)
}

// withBackfaces runs fn with backface hits enabled on q and restores the
// previous flag afterwards, even if fn panics.
func withBackfaces(q SceneQuery, fn func()) {
	prev := q.HitBackfaces()
	q.SetHitBackfaces(true)
	defer q.SetHitBackfaces(prev)
	fn()
}
