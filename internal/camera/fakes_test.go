package camera

import (
	"math"
	"testing"

	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type rayCall struct {
	origin    rl.Vector3
	direction rl.Vector3
	max       float32
	mask      engine.LayerMask
	backfaces bool
}

// fakeQuery answers raycasts from scripted functions and records every call
// together with the backface flag at the time of the call.
type fakeQuery struct {
	raycast   func(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool)
	count     func(origin, direction rl.Vector3, maxDistance float32) int
	backfaces bool

	rays   []rayCall
	counts []rayCall
}

func (f *fakeQuery) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	f.rays = append(f.rays, rayCall{origin, direction, maxDistance, mask, f.backfaces})
	if f.raycast == nil {
		return engine.RaycastResult{}, false
	}
	return f.raycast(origin, direction, maxDistance)
}

func (f *fakeQuery) RaycastAllCount(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) int {
	f.counts = append(f.counts, rayCall{origin, direction, maxDistance, mask, f.backfaces})
	if f.count == nil {
		return 0
	}
	return f.count(origin, direction, maxDistance)
}

func (f *fakeQuery) HitBackfaces() bool      { return f.backfaces }
func (f *fakeQuery) SetHitBackfaces(on bool) { f.backfaces = on }

// topDownViewport maps pointer pixels to vertical rays: pixel (x, y) looks
// straight down at world (x/10, z = y/10).
type topDownViewport struct{}

func (topDownViewport) ScreenRay(p rl.Vector2) rl.Ray {
	return rl.Ray{
		Position:  rl.Vector3{X: p.X * 0.1, Y: 10, Z: p.Y * 0.1},
		Direction: rl.Vector3{Y: -1},
	}
}

type flatViewport struct{}

func (flatViewport) ScreenRay(p rl.Vector2) rl.Ray {
	return rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{X: 1}}
}

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func vecApprox(a, b rl.Vector3, tol float32) bool {
	return approx(a.X, b.X, tol) && approx(a.Y, b.Y, tol) && approx(a.Z, b.Z, tol)
}

func newRig(t testing.TB, s Settings) *Rig {
	t.Helper()
	r, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func noCollision() Settings {
	s := DefaultSettings()
	s.Zoom.Collision = ZoomCollisionNone
	return s
}
