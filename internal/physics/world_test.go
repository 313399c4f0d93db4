package physics

import (
	"math"
	"testing"

	"orbitrig/internal/components"
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const groundLayer = 3

func newGround(t *testing.T, w *PhysicsWorld) *engine.GameObject {
	t.Helper()
	g := engine.NewGameObject("Ground")
	g.Layer = groundLayer
	g.Transform.Position = rl.Vector3{Y: -0.5}
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 20, Y: 1, Z: 20}))
	w.AddObject(g)
	return g
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestRaycastHitsGroundTop(t *testing.T) {
	w := NewPhysicsWorld()
	ground := newGround(t, w)

	hit, ok := w.Raycast(rl.Vector3{X: 2, Y: 10, Z: 1}, rl.Vector3{Y: -1}, 20, engine.LayerMaskOf(groundLayer))
	if !ok {
		t.Fatal("Expected ground hit")
	}
	if hit.GameObject != ground {
		t.Errorf("Expected Ground, got %v", hit.GameObject)
	}
	if !approx(hit.Distance, 10) || !approx(hit.Point.Y, 0) {
		t.Errorf("Expected hit at y=0 distance 10, got %v / %f", hit.Point, hit.Distance)
	}
	if hit.Normal != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected up normal, got %v", hit.Normal)
	}
}

func TestRaycastRespectsMaskAndRange(t *testing.T) {
	w := NewPhysicsWorld()
	newGround(t, w)

	if _, ok := w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 20, engine.LayerMaskOf(0)); ok {
		t.Error("Expected miss when ground layer is filtered out")
	}
	if _, ok := w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 5, engine.AllLayers); ok {
		t.Error("Expected miss when ground is out of range")
	}
	if _, ok := w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: 1}, 50, engine.AllLayers); ok {
		t.Error("Expected miss when casting away from ground")
	}
}

func TestRaycastPicksClosest(t *testing.T) {
	w := NewPhysicsWorld()
	newGround(t, w)

	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{Y: 3}
	ball.AddComponent(components.NewSphereCollider(1))
	w.AddObject(ball)

	hit, ok := w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 20, engine.AllLayers)
	if !ok || hit.GameObject != ball {
		t.Fatalf("Expected Ball hit first, got %v (%v)", hit.GameObject, ok)
	}
	if !approx(hit.Point.Y, 4) {
		t.Errorf("Expected sphere top at y=4, got %f", hit.Point.Y)
	}

	ball.SetActive(false)
	hit, ok = w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 20, engine.AllLayers)
	if !ok || hit.GameObject == ball {
		t.Error("Inactive objects should be ignored")
	}
}

func TestRaycastFromInsideNeedsBackfaces(t *testing.T) {
	w := NewPhysicsWorld()
	newGround(t, w)
	inside := rl.Vector3{Y: -0.25}

	if _, ok := w.Raycast(inside, rl.Vector3{Y: 1}, 10, engine.AllLayers); ok {
		t.Error("Expected no hit from inside without backfaces")
	}

	w.SetHitBackfaces(true)
	hit, ok := w.Raycast(inside, rl.Vector3{Y: 1}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected exit surface hit with backfaces")
	}
	if !approx(hit.Point.Y, 0) || !approx(hit.Distance, 0.25) {
		t.Errorf("Expected exit at y=0 after 0.25, got %v / %f", hit.Point, hit.Distance)
	}
}

func TestRaycastAllCountParity(t *testing.T) {
	w := NewPhysicsWorld()
	newGround(t, w)
	mask := engine.LayerMaskOf(groundLayer)

	tests := []struct {
		name      string
		origin    rl.Vector3
		dir       rl.Vector3
		backfaces bool
		want      int
	}{
		{"inside up with backfaces", rl.Vector3{Y: -0.25}, rl.Vector3{Y: 1}, true, 1},
		{"inside up without backfaces", rl.Vector3{Y: -0.25}, rl.Vector3{Y: 1}, false, 0},
		{"above through slab with backfaces", rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, true, 2},
		{"above through slab without backfaces", rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, false, 1},
		{"above looking up", rl.Vector3{Y: 5}, rl.Vector3{Y: 1}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.SetHitBackfaces(tt.backfaces)
			if got := w.RaycastAllCount(tt.origin, tt.dir, 1000, mask); got != tt.want {
				t.Errorf("Expected %d crossings, got %d", tt.want, got)
			}
		})
	}
}

func TestAddObjectWithoutCollider(t *testing.T) {
	w := NewPhysicsWorld()
	w.AddObject(engine.NewGameObject("Empty"))
	if len(w.Statics) != 0 {
		t.Errorf("Expected object without collider to be skipped, got %d", len(w.Statics))
	}

	g := newGround(t, w)
	w.RemoveObject(g)
	if len(w.Statics) != 0 {
		t.Errorf("Expected 0 statics after removal, got %d", len(w.Statics))
	}
}
