package camera

import (
	"math/rand"
	"testing"

	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func hitAt(distance float32) *fakeQuery {
	return &fakeQuery{
		raycast: func(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
			if distance > maxDistance {
				return engine.RaycastResult{}, false
			}
			return engine.RaycastResult{
				Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, distance)),
				Distance: distance,
			}, true
		},
	}
}

func TestZoomScrollBlendsTowardsTarget(t *testing.T) {
	r := newRig(t, noCollision())

	f := r.Step(Input{Scroll: -2.0 / 16.8, DeltaTime: 0.016}, nil, nil)

	if !approx(f.TargetDistance, 10, 1e-3) {
		t.Errorf("Expected distance 10, got %v", f.TargetDistance)
	}
	if !approx(f.NormalizedZoom, 9.0/14.0, 1e-4) {
		t.Errorf("Expected normalized zoom 0.642857, got %v", f.NormalizedZoom)
	}
}

func TestZoomClampsToRange(t *testing.T) {
	r := newRig(t, noCollision())

	var f Frame
	for i := 0; i < 20; i++ {
		f = r.Step(Input{Scroll: 5, DeltaTime: 0.016}, nil, nil)
	}
	if f.TargetDistance != 1 || f.NormalizedZoom != 0 {
		t.Errorf("Expected clamped to nearest, got distance %v zoom %v", f.TargetDistance, f.NormalizedZoom)
	}

	for i := 0; i < 20; i++ {
		f = r.Step(Input{Scroll: -5, DeltaTime: 0.016}, nil, nil)
	}
	if f.TargetDistance != 15 || f.NormalizedZoom != 1 {
		t.Errorf("Expected clamped to farthest, got distance %v zoom %v", f.TargetDistance, f.NormalizedZoom)
	}
}

func TestZoomDragInZoomMode(t *testing.T) {
	r := newRig(t, noCollision())

	f := r.Step(Input{RotateHeld: true, ZoomModifier: true, PointerDelta: rl.Vector2{Y: 1}, DeltaTime: 0.016}, nil, nil)
	if f.Mode != ModeZoom {
		t.Fatalf("Expected Zoom mode, got %v", f.Mode)
	}
	// 8 - 0.05*4*14 = 5.2, blended 30% of the way.
	if !approx(f.TargetDistance, 8-0.3*2.8, 1e-4) {
		t.Errorf("Expected drag zoom to 7.16, got %v", f.TargetDistance)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	r := newRig(t, noCollision())
	for _, d := range []float32{1, 2.5, 8, 14.9, 15} {
		if got := r.NormalizedToDistance(r.DistanceToNormalized(d)); !approx(got, d, 1e-4) {
			t.Errorf("Round trip of %v gave %v", d, got)
		}
	}
	if got := r.DistanceToNormalized(40); got != 1 {
		t.Errorf("Expected distance above range to clamp to 1, got %v", got)
	}
	if got := r.DistanceToNormalized(0); got != 0 {
		t.Errorf("Expected distance below range to clamp to 0, got %v", got)
	}
}

func TestZoomStaysInRangeUnderRandomInput(t *testing.T) {
	r := newRig(t, noCollision())
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		in := Input{
			Scroll:       (rnd.Float32() - 0.5) * 4,
			PointerDelta: rl.Vector2{Y: (rnd.Float32() - 0.5) * 40},
			RotateHeld:   rnd.Intn(3) == 0,
			ZoomModifier: rnd.Intn(2) == 0,
			DeltaTime:    0.016,
		}
		f := r.Step(in, nil, nil)
		if f.NormalizedZoom < 0 || f.NormalizedZoom > 1 {
			t.Fatalf("Step %d: normalized zoom %v out of [0, 1]", i, f.NormalizedZoom)
		}
		if f.TargetDistance < 1 || f.TargetDistance > 15 {
			t.Fatalf("Step %d: distance %v out of range", i, f.TargetDistance)
		}
	}
}

func TestZoomRaycastFromCenter(t *testing.T) {
	s := DefaultSettings()
	s.Zoom.Collision = RaycastFromCenter
	s.Zoom.CollisionMask = engine.LayerMaskOf(4)
	r := newRig(t, s)
	r.Activate(rl.Vector3{}, rl.Vector3{}, rl.Vector3{Z: -8}, rl.Vector2{})

	q := hitAt(3)
	f := r.Step(Input{DeltaTime: 0.016}, q, nil)

	if !approx(f.Distance, 2.95, 1e-4) {
		t.Errorf("Expected distance 2.95, got %v", f.Distance)
	}
	if !approx(f.CameraOffset.Z, -6.485, 1e-4) {
		t.Errorf("Expected offset blended to -6.485, got %v", f.CameraOffset.Z)
	}
	if !approx(f.NormalizedZoom, 1.95/14, 1e-4) {
		t.Errorf("Expected auto zoom-in to store 2.95, got %v", f.NormalizedZoom)
	}

	if len(q.rays) != 1 {
		t.Fatalf("Expected one occlusion ray, got %d", len(q.rays))
	}
	ray := q.rays[0]
	if ray.direction != (rl.Vector3{Z: -1}) || ray.max != 8 || ray.mask != engine.LayerMaskOf(4) {
		t.Errorf("Expected backwards ray over distance on collision mask, got %+v", ray)
	}
}

func TestZoomRaycastMissKeepsDistance(t *testing.T) {
	s := DefaultSettings()
	s.Zoom.Collision = RaycastFromCenter
	r := newRig(t, s)

	f := r.Step(Input{DeltaTime: 0.016}, &fakeQuery{}, nil)
	if f.Distance != 8 || f.NormalizedZoom != 0.5 {
		t.Errorf("Expected unobstructed distance 8, got %v (zoom %v)", f.Distance, f.NormalizedZoom)
	}
}

func TestZoomWithoutAutoZoomIn(t *testing.T) {
	s := DefaultSettings()
	s.Zoom.Collision = RaycastFromCenter
	s.Zoom.AutoZoomIn = false
	r := newRig(t, s)

	f := r.Step(Input{DeltaTime: 0.016}, hitAt(3), nil)
	if !approx(f.Distance, 2.95, 1e-4) || f.TargetDistance != 8 {
		t.Errorf("Expected visual 2.95 with target 8, got %v / %v", f.Distance, f.TargetDistance)
	}
	if f.NormalizedZoom != 0.5 {
		t.Errorf("Expected stored zoom to stay 0.5, got %v", f.NormalizedZoom)
	}
}

func TestZoomSweepTest(t *testing.T) {
	tests := []struct {
		name      string
		crossings int
		backfaces bool
		want      float32
	}{
		{"embedded", 1, false, 3.95},
		{"embedded with backfaces already on", 3, true, 3.95},
		{"clear", 2, false, 8},
		{"clear no geometry", 0, true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, DefaultSettings())

			q := hitAt(4)
			q.backfaces = tt.backfaces
			q.count = func(origin, direction rl.Vector3, maxDistance float32) int { return tt.crossings }

			f := r.Step(Input{DeltaTime: 0.016}, q, nil)

			if !approx(f.Distance, tt.want, 1e-4) {
				t.Errorf("Expected distance %v, got %v", tt.want, f.Distance)
			}
			if q.backfaces != tt.backfaces {
				t.Errorf("Expected backface flag restored to %v", tt.backfaces)
			}
			if len(q.counts) != 1 {
				t.Fatalf("Expected one parity count, got %d", len(q.counts))
			}
			c := q.counts[0]
			if !c.backfaces || !vecApprox(c.origin, rl.Vector3{Z: -8}, 1e-4) || c.max != sweepLength {
				t.Errorf("Unexpected parity ray %+v", c)
			}
			if !vecApprox(c.direction, rl.Vector3{Y: 1}, 1e-5) {
				t.Errorf("Expected parity ray along pivot up, got %v", c.direction)
			}
			for _, ray := range q.rays {
				if !ray.backfaces || !vecApprox(ray.direction, rl.Vector3{Z: 1}, 1e-5) {
					t.Errorf("Expected forward ray with backfaces on, got %+v", ray)
				}
			}
		})
	}
}
