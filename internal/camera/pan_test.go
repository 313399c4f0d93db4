package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func panInput(pointer rl.Vector2) Input {
	return Input{RotateHeld: true, PanModifier: true, Pointer: pointer, DeltaTime: 0.016}
}

func TestPanGrabsTheGround(t *testing.T) {
	r := newRig(t, noCollision())
	r.Activate(rl.Vector3{}, rl.Vector3{}, rl.Vector3{}, rl.Vector2{})

	f := r.Step(panInput(rl.Vector2{X: 10}), nil, topDownViewport{})

	if f.Mode != ModePan {
		t.Fatalf("Expected Pan mode, got %v", f.Mode)
	}
	if !vecApprox(f.PivotPosition, rl.Vector3{X: -1}, 1e-5) {
		t.Errorf("Expected pivot at (-1, 0, 0), got %v", f.PivotPosition)
	}

	f = r.Step(panInput(rl.Vector2{X: 10, Y: 20}), nil, topDownViewport{})
	if !vecApprox(f.PivotPosition, rl.Vector3{X: -1, Z: -2}, 1e-5) {
		t.Errorf("Expected pivot at (-1, 0, -2), got %v", f.PivotPosition)
	}
}

func TestPanKeepsHeight(t *testing.T) {
	r := newRig(t, noCollision())
	r.Activate(rl.Vector3{Y: 3}, rl.Vector3{}, rl.Vector3{}, rl.Vector2{X: 5})

	f := r.Step(panInput(rl.Vector2{X: 5, Y: 5}), nil, topDownViewport{})
	if !vecApprox(f.PivotPosition, rl.Vector3{Y: 3, Z: -0.5}, 1e-5) {
		t.Errorf("Expected pivot at (0, 3, -0.5), got %v", f.PivotPosition)
	}
}

func TestPanWithoutUsableRays(t *testing.T) {
	tests := []struct {
		name     string
		viewport Viewport
	}{
		{"nil viewport", nil},
		{"rays parallel to ground", flatViewport{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := rl.Vector3{X: 1, Y: 2, Z: 3}
			r := newRig(t, noCollision())
			r.Activate(start, rl.Vector3{}, rl.Vector3{}, rl.Vector2{})

			f := r.Step(panInput(rl.Vector2{X: 40, Y: 40}), nil, tt.viewport)
			if f.PivotPosition != start {
				t.Errorf("Expected pivot unchanged, got %v", f.PivotPosition)
			}
		})
	}
}

func TestPlanePointRejectsPlaneBehindRay(t *testing.T) {
	ray := rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{Y: 1}}
	if _, ok := planePoint(ray, 0); ok {
		t.Error("Expected no intersection for a ray pointing away from the plane")
	}
}
