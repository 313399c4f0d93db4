package components

import (
	"testing"

	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCameraFollowsParentPivot(t *testing.T) {
	pivot := engine.NewGameObject("Rig")
	pivot.Transform.Position = rl.Vector3{Y: 2}

	child := engine.NewGameObject("Camera")
	child.Transform.Position = rl.Vector3{Z: -10}
	cam := NewCamera()
	child.AddComponent(cam)
	pivot.AddChild(child)

	c := cam.GetRaylibCamera()
	if !near(c.Position.Z, -10) || !near(c.Position.Y, 2) {
		t.Errorf("Expected eye at (0, 2, -10), got %v", c.Position)
	}
	if !near(c.Target.Z, -9) || c.Fovy != 45 {
		t.Errorf("Expected target one unit forward, got %v (fovy %v)", c.Target, c.Fovy)
	}

	pivot.Transform.Rotation = rl.Vector3{Y: 90}
	c = cam.GetRaylibCamera()
	// Yaw 90 turns forward to -X, so the camera behind the pivot sits at +X.
	if !near(c.Position.X, 10) || !near(c.Target.X, 9) {
		t.Errorf("Expected camera orbiting to +X, got %v -> %v", c.Position, c.Target)
	}
}

func TestCameraWithoutObject(t *testing.T) {
	if got := NewCamera().GetRaylibCamera(); got != (rl.Camera3D{}) {
		t.Errorf("Expected zero camera, got %+v", got)
	}
}
