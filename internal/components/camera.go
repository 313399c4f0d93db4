package components

import (
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders the scene from its GameObject's world transform. On an
// orbit rig it sits on a child of the pivot and doubles as the viewport
// used for panning.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera builds the raylib camera for the current frame. The camera
// looks along the forward axis of its world rotation.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	_, up, forward := engine.EulerBasis(g.WorldRotation())

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// ScreenRay returns the world ray through a screen position in pixels.
// It needs an open window.
func (c *Camera) ScreenRay(pointer rl.Vector2) rl.Ray {
	return rl.GetMouseRay(pointer, c.GetRaylibCamera())
}
