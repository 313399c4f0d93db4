package components

import (
	"log"

	"orbitrig/internal/camera"
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

var (
	ErrNoCamera       = errors.New("no camera found")
	ErrCameraNotChild = errors.New("camera component needs to be on a child object")
)

// PointerReader is implemented by input sources that can report the pointer
// position without consuming a frame of input.
type PointerReader interface {
	PointerPosition() rl.Vector2
}

// OrbitController drives its GameObject as the pivot of an orbit camera rig.
// The Camera must live on a descendant object; its local position is the
// rig's camera offset.
type OrbitController struct {
	engine.BaseComponent

	Settings camera.Settings
	Input    camera.InputSource

	// Query defaults to the scene's world, Viewport to the child camera.
	Query    camera.SceneQuery
	Viewport camera.Viewport

	ModeChanged engine.EventWithArg[camera.Mode]
	OnFrame     func(camera.Frame)

	rig       *camera.Rig
	cam       *Camera
	camObject *engine.GameObject
	err       error
	mode      camera.Mode
	lastFrame camera.Frame
}

func NewOrbitController(settings camera.Settings, input camera.InputSource) *OrbitController {
	return &OrbitController{
		Settings: settings,
		Input:    input,
	}
}

// Start activates the rig. A missing or misplaced camera, or invalid
// settings, leave the controller inert until the next activation.
func (o *OrbitController) Start() {
	o.rig, o.err = nil, nil
	g := o.GetGameObject()
	if g == nil {
		return
	}

	if err := o.bindCamera(g); err != nil {
		o.fail(g, err)
		return
	}

	rig, err := camera.New(o.Settings)
	if err != nil {
		o.fail(g, err)
		return
	}

	var pointer rl.Vector2
	if pr, ok := o.Input.(PointerReader); ok {
		pointer = pr.PointerPosition()
	}
	rig.Activate(g.Transform.Position, g.Transform.Rotation, o.camObject.Transform.Position, pointer)

	o.rig = rig
	o.mode = camera.ModeFree
}

func (o *OrbitController) bindCamera(g *engine.GameObject) error {
	cam, owner := engine.GetComponentInChildren[*Camera](g)
	switch {
	case owner == nil:
		return ErrNoCamera
	case owner == g:
		return ErrCameraNotChild
	}
	o.cam, o.camObject = cam, owner
	return nil
}

func (o *OrbitController) fail(g *engine.GameObject, err error) {
	o.err = err
	log.Printf("OrbitController: %q disabled: %v", g.Name, err)
}

// Stop discards the rig state. Nothing carries over to the next activation.
func (o *OrbitController) Stop() {
	o.rig = nil
	o.lastFrame = camera.Frame{}
}

func (o *OrbitController) Update(deltaTime float32) {
	if o.rig == nil {
		return
	}

	var in camera.Input
	if o.Input != nil {
		in = o.Input.Sample()
	}
	in.DeltaTime = deltaTime

	frame := o.rig.Step(in, o.query(), o.viewport())
	frame.ApplyTo(o)
	o.lastFrame = frame

	if frame.Mode != o.mode {
		o.mode = frame.Mode
		o.ModeChanged.Invoke(frame.Mode)
	}
	if o.OnFrame != nil {
		o.OnFrame(frame)
	}
}

func (o *OrbitController) query() camera.SceneQuery {
	if o.Query != nil {
		return o.Query
	}
	if g := o.GetGameObject(); g != nil && g.Scene != nil && g.Scene.World != nil {
		return g.Scene.World
	}
	return nil
}

func (o *OrbitController) viewport() camera.Viewport {
	if o.Viewport != nil {
		return o.Viewport
	}
	if o.cam != nil {
		return o.cam
	}
	return nil
}

// SetPivot implements camera.TransformSink.
func (o *OrbitController) SetPivot(position, rotation rl.Vector3) {
	g := o.GetGameObject()
	g.Transform.Position = position
	g.Transform.Rotation = rotation
}

// SetCameraOffset implements camera.TransformSink.
func (o *OrbitController) SetCameraOffset(offset rl.Vector3) {
	o.camObject.Transform.Position = offset
}

// Err reports why the last activation failed, or nil.
func (o *OrbitController) Err() error {
	return o.err
}

// Active reports whether the rig is running.
func (o *OrbitController) Active() bool {
	return o.rig != nil
}

// Rig returns the running rig, or nil when inactive.
func (o *OrbitController) Rig() *camera.Rig {
	return o.rig
}

func (o *OrbitController) Camera() *Camera {
	return o.cam
}

// LastFrame returns the result of the most recent Update.
func (o *OrbitController) LastFrame() camera.Frame {
	return o.lastFrame
}
