// Package input samples raylib's keyboard and mouse into camera.Input.
package input

import (
	"orbitrig/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raylib reports pixels for pointer motion and notches for the wheel. Both
// are scaled into axis units; pointer Y is flipped so that up is positive.
const (
	DefaultPointerScale = 0.1
	DefaultScrollScale  = 0.1
)

type Bindings struct {
	RotateButton camera.MouseButton

	Forward []int32
	Back    []int32
	Left    []int32
	Right   []int32

	Pan    []int32
	Zoom   []int32
	Sprint []int32

	PointerScale float32
	ScrollScale  float32
}

func DefaultBindings() Bindings {
	return Bindings{
		RotateButton: camera.MouseLeft,
		Forward:      []int32{rl.KeyW, rl.KeyUp},
		Back:         []int32{rl.KeyS, rl.KeyDown},
		Left:         []int32{rl.KeyA, rl.KeyLeft},
		Right:        []int32{rl.KeyD, rl.KeyRight},
		Pan:          []int32{rl.KeyLeftControl},
		Zoom:         []int32{rl.KeyLeftAlt},
		Sprint:       []int32{rl.KeyLeftShift},
		PointerScale: DefaultPointerScale,
		ScrollScale:  DefaultScrollScale,
	}
}

// Device is the slice of raylib's input API the sampler polls.
type Device interface {
	IsKeyDown(key int32) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	GetMousePosition() rl.Vector2
	GetMouseDelta() rl.Vector2
	GetMouseWheelMove() float32
	GetFrameTime() float32
}

type raylibDevice struct{}

func (raylibDevice) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }
func (raylibDevice) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}
func (raylibDevice) GetMousePosition() rl.Vector2 { return rl.GetMousePosition() }
func (raylibDevice) GetMouseDelta() rl.Vector2    { return rl.GetMouseDelta() }
func (raylibDevice) GetMouseWheelMove() float32   { return rl.GetMouseWheelMove() }
func (raylibDevice) GetFrameTime() float32        { return rl.GetFrameTime() }

// Raylib implements camera.InputSource on top of a Device.
type Raylib struct {
	Bindings Bindings
	Device   Device

	// Enabled gates all input; a disabled source reports an idle frame.
	Enabled bool
}

// NewRaylib samples the live raylib window.
func NewRaylib(b Bindings) *Raylib {
	return &Raylib{Bindings: b, Device: raylibDevice{}, Enabled: true}
}

func (r *Raylib) Sample() camera.Input {
	d := r.Device
	in := camera.Input{
		Pointer:   d.GetMousePosition(),
		DeltaTime: d.GetFrameTime(),
	}
	if !r.Enabled {
		return in
	}

	b := r.Bindings
	in.Move = rl.Vector2{
		X: r.axis(b.Right, b.Left),
		Y: r.axis(b.Forward, b.Back),
	}

	delta := d.GetMouseDelta()
	in.PointerDelta = rl.Vector2{X: delta.X * b.PointerScale, Y: -delta.Y * b.PointerScale}
	in.Scroll = d.GetMouseWheelMove() * b.ScrollScale

	in.RotateHeld = d.IsMouseButtonDown(mouseButton(b.RotateButton))
	in.PanModifier = r.anyDown(b.Pan)
	in.ZoomModifier = r.anyDown(b.Zoom)
	in.Sprint = r.anyDown(b.Sprint)
	return in
}

// PointerPosition reports the current pointer position without sampling a frame.
func (r *Raylib) PointerPosition() rl.Vector2 {
	return r.Device.GetMousePosition()
}

func (r *Raylib) axis(positive, negative []int32) float32 {
	var v float32
	if r.anyDown(positive) {
		v++
	}
	if r.anyDown(negative) {
		v--
	}
	return v
}

func (r *Raylib) anyDown(keys []int32) bool {
	for _, k := range keys {
		if r.Device.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func mouseButton(b camera.MouseButton) rl.MouseButton {
	switch b {
	case camera.MouseRight:
		return rl.MouseButtonRight
	case camera.MouseMiddle:
		return rl.MouseButtonMiddle
	}
	return rl.MouseButtonLeft
}
