// Package camera implements an orbit camera rig: a pivot that moves over the
// scene and a child camera held at a zoom distance behind it.
//
// The rig is driven explicitly: the host calls Step once per frame with the
// sampled input and a scene query, then applies the returned Frame to its
// transforms. A Rig is not safe for concurrent use.
package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// State is everything the rig carries from one frame to the next.
type State struct {
	PivotPosition   rl.Vector3
	PivotRotation   rl.Vector3 // degrees: X pitch, Y yaw, Z roll
	AngularVelocity rl.Vector2 // degrees per frame: X pitch, Y yaw
	NormalizedZoom  float32    // fraction of the zoom range, 0 = nearest
	Mode            Mode
	LastPointer     rl.Vector2
	CameraOffset    rl.Vector3 // smoothed camera position in pivot space
}

// Frame is the result of one Step.
type Frame struct {
	PivotPosition  rl.Vector3
	PivotRotation  rl.Vector3
	CameraOffset   rl.Vector3
	Mode           Mode
	Distance       float32 // camera distance after occlusion
	TargetDistance float32 // requested distance before occlusion
	NormalizedZoom float32
}

// ApplyTo hands the frame to a transform backend.
func (f Frame) ApplyTo(sink TransformSink) {
	sink.SetPivot(f.PivotPosition, f.PivotRotation)
	sink.SetCameraOffset(f.CameraOffset)
}

type Rig struct {
	settings Settings
	state    State
}

// New creates a rig at the origin. Call Activate to place it.
func New(settings Settings) (*Rig, error) {
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rig settings")
	}
	r := &Rig{settings: settings}
	r.Activate(rl.Vector3{}, rl.Vector3{}, rl.Vector3{}, rl.Vector2{})
	return r, nil
}

// Activate resets the rig state for a new activation.
func (r *Rig) Activate(position, rotation, cameraOffset rl.Vector3, pointer rl.Vector2) {
	r.state = State{
		PivotPosition:  position,
		PivotRotation:  rotation,
		NormalizedZoom: 0.5,
		Mode:           ModeFree,
		LastPointer:    pointer,
		CameraOffset:   cameraOffset,
	}
}

func (r *Rig) State() State {
	return r.state
}

func (r *Rig) Settings() Settings {
	return r.settings
}

// SetSettings swaps the configuration between frames. Zoom is kept as a
// fraction of the range, so the relative zoom survives range changes.
func (r *Rig) SetSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return errors.Wrap(err, "invalid rig settings")
	}
	r.settings = settings
	return nil
}

// Step advances the rig by one frame. query and viewport may be nil, which
// disables ground following, occlusion and panning respectively.
func (r *Rig) Step(in Input, query SceneQuery, viewport Viewport) Frame {
	s := &r.state

	mode := SelectMode(s.Mode, in)
	s.Mode = mode

	dragging := mode == ModeMoveRotate && in.RotateHeld
	rotation := r.rotate(in, dragging)

	position := s.PivotPosition
	switch mode {
	case ModeFree, ModeMoveRotate:
		position = r.move(in, rotation.Y, query)
	case ModePan:
		position = r.pan(in, viewport)
	}

	distance := r.Distance()
	switch mode {
	case ModeFree, ModeMoveRotate:
		distance = r.applyZoomIntent(distance, in.Scroll)
	case ModeZoom:
		distance = r.applyZoomIntent(distance, in.PointerDelta.Y*dragZoomScale)
	}

	s.PivotRotation = rotation
	s.PivotPosition = position

	resolved := r.resolveOcclusion(distance, query)
	s.CameraOffset = rl.Vector3Lerp(s.CameraOffset, rl.Vector3{Z: -resolved}, offsetBlend)

	stored := distance
	if r.settings.Zoom.AutoZoomIn {
		stored = resolved
	}
	s.NormalizedZoom = r.DistanceToNormalized(stored)

	r.decayRotation(in.DeltaTime, dragging)
	s.LastPointer = in.Pointer

	return Frame{
		PivotPosition:  s.PivotPosition,
		PivotRotation:  s.PivotRotation,
		CameraOffset:   s.CameraOffset,
		Mode:           mode,
		Distance:       resolved,
		TargetDistance: distance,
		NormalizedZoom: s.NormalizedZoom,
	}
}
