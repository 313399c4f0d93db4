package components

import (
	"math"

	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Oscillator moves its object back and forth along Axis around the position
// it had when started. Moving colliders give the rig's ground following and
// occlusion something to react to.
type Oscillator struct {
	engine.BaseComponent
	Axis      rl.Vector3
	Amplitude float32
	Speed     float32 // radians per second
	Phase     float32

	origin rl.Vector3
	time   float32
}

func NewOscillator(axis rl.Vector3, amplitude, speed, phase float32) *Oscillator {
	return &Oscillator{
		Axis:      rl.Vector3Normalize(axis),
		Amplitude: amplitude,
		Speed:     speed,
		Phase:     phase,
	}
}

func (o *Oscillator) Start() {
	if g := o.GetGameObject(); g != nil {
		o.origin = g.Transform.Position
	}
	o.time = 0
}

func (o *Oscillator) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil {
		return
	}

	o.time += deltaTime
	s := float32(math.Sin(float64(o.time*o.Speed + o.Phase)))
	g.Transform.Position = rl.Vector3Add(o.origin, rl.Vector3Scale(o.Axis, s*o.Amplitude))
}
