package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Smoothing bases are multiplied by smoothness^2; the blend per frame is
// 1 - base^dt.
const (
	rotationDragSmoothing = 0.1
	rotationIdleDecay     = 0.2
	surfaceSmoothing      = 0.02
)

// Fixed per-call blends. These do not depend on the frame time.
const (
	zoomBlend   = 0.3
	offsetBlend = 0.3
)

// restVelocity is the angular speed (degrees per frame) below which an idle
// rig stops rotating.
const restVelocity = 1e-4

// decayFactor is the lerp amount that moves a value towards its target with
// exponential decay: after t seconds the remaining gap is base^t.
func decayFactor(base, dt float32) float32 {
	if dt <= 0 {
		return 0
	}
	return 1 - float32(math.Pow(float64(base), float64(dt)))
}

// wrapAngle maps degrees into (-180, 180].
func wrapAngle(deg float32) float32 {
	a := float32(math.Mod(float64(deg), 360))
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

func isFinite(v rl.Vector3) bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}
