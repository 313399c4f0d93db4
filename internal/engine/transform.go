package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees: X pitch, Y yaw, Z roll
	Scale    rl.Vector3
}

// EulerBasis returns the right, up and forward axes for an Euler rotation in degrees.
//
// The frame is right-handed with Y up. At zero rotation forward is +Z and
// right is -X, matching what a raylib camera looking down +Z shows on screen.
// Positive pitch tilts forward downwards, positive yaw turns towards the
// screen-right side and roll spins right/up about forward.
func EulerBasis(rotation rl.Vector3) (right, up, forward rl.Vector3) {
	pitch := float64(rotation.X) * math.Pi / 180
	yaw := float64(rotation.Y) * math.Pi / 180
	roll := float64(rotation.Z) * math.Pi / 180

	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)

	forward = rl.Vector3{
		X: float32(-sy * cp),
		Y: float32(-sp),
		Z: float32(cy * cp),
	}
	right = rl.Vector3{X: float32(-cy), Y: 0, Z: float32(-sy)}
	up = rl.Vector3{
		X: float32(-sy * sp),
		Y: float32(cp),
		Z: float32(cy * sp),
	}

	if roll != 0 {
		sr, cr := math.Sincos(roll)
		r := rl.Vector3Add(rl.Vector3Scale(right, float32(cr)), rl.Vector3Scale(up, float32(sr)))
		u := rl.Vector3Subtract(rl.Vector3Scale(up, float32(cr)), rl.Vector3Scale(right, float32(sr)))
		right, up = r, u
	}
	return right, up, forward
}

// YawBasis returns the horizontal right and forward axes for a yaw in degrees.
func YawBasis(yaw float32) (right, forward rl.Vector3) {
	right, _, forward = EulerBasis(rl.Vector3{Y: yaw})
	return right, forward
}

// Forward returns the transform's forward axis.
func (t Transform) Forward() rl.Vector3 {
	_, _, f := EulerBasis(t.Rotation)
	return f
}

// TransformDirection maps a local-space vector into the parent space of t,
// applying rotation and scale but not translation.
func (t Transform) TransformDirection(local rl.Vector3) rl.Vector3 {
	right, up, forward := EulerBasis(t.Rotation)
	out := rl.Vector3Scale(right, local.X*t.Scale.X)
	out = rl.Vector3Add(out, rl.Vector3Scale(up, local.Y*t.Scale.Y))
	return rl.Vector3Add(out, rl.Vector3Scale(forward, local.Z*t.Scale.Z))
}
