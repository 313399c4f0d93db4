package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// rotate integrates the drag input into the angular velocity and returns the
// new pivot rotation. Roll is carried through untouched.
func (r *Rig) rotate(in Input, dragging bool) rl.Vector3 {
	rs := r.settings.Rotation
	v := r.state.AngularVelocity

	if dragging {
		desired := rl.Vector2Scale(rl.Vector2{X: -in.PointerDelta.Y, Y: in.PointerDelta.X}, rs.Sensitivity/10)
		if rs.Easing == EasingAlways {
			v = rl.Vector2Lerp(v, desired, decayFactor(rs.Smoothness*rs.Smoothness*rotationDragSmoothing, in.DeltaTime))
		} else {
			v = desired
		}
	} else if rs.Easing == EasingNone {
		v = rl.Vector2Zero()
	}
	r.state.AngularVelocity = v

	rot := r.state.PivotRotation
	pitch := rs.ConstrainX.Apply(wrapAngle(rot.X) + v.X)
	yaw := rs.ConstrainY.Apply(rot.Y + v.Y)
	return rl.Vector3{X: pitch, Y: yaw, Z: rot.Z}
}

// decayRotation relaxes the angular velocity towards zero on frames without
// a drag.
func (r *Rig) decayRotation(dt float32, dragging bool) {
	rs := r.settings.Rotation
	if dragging || rs.Easing == EasingNone {
		return
	}
	v := rl.Vector2Lerp(r.state.AngularVelocity, rl.Vector2Zero(), decayFactor(rs.Smoothness*rs.Smoothness*rotationIdleDecay, dt))
	if rl.Vector2Length(v) < restVelocity {
		v = rl.Vector2Zero()
	}
	r.state.AngularVelocity = v
}
