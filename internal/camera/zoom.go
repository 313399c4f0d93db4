package camera

import (
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// zoomEpsilon keeps the camera just in front of the surface it was pulled to.
const zoomEpsilon = 0.05

// dragZoomScale converts vertical pointer drag in Zoom mode into scroll units.
const dragZoomScale = 0.05

// Distance is the camera distance stored in the rig's normalized zoom.
func (r *Rig) Distance() float32 {
	return r.NormalizedToDistance(r.state.NormalizedZoom)
}

// NormalizedToDistance maps a zoom fraction onto the configured range.
func (r *Rig) NormalizedToDistance(n float32) float32 {
	z := r.settings.Zoom
	return rl.Lerp(z.RangeMin, z.RangeMax, rl.Clamp(n, 0, 1))
}

// DistanceToNormalized maps a distance to its fraction of the range, clamped to [0, 1].
func (r *Rig) DistanceToNormalized(d float32) float32 {
	z := r.settings.Zoom
	return rl.Clamp(rl.Normalize(d, z.RangeMin, z.RangeMax), 0, 1)
}

// applyZoomIntent moves distance part of the way towards the requested zoom.
// Positive delta zooms in.
func (r *Rig) applyZoomIntent(distance, delta float32) float32 {
	z := r.settings.Zoom
	if delta != 0 {
		target := distance - delta*z.Sensitivity*z.Span()
		distance = rl.Lerp(distance, target, zoomBlend)
	}
	return rl.Clamp(distance, z.RangeMin, z.RangeMax)
}

// resolveOcclusion shortens distance so the camera does not end up behind or
// inside geometry on the collision mask. It uses the committed pivot
// position and rotation of this frame.
func (r *Rig) resolveOcclusion(distance float32, query SceneQuery) float32 {
	z := r.settings.Zoom
	if query == nil || z.Collision == ZoomCollisionNone {
		return distance
	}

	pivot := r.state.PivotPosition
	_, up, forward := engine.EulerBasis(r.state.PivotRotation)

	switch z.Collision {
	case RaycastFromCenter:
		if hit, ok := query.Raycast(pivot, rl.Vector3Negate(forward), distance, z.CollisionMask); ok {
			return max(hit.Distance-zoomEpsilon, 0)
		}

	case SweepTest:
		candidate := rl.Vector3Subtract(pivot, rl.Vector3Scale(forward, distance))
		resolved := distance
		withBackfaces(query, func() {
			if query.RaycastAllCount(candidate, up, sweepLength, z.CollisionMask)%2 == 0 {
				return
			}
			if hit, ok := query.Raycast(candidate, forward, distance, z.CollisionMask); ok {
				resolved = max(rl.Vector3Distance(hit.Point, pivot)-zoomEpsilon, 0)
			}
		})
		return resolved
	}
	return distance
}
