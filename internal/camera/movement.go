package camera

import (
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	worldUp   = rl.Vector3{Y: 1}
	worldDown = rl.Vector3{Y: -1}
)

// sweepLength is the reach of the parity rays used to detect embedding.
const sweepLength = 1000

// move applies keyboard movement along the yaw-aligned ground plane and
// resolves the result against the ground.
//
// Without a ground hit the pivot only moves when flight is allowed; otherwise
// the whole position is held for the frame, including the horizontal part.
func (r *Rig) move(in Input, yaw float32, query SceneQuery) rl.Vector3 {
	m := r.settings.Movement
	current := r.state.PivotPosition

	speed := m.Speed * in.DeltaTime
	if in.Sprint {
		speed *= m.SprintMultiplier
	}
	right, forward := engine.YawBasis(yaw)
	direction := rl.Vector3Add(rl.Vector3Scale(right, in.Move.X), rl.Vector3Scale(forward, in.Move.Y))
	desired := rl.Vector3Add(current, rl.Vector3Scale(direction, speed))

	if m.SurfaceFollow == SurfaceFollowNone {
		return desired
	}

	ground, ok := r.probeGround(desired, query)
	if !ok {
		if m.AllowFlight {
			return desired
		}
		return current
	}

	if m.SurfaceFollow == MatchSurfaceSmooth {
		return rl.Vector3Lerp(desired, ground, decayFactor(m.Smoothness*m.Smoothness*surfaceSmoothing, in.DeltaTime))
	}
	return ground
}

// probeGround finds the surface under desired. With sweep collision enabled a
// point buried in ground geometry (odd crossing count straight up) is pushed
// to the nearer of the surfaces directly above or below it, which keeps the
// pivot out of overhangs and caves a single downward probe would pick.
func (r *Rig) probeGround(desired rl.Vector3, query SceneQuery) (rl.Vector3, bool) {
	if query == nil {
		return rl.Vector3{}, false
	}
	m := r.settings.Movement

	if m.Collision == SurfaceCollisionSweepTest {
		var (
			point    rl.Vector3
			found    bool
			embedded bool
		)
		withBackfaces(query, func() {
			embedded = query.RaycastAllCount(desired, worldUp, sweepLength, m.GroundMask)%2 == 1
			if !embedded {
				return
			}
			above, okAbove := query.Raycast(desired, worldUp, m.SurfaceCheckRange, m.GroundMask)
			below, okBelow := query.Raycast(desired, worldDown, m.SurfaceCheckRange, m.GroundMask)
			switch {
			case okAbove && (!okBelow || above.Distance <= below.Distance):
				point, found = above.Point, true
			case okBelow:
				point, found = below.Point, true
			}
		})
		if embedded {
			return point, found
		}
	}

	origin := rl.Vector3Add(desired, rl.Vector3Scale(worldUp, m.SurfaceCheckRange))
	hit, ok := query.Raycast(origin, worldDown, m.SurfaceCheckRange*2, m.GroundMask)
	if !ok {
		return rl.Vector3{}, false
	}
	return hit.Point, true
}
