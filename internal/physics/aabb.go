package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
// Negative sizes are treated as their absolute value.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// slab intersects the infinite line origin + t*direction with the box and
// returns the entry and exit parameters. ok is false when the line misses.
func (a AABB) slab(origin, direction rl.Vector3) (tNear, tFar float32, ok bool) {
	tNear = -1e30
	tFar = 1e30

	axes := [3][4]float32{
		{origin.X, direction.X, a.Min.X, a.Max.X},
		{origin.Y, direction.Y, a.Min.Y, a.Max.Y},
		{origin.Z, direction.Z, a.Min.Z, a.Max.Z},
	}
	for _, ax := range axes {
		o, d, lo, hi := ax[0], ax[1], ax[2], ax[3]
		if d == 0 {
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}
	return tNear, tFar, true
}

// normalAt returns the outward face normal closest to a surface point.
func (a AABB) normalAt(point rl.Vector3) rl.Vector3 {
	epsilon := float32(0.001)
	switch {
	case abs(point.X-a.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-a.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-a.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-a.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-a.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
