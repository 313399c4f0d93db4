package physics

import (
	"math"

	"orbitrig/internal/components"
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// span is the parametric interval a ray line spends inside one collider.
type span struct {
	obj    *engine.GameObject
	near   float32
	far    float32
	box    AABB
	center rl.Vector3
	sphere bool
}

func (s span) normalAt(point rl.Vector3) rl.Vector3 {
	if s.sphere {
		return rl.Vector3Normalize(rl.Vector3Subtract(point, s.center))
	}
	return s.box.normalAt(point)
}

// Raycast returns the closest hit against colliders whose layer is in mask.
//
// Rays that start inside a collider only report its exit surface when
// backface hits are enabled.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit engine.RaycastResult
	closestHit.Distance = maxDistance
	hit := false

	p.eachSpan(origin, direction, mask, func(s span) {
		t, ok := s.first(maxDistance, p.hitBackfaces)
		if !ok || t > closestHit.Distance || (hit && t == closestHit.Distance) {
			return
		}
		point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		closestHit = engine.RaycastResult{
			GameObject: s.obj,
			Point:      point,
			Normal:     s.normalAt(point),
			Distance:   t,
		}
		hit = true
	})

	return closestHit, hit
}

// RaycastAllCount counts every surface crossing within maxDistance. Entry
// surfaces always count, exit surfaces only with backface hits enabled, so an
// odd count along a long enough ray means the origin is embedded in geometry.
func (p *PhysicsWorld) RaycastAllCount(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) int {
	direction = rl.Vector3Normalize(direction)
	count := 0
	p.eachSpan(origin, direction, mask, func(s span) {
		if s.near >= 0 && s.near <= maxDistance {
			count++
		}
		if p.hitBackfaces && s.far >= 0 && s.far <= maxDistance {
			count++
		}
	})
	return count
}

// first returns the first reportable surface along the ray.
func (s span) first(maxDistance float32, backfaces bool) (float32, bool) {
	if s.near >= 0 {
		return s.near, s.near <= maxDistance
	}
	if backfaces && s.far >= 0 && s.far <= maxDistance {
		return s.far, true
	}
	return 0, false
}

func (p *PhysicsWorld) eachSpan(origin, direction rl.Vector3, mask engine.LayerMask, fn func(span)) {
	if rl.Vector3Length(direction) == 0 {
		return
	}
	for _, obj := range p.Statics {
		if !obj.Active || !mask.Contains(obj.Layer) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if s, ok := raycastBox(origin, direction, box); ok {
				s.obj = obj
				fn(s)
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if s, ok := raycastSphere(origin, direction, sphere); ok {
				s.obj = obj
				fn(s)
			}
		}
	}
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider) (span, bool) {
	bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
	tNear, tFar, ok := bounds.slab(origin, direction)
	if !ok || tFar < 0 {
		return span{}, false
	}
	return span{near: tNear, far: tFar, box: bounds}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider) (span, bool) {
	center := sphere.GetCenter()
	radius := sphere.Radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return span{}, false
	}

	root := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - root) / (2 * a)
	t2 := (-b + root) / (2 * a)
	if t2 < 0 {
		return span{}, false
	}
	return span{near: t1, far: t2, center: center, sphere: true}, true
}
