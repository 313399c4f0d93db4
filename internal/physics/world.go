package physics

import (
	"log"

	"orbitrig/internal/components"
	"orbitrig/internal/engine"
)

// PhysicsWorld answers scene queries against static box and sphere colliders.
// It implements engine.WorldAccess.
type PhysicsWorld struct {
	Statics []*engine.GameObject // objects carrying a collider

	// hitBackfaces is shared by every query issued against this world.
	hitBackfaces bool
}

var _ engine.WorldAccess = (*PhysicsWorld)(nil)

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Statics: make([]*engine.GameObject, 0),
	}
}

// AddObject registers g if it carries a collider.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if engine.GetComponent[*components.BoxCollider](g) == nil && engine.GetComponent[*components.SphereCollider](g) == nil {
		log.Printf("Physics: %q has no collider, not added", g.Name)
		return
	}
	p.Statics = append(p.Statics, g)
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Statics {
		if obj == g {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			return
		}
	}
}

// HitBackfaces reports whether queries currently report exit surfaces.
func (p *PhysicsWorld) HitBackfaces() bool {
	return p.hitBackfaces
}

// SetHitBackfaces changes the backface mode for all subsequent queries.
// Callers that need it temporarily must restore the previous value.
func (p *PhysicsWorld) SetHitBackfaces(enabled bool) {
	p.hitBackfaces = enabled
}
