package world

import (
	"orbitrig/internal/components"
	"orbitrig/internal/engine"
	"orbitrig/internal/physics"
)

// World owns the scene graph and the physics world that answers its queries.
type World struct {
	Scene    *engine.Scene
	Physics  *physics.PhysicsWorld
	Renderer *Renderer

	// Rig is the object carrying the OrbitController, if the scene has one.
	Rig *engine.GameObject
}

func New() *World {
	w := &World{
		Scene:    engine.NewScene("Main"),
		Physics:  physics.NewPhysicsWorld(),
		Renderer: NewRenderer(),
	}
	w.Scene.World = w.Physics
	return w
}

// Add puts g into the scene and registers every collider in its subtree.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.addColliders(g)
	if w.Rig == nil {
		if oc, owner := engine.GetComponentInChildren[*components.OrbitController](g); oc != nil {
			w.Rig = owner
		}
	}
}

func (w *World) addColliders(g *engine.GameObject) {
	if hasCollider(g) {
		w.Physics.AddObject(g)
	}
	for _, child := range g.Children {
		w.addColliders(child)
	}
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}

// Controller returns the rig's OrbitController, or nil.
func (w *World) Controller() *components.OrbitController {
	return engine.GetComponent[*components.OrbitController](w.Rig)
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
