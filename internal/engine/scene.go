package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	setScene(g, s)
	s.GameObjects = append(s.GameObjects, g)
}

func setScene(g *GameObject, s *Scene) {
	g.Scene = s
	for _, c := range g.Children {
		setScene(c, s)
	}
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			setScene(g, nil)
			return
		}
	}
}

// FindByName searches root objects and their children.
func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if found := findByName(g, name); found != nil {
			return found
		}
	}
	return nil
}

func findByName(g *GameObject, name string) *GameObject {
	if g.Name == name {
		return g
	}
	for _, c := range g.Children {
		if found := findByName(c, name); found != nil {
			return found
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
