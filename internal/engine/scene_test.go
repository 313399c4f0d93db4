package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Pivot")
	child := NewGameObject("Camera")
	obj.AddChild(child)

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene || child.Scene != scene {
		t.Error("GameObject.Scene not set on object and children")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Pivot")
	obj2 := NewGameObject("Ground")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if obj1.Scene != nil {
		t.Error("Removed GameObject should have nil Scene")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Orbit Camera")
	child := NewGameObject("Camera")
	obj.AddChild(child)

	scene.AddGameObject(obj)

	if scene.FindByName("Orbit Camera") != obj {
		t.Error("FindByName failed for root object")
	}

	if scene.FindByName("Camera") != child {
		t.Error("FindByName failed for child object")
	}

	if scene.FindByName("Missing") != nil {
		t.Error("FindByName should return nil for missing object")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	a.Tags = []string{"ground"}
	b := NewGameObject("B")
	scene.AddGameObject(a)
	scene.AddGameObject(b)

	found := scene.FindByTag("ground")
	if len(found) != 1 || found[0] != a {
		t.Errorf("Expected [A], got %v", found)
	}
}

type counter struct {
	BaseComponent
	updates int
	dt      float32
}

func (c *counter) Update(dt float32) {
	c.updates++
	c.dt = dt
}

func TestSceneUpdateSkipsInactive(t *testing.T) {
	scene := NewScene("Test")
	active := NewGameObject("Active")
	inactive := NewGameObject("Inactive")
	ca, ci := &counter{}, &counter{}
	active.AddComponent(ca)
	inactive.AddComponent(ci)
	scene.AddGameObject(active)
	scene.AddGameObject(inactive)

	scene.Start()
	inactive.SetActive(false)
	scene.Update(0.016)

	if ca.updates != 1 || ca.dt != 0.016 {
		t.Errorf("Expected one update with dt 0.016, got %d/%f", ca.updates, ca.dt)
	}
	if ci.updates != 0 {
		t.Errorf("Inactive object should not update, got %d", ci.updates)
	}
}
