package components

import (
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshTypeNames = []string{"cube", "sphere", "plane"}

func (m MeshType) String() string {
	if m < 0 || int(m) >= len(meshTypeNames) {
		return "unknown"
	}
	return meshTypeNames[m]
}

// ParseMeshType maps a scene-file mesh name to its MeshType.
func ParseMeshType(name string) (MeshType, bool) {
	for i, n := range meshTypeNames {
		if n == name {
			return MeshType(i), true
		}
	}
	return MeshCube, false
}

// MeshRenderer draws a primitive at the object's world position, scaled by
// its world scale.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// WorldSize returns Size scaled by the owner's world scale.
func (m *MeshRenderer) WorldSize() rl.Vector3 {
	g := m.GetGameObject()
	if g == nil {
		return m.Size
	}
	s := g.WorldScale()
	return rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	size := m.WorldSize()

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
