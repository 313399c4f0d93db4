package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// MaxLayers is the number of distinct collision layers a LayerMask can address.
const MaxLayers = 32

// LayerMask selects a set of GameObject layers for scene queries.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// LayerMaskOf builds a mask from layer indices. Out of range indices are ignored.
func LayerMaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l < 0 || l >= MaxLayers {
			continue
		}
		m |= 1 << uint(l)
	}
	return m
}

// Contains reports whether layer is selected by the mask.
func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= MaxLayers {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// Layers returns the selected layer indices in ascending order.
func (m LayerMask) Layers() []int {
	var out []int
	for l := 0; l < MaxLayers; l++ {
		if m.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level scene queries
// without creating circular import dependencies.
type WorldAccess interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	RaycastAllCount(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) int
	HitBackfaces() bool
	SetHitBackfaces(enabled bool)
}
