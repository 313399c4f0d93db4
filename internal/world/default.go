package world

import (
	_ "embed"
)

//go:embed scenes/default.json
var defaultScene []byte

// LoadDefaultScene adds the built-in demo terrain and rig to the world.
func (w *World) LoadDefaultScene(opts SceneOptions) error {
	return w.ParseScene(defaultScene, opts)
}
