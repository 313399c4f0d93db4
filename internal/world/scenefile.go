package world

import (
	"encoding/json"
	"log"
	"os"

	"orbitrig/internal/camera"
	"orbitrig/internal/components"
	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Defaults applied to an OrbitController object that leaves them out.
var (
	DefaultRigPitch     float32 = 30
	DefaultCameraOffset         = rl.Vector3{Z: -10}
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      int               `json:"layer,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   *[3]float32       `json:"rotation,omitempty"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type cameraDef struct {
	Type string  `json:"type"`
	FOV  float32 `json:"fov,omitempty"`
	Near float32 `json:"near,omitempty"`
	Far  float32 `json:"far,omitempty"`
}

type oscillatorDef struct {
	Type      string     `json:"type"`
	Axis      [3]float32 `json:"axis"`
	Amplitude float32    `json:"amplitude"`
	Speed     float32    `json:"speed"`
	Phase     float32    `json:"phase,omitempty"`
}

// SceneOptions supplies what the scene file does not describe: the rig's
// settings and its input source.
type SceneOptions struct {
	Settings camera.Settings
	Input    camera.InputSource
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
	"DarkGreen": rl.DarkGreen,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// --- Loading ---

func (w *World) LoadScene(path string, opts SceneOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read scene")
	}
	return errors.Wrapf(w.ParseScene(data, opts), "scene %s", path)
}

// ParseScene adds the objects described by a JSON scene file to the world.
func (w *World) ParseScene(data []byte, opts SceneOptions) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return errors.Wrap(err, "parse scene")
	}

	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef, opts)
		if err != nil {
			return err
		}
		w.Add(g)
	}
	return nil
}

func buildObject(def ObjectDef, opts SceneOptions) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Layer = def.Layer
	if def.Layer < 0 || def.Layer >= engine.MaxLayers {
		return nil, errors.Errorf("object %q: layer %d out of range", def.Name, def.Layer)
	}
	g.Transform.Position = vec3(def.Position)
	if def.Rotation != nil {
		g.Transform.Rotation = vec3(*def.Rotation)
	}

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	for _, raw := range def.Components {
		if err := addComponent(g, raw, opts); err != nil {
			return nil, errors.Wrapf(err, "object %q", def.Name)
		}
	}

	for _, childDef := range def.Children {
		child, err := buildObject(childDef, opts)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}

	if oc := engine.GetComponent[*components.OrbitController](g); oc != nil {
		applyRigDefaults(g, def)
	}
	return g, nil
}

func addComponent(g *engine.GameObject, raw json.RawMessage, opts SceneOptions) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return errors.Wrap(err, "component header")
	}

	switch header.Type {
	case "MeshRenderer":
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return errors.Wrap(err, "MeshRenderer")
		}
		mesh, ok := components.ParseMeshType(def.Mesh)
		if !ok {
			return errors.Errorf("MeshRenderer: unknown mesh %q", def.Mesh)
		}
		g.AddComponent(components.NewMeshRenderer(mesh, lookupColor(def.Color), vec3(def.Size)))

	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return errors.Wrap(err, "BoxCollider")
		}
		col := components.NewBoxCollider(vec3(def.Size))
		col.Offset = vec3(def.Offset)
		g.AddComponent(col)

	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return errors.Wrap(err, "SphereCollider")
		}
		col := components.NewSphereCollider(def.Radius)
		col.Offset = vec3(def.Offset)
		g.AddComponent(col)

	case "Camera":
		var def cameraDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return errors.Wrap(err, "Camera")
		}
		cam := components.NewCamera()
		if def.FOV > 0 {
			cam.FOV = def.FOV
		}
		if def.Near > 0 {
			cam.Near = def.Near
		}
		if def.Far > 0 {
			cam.Far = def.Far
		}
		g.AddComponent(cam)

	case "Oscillator":
		var def oscillatorDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return errors.Wrap(err, "Oscillator")
		}
		g.AddComponent(components.NewOscillator(vec3(def.Axis), def.Amplitude, def.Speed, def.Phase))

	case "OrbitController":
		g.AddComponent(components.NewOrbitController(opts.Settings, opts.Input))

	default:
		log.Printf("World: unknown component type %q on %q, skipped", header.Type, g.Name)
	}
	return nil
}

// applyRigDefaults gives a rig without a camera the standard child camera,
// and a rig without an explicit rotation the standard downward pitch.
func applyRigDefaults(g *engine.GameObject, def ObjectDef) {
	if def.Rotation == nil {
		g.Transform.Rotation = rl.Vector3{X: DefaultRigPitch}
	}
	if _, owner := engine.GetComponentInChildren[*components.Camera](g); owner != nil {
		return
	}
	cam := engine.NewGameObject("Camera")
	cam.Transform.Position = DefaultCameraOffset
	cam.AddComponent(components.NewCamera())
	g.AddChild(cam)
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
