// Package config loads rig settings and input bindings from a YAML file.
//
// Every key is optional; missing keys keep their defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"io"
	"os"

	"orbitrig/internal/camera"
	"orbitrig/internal/engine"
	"orbitrig/internal/input"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Settings camera.Settings
	Bindings input.Bindings
}

func Default() Config {
	return Config{
		Settings: camera.DefaultSettings(),
		Bindings: input.DefaultBindings(),
	}
}

type file struct {
	Movement movementFile `yaml:"movement"`
	Rotation rotationFile `yaml:"rotation"`
	Zoom     zoomFile     `yaml:"zoom"`
	Bindings bindingsFile `yaml:"bindings"`
}

type movementFile struct {
	Speed             float32 `yaml:"speed"`
	SprintMultiplier  float32 `yaml:"sprintMultiplier"`
	AllowFlight       bool    `yaml:"allowFlight"`
	SurfaceFollowType string  `yaml:"surfaceFollowType"`
	Collision         string  `yaml:"collisionDetection"`
	SurfaceCheckRange float32 `yaml:"surfaceCheckRange"`
	GroundLayers      []int   `yaml:"groundLayers"`
	Smoothness        float32 `yaml:"smoothness"`
}

type constraintFile struct {
	Enabled bool    `yaml:"enabled"`
	Min     float32 `yaml:"min"`
	Max     float32 `yaml:"max"`
}

type rotationFile struct {
	Easing       string         `yaml:"easingBehaviour"`
	Button       string         `yaml:"rotationButton"`
	Sensitivity  float32        `yaml:"rotationSensitivity"`
	Smoothness   float32        `yaml:"smoothness"`
	ConstraintsX constraintFile `yaml:"constraintsX"`
	ConstraintsY constraintFile `yaml:"constraintsY"`
}

type zoomFile struct {
	Range           []float32 `yaml:"zoomRange,flow"`
	AutoZoomIn      bool      `yaml:"autoZoomIn"`
	Collision       string    `yaml:"collisionDetection"`
	Sensitivity     float32   `yaml:"zoomSensitivity"`
	CollisionLayers []int     `yaml:"collisionLayers"`
}

type bindingsFile struct {
	Forward      []string `yaml:"forward"`
	Back         []string `yaml:"back"`
	Left         []string `yaml:"left"`
	Right        []string `yaml:"right"`
	Pan          []string `yaml:"pan"`
	Zoom         []string `yaml:"zoom"`
	Sprint       []string `yaml:"sprint"`
	PointerScale float32  `yaml:"pointerScale"`
	ScrollScale  float32  `yaml:"scrollScale"`
}

// Load reads and parses the settings file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read settings")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "settings %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	f := toFile(Default())

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parse settings")
	}

	cfg, err := f.config()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Settings.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid settings")
	}
	return cfg, nil
}

func toFile(c Config) file {
	m, r, z, b := c.Settings.Movement, c.Settings.Rotation, c.Settings.Zoom, c.Bindings
	return file{
		Movement: movementFile{
			Speed:             m.Speed,
			SprintMultiplier:  m.SprintMultiplier,
			AllowFlight:       m.AllowFlight,
			SurfaceFollowType: m.SurfaceFollow.String(),
			Collision:         m.Collision.String(),
			SurfaceCheckRange: m.SurfaceCheckRange,
			GroundLayers:      m.GroundMask.Layers(),
			Smoothness:        m.Smoothness,
		},
		Rotation: rotationFile{
			Easing:       r.Easing.String(),
			Button:       r.Button.String(),
			Sensitivity:  r.Sensitivity,
			Smoothness:   r.Smoothness,
			ConstraintsX: constraintFile(r.ConstrainX),
			ConstraintsY: constraintFile(r.ConstrainY),
		},
		Zoom: zoomFile{
			Range:           []float32{z.RangeMin, z.RangeMax},
			AutoZoomIn:      z.AutoZoomIn,
			Collision:       z.Collision.String(),
			Sensitivity:     z.Sensitivity,
			CollisionLayers: z.CollisionMask.Layers(),
		},
		Bindings: bindingsFile{
			Forward:      keyNames(b.Forward),
			Back:         keyNames(b.Back),
			Left:         keyNames(b.Left),
			Right:        keyNames(b.Right),
			Pan:          keyNames(b.Pan),
			Zoom:         keyNames(b.Zoom),
			Sprint:       keyNames(b.Sprint),
			PointerScale: b.PointerScale,
			ScrollScale:  b.ScrollScale,
		},
	}
}

func (f file) config() (Config, error) {
	var (
		c   = Default()
		err error
	)
	s := &c.Settings

	s.Movement.Speed = f.Movement.Speed
	s.Movement.SprintMultiplier = f.Movement.SprintMultiplier
	s.Movement.AllowFlight = f.Movement.AllowFlight
	s.Movement.SurfaceCheckRange = f.Movement.SurfaceCheckRange
	s.Movement.Smoothness = f.Movement.Smoothness
	if s.Movement.SurfaceFollow, err = camera.ParseSurfaceFollow(f.Movement.SurfaceFollowType); err != nil {
		return c, errors.Wrap(err, "movement.surfaceFollowType")
	}
	if s.Movement.Collision, err = camera.ParseSurfaceCollision(f.Movement.Collision); err != nil {
		return c, errors.Wrap(err, "movement.collisionDetection")
	}
	if s.Movement.GroundMask, err = layerMask(f.Movement.GroundLayers); err != nil {
		return c, errors.Wrap(err, "movement.groundLayers")
	}

	s.Rotation.Sensitivity = f.Rotation.Sensitivity
	s.Rotation.Smoothness = f.Rotation.Smoothness
	s.Rotation.ConstrainX = camera.AxisConstraint(f.Rotation.ConstraintsX)
	s.Rotation.ConstrainY = camera.AxisConstraint(f.Rotation.ConstraintsY)
	if s.Rotation.Easing, err = camera.ParseRotationEasing(f.Rotation.Easing); err != nil {
		return c, errors.Wrap(err, "rotation.easingBehaviour")
	}
	if s.Rotation.Button, err = camera.ParseMouseButton(f.Rotation.Button); err != nil {
		return c, errors.Wrap(err, "rotation.rotationButton")
	}

	if len(f.Zoom.Range) != 2 {
		return c, errors.Errorf("zoom.zoomRange: want [min, max], got %d values", len(f.Zoom.Range))
	}
	s.Zoom.RangeMin, s.Zoom.RangeMax = f.Zoom.Range[0], f.Zoom.Range[1]
	s.Zoom.AutoZoomIn = f.Zoom.AutoZoomIn
	s.Zoom.Sensitivity = f.Zoom.Sensitivity
	if s.Zoom.Collision, err = camera.ParseZoomCollision(f.Zoom.Collision); err != nil {
		return c, errors.Wrap(err, "zoom.collisionDetection")
	}
	if s.Zoom.CollisionMask, err = layerMask(f.Zoom.CollisionLayers); err != nil {
		return c, errors.Wrap(err, "zoom.collisionLayers")
	}

	if err := f.Bindings.apply(&c.Bindings); err != nil {
		return c, err
	}
	c.Bindings.RotateButton = s.Rotation.Button
	return c, nil
}

func (f bindingsFile) apply(b *input.Bindings) error {
	lists := []struct {
		name  string
		names []string
		dst   *[]int32
	}{
		{"forward", f.Forward, &b.Forward},
		{"back", f.Back, &b.Back},
		{"left", f.Left, &b.Left},
		{"right", f.Right, &b.Right},
		{"pan", f.Pan, &b.Pan},
		{"zoom", f.Zoom, &b.Zoom},
		{"sprint", f.Sprint, &b.Sprint},
	}
	for _, l := range lists {
		keys, err := input.ParseKeys(l.names)
		if err != nil {
			return errors.Wrapf(err, "bindings.%s", l.name)
		}
		*l.dst = keys
	}

	if f.PointerScale <= 0 || f.ScrollScale <= 0 {
		return errors.Errorf("bindings: pointerScale and scrollScale must be > 0, got %v and %v", f.PointerScale, f.ScrollScale)
	}
	b.PointerScale, b.ScrollScale = f.PointerScale, f.ScrollScale
	return nil
}

func layerMask(layers []int) (engine.LayerMask, error) {
	for _, l := range layers {
		if l < 0 || l >= engine.MaxLayers {
			return 0, errors.Errorf("layer %d out of range [0, %d)", l, engine.MaxLayers)
		}
	}
	return engine.LayerMaskOf(layers...), nil
}

func keyNames(keys []int32) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if n := input.KeyName(k); n != "" {
			names = append(names, n)
		}
	}
	return names
}
