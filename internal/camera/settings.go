package camera

import (
	"math"
	"strings"

	"orbitrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// SurfaceFollow controls how the pivot tracks ground height.
type SurfaceFollow int

const (
	SurfaceFollowNone SurfaceFollow = iota
	MatchSurfaceInstant
	MatchSurfaceSmooth
)

var surfaceFollowNames = []string{"None", "MatchSurfaceInstant", "MatchSurfaceSmooth"}

func (s SurfaceFollow) String() string { return enumName(surfaceFollowNames, int(s)) }

// ParseSurfaceFollow accepts the names returned by String, case-insensitively.
func ParseSurfaceFollow(name string) (SurfaceFollow, error) {
	i, err := parseEnum("surface follow", surfaceFollowNames, name)
	return SurfaceFollow(i), err
}

// SurfaceCollision selects how ambiguous ground probes are resolved.
type SurfaceCollision int

const (
	SurfaceCollisionNone SurfaceCollision = iota
	SurfaceCollisionSweepTest
)

var surfaceCollisionNames = []string{"None", "SweepTest"}

func (s SurfaceCollision) String() string { return enumName(surfaceCollisionNames, int(s)) }

func ParseSurfaceCollision(name string) (SurfaceCollision, error) {
	i, err := parseEnum("surface collision", surfaceCollisionNames, name)
	return SurfaceCollision(i), err
}

// RotationEasing selects how angular velocity reacts to drag input.
//
//	None   - velocity follows the drag exactly and stops with it
//	Always - velocity eases towards the drag and decays after release
//	Subtle - velocity follows the drag exactly and decays after release
type RotationEasing int

const (
	EasingNone RotationEasing = iota
	EasingAlways
	EasingSubtle
)

var easingNames = []string{"None", "Always", "Subtle"}

func (e RotationEasing) String() string { return enumName(easingNames, int(e)) }

func ParseRotationEasing(name string) (RotationEasing, error) {
	i, err := parseEnum("rotation easing", easingNames, name)
	return RotationEasing(i), err
}

// MouseButton identifies the pointer button that drives rotation.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

var mouseButtonNames = []string{"Left", "Right", "Middle"}

func (b MouseButton) String() string { return enumName(mouseButtonNames, int(b)) }

func ParseMouseButton(name string) (MouseButton, error) {
	i, err := parseEnum("mouse button", mouseButtonNames, name)
	return MouseButton(i), err
}

// ZoomCollision selects the occlusion strategy for the camera distance.
type ZoomCollision int

const (
	ZoomCollisionNone ZoomCollision = iota
	RaycastFromCenter
	SweepTest
)

var zoomCollisionNames = []string{"None", "RaycastFromCenter", "SweepTest"}

func (z ZoomCollision) String() string { return enumName(zoomCollisionNames, int(z)) }

func ParseZoomCollision(name string) (ZoomCollision, error) {
	i, err := parseEnum("zoom collision", zoomCollisionNames, name)
	return ZoomCollision(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

func parseEnum(kind string, names []string, name string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown %s %q (want one of %s)", kind, name, strings.Join(names, ", "))
}

// AxisConstraint clamps one rotation axis to [Min, Max] degrees when Enabled.
type AxisConstraint struct {
	Enabled bool
	Min     float32
	Max     float32
}

// Apply clamps v when the constraint is enabled.
func (c AxisConstraint) Apply(v float32) float32 {
	if !c.Enabled {
		return v
	}
	return rl.Clamp(v, c.Min, c.Max)
}

type MovementSettings struct {
	Speed             float32
	SprintMultiplier  float32
	AllowFlight       bool // if false, the pivot only moves where the ground probe hits
	SurfaceFollow     SurfaceFollow
	Collision         SurfaceCollision
	SurfaceCheckRange float32 // maximum height difference probed above and below
	GroundMask        engine.LayerMask
	Smoothness        float32 // MatchSurfaceSmooth only; 0 snaps
}

type RotationSettings struct {
	Easing      RotationEasing
	Button      MouseButton
	Sensitivity float32
	Smoothness  float32
	ConstrainX  AxisConstraint // pitch
	ConstrainY  AxisConstraint // yaw
}

type ZoomSettings struct {
	RangeMin      float32
	RangeMax      float32
	AutoZoomIn    bool
	Collision     ZoomCollision
	Sensitivity   float32
	CollisionMask engine.LayerMask
}

// Span is the width of the zoom range.
func (z ZoomSettings) Span() float32 {
	return z.RangeMax - z.RangeMin
}

type Settings struct {
	Movement MovementSettings
	Rotation RotationSettings
	Zoom     ZoomSettings
}

// DefaultSettings returns the stock rig configuration.
func DefaultSettings() Settings {
	return Settings{
		Movement: MovementSettings{
			Speed:             3,
			SprintMultiplier:  2,
			SurfaceFollow:     SurfaceFollowNone,
			SurfaceCheckRange: 50,
			GroundMask:        engine.AllLayers,
			Smoothness:        1,
		},
		Rotation: RotationSettings{
			Easing:      EasingNone,
			Button:      MouseLeft,
			Sensitivity: 24,
			Smoothness:  1,
		},
		Zoom: ZoomSettings{
			RangeMin:      1,
			RangeMax:      15,
			AutoZoomIn:    true,
			Collision:     SweepTest,
			Sensitivity:   4,
			CollisionMask: engine.AllLayers,
		},
	}
}

// Validate reports the first setting that would make a solver ill-defined.
func (s Settings) Validate() error {
	m, r, z := s.Movement, s.Rotation, s.Zoom

	if err := nonNegative("movement.speed", m.Speed); err != nil {
		return err
	}
	if err := nonNegative("movement.sprintMultiplier", m.SprintMultiplier); err != nil {
		return err
	}
	if m.SurfaceFollow < SurfaceFollowNone || m.SurfaceFollow > MatchSurfaceSmooth {
		return errors.Errorf("movement.surfaceFollowType: invalid value %d", m.SurfaceFollow)
	}
	if m.Collision < SurfaceCollisionNone || m.Collision > SurfaceCollisionSweepTest {
		return errors.Errorf("movement.collisionDetection: invalid value %d", m.Collision)
	}
	if m.SurfaceFollow != SurfaceFollowNone && !(m.SurfaceCheckRange > 0) {
		return errors.Errorf("movement.surfaceCheckRange must be > 0 when surface follow is %s, got %v", m.SurfaceFollow, m.SurfaceCheckRange)
	}
	if err := smoothingBase("movement.smoothness", m.Smoothness, surfaceSmoothing); err != nil {
		return err
	}

	if r.Easing < EasingNone || r.Easing > EasingSubtle {
		return errors.Errorf("rotation.easingBehaviour: invalid value %d", r.Easing)
	}
	if r.Button < MouseLeft || r.Button > MouseMiddle {
		return errors.Errorf("rotation.rotationButton: invalid value %d", r.Button)
	}
	if err := nonNegative("rotation.rotationSensitivity", r.Sensitivity); err != nil {
		return err
	}
	if err := smoothingBase("rotation.smoothness", r.Smoothness, rotationIdleDecay); err != nil {
		return err
	}
	if r.ConstrainX.Enabled && r.ConstrainX.Min > r.ConstrainX.Max {
		return errors.Errorf("rotation.constraintsX: min %v > max %v", r.ConstrainX.Min, r.ConstrainX.Max)
	}
	if r.ConstrainY.Enabled && r.ConstrainY.Min > r.ConstrainY.Max {
		return errors.Errorf("rotation.constraintsY: min %v > max %v", r.ConstrainY.Min, r.ConstrainY.Max)
	}

	if err := nonNegative("zoom.zoomRange.min", z.RangeMin); err != nil {
		return err
	}
	if !(z.RangeMin < z.RangeMax) || isInf(z.RangeMax) {
		return errors.Errorf("zoom.zoomRange: min %v must be below max %v", z.RangeMin, z.RangeMax)
	}
	if z.Collision < ZoomCollisionNone || z.Collision > SweepTest {
		return errors.Errorf("zoom.collisionDetection: invalid value %d", z.Collision)
	}
	if err := nonNegative("zoom.zoomSensitivity", z.Sensitivity); err != nil {
		return err
	}
	return nil
}

func nonNegative(field string, v float32) error {
	if !(v >= 0) || isInf(v) {
		return errors.Errorf("%s must be a finite value >= 0, got %v", field, v)
	}
	return nil
}

// smoothingBase checks that smoothness^2 * constant stays below 1, otherwise
// 1 - base^dt never converges.
func smoothingBase(field string, smoothness, constant float32) error {
	if err := nonNegative(field, smoothness); err != nil {
		return err
	}
	if base := smoothness * smoothness * constant; base >= 1 {
		max := math.Sqrt(1 / float64(constant))
		return errors.Errorf("%s must be below %.3f, got %v", field, max, smoothness)
	}
	return nil
}

func isInf(v float32) bool {
	return math.IsInf(float64(v), 0)
}
