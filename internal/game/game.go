package game

import (
	"log"
	"time"

	"orbitrig/internal/camera"
	"orbitrig/internal/config"
	"orbitrig/internal/engine"
	"orbitrig/internal/input"
	"orbitrig/internal/telemetry"
	"orbitrig/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

type Options struct {
	// ScenePath is a JSON scene file; empty loads the built-in scene.
	ScenePath string
	Config    config.Config

	// Telemetry receives a snapshot per frame when set.
	Telemetry *telemetry.Hub
}

type Game struct {
	World     *world.World
	Input     *input.Raylib
	Telemetry *telemetry.Hub
	DebugMode bool

	opts  Options
	frame uint64
	home  homePose

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// homePose is where Reset puts the rig back.
type homePose struct {
	pivot     engine.Transform
	cameraPos rl.Vector3
}

func New(opts Options) *Game {
	return &Game{
		World:     world.New(),
		Input:     input.NewRaylib(opts.Config.Bindings),
		Telemetry: opts.Telemetry,
		opts:      opts,
	}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Orbit Camera Rig")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	if err := g.load(); err != nil {
		return err
	}
	setupHUDStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) load() error {
	sceneOpts := world.SceneOptions{Settings: g.opts.Config.Settings, Input: g.Input}

	var err error
	if g.opts.ScenePath != "" {
		err = g.World.LoadScene(g.opts.ScenePath, sceneOpts)
	} else {
		err = g.World.LoadDefaultScene(sceneOpts)
	}
	if err != nil {
		return err
	}

	oc := g.World.Controller()
	if oc == nil {
		return errors.New("scene has no OrbitController")
	}
	oc.OnFrame = g.publish
	oc.ModeChanged.AddListener(func(m camera.Mode) {
		if g.DebugMode {
			log.Printf("Game: rig mode %s", m)
		}
	})

	g.World.Start()
	if err := oc.Err(); err != nil {
		return errors.Wrap(err, "start rig")
	}

	g.home = homePose{pivot: g.World.Rig.Transform, cameraPos: oc.Camera().GetGameObject().Transform.Position}
	log.Printf("Game: %d objects, %d colliders", len(g.World.Scene.GameObjects), len(g.World.Physics.Statics))
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	// Clicks on the HUD must not drive the rig.
	g.Input.Enabled = !rl.CheckCollisionPointRec(rl.GetMousePosition(), hudBounds)

	g.World.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.ResetRig()
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// ResetRig moves the rig back to its loaded pose and restarts it, which
// discards its smoothing state and zoom.
func (g *Game) ResetRig() {
	oc := g.World.Controller()
	if oc == nil || oc.Camera() == nil {
		return
	}
	rig := g.World.Rig
	rig.SetActive(false)
	rig.Transform = g.home.pivot
	oc.Camera().GetGameObject().Transform.Position = g.home.cameraPos
	rig.SetActive(true)
}

func (g *Game) publish(f camera.Frame) {
	g.frame++
	if g.Telemetry == nil {
		return
	}
	if err := g.Telemetry.Publish(telemetry.SnapshotOf(g.frame, f)); err != nil {
		log.Printf("Game: telemetry: %v", err)
	}
}

func (g *Game) Draw() {
	oc := g.World.Controller()
	cam := oc.Camera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.World.Renderer.Draw(cam.GetRaylibCamera(), g.World.Scene.GameObjects, g.World.Rig)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI(oc)
	rl.EndDrawing()
}
