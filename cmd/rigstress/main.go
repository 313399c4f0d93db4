// Stress test timing rig steps against scenes with many colliders
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"orbitrig/internal/camera"
	"orbitrig/internal/components"
	"orbitrig/internal/engine"
	"orbitrig/internal/physics"

	"github.com/Pallinder/go-randomdata"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	frames := flag.Int("frames", 2000, "rig steps per run")
	seed := flag.Int64("seed", 42, "random seed for scene and input")
	verbose := flag.Bool("v", false, "log every generated obstacle")
	flag.Parse()
	if *frames < 1 {
		log.Fatalf("-frames must be at least 1, got %d", *frames)
	}

	// Test various collider counts
	testCounts := []int{10, 100, 500, 1000, 5000}
	modes := []camera.ZoomCollision{camera.ZoomCollisionNone, camera.RaycastFromCenter, camera.SweepTest}

	fmt.Printf("%8s", "objects")
	for _, m := range modes {
		fmt.Printf(" %20s", m)
	}
	fmt.Println()

	for _, count := range testCounts {
		world := buildScene(count, *seed, *verbose)
		fmt.Printf("%8d", count)
		for _, m := range modes {
			perStep := runRig(world, m, *frames, *seed)
			fmt.Printf(" %17.2fus", float64(perStep.Nanoseconds())/1000)
		}
		fmt.Println()
	}
}

// obstacleNames hands out unique readable names so -v output can be grepped.
type obstacleNames map[string]struct{}

func (n obstacleNames) next() string {
	for {
		name := randomdata.SillyName()
		if _, exists := n[name]; !exists {
			n[name] = struct{}{}
			return name
		}
	}
}

func buildScene(count int, seed int64, verbose bool) *physics.PhysicsWorld {
	rnd := rand.New(rand.NewSource(seed))
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	names := make(obstacleNames, count)
	w := physics.NewPhysicsWorld()

	ground := engine.NewGameObject("Ground")
	ground.Transform.Position = rl.Vector3{Y: -0.5}
	ground.AddComponent(components.NewBoxCollider(rl.Vector3{X: 200, Y: 1, Z: 200}))
	w.AddObject(ground)

	// Spawn in a square, size scales with count to keep density reasonable
	spawnSize := float32(40.0) + float32(count)/10.0

	for i := 0; i < count; i++ {
		g := engine.NewGameObject(names.next())
		g.Layer = 1 + rnd.Intn(4)
		g.Transform.Position = rl.Vector3{
			X: rnd.Float32()*spawnSize - spawnSize/2,
			Y: rnd.Float32() * 4,
			Z: rnd.Float32()*spawnSize - spawnSize/2,
		}
		if rnd.Intn(2) == 0 {
			size := 0.5 + rnd.Float32()*3
			g.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
		} else {
			g.AddComponent(components.NewSphereCollider(0.5 + rnd.Float32()))
		}
		if verbose {
			log.Printf("RigStress: %s layer %d at %v", g.Name, g.Layer, g.Transform.Position)
		}
		w.AddObject(g)
	}
	return w
}

func runRig(world *physics.PhysicsWorld, mode camera.ZoomCollision, frames int, seed int64) time.Duration {
	s := camera.DefaultSettings()
	s.Movement.SurfaceFollow = camera.MatchSurfaceSmooth
	s.Movement.Collision = camera.SurfaceCollisionSweepTest
	s.Rotation.Easing = camera.EasingSubtle
	s.Zoom.Collision = mode

	rig, err := camera.New(s)
	if err != nil {
		panic(fmt.Sprintf("Failed to create rig: %v", err))
	}
	rig.Activate(rl.Vector3{}, rl.Vector3{X: 30}, rl.Vector3{Z: -8}, rl.Vector2{})

	rnd := rand.New(rand.NewSource(seed))
	inputs := make([]camera.Input, frames)
	for i := range inputs {
		inputs[i] = camera.Input{
			Move:         rl.Vector2{X: rnd.Float32()*2 - 1, Y: rnd.Float32()*2 - 1},
			PointerDelta: rl.Vector2{X: rnd.Float32()*4 - 2, Y: rnd.Float32()*4 - 2},
			Scroll:       rnd.Float32()*0.2 - 0.1,
			RotateHeld:   rnd.Intn(2) == 0,
			Sprint:       rnd.Intn(4) == 0,
			DeltaTime:    1.0 / 60,
		}
	}

	start := time.Now()
	for _, in := range inputs {
		rig.Step(in, world, nil)
	}
	return time.Since(start) / time.Duration(frames)
}
