package telemetry

import (
	"time"

	"orbitrig/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snapshot is the JSON view of one rig frame.
type Snapshot struct {
	Frame          uint64     `json:"frame"`
	Time           time.Time  `json:"time"`
	Mode           string     `json:"mode"`
	Pivot          [3]float32 `json:"pivot"`
	Rotation       [3]float32 `json:"rotation"`
	CameraOffset   [3]float32 `json:"cameraOffset"`
	Distance       float32    `json:"distance"`
	TargetDistance float32    `json:"targetDistance"`
	NormalizedZoom float32    `json:"normalizedZoom"`
}

func SnapshotOf(n uint64, f camera.Frame) Snapshot {
	return Snapshot{
		Frame:          n,
		Time:           time.Now(),
		Mode:           f.Mode.String(),
		Pivot:          vec(f.PivotPosition),
		Rotation:       vec(f.PivotRotation),
		CameraOffset:   vec(f.CameraOffset),
		Distance:       f.Distance,
		TargetDistance: f.TargetDistance,
		NormalizedZoom: f.NormalizedZoom,
	}
}

func vec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
