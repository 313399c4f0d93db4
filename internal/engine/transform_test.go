package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	return rl.Vector3Distance(a, b) < 1e-5
}

func TestEulerBasisIdentity(t *testing.T) {
	right, up, forward := EulerBasis(rl.Vector3{})

	if !near(right, rl.Vector3{X: -1}) {
		t.Errorf("Expected right -X, got %v", right)
	}
	if !near(up, rl.Vector3{Y: 1}) {
		t.Errorf("Expected up +Y, got %v", up)
	}
	if !near(forward, rl.Vector3{Z: 1}) {
		t.Errorf("Expected forward +Z, got %v", forward)
	}
}

func TestEulerBasisOrthonormal(t *testing.T) {
	rotations := []rl.Vector3{
		{X: 30, Y: 0},
		{X: -45, Y: 90},
		{X: 80, Y: 725},
		{X: 10, Y: -30, Z: 20},
	}

	for _, rot := range rotations {
		right, up, forward := EulerBasis(rot)
		for name, v := range map[string]rl.Vector3{"right": right, "up": up, "forward": forward} {
			if l := rl.Vector3Length(v); math.Abs(float64(l)-1) > 1e-5 {
				t.Errorf("%v: %s not unit length (%f)", rot, name, l)
			}
		}
		if d := rl.Vector3DotProduct(right, up); math.Abs(float64(d)) > 1e-5 {
			t.Errorf("%v: right.up = %f", rot, d)
		}
		if d := rl.Vector3DotProduct(up, forward); math.Abs(float64(d)) > 1e-5 {
			t.Errorf("%v: up.forward = %f", rot, d)
		}
		// right-handed: right = forward x up
		if c := rl.Vector3CrossProduct(forward, up); !near(c, right) {
			t.Errorf("%v: forward x up = %v, right = %v", rot, c, right)
		}
	}
}

func TestEulerBasisPositivePitchLooksDown(t *testing.T) {
	_, _, forward := EulerBasis(rl.Vector3{X: 30})
	if forward.Y >= 0 {
		t.Errorf("Expected downward forward for positive pitch, got %v", forward)
	}
}

func TestYawBasisIsHorizontal(t *testing.T) {
	right, forward := YawBasis(90)
	if !near(forward, rl.Vector3{X: -1}) {
		t.Errorf("Expected forward -X at yaw 90, got %v", forward)
	}
	if !near(right, rl.Vector3{Z: -1}) {
		t.Errorf("Expected right -Z at yaw 90, got %v", right)
	}
}

func TestLayerMask(t *testing.T) {
	m := LayerMaskOf(0, 3, 40, -1)

	if !m.Contains(0) || !m.Contains(3) {
		t.Errorf("Expected layers 0 and 3 in %b", m)
	}
	if m.Contains(1) || m.Contains(40) {
		t.Errorf("Unexpected layer in %b", m)
	}
	if got := m.Layers(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("Expected [0 3], got %v", got)
	}
	if !AllLayers.Contains(31) {
		t.Error("AllLayers should contain layer 31")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(nil)
	e.AddListener(func(v int) { got = append(got, v*10) })

	e.Invoke(2)

	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Errorf("Expected [2 20], got %v", got)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}
	e.RemoveAllListeners()
	if e.GetListenerCount() != 0 {
		t.Error("Expected listeners cleared")
	}
}
