package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("Rect should contain its top-left corner")
	}
	if !r.Contains(5, 7) {
		t.Error("Rect should contain its bottom-right interior cell")
	}
	if r.Contains(6, 3) {
		t.Error("Rect should not contain its right edge")
	}
	if r.Contains(2, 8) {
		t.Error("Rect should not contain its bottom edge")
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}

	r := v.Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("Rotate(π/2) of (1,0) = (%g, %g), expected (0, 1)", r.X, r.Y)
	}

	// Rotation must preserve length
	w := Vec2{X: 0.3, Y: -0.8}
	rot := w.Rotate(0.7)
	if math.Abs(rot.Len()-w.Len()) > 1e-12 {
		t.Errorf("Rotation changed vector length: %g -> %g", w.Len(), rot.Len())
	}
}

func TestVec2RotatePreservesDot(t *testing.T) {
	dir := Vec2{X: 0, Y: -1}
	plane := Vec2{X: 0.66, Y: 0}

	// Many small rotations must keep the pair perpendicular (bounded drift)
	for i := 0; i < 10000; i++ {
		dir = dir.Rotate(0.03)
		plane = plane.Rotate(0.03)
	}
	if dot := dir.Dot(plane); math.Abs(dot) > 1e-6 {
		t.Errorf("dir·plane = %g after repeated rotations, expected ~0", dot)
	}
	if math.Abs(plane.Len()-0.66) > 1e-6 {
		t.Errorf("plane length drifted to %g, expected 0.66", plane.Len())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp(5, 0, 10) should be 5")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("Clamp(-1, 0, 10) should be 0")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("Clamp(11, 0, 10) should be 10")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("ClampF(0.5, 0, 1) should be 0.5")
	}
	if ClampF(-0.1, 0, 1) != 0 {
		t.Error("ClampF(-0.1, 0, 1) should be 0")
	}
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF(1.5, 0, 1) should be 1")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max of (3, 7) wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs wrong")
	}
}
