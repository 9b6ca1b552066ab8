package doom

import (
	"math"
	"testing"

	"github.com/raygrid/arcade/internal/core"
)

func TestCameraPlaneStaysPerpendicular(t *testing.T) {
	cam := NewCamera(core.Vec2{X: 5, Y: 5}, core.Vec2{X: 0, Y: -1}, 0.66)

	for i := 0; i < 10000; i++ {
		cam.Rotate(0.03)
	}

	if dot := cam.Dir.Dot(cam.Plane); math.Abs(dot) > 1e-6 {
		t.Errorf("dir·plane = %v after 10000 rotations, want ~0", dot)
	}
	if l := cam.Plane.Len(); math.Abs(l-0.66) > 1e-6 {
		t.Errorf("plane length = %v, want 0.66", l)
	}
	if l := cam.Dir.Len(); math.Abs(l-1) > 1e-6 {
		t.Errorf("dir length = %v, want 1", l)
	}
}

func TestCameraSlidesAlongWalls(t *testing.T) {
	g, err := Parse([]string{
		"11111",
		"10001",
		"10001",
		"11111",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Facing diagonally into the top wall: the y component is blocked, the x
	// component keeps moving.
	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.2}, core.Vec2{X: 1, Y: -1}, 0.66)
	before := cam.Pos

	cam.Forward(g, 0.5)

	if cam.Pos.Y != before.Y {
		t.Errorf("Y moved into wall: %v -> %v", before.Y, cam.Pos.Y)
	}
	if cam.Pos.X <= before.X {
		t.Errorf("X did not slide: %v -> %v", before.X, cam.Pos.X)
	}
}

func TestCameraBlockedCompletely(t *testing.T) {
	g, err := Parse([]string{
		"111",
		"101",
		"111",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, core.Vec2{X: 0, Y: -1}, 0.66)
	for i := 0; i < 100; i++ {
		cam.Forward(g, 0.3)
		cam.StrafeRight(g, 0.3)
	}

	if x, y := cam.Cell(); x != 1 || y != 1 {
		t.Errorf("camera escaped to cell (%d, %d)", x, y)
	}
}

func TestCameraStrafePerpendicular(t *testing.T) {
	g, err := Parse([]string{
		"11111",
		"10001",
		"10001",
		"10001",
		"11111",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cam := NewCamera(core.Vec2{X: 2.5, Y: 2.5}, core.Vec2{X: 0, Y: -1}, 0.66)
	cam.StrafeLeft(g, 0.4)
	if cam.Pos.Y != 2.5 {
		t.Errorf("strafe changed Y: %v", cam.Pos.Y)
	}
	if math.Abs(cam.Pos.X-2.1) > 1e-12 {
		t.Errorf("strafe left X = %v, want 2.1", cam.Pos.X)
	}

	cam.StrafeRight(g, 0.4)
	if math.Abs(cam.Pos.X-2.5) > 1e-12 {
		t.Errorf("strafe right X = %v, want 2.5", cam.Pos.X)
	}
}
