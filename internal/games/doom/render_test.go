package doom

import (
	"bytes"
	"math"
	"testing"

	"github.com/raygrid/arcade/internal/core"
)

// A 3x3 map that is all walls except the center cell.
func boxMap(t *testing.T) *Grid {
	t.Helper()
	g, err := Parse([]string{
		"111",
		"111",
		"111",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g.Cells[1*3+1] = 0
	return g
}

func TestCastRayCenterColumn(t *testing.T) {
	g := boxMap(t)
	r := NewRenderer(g, GenerateTextures(64))

	// Player at the center of the middle cell looking straight up (north).
	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, core.Vec2{X: 0, Y: -1}, 0.66)

	hit := r.castRay(cam, 0)

	if hit.cellX != 1 || hit.cellY != 0 {
		t.Errorf("hit cell = (%d, %d), want (1, 0)", hit.cellX, hit.cellY)
	}
	if hit.side != 1 {
		t.Errorf("side = %d, want 1 (horizontal face)", hit.side)
	}
	if math.Abs(hit.dist-0.5) > 1e-12 {
		t.Errorf("dist = %v, want 0.5", hit.dist)
	}
}

func TestCastRayDistanceAlwaysPositive(t *testing.T) {
	g := boxMap(t)
	r := NewRenderer(g, GenerateTextures(64))
	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, core.Vec2{X: 0, Y: -1}, 0.66)

	const w = 120
	for x := 0; x < w; x++ {
		cameraX := 2*float64(x)/float64(w) - 1
		hit := r.castRay(cam, cameraX)
		if hit.dist <= 0 {
			t.Fatalf("column %d: dist = %v, want > 0", x, hit.dist)
		}
		if math.IsNaN(hit.dist) || math.IsInf(hit.dist, 0) {
			t.Fatalf("column %d: dist = %v", x, hit.dist)
		}
	}
}

func TestCastRayTerminates(t *testing.T) {
	g := boxMap(t)
	r := NewRenderer(g, GenerateTextures(64))
	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, core.Vec2{X: 0, Y: -1}, 0.66)

	maxSteps := g.W + g.H
	for x := 0; x < 64; x++ {
		cameraX := 2*float64(x)/64.0 - 1
		hit := r.castRay(cam, cameraX)
		if hit.steps > maxSteps {
			t.Fatalf("column %d: %d DDA steps, bound is %d", x, hit.steps, maxSteps)
		}
	}
}

func TestCastRayAxisAlignedRays(t *testing.T) {
	g := boxMap(t)
	r := NewRenderer(g, GenerateTextures(64))

	// Each cardinal direction has one zero ray component; none may panic or
	// produce a non-finite distance.
	dirs := []core.Vec2{
		{X: 0, Y: -1},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 1, Y: 0},
	}
	for _, dir := range dirs {
		cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, dir, 0.66)
		hit := r.castRay(cam, 0)
		if hit.dist <= 0 || math.IsInf(hit.dist, 0) || math.IsNaN(hit.dist) {
			t.Errorf("dir %+v: dist = %v", dir, hit.dist)
		}
		if math.Abs(hit.dist-0.5) > 1e-12 {
			t.Errorf("dir %+v: dist = %v, want 0.5", dir, hit.dist)
		}
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	g, err := Parse([]string{
		"11111111",
		"10000001",
		"10200001",
		"10000301",
		"10000001",
		"11111111",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewRenderer(g, GenerateTextures(64))
	cam := NewCamera(core.Vec2{X: 4.5, Y: 2.5}, core.Vec2{X: -0.8, Y: -0.6}, 0.66)

	fb1 := NewFrameBuffer(80, 50)
	fb2 := NewFrameBuffer(80, 50)
	r.RenderFrame(cam, fb1)
	r.RenderFrame(cam, fb2)

	if !bytes.Equal(fb1.Pix, fb2.Pix) {
		t.Error("two renders of the same camera pose differ")
	}
}

func TestRenderFrameOverwritesEveryPixel(t *testing.T) {
	g := boxMap(t)
	r := NewRenderer(g, GenerateTextures(64))
	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, core.Vec2{X: 0, Y: -1}, 0.66)

	fb := NewFrameBuffer(40, 30)
	for i := range fb.Pix {
		fb.Pix[i] = 0xAB
	}
	r.RenderFrame(cam, fb)

	// Alpha is written opaque for every pixel, so any surviving sentinel in an
	// alpha slot means a pixel was skipped.
	for i := 3; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] != 0xFF {
			t.Fatalf("pixel %d alpha = %#x, not overwritten", i/4, fb.Pix[i])
		}
	}
}

func TestCorridorCenterColumnFarthest(t *testing.T) {
	// Long corridor: the wall ahead of the camera is farther for the center
	// column than the side walls are for the edge columns, so the wall strip
	// must be shortest in the center.
	g, err := Parse([]string{
		"111",
		"101",
		"101",
		"101",
		"101",
		"101",
		"111",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewRenderer(g, GenerateTextures(64))
	cam := NewCamera(core.Vec2{X: 1.5, Y: 5.5}, core.Vec2{X: 0, Y: -1}, 0.66)

	center := r.castRay(cam, 0)
	edge := r.castRay(cam, -1)
	if center.dist <= edge.dist {
		t.Fatalf("center dist %v should exceed edge dist %v in a corridor", center.dist, edge.dist)
	}
}

func TestWallHeightShrinksWithDistance(t *testing.T) {
	const h = 100
	prev := h * 10
	for dist := 0.5; dist < 20; dist += 0.25 {
		lineHeight := int(float64(h) / dist)
		if lineHeight > prev {
			t.Fatalf("lineHeight grew from %d to %d as dist reached %v", prev, lineHeight, dist)
		}
		prev = lineHeight
	}
}

func TestTexColumnInRange(t *testing.T) {
	g := boxMap(t)
	r := NewRenderer(g, GenerateTextures(64))

	// Sweep a rotating camera; every column of every pose must map into the
	// texture.
	cam := NewCamera(core.Vec2{X: 1.5, Y: 1.5}, core.Vec2{X: 0, Y: -1}, 0.66)
	for pose := 0; pose < 50; pose++ {
		cam.Rotate(0.13)
		for x := 0; x < 40; x++ {
			cameraX := 2*float64(x)/40.0 - 1
			rayDir := cam.Dir.Add(cam.Plane.Scale(cameraX))
			hit := r.castRay(cam, cameraX)
			texX := texColumn(hit, rayDir, 64)
			if texX < 0 || texX >= 64 {
				t.Fatalf("pose %d col %d: texX = %d out of [0, 64)", pose, x, texX)
			}
		}
	}
}
