package doom

import (
	"math"

	"github.com/raygrid/arcade/internal/core"
)

// Default flat colors for the rows above and below the wall strip.
const (
	defaultCeilingRGB = 0x28303A
	defaultFloorRGB   = 0x4A4440
)

// Renderer casts one ray per screen column through the grid and draws
// texture-mapped wall strips into a frame buffer. It holds only immutable
// world data, so a single Renderer may serve every frame of a session.
type Renderer struct {
	grid     *Grid
	textures []Texture
	ceiling  uint32
	floor    uint32
}

// NewRenderer builds a renderer over an immutable grid and texture palette.
func NewRenderer(grid *Grid, textures []Texture) *Renderer {
	return &Renderer{
		grid:     grid,
		textures: textures,
		ceiling:  defaultCeilingRGB,
		floor:    defaultFloorRGB,
	}
}

// rayHit describes where a single ray stopped.
type rayHit struct {
	cellX, cellY int     // map cell that stopped the ray
	cellValue    int     // its cell code (≥1)
	side         int     // 0 = vertical (x-facing) wall face, 1 = horizontal
	dist         float64 // perpendicular distance along the view axis
	wallX        float64 // fractional hit position along the wall face, [0, 1)
	steps        int     // DDA iterations taken
}

// castRay walks the DDA from the camera cell along the ray for screen
// position cameraX ∈ [-1, 1] until it enters a wall cell. A ray that would
// leave the grid stops at the boundary instead; Grid.At reports out-of-range
// cells as walls, so the walk is bounded by the grid perimeter.
func (r *Renderer) castRay(cam Camera, cameraX float64) rayHit {
	rayDir := cam.Dir.Add(cam.Plane.Scale(cameraX))

	mapX, mapY := int(cam.Pos.X), int(cam.Pos.Y)

	// A zero ray component never crosses that axis: an infinite deltaDist
	// makes the other axis win every DDA comparison.
	deltaDistX, deltaDistY := math.Inf(1), math.Inf(1)
	if rayDir.X != 0 {
		deltaDistX = math.Abs(1 / rayDir.X)
	}
	if rayDir.Y != 0 {
		deltaDistY = math.Abs(1 / rayDir.Y)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDir.X < 0 {
		stepX = -1
		sideDistX = (cam.Pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - cam.Pos.X) * deltaDistX
	}
	if rayDir.Y < 0 {
		stepY = -1
		sideDistY = (cam.Pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - cam.Pos.Y) * deltaDistY
	}

	hit := rayHit{}
	maxSteps := r.grid.W + r.grid.H
	for hit.steps = 1; ; hit.steps++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			hit.side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			hit.side = 1
		}
		// Grid.At treats out-of-range cells as walls, so leaving the grid
		// registers as a boundary hit on this same iteration.
		if r.grid.At(mapX, mapY) != 0 || hit.steps >= maxSteps {
			break
		}
	}

	hit.cellX, hit.cellY = mapX, mapY
	hit.cellValue = r.grid.At(mapX, mapY)
	if hit.cellValue == 0 {
		hit.cellValue = 1
	}

	// Perpendicular distance along the view axis, not the Euclidean ray
	// length: using the latter would bow walls outward (fisheye).
	if hit.side == 0 {
		hit.dist = sideDistX - deltaDistX
	} else {
		hit.dist = sideDistY - deltaDistY
	}
	if hit.dist < 1e-9 {
		hit.dist = 1e-9
	}

	if hit.side == 0 {
		hit.wallX = cam.Pos.Y + hit.dist*rayDir.Y
	} else {
		hit.wallX = cam.Pos.X + hit.dist*rayDir.X
	}
	hit.wallX -= math.Floor(hit.wallX)

	return hit
}

// texColumn maps a fractional wall position to a texture column, mirroring
// the faces that would otherwise sample the texture backwards.
func texColumn(hit rayHit, rayDir core.Vec2, texSize int) int {
	texX := int(hit.wallX * float64(texSize))
	if hit.side == 0 && rayDir.X > 0 {
		texX = texSize - texX - 1
	}
	if hit.side == 1 && rayDir.Y < 0 {
		texX = texSize - texX - 1
	}
	if texX < 0 {
		texX = 0
	} else if texX >= texSize {
		texX = texSize - 1
	}
	return texX
}

// RenderFrame redraws the whole buffer from the given camera snapshot.
// The camera is passed by value so input handling can keep mutating the live
// pose while a frame is in flight. Every output byte is overwritten: walls in
// the middle band, flat ceiling above, flat floor below.
func (r *Renderer) RenderFrame(cam Camera, fb *FrameBuffer) {
	w, h := fb.W, fb.H

	for x := 0; x < w; x++ {
		cameraX := 2*float64(x)/float64(w) - 1
		rayDir := cam.Dir.Add(cam.Plane.Scale(cameraX))
		hit := r.castRay(cam, cameraX)

		lineHeight := int(float64(h) / hit.dist)

		drawStart := -lineHeight/2 + h/2
		if drawStart < 0 {
			drawStart = 0
		}
		drawEnd := lineHeight/2 + h/2
		if drawEnd > h {
			drawEnd = h
		}

		tex := r.textures[(hit.cellValue-1)%len(r.textures)]
		texX := texColumn(hit, rayDir, tex.Size)

		// Vertical texture step per screen pixel, anchored so clamped strips
		// keep sampling the correct band of the texture.
		step := float64(tex.Size) / float64(lineHeight)
		texPos := float64(drawStart-h/2+lineHeight/2) * step

		for y := 0; y < drawStart; y++ {
			fb.setRGB(x, y, r.ceiling)
		}
		for y := drawStart; y < drawEnd; y++ {
			texY := int(texPos) & (tex.Size - 1)
			texPos += step
			c := tex.At(texX, texY)
			if hit.side == 1 {
				c = (c >> 1) & 0x7F7F7F // darken y-facing walls
			}
			fb.setRGB(x, y, c)
		}
		for y := drawEnd; y < h; y++ {
			fb.setRGB(x, y, r.floor)
		}
	}
}
