package doom

import "math"

// Texture is a square grid of packed 0xRRGGBB pixels in row-major order.
// Textures are generated once per game and never mutated afterwards.
type Texture struct {
	Size   int
	Pixels []uint32
}

// At returns the pixel at (x, y). Callers guarantee in-range coordinates;
// the renderer masks its indices before sampling.
func (t Texture) At(x, y int) uint32 {
	return t.Pixels[y*t.Size+x]
}

// TextureCount is the number of wall patterns in the palette.
const TextureCount = 8

// Wall texture ids, in palette order. A grid cell value v selects
// textures[(v-1) % TextureCount].
const (
	TexBrick = iota
	TexStone
	TexComputer
	TexMetal
	TexWood
	TexMarble
	TexDoor
	TexBlood
)

// GenerateTextures produces the full palette of procedural wall textures.
// Every pixel is a closed-form function of (x, y), so the palette is fully
// deterministic for a given size.
func GenerateTextures(size int) []Texture {
	generators := []func(x, y, size int) uint32{
		brickPixel,
		stonePixel,
		computerPixel,
		metalPixel,
		woodPixel,
		marblePixel,
		doorPixel,
		bloodPixel,
	}

	textures := make([]Texture, len(generators))
	for i, gen := range generators {
		tex := Texture{
			Size:   size,
			Pixels: make([]uint32, size*size),
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				tex.Pixels[y*size+x] = gen(x, y, size)
			}
		}
		textures[i] = tex
	}
	return textures
}

func rgb(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// brickPixel draws staggered red bricks separated by mortar lines.
func brickPixel(x, y, size int) uint32 {
	brickH := size / 8
	brickW := size / 4
	row := y / brickH
	// Stagger every other course by half a brick
	xo := x
	if row%2 == 1 {
		xo += brickW / 2
	}
	if y%brickH == 0 || xo%brickW == 0 {
		return rgb(0x90, 0x88, 0x80) // mortar
	}
	// Slight per-brick tint so courses read as separate bricks
	tint := uint8((row*7 + (xo/brickW)*13) % 24)
	return rgb(0xA8+tint/2, 0x38+tint/3, 0x30)
}

// stonePixel draws rough grey stone with a sinusoidal mottle.
func stonePixel(x, y, size int) uint32 {
	fx, fy := float64(x), float64(y)
	n := math.Sin(fx*0.35) + math.Sin(fy*0.41) + math.Sin((fx+fy)*0.23)
	v := uint8(0x70 + int(n*14))
	blockH := size / 4
	if y%blockH == 0 || (x+(y/blockH)*blockH/2)%(size/2) == 0 {
		v -= 0x28 // joints between blocks
	}
	return rgb(v, v, v+6)
}

// computerPixel draws a dark panel with a cyan circuit grid and indicator lights.
func computerPixel(x, y, size int) uint32 {
	cell := size / 8
	if x%cell == 0 || y%cell == 0 {
		return rgb(0x10, 0x50, 0x60) // trace grid
	}
	// Blinken-lights at fixed lattice offsets
	if x%cell == cell/2 && y%cell == cell/2 {
		if ((x/cell)+(y/cell))%3 == 0 {
			return rgb(0x30, 0xE0, 0x50)
		}
		return rgb(0xD0, 0x30, 0x30)
	}
	return rgb(0x10, 0x18, 0x24)
}

// metalPixel draws brushed grey metal with rivets on a regular lattice.
func metalPixel(x, y, size int) uint32 {
	base := 0x6A + (x+y)%5*4 // diagonal brushing
	pitch := size / 4
	rx, ry := x%pitch-pitch/2, y%pitch-pitch/2
	if rx*rx+ry*ry <= (size/32+1)*(size/32+1) {
		return rgb(0xB8, 0xB8, 0xC4) // rivet head
	}
	if y%pitch == 0 {
		base -= 0x18 // plate seam
	}
	return rgb(uint8(base), uint8(base), uint8(base+8))
}

// woodPixel draws vertical planks with wavy grain.
func woodPixel(x, y, size int) uint32 {
	plank := size / 4
	if x%plank == 0 {
		return rgb(0x38, 0x24, 0x12) // plank gap
	}
	grain := math.Sin(float64(x)*0.9 + math.Sin(float64(y)*0.12)*2.5)
	v := int(grain * 12)
	return rgb(uint8(0x96+v), uint8(0x60+v), uint8(0x2C+v/2))
}

// marblePixel draws pale marble with dark meandering veins.
func marblePixel(x, y, size int) uint32 {
	fx, fy := float64(x), float64(y)
	vein := math.Sin((fx+fy)*0.25 + 3.0*math.Sin(fy*0.07))
	if math.Abs(vein) < 0.08 {
		return rgb(0x58, 0x50, 0x60)
	}
	v := uint8(0xD8 + int(math.Sin(fx*0.11+fy*0.13)*10))
	return rgb(v, v, v)
}

// doorPixel draws a panelled metal door with a handle plate.
func doorPixel(x, y, size int) uint32 {
	border := size / 8
	if x < border || x >= size-border || y < border || y >= size-border {
		return rgb(0x44, 0x4C, 0x54) // frame
	}
	// Handle plate on the right edge of the leaf
	hx, hy := size-2*border, size/2
	if (x-hx)*(x-hx)+(y-hy)*(y-hy) <= (size/16)*(size/16) {
		return rgb(0xC8, 0xB4, 0x40)
	}
	if (y-border)%((size-2*border)/3) == 0 {
		return rgb(0x50, 0x58, 0x62) // panel groove
	}
	return rgb(0x70, 0x7A, 0x86)
}

// bloodPixel draws the classic xor-gradient cellar wall in reds.
func bloodPixel(x, y, size int) uint32 {
	v := uint8((x * 256 / size) ^ (y * 256 / size))
	return rgb(0x40+v/2, v/8, v/10)
}
