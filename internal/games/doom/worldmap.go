package doom

import (
	"fmt"
	"math/rand"
)

// Grid is the tile map the raycaster walks. Cell value 0 is walkable floor;
// any positive value v is a wall rendered with textures[(v-1) % TextureCount].
// The grid is immutable after generation.
type Grid struct {
	W, H  int
	Cells []int
}

// At returns the cell value at (x, y). Out-of-range coordinates read as a
// boundary wall, so rays and movement can never index past the map.
func (g *Grid) At(x, y int) int {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 1
	}
	return g.Cells[y*g.W+x]
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// IsWall reports whether the cell at (x, y) blocks movement and rays.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) != 0
}

// set writes a cell value, ignoring out-of-range coordinates.
func (g *Grid) set(x, y, v int) {
	if g.InBounds(x, y) {
		g.Cells[y*g.W+x] = v
	}
}

// Parse builds a grid from rows of digit characters ('0'..'9').
// All rows must have equal length. Used for fixed test maps.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("doom: empty map")
	}
	w := len(rows[0])
	g := &Grid{W: w, H: len(rows), Cells: make([]int, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("doom: ragged map row %d: %d chars, expected %d", y, len(row), w)
		}
		for x, ch := range row {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("doom: invalid map cell %q at (%d, %d)", ch, x, y)
			}
			g.Cells[y*w+x] = int(ch - '0')
		}
	}
	return g, nil
}

// StartCell returns the cell the player spawns in: the map center, which
// Generate guarantees to be empty.
func (g *Grid) StartCell() (int, int) {
	return g.W / 2, g.H / 2
}

// Minimum share of interior cells that must be reachable from the start cell
// for a generated map to be accepted. Disconnected decorative rooms beyond
// that are allowed.
const minReachableShare = 0.25

const generateAttempts = 8

// Generate produces a sealed size×size arena: every border cell is a wall,
// the center start cell is empty, and the interior mixes open floor, walled
// rooms and scattered pillars. Generation retries with the same RNG stream
// until the region reachable from the start cell covers at least a quarter
// of the interior, so a given seed always yields the same map.
func Generate(size int, rng *rand.Rand) *Grid {
	var best *Grid
	bestReach := -1

	for attempt := 0; attempt < generateAttempts; attempt++ {
		g := carve(size, rng)
		reach := g.reachableFromStart()
		if reach > bestReach {
			best, bestReach = g, reach
		}
		interior := (size - 2) * (size - 2)
		if float64(reach) >= minReachableShare*float64(interior) {
			return g
		}
	}
	return best
}

// carve builds one candidate map.
func carve(size int, rng *rand.Rand) *Grid {
	g := &Grid{W: size, H: size, Cells: make([]int, size*size)}

	// Sealed border with varied texture courses
	for x := 0; x < size; x++ {
		g.set(x, 0, 1+x/4%TextureCount)
		g.set(x, size-1, 1+x/4%TextureCount)
	}
	for y := 0; y < size; y++ {
		g.set(0, y, 1+y/4%TextureCount)
		g.set(size-1, y, 1+y/4%TextureCount)
	}

	// Walled rooms with door gaps
	rooms := size / 8
	for i := 0; i < rooms; i++ {
		rw := 4 + rng.Intn(size/4)
		rh := 4 + rng.Intn(size/4)
		rx := 1 + rng.Intn(size-rw-2)
		ry := 1 + rng.Intn(size-rh-2)
		tex := 1 + rng.Intn(TextureCount)

		for x := rx; x < rx+rw; x++ {
			g.set(x, ry, tex)
			g.set(x, ry+rh-1, tex)
		}
		for y := ry; y < ry+rh; y++ {
			g.set(rx, y, tex)
			g.set(rx+rw-1, y, tex)
		}
		// Door gap on a random side, rendered with the door texture via its
		// neighbours being empty (the gap itself is floor)
		switch rng.Intn(4) {
		case 0:
			g.set(rx+1+rng.Intn(rw-2), ry, 0)
		case 1:
			g.set(rx+1+rng.Intn(rw-2), ry+rh-1, 0)
		case 2:
			g.set(rx, ry+1+rng.Intn(rh-2), 0)
		case 3:
			g.set(rx+rw-1, ry+1+rng.Intn(rh-2), 0)
		}
	}

	// Scattered pillars
	for i := 0; i < size*size/64; i++ {
		g.set(1+rng.Intn(size-2), 1+rng.Intn(size-2), 1+rng.Intn(TextureCount))
	}

	// Clear a 3×3 pocket around the start so the player never spawns in a wall
	cx, cy := g.StartCell()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.set(cx+dx, cy+dy, 0)
		}
	}

	return g
}

// reachableFromStart flood-fills floor cells from the start cell and returns
// how many it visits.
func (g *Grid) reachableFromStart() int {
	cx, cy := g.StartCell()
	if g.IsWall(cx, cy) {
		return 0
	}

	seen := make([]bool, g.W*g.H)
	stack := [][2]int{{cx, cy}}
	seen[cy*g.W+cx] = true
	count := 0

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := c[0]+d[0], c[1]+d[1]
			if !g.InBounds(nx, ny) || g.IsWall(nx, ny) || seen[ny*g.W+nx] {
				continue
			}
			seen[ny*g.W+nx] = true
			stack = append(stack, [2]int{nx, ny})
		}
	}
	return count
}
