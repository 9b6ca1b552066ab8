// Package doom implements the first-person raycasting game: a procedurally
// generated tile arena rendered with a per-column DDA raycaster and
// procedural wall textures, displayed through half-block terminal cells.
package doom

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/raygrid/arcade/internal/config"
	"github.com/raygrid/arcade/internal/core"
	"github.com/raygrid/arcade/internal/registry"
)

const hudHeight = 1

// Minimum playable terminal size.
const (
	minScreenW = 20
	minScreenH = 8
)

// Game implements registry.Game for the raycaster.
type Game struct {
	cfg      config.DoomConfig
	rng      *rand.Rand
	grid     *Grid
	textures []Texture
	renderer *Renderer
	cam      Camera
	fb       *FrameBuffer

	visited map[[2]int]bool
	tick    uint64
	paused  bool

	screenW  int
	screenH  int
	tooSmall bool
}

var configPath string

// SetConfigPath sets a custom config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new raycaster game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("doom", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "doom"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grid Doom"
}

// Reset initializes/restarts the game: seeds the RNG, regenerates the world
// and textures, and places the camera at the start cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadDoom(configPath)
	if err != nil {
		loaded = config.DefaultDoom()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.grid = Generate(g.cfg.World.GridSize, g.rng)
	g.textures = GenerateTextures(g.cfg.World.TextureSize)
	g.renderer = NewRenderer(g.grid, g.textures)

	sx, sy := g.grid.StartCell()
	g.cam = NewCamera(
		core.Vec2{X: float64(sx) + 0.5, Y: float64(sy) + 0.5},
		core.Vec2{X: 0, Y: -1},
		g.cfg.World.FOVScale,
	)

	g.visited = make(map[[2]int]bool)
	g.markVisited()
}

// markVisited records the camera's cell; the explored-cell count is the score.
func (g *Game) markVisited() {
	x, y := g.cam.Cell()
	g.visited[[2]int{x, y}] = true
}

// Step advances the simulation by one tick, applying held movement actions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	move := g.cfg.Movement.MoveSpeed
	rot := g.cfg.Movement.RotSpeed

	if in.Has(core.ActionUp) {
		g.cam.Forward(g.grid, move)
	}
	if in.Has(core.ActionDown) {
		g.cam.Backward(g.grid, move)
	}
	if in.Has(core.ActionStrafeLeft) {
		g.cam.StrafeLeft(g.grid, move)
	}
	if in.Has(core.ActionStrafeRight) {
		g.cam.StrafeRight(g.grid, move)
	}
	if in.Has(core.ActionLeft) {
		g.cam.Rotate(-rot)
	}
	if in.Has(core.ActionRight) {
		g.cam.Rotate(rot)
	}

	g.markVisited()
	return core.StepResult{State: g.State()}
}

// Render raycasts the scene into the frame buffer and blits it to the screen
// as half-block cells: each terminal cell shows two stacked pixels, the top
// in the foreground color and the bottom in the background color.
func (g *Game) Render(dst *core.Screen) {
	g.screenW = dst.Width()
	g.screenH = dst.Height()
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	if g.tooSmall {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for Grid Doom", core.ColorYellow)
		return
	}

	viewH := dst.Height() - hudHeight
	if g.fb == nil {
		g.fb = NewFrameBuffer(dst.Width(), viewH*2)
	} else {
		g.fb.Resize(dst.Width(), viewH*2)
	}

	g.renderer.RenderFrame(g.cam, g.fb)

	for cy := 0; cy < viewH; cy++ {
		for x := 0; x < g.fb.W; x++ {
			top := g.fb.RGBAt(x, cy*2)
			bottom := g.fb.RGBAt(x, cy*2+1)
			dst.SetCell(x, cy+hudHeight, core.Cell{
				Rune: '▀',
				FG:   core.FromRGB(top),
				BG:   core.FromRGB(bottom),
			})
		}
	}

	g.renderHUD(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Grid Doom │ Explored: %d │ WASD move, Shift+A/D strafe, P pause, Q quit", len(g.visited))
	dst.DrawText(0, 0, hud, core.ColorWhite)
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "── PAUSED ──", core.ColorYellow)
	}
}

// Screenshot renders the current view at the configured screen resolution
// and encodes it as a binary PPM image. Terminal play is capped by the cell
// grid; this path produces a full-resolution frame.
func (g *Game) Screenshot() ([]byte, error) {
	if g.renderer == nil {
		return nil, fmt.Errorf("doom: screenshot before first reset")
	}

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	fb := NewFrameBuffer(w, h)
	g.renderer.RenderFrame(g.cam, fb)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P6\n%d %d\n255\n", w, h)
	for i := 0; i < len(fb.Pix); i += 4 {
		buf.Write(fb.Pix[i : i+3])
	}
	return buf.Bytes(), nil
}

// State returns the current game state. The raycaster has no fail state;
// its score is the number of distinct cells the player has stood in.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    len(g.visited),
		GameOver: false,
		Paused:   g.paused,
	}
}
