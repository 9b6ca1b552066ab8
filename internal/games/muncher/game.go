package muncher

import (
	"fmt"
	"math/rand"

	"github.com/raygrid/arcade/internal/config"
	"github.com/raygrid/arcade/internal/core"
	"github.com/raygrid/arcade/internal/registry"
)

// Direction represents the player's movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirDown
	DirLeft
	DirUp
)

// Point represents a 2D maze coordinate.
type Point struct {
	X, Y int
}

// Game implements the pellet maze game.
type Game struct {
	cfg        config.MuncherConfig
	rng        *rand.Rand
	tick       uint64
	score      int
	levelIndex int
	moveTicker int

	player    Point
	direction Direction
	nextDir   Direction // Buffered direction for the next move

	mapWidth   int
	mapHeight  int
	walls      map[Point]bool
	pellets    map[Point]bool
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	screenW int
	screenH int

	won      bool
	paused   bool
	tooSmall bool

	levelCleared    bool
	levelClearTicks int
}

var configPath string

// SetConfigPath sets a custom config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new muncher game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("muncher", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "muncher"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Muncher"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadMuncher(configPath)
	if err != nil {
		loaded = config.DefaultMuncher()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.levelIndex = 0
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.loadLevel()
}

// loadLevel parses the current level's layout into walls, pellets and the
// player start.
func (g *Game) loadLevel() {
	level := GetLevel(g.levelIndex)
	if level == nil {
		return
	}

	g.moveTicker = 0
	g.levelCleared = false
	g.direction = DirNone
	g.nextDir = DirNone

	layout := level.Layout
	g.mapHeight = len(layout)
	g.mapWidth = 0
	for _, row := range layout {
		if len(row) > g.mapWidth {
			g.mapWidth = len(row)
		}
	}

	requiredW := g.mapWidth + 2
	requiredH := g.mapHeight + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (g.screenW - g.mapWidth) / 2
	g.mapOffsetY = g.hudHeight

	g.walls = make(map[Point]bool)
	g.pellets = make(map[Point]bool)
	g.player = Point{X: 1, Y: 1}
	for y, row := range layout {
		for x, ch := range row {
			p := Point{X: x, Y: y}
			switch ch {
			case '#':
				g.walls[p] = true
			case '.':
				g.pellets[p] = true
			case 'P':
				g.player = p
			}
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.won {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.cfg.MoveEveryTicks {
		g.moveTicker = 0
		g.movePlayer()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers the desired direction for the next move.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.nextDir = DirUp
	case input.Has(core.ActionDown):
		g.nextDir = DirDown
	case input.Has(core.ActionLeft):
		g.nextDir = DirLeft
	case input.Has(core.ActionRight):
		g.nextDir = DirRight
	}
}

func dirDelta(d Direction) (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// movePlayer advances one cell. The buffered direction takes over as soon as
// its cell is open; otherwise the player keeps gliding in the current
// direction until a wall stops it.
func (g *Game) movePlayer() {
	if g.nextDir != DirNone && g.canMove(g.nextDir) {
		g.direction = g.nextDir
	}
	if g.direction == DirNone || !g.canMove(g.direction) {
		return
	}

	dx, dy := dirDelta(g.direction)
	g.player = Point{X: g.player.X + dx, Y: g.player.Y + dy}

	if g.pellets[g.player] {
		delete(g.pellets, g.player)
		g.score += g.cfg.PelletScore
		if len(g.pellets) == 0 {
			g.score += g.cfg.LevelBonus
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	}
}

// canMove reports whether the neighbouring cell in direction d is open.
func (g *Game) canMove(d Direction) bool {
	dx, dy := dirDelta(d)
	p := Point{X: g.player.X + dx, Y: g.player.Y + dy}
	if p.X < 0 || p.X >= g.mapWidth || p.Y < 0 || p.Y >= g.mapHeight {
		return false
	}
	return !g.walls[p]
}

// advanceLevel moves to the next maze, or wins after the last one.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= LevelCount() {
		g.won = true
		g.levelCleared = false
		return
	}
	g.loadLevel()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	wallColor, pelletColor, playerColor := core.ColorBlue, core.ColorWhite, core.ColorYellow
	if g.overlayActive() {
		wallColor = wallColor.Darken()
		pelletColor = pelletColor.Darken()
		playerColor = playerColor.Darken()
	}
	for wall := range g.walls {
		g.setMapCell(dst, wall, '#', wallColor)
	}
	for pellet := range g.pellets {
		g.setMapCell(dst, pellet, '·', pelletColor)
	}
	g.setMapCell(dst, g.player, 'C', playerColor)

	switch {
	case g.levelCleared:
		name := "Level"
		if level := GetLevel(g.levelIndex); level != nil {
			name = level.Name
		}
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), name)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// overlayActive reports whether a message box currently covers the maze.
func (g *Game) overlayActive() bool {
	return g.levelCleared || g.won || g.paused
}

func (g *Game) setMapCell(dst *core.Screen, p Point, r rune, c core.Color) {
	x := g.mapOffsetX + p.X
	y := g.mapOffsetY + p.Y
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetCell(x, y, core.Cell{Rune: r, FG: c})
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Muncher — Score: %d  Level: %d/%d  Pellets left: %d",
		g.score, g.levelIndex+1, LevelCount(), len(g.pellets))
	dst.DrawText(0, 0, hud, core.ColorWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, core.Cell{Rune: ' '})
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorYellow)
	dst.DrawTextCentered(boxY+3, line2, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}
