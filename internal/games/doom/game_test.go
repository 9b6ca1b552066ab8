package doom

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/raygrid/arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 42}
}

func TestGameResetSameSeedSameWorld(t *testing.T) {
	a, b := New(), New()
	a.Reset(testConfig())
	b.Reset(testConfig())

	for i := range a.grid.Cells {
		if a.grid.Cells[i] != b.grid.Cells[i] {
			t.Fatalf("cell %d differs between resets with the same seed", i)
		}
	}
	if a.cam.Pos != b.cam.Pos {
		t.Errorf("start positions differ: %+v vs %+v", a.cam.Pos, b.cam.Pos)
	}
}

func TestGameScoreCountsExploredCells(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if got := g.State().Score; got != 1 {
		t.Fatalf("initial score = %d, want 1 (start cell)", got)
	}

	in := core.InputFrame{}
	in.Set(core.ActionUp)
	for i := 0; i < 50; i++ {
		g.Step(in)
	}

	if got := g.State().Score; got < 2 {
		t.Errorf("score = %d after walking forward, want at least 2", got)
	}
}

func TestGamePauseFreezesMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.InputFrame{}
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("not paused after pause action")
	}

	pos := g.cam.Pos
	move := core.InputFrame{}
	move.Set(core.ActionUp)
	g.Step(move)
	if g.cam.Pos != pos {
		t.Error("camera moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("still paused after second pause action")
	}
}

func TestGameRenderFillsScreen(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// Every view row below the HUD must be half-block cells with colors set.
	for y := hudHeight; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			cell := scr.GetCell(x, y)
			if cell.Rune != '▀' {
				t.Fatalf("cell (%d, %d) rune = %q, want half block", x, y, cell.Rune)
			}
			if !cell.FG.IsSet() || !cell.BG.IsSet() {
				t.Fatalf("cell (%d, %d) missing colors", x, y)
			}
		}
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	scr := core.NewScreen(10, 4)
	g.Render(scr)

	pos := g.cam.Pos
	in := core.InputFrame{}
	in.Set(core.ActionUp)
	g.Step(in)
	if g.cam.Pos != pos {
		t.Error("camera moved while screen too small")
	}
}

func TestScreenshotUsesConfiguredResolution(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	data, err := g.Screenshot()
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	header := fmt.Sprintf("P6\n%d %d\n255\n", w, h)
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Fatalf("PPM header = %q, want %q", data[:core.Min(len(data), len(header))], header)
	}
	if want := len(header) + w*h*3; len(data) != want {
		t.Errorf("PPM size = %d bytes, want %d", len(data), want)
	}
}

func TestScreenshotBeforeResetFails(t *testing.T) {
	if _, err := New().Screenshot(); err == nil {
		t.Error("Screenshot before Reset should fail")
	}
}

func TestGameNeverGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.InputFrame{}
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	for i := 0; i < 500; i++ {
		res := g.Step(in)
		if res.State.GameOver {
			t.Fatal("raycaster reported game over")
		}
	}
}
