package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
)

func TestRenderPhases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Game)
		want  []string
	}{
		{
			name:  "start screen",
			setup: func(t *testing.T, g *Game) {},
			want:  []string{"C A T F L A P", "[medium]", "Space or click to start"},
		},
		{
			name:  "running",
			setup: func(t *testing.T, g *Game) { step(g, core.Start()) },
			want:  []string{"Score: 0"},
		},
		{
			name: "paused",
			setup: func(t *testing.T, g *Game) {
				step(g, core.Start())
				step(g, core.TogglePause())
			},
			want: []string{"PAUSED"},
		},
		{
			name:  "game over",
			setup: endRun,
			want:  []string{"GAME OVER", "Score: 0  (medium)", "Reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			tt.setup(t, g)

			screen := core.NewScreen(80, 23)
			g.Render(screen)
			out := screen.String()

			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("render missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(20, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestRenderGroundAndActor(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Ground starts at world y 400, row 20 of 24.
	if c := screen.GetCell(0, 20); c.Color != core.ColorBrightGreen {
		t.Errorf("grass line cell = %+v", c)
	}
	if c := screen.GetCell(0, 23); c.Rune != '▒' || c.Color != core.ColorSand {
		t.Errorf("ground cell = %+v", c)
	}

	// Actor {50,150,40,40} covers columns 12..22, rows 7..9.
	if c := screen.GetCell(16, 8); c.Color != core.ColorGray {
		t.Errorf("actor body cell = %+v", c)
	}
}

func TestRenderDebugHitboxesDuringRun(t *testing.T) {
	g := newTestGame(t)
	g.SetDebug(true)
	screen := core.NewScreen(80, 23)

	g.Render(screen)
	if strings.ContainsRune(screen.String(), '┌') {
		t.Error("hitboxes drawn on start screen")
	}

	step(g, core.Start())
	g.Render(screen)

	hb := NewProjection(config.Default().World, 80, 23).Rect(g.actor.Hitbox())
	if c := screen.GetCell(hb.X, hb.Y); c.Rune != '┌' || c.Color != core.ColorYellow {
		t.Errorf("hitbox corner = %+v", c)
	}

	step(g, core.TogglePause())
	g.Render(screen)
	if c := screen.GetCell(hb.X, hb.Y); c.Rune != '┌' || c.Color != core.ColorYellow {
		t.Errorf("hitbox corner while paused = %+v", c)
	}
	step(g, core.TogglePause())

	g.SetDebug(false)
	g.Render(screen)
	if strings.ContainsRune(screen.String(), '┌') {
		t.Error("hitboxes drawn with debug off")
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(config.Default().World, 80, 30)

	x, y := p.World(40, 12)
	if x != 162 || y != 200 {
		t.Errorf("World(40, 12) = (%f, %f), want (162, 200)", x, y)
	}
	if col, row := p.Cell(x, y); col != 40 || row != 12 {
		t.Errorf("Cell(%f, %f) = (%d, %d), want (40, 12)", x, y, col, row)
	}

	// The centre cell of the projected reset button maps back inside it.
	g := newTestGame(t)
	btn := p.Rect(g.ResetButton())
	bx, by := p.World(btn.X+btn.W/2, btn.Y+btn.H/2)
	if !g.ResetButton().ContainsOpen(bx, by) {
		t.Errorf("button centre cell maps to (%f, %f), outside %+v", bx, by, g.ResetButton())
	}
}
