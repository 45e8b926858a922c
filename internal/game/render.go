package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
)

// Minimum surface size that still shows a playable picture.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// Projection maps world coordinates onto a cell grid of a given size.
type Projection struct {
	sx, sy float64
}

// NewProjection creates a projection of world onto a cols x rows grid.
func NewProjection(world config.World, cols, rows int) Projection {
	return Projection{
		sx: float64(cols) / world.Width,
		sy: float64(rows) / world.Height,
	}
}

// Rect projects a world rectangle to cells.
func (p Projection) Rect(r core.RectF) core.Rect {
	return r.ToCells(p.sx, p.sy)
}

// Cell returns the cell containing a world point.
func (p Projection) Cell(x, y float64) (int, int) {
	r := core.NewRectF(x, y, 0, 0).ToCells(p.sx, p.sy)
	return r.X, r.Y
}

// Row returns the cell row containing world y.
func (p Projection) Row(y float64) int {
	_, row := p.Cell(0, y)
	return row
}

// World returns the world point at the centre of a cell.
func (p Projection) World(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / p.sx, (float64(row) + 0.5) / p.sy
}

// Render draws the current state onto dst, scaling the world to fill it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	snap := g.Snapshot()
	proj := NewProjection(g.cfg.World, dst.Width(), dst.Height())

	renderClouds(dst, proj, snap.Clouds)
	renderObstacles(dst, proj, snap.Obstacles)
	renderGround(dst, proj, snap.GroundY)
	renderActor(dst, proj, snap.Actor, snap.TongueOut)
	g.renderFlashes(dst, proj, snap.Flashes)

	// Hitboxes are drawn for a live run, paused or not.
	if snap.Debug && (snap.Phase == core.PhaseRunning || snap.Phase == core.PhasePaused) {
		renderHitboxes(dst, proj, snap)
	}

	renderHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseNotStarted:
		renderStart(dst, snap)
	case core.PhasePaused:
		renderPaused(dst)
	case core.PhaseGameOver:
		renderGameOver(dst, proj, snap)
	}
}

func renderClouds(dst *core.Screen, proj Projection, clouds []Cloud) {
	for _, c := range clouds {
		body := core.NewRectF(c.X-c.Size, c.Y-c.Size/2, c.Size*3, c.Size)
		dst.DrawRect(proj.Rect(body), '░', core.ColorWhite)
	}
}

func renderObstacles(dst *core.Screen, proj Projection, obstacles []ObstacleView) {
	for _, o := range obstacles {
		upper := proj.Rect(o.Upper)
		lower := proj.Rect(o.Lower)
		dst.DrawRect(upper, '█', core.ColorOrange)
		dst.DrawRect(lower, '█', core.ColorOrange)

		// Caps face the gap.
		dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, '▀', core.ColorDarkOrange)
		dst.DrawHLine(lower.X, lower.Y, lower.W, '▄', core.ColorDarkOrange)
	}
}

func renderGround(dst *core.Screen, proj Projection, groundY float64) {
	top := proj.Row(groundY)
	dst.DrawRect(core.NewRect(0, top, dst.Width(), dst.Height()-top), '▒', core.ColorSand)
	dst.DrawHLine(0, top, dst.Width(), '▔', core.ColorBrightGreen)
}

func renderActor(dst *core.Screen, proj Projection, a ActorView, tongueOut bool) {
	body := proj.Rect(core.NewRectF(a.X, a.Y, a.Width, a.Height))
	dst.DrawRect(body, '▓', core.ColorGray)

	// Ears on the top row, eyes just below them.
	dst.SetColor(body.X, body.Y, '^', core.ColorGray)
	dst.SetColor(body.Right()-1, body.Y, '^', core.ColorGray)

	eyeY := body.Y + body.H/3
	if body.H > 2 {
		eyeY = body.Y + 1
	}
	eyeX := body.X + body.W*2/3
	dst.SetColor(eyeX-1, eyeY, 'o', core.ColorGreen)
	dst.SetColor(eyeX+1, eyeY, 'o', core.ColorGreen)

	if tongueOut {
		dst.SetColor(body.Right(), body.Bottom()-1, '~', core.ColorPink)
	}

	// The tail shows the tilt.
	tail := '-'
	switch {
	case a.Rotation < -0.2:
		tail = '\\'
	case a.Rotation > 0.2:
		tail = '/'
	}
	dst.SetColor(body.X-1, body.Y+body.H/2, tail, core.ColorGray)
}

func (g *Game) renderFlashes(dst *core.Screen, proj Projection, flashes []Flash) {
	for _, f := range flashes {
		rise := f.Radius - g.cfg.Effects.FlashRadius
		x, y := proj.Cell(f.X, f.Y-rise)
		c := core.ColorBrightYellow
		if f.Opacity < 0.5 {
			c = core.ColorYellow
		}
		dst.DrawText(x, y, "+1", c)
	}
}

func renderHitboxes(dst *core.Screen, proj Projection, snap Snapshot) {
	dst.DrawBox(proj.Rect(snap.Actor.Hitbox), core.ColorYellow)
	for _, o := range snap.Obstacles {
		c := core.ColorRed
		if o.Passed {
			c = core.ColorGreen
		}
		dst.DrawBox(proj.Rect(o.Upper), c)
		dst.DrawBox(proj.Rect(o.Lower), c)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	if snap.Phase == core.PhaseNotStarted {
		return
	}
	dst.DrawTextCentered(0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
}

func renderStart(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "C A T F L A P", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-1, "Space or click to start", core.ColorBrightWhite)

	names := make([]string, 0, len(config.PresetNames))
	for _, n := range config.PresetNames {
		if n == snap.Selected {
			names = append(names, "["+n+"]")
		} else {
			names = append(names, " "+n+" ")
		}
	}
	dst.DrawTextCentered(mid+1, strings.Join(names, " "), core.ColorWhite)
	dst.DrawTextCentered(mid+2, "1/2/3 or ←/→ to choose", core.ColorSky)
}

func renderPaused(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, " PAUSED ", core.ColorBrightWhite)
	dst.DrawTextCentered(mid, " P to resume ", core.ColorGray)
}

func renderGameOver(dst *core.Screen, proj Projection, snap Snapshot) {
	button := proj.Rect(snap.ResetButton)
	mid := dst.Height() / 2

	panelW := min(dst.Width()-2, 40)
	panelTop := max(mid-5, 1)
	panel := core.NewRect((dst.Width()-panelW)/2, panelTop, panelW, button.Bottom()-panelTop+1)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorWhite)

	dst.DrawTextCentered(panelTop+1, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(panelTop+2, fmt.Sprintf("Score: %d  (%s)", snap.Score, snap.Difficulty), core.ColorBrightWhite)

	dst.DrawBox(button, core.ColorBrightGreen)
	dst.DrawText(button.X+(button.W-5)/2, button.Y+button.H/2, "Reset", core.ColorBrightGreen)
}
