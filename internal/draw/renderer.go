package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	gamecfg "github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/sim"
)

// maxRenderCols caps the render area width on very large terminals.
const maxRenderCols = 160

var (
	bulletColor    = MustColor("#FFD700")
	starColor      = MustColor("#FFD700")
	explosionColor = MustColor("#FFA500")
	hitColor       = RGB(255, 255, 255)
	fieldColor     = RGB(40, 40, 70)
	titleColor     = MustColor("#00D4FF")
	warnColor      = MustColor("#FF4757")
	winColor       = MustColor("#2ED573")
	hudColor       = RGB(220, 220, 220)
)

// shakeOffsets is the jitter pattern applied to the field while the screen shakes.
var shakeOffsets = [...]Point{{-6, 3}, {5, -4}, {-3, -5}, {6, 4}, {-5, 0}, {3, 5}}

// Renderer draws snapshots to a terminal. It never mutates a snapshot.
type Renderer struct {
	canvas   *Canvas
	cw       *ChunkWriter
	sizeFunc TermSizeFunc

	termWidth, termHeight int
	phase                 sim.Phase
	started               bool
}

// NewRenderer creates a renderer writing to w. A nil sizeFunc uses DefaultTermSizeFunc.
func NewRenderer(w io.Writer, sizeFunc TermSizeFunc) *Renderer {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &Renderer{
		canvas:   NewScaledCanvas(1, 1, gamecfg.FieldWidth, gamecfg.FieldHeight),
		cw:       NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
	}
}

// Canvas exposes the drawing buffer of the last frame.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Render draws one frame.
func (r *Renderer) Render(snap *sim.Snapshot) error {
	r.updateScreen()

	if !r.started || snap.State.Phase != r.phase {
		r.cw.WriteString("\033[H\033[2J")
		r.canvas.ForceRedraw()
		r.phase = snap.State.Phase
		r.started = true
	}

	r.canvas.Clear()
	if snap.State.ScreenShake() {
		o := shakeOffsets[snap.Tick%uint64(len(shakeOffsets))]
		r.canvas.Shift(o.X, o.Y)
	} else {
		r.canvas.Shift(0, 0)
	}

	r.drawField()
	r.drawExplosions(snap.Explosions)
	r.drawParticles(snap.Particles)
	r.drawPowerUps(snap.PowerUps)
	r.drawBullets(snap.Bullets)
	r.drawEnemies(snap.Enemies)
	if !snap.State.GameOver() {
		r.drawPlayer(snap.Player)
	}

	r.canvas.Render(r.cw)
	r.drawHUD(snap.State)
	r.drawOverlay(snap)

	return r.cw.Flush()
}

// updateScreen fits a square field under a one-row HUD and centers it.
func (r *Renderer) updateScreen() {
	termWidth, termHeight, err := r.sizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 1 {
		return
	}

	side := min(termWidth, (termHeight-1)*2, maxRenderCols)
	cols, rows := side, max(side/2, 1)
	offsetCol := (termWidth - cols) / 2
	offsetRow := 1 + (termHeight-1-rows)/2

	if termWidth != r.termWidth || termHeight != r.termHeight {
		r.cw.WriteString("\033[H\033[2J")
		r.termWidth, r.termHeight = termWidth, termHeight
	}
	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.cw.SetOffset(offsetCol, offsetRow)
}

func (r *Renderer) drawField() {
	w, h := float64(gamecfg.FieldWidth), float64(gamecfg.FieldHeight)
	r.canvas.DrawPolygon([]Point{{0, 0}, {w - 1, 0}, {w - 1, h - 1}, {0, h - 1}}, fieldColor, false)
}

func (r *Renderer) drawExplosions(explosions []object.Explosion) {
	for _, e := range explosions {
		fade := float64(e.Life) / gamecfg.ExplosionLife
		r.canvas.DrawCircle(e.X, e.Y, e.Radius, explosionColor.Scale(fade), false)
	}
}

func (r *Renderer) drawParticles(particles []object.Particle) {
	for _, p := range particles {
		col := MustColor(p.Color).Scale(p.Life / p.MaxLife)
		switch p.Kind {
		case object.Smoke:
			r.canvas.DrawCircle(p.X, p.Y, p.Size/2, col, true)
		case object.Debris:
			pts := r.canvas.BorrowPoints(4)
			half := p.Size / 2
			rot := p.Rotation * math.Pi / 180
			for i := range pts {
				a := rot + float64(i)*math.Pi/2 + math.Pi/4
				pts[i] = Point{X: p.X + math.Cos(a)*half, Y: p.Y + math.Sin(a)*half}
			}
			r.canvas.DrawPolygon(pts, col, true)
		default:
			r.canvas.SetFloat(p.X, p.Y, col)
		}
	}
}

func (r *Renderer) drawPowerUps(powerUps []object.PowerUp) {
	for _, p := range powerUps {
		pts := r.canvas.BorrowPoints(10)
		for i := range pts {
			radius := p.Size
			if i%2 == 1 {
				radius = p.Size / 2
			}
			a := -math.Pi/2 + float64(i)*math.Pi/5
			pts[i] = Point{X: p.X + math.Cos(a)*radius, Y: p.Y + math.Sin(a)*radius}
		}
		r.canvas.DrawPolygon(pts, starColor, true)
	}
}

func (r *Renderer) drawBullets(bullets []object.Bullet) {
	for _, b := range bullets {
		r.canvas.DrawLine(Point{b.X, b.Y}, Point{b.X - b.VX/2, b.Y + 12}, bulletColor)
	}
}

func (r *Renderer) drawEnemies(enemies []object.Enemy) {
	for _, e := range enemies {
		col := MustColor(e.Color)
		if e.Hit {
			col = hitColor
		}
		half := e.Size / 2

		switch e.Shape {
		case object.Triangle:
			r.canvas.DrawPolygon([]Point{
				{e.X, e.Y + half},
				{e.X - half, e.Y - half},
				{e.X + half, e.Y - half},
			}, col, true)
		case object.Square:
			r.canvas.DrawPolygon([]Point{
				{e.X - half, e.Y - half},
				{e.X + half, e.Y - half},
				{e.X + half, e.Y + half},
				{e.X - half, e.Y + half},
			}, col, true)
		default:
			r.canvas.DrawCircle(e.X, e.Y, half, col, true)
		}
	}
}

func (r *Renderer) drawPlayer(p object.Player) {
	col := MustColor(p.Color)
	r.canvas.DrawPolygon([]Point{
		{p.X, p.Y - 20},
		{p.X + 20, p.Y + 15},
		{p.X, p.Y + 8},
		{p.X - 20, p.Y + 15},
	}, col, true)
}

// drawHUD writes the status line on the row above the field.
func (r *Renderer) drawHUD(st sim.GameState) {
	line := fmt.Sprintf("SCORE %-6d LEVEL %-3d STARS %-3d", st.Score, st.Level, st.Stars)
	if st.IsPoweredUp() {
		line += fmt.Sprintf(" SPREAD %2ds", (st.PowerUpRemaining+999)/1000)
	}
	r.cw.WriteAt(1, 0, fitWidth(line, r.canvas.TerminalWidth()), hudColor)
}

func (r *Renderer) drawOverlay(snap *sim.Snapshot) {
	st := snap.State
	switch st.Phase {
	case sim.PhaseIdle:
		r.drawCentered(-3, "S K Y R A I D", titleColor)
		r.drawCentered(-1, "ENTER start   SPACE fire   A/D or arrows move", hudColor)
		r.drawCentered(0, "P pause   1-9 pick color   Q quit", hudColor)
		r.drawCentered(2, "your craft ██", MustColor(snap.Player.Color))
	case sim.PhasePaused:
		r.drawCentered(-1, "PAUSED", titleColor)
		r.drawCentered(1, "P to resume", hudColor)
	case sim.PhaseGameOver:
		r.drawCentered(-2, "GAME OVER", warnColor)
		r.drawCentered(0, fmt.Sprintf("score %d   level %d", st.Score, st.Level), hudColor)
		r.drawCentered(2, "ENTER or R to play again   Q quit", hudColor)
	case sim.PhaseVictory:
		r.drawCentered(-2, "VICTORY", winColor)
		r.drawCentered(0, fmt.Sprintf("score %d   stars %d", st.Score, st.Stars), hudColor)
		r.drawCentered(2, "ENTER or R to play again   Q quit", hudColor)
	}
}

// drawCentered writes text centered in the field, dy rows from its middle.
func (r *Renderer) drawCentered(dy int, text string, col Color) {
	width := r.canvas.TerminalWidth()
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	r.cw.WriteAt(1+(width-len(runes))/2, 1+r.canvas.TerminalHeight()/2+dy, string(runes), col)
}

// fitWidth pads or truncates s to exactly width runes.
func fitWidth(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:max(width, 0)])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
