package flight

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// Visual characters for rendering
const (
	CoinChar     = '$'
	StarChar     = '·'
	BrightStar   = '*'
	CloudChar    = '░'
	RainChar     = '/'
	SnowChar     = '*'
	ParticleChar = '•'
	SparkChar    = '.'
)

// headingGlyphs are arrows for the eight compass directions, starting east
// and turning clockwise in screen space.
var headingGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var trailGlyphs = map[catalog.TrailStyle]rune{
	catalog.TrailLine:     '·',
	catalog.TrailBubbles:  'o',
	catalog.TrailSparkle:  '✦',
	catalog.TrailPixel:    '▪',
	catalog.TrailElectric: '~',
}

var (
	colorRain  = core.Hex("#93c5fd")
	colorCloud = core.Hex("#f1f5f9")
	colorHUD   = core.Hex("#f8fafc")
)

// HeadingGlyph picks the arrow closest to heading.
func HeadingGlyph(heading float64) rune {
	i := int(math.Round(core.WrapAngle(heading) / (math.Pi / 4)))
	return headingGlyphs[(i%8+8)%8]
}

// view maps world coordinates onto screen cells.
type view struct {
	cam      *Camera
	viewport core.Vector
	cellW    float64
	cellH    float64
}

func (v view) cell(p core.Vector) (int, int) {
	sp := v.cam.WorldToScreen(p, v.viewport)
	return int(math.Floor(sp.X / v.cellW)), int(math.Floor(sp.Y / v.cellH))
}

// plot draws r at p over whatever background the cell has.
func (v view) plot(dst *core.Screen, p core.Vector, r rune, fg core.Color) {
	x, y := v.cell(p)
	dst.SetColored(x, y, r, fg)
}

// fade blends fg into the background of the target cell by alpha.
func fade(dst *core.Screen, x, y int, fg core.Color, alpha float64) core.Color {
	return core.LerpColor(dst.GetCell(x, y).BG, fg, alpha)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world
	v := view{
		cam:      w.Camera,
		viewport: core.Vec(float64(dst.Width())*g.cfg.World.CellWidth, float64(dst.Height())*g.cfg.World.CellHeight),
		cellW:    g.cfg.World.CellWidth,
		cellH:    g.cfg.World.CellHeight,
	}
	sky := w.Sky()

	g.drawSky(dst, sky)
	g.drawBackdrop(dst, v, sky)
	g.drawTrails(dst, v)
	g.drawEntities(dst, v)
	g.drawParticles(dst, v)
	g.drawHUD(dst)

	switch g.state {
	case StateReady:
		g.drawCenteredMessage(dst, "PAPER FLIGHT", "Drag or press Enter to take off")
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		sub := fmt.Sprintf("Score: %d  |  R restart", w.Score())
		if g.CanRevive() {
			sub += fmt.Sprintf("  |  V revive (%d coins)", g.ReviveCost())
		}
		g.drawCenteredMessage(dst, "CRASHED", sub)
	}
}

// drawSky paints the vertical gradient and the lightning flash.
func (g *Game) drawSky(dst *core.Screen, sky Sky) {
	h := dst.Height()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		bg := core.LerpColor(sky.Top, sky.Bottom, t)
		if sky.Lightning > 0 {
			bg = core.LerpColor(bg, colorWhite, sky.Lightning)
		}
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, y, core.Cell{Ch: ' ', BG: bg})
		}
	}
}

func (g *Game) drawBackdrop(dst *core.Screen, v view, sky Sky) {
	b := g.world.weather.Backdrop()
	if b == nil {
		return
	}
	tileCell := func(p core.Vector) (int, int, bool) {
		x := int(p.X / v.cellW)
		y := int(p.Y / v.cellH)
		return x, y, x < dst.Width() && y < dst.Height()
	}

	if sky.StarOpacity > 0 {
		for _, s := range b.Stars {
			x, y, ok := tileCell(TileOffset(s.Pos, v.cam.Pos, s.Speed))
			if !ok {
				continue
			}
			alpha := sky.StarOpacity * b.Twinkle(s)
			r := StarChar
			if s.Size > 2 {
				r = BrightStar
			}
			dst.SetColored(x, y, r, fade(dst, x, y, colorWhite, alpha))
		}
	}

	for _, c := range b.Clouds {
		x, y, ok := tileCell(TileOffset(c.Pos, v.cam.Pos, c.Speed))
		if !ok {
			continue
		}
		width := int(c.Scale * 3)
		for dx := 0; dx < width; dx++ {
			dst.SetColored(x+dx, y, CloudChar, fade(dst, x+dx, y, colorCloud, c.Opacity))
		}
	}

	if sky.StormIntensity > 0.05 {
		for _, d := range b.Drops {
			x, y := v.cell(d.Pos)
			dst.SetColored(x, y, RainChar, fade(dst, x, y, colorRain, sky.StormIntensity))
		}
	}
	if sky.SnowIntensity > 0.05 {
		for _, f := range b.Flakes {
			x, y := v.cell(f.Pos)
			dst.SetColored(x, y, SnowChar, fade(dst, x, y, colorWhite, sky.SnowIntensity))
		}
	}
}

func (g *Game) drawTrails(dst *core.Screen, v view) {
	w := g.world
	for _, m := range w.Missiles {
		for _, p := range m.Trail.Points() {
			v.plot(dst, p, SparkChar, colorMissile.Dim(0.6))
		}
	}
	for _, a := range w.Allies {
		for _, p := range a.Trail.Points() {
			v.plot(dst, p, SparkChar, colorAlly.Dim(0.6))
		}
	}

	style := w.cosmetics.Trail(w.Player.Loadout.TrailID)
	glyph, ok := trailGlyphs[style.Style]
	if !ok {
		glyph = trailGlyphs[catalog.TrailLine]
	}
	points := w.Player.Trail.Points()
	for i, p := range points {
		color := style.Color
		if style.Rainbow {
			color = core.HSV(float64(i)/float64(len(points))*360, 1, 1)
		}
		x, y := v.cell(p)
		alpha := style.Opacity * float64(i+1) / float64(len(points))
		dst.SetColored(x, y, glyph, fade(dst, x, y, color, alpha))
	}
}

func (g *Game) drawEntities(dst *core.Screen, v view) {
	w := g.world
	for _, c := range w.Coins {
		v.plot(dst, c.Pos, CoinChar, colorGold)
	}
	for _, pu := range w.PowerUps {
		v.plot(dst, pu.Pos, pu.Kind.Glyph(), pu.Kind.Color())
	}
	for _, a := range w.Allies {
		v.plot(dst, a.Pos, HeadingGlyph(a.Heading), colorAlly)
	}
	for _, m := range w.Missiles {
		v.plot(dst, m.Pos, HeadingGlyph(m.Heading), colorMissile)
	}

	p := w.Player
	if !p.Alive {
		return
	}
	skin := w.cosmetics.Skin(p.Loadout.SkinID)
	x, y := v.cell(p.Pos)
	dst.SetColored(x, y, HeadingGlyph(p.Heading), skin.Primary)
	if p.ShieldActive {
		dst.SetBG(x, y, colorShield.Dim(0.5))
	}
}

func (g *Game) drawParticles(dst *core.Screen, v view) {
	for _, p := range g.world.Particles {
		r := SparkChar
		if p.Size > 4 {
			r = ParticleChar
		}
		x, y := v.cell(p.Pos)
		dst.SetColored(x, y, r, fade(dst, x, y, p.Color, p.Life))
	}
}

// drawHUD writes score, coins, running effects and the mode on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	hud := fmt.Sprintf(" Score: %d  Coins: %d ", w.Score(), w.RunCoins())
	dst.DrawTextColored(0, 0, hud, colorHUD)

	x := len(hud)
	for _, e := range w.ActiveEffects() {
		var text string
		if e.Kind == PowerAllies {
			text = fmt.Sprintf("[%c x%d] ", e.Kind.Glyph(), e.Remaining)
		} else {
			text = fmt.Sprintf("[%c %ds] ", e.Kind.Glyph(), (e.Remaining+ticksPerSecond-1)/ticksPerSecond)
		}
		dst.DrawTextColored(x, 0, text, e.Kind.Color())
		x += len([]rune(text))
	}

	mode := g.mode.Title() + " "
	dst.DrawTextColored(dst.Width()-len(mode), 0, mode, colorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Ch: ' ', FG: colorHUD, BG: nightTop})
		}
	}
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
