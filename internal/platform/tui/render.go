package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSky:          lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorStorm:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	core.ColorSunset:       lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// spriteArt is the glyph block for one sprite name. Spaces are transparent.
type spriteArt struct {
	rows  []string
	color core.Color
}

var sprites = map[string]spriteArt{
	"coin":          {rows: []string{"$"}, color: core.ColorBrightYellow},
	"multiplier":    {rows: []string{"x2"}, color: core.ColorBrightCyan},
	"kite":          {rows: []string{"/#\\", "\\#/"}, color: core.ColorMagenta},
	"balloon":       {rows: []string{"(O)", " | ", " ' "}, color: core.ColorRed},
	"hang_glider":   {rows: []string{"<=^=>"}, color: core.ColorOrange},
	"chaser_diver":  {rows: []string{"><", "/\\"}, color: core.ColorBrightRed},
	"cloud":         {rows: []string{" .--. ", "(____)"}},
	"player_normal": {rows: []string{" O ", "/|\\"}, color: core.ColorBrightWhite},
	"player_slowed": {rows: []string{"\\O/", "/ \\"}, color: core.ColorBrightWhite},
	"player_fast":   {rows: []string{" O ", " V "}, color: core.ColorBrightWhite},
}

// backdrop styles one background layer id.
type backdrop struct {
	glyph rune
	color core.Color
	cloud core.Color
}

var backdrops = map[string]backdrop{
	"sky":    {glyph: '.', color: core.ColorSky, cloud: core.ColorWhite},
	"storm":  {glyph: '/', color: core.ColorStorm, cloud: core.ColorGray},
	"sunset": {glyph: '-', color: core.ColorSunset, cloud: core.ColorOrange},
}

var particleGlyphs = map[game.ParticleKind]struct {
	glyph rune
	color core.Color
}{
	game.ParticleSparkle: {'*', core.ColorBrightYellow},
	game.ParticleImpact:  {'+', core.ColorWhite},
	game.ParticleBurst:   {'#', core.ColorBrightRed},
}

// TerminalRenderer draws game frames into a core.Screen. Flush snapshots the
// styled frame so View can return it without redrawing.
type TerminalRenderer struct {
	screen   *core.Screen
	backdrop backdrop
	frame    string
}

// NewTerminalRenderer creates a renderer over screen.
func NewTerminalRenderer(screen *core.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, backdrop: backdrops["sky"]}
}

var _ game.Renderer = (*TerminalRenderer)(nil)

// Screen returns the underlying buffer.
func (r *TerminalRenderer) Screen() *core.Screen {
	return r.screen
}

// Frame returns the last flushed frame.
func (r *TerminalRenderer) Frame() string {
	return r.frame
}

// ClearScreen blanks the buffer.
func (r *TerminalRenderer) ClearScreen() {
	r.screen.Clear()
}

// DrawBackgroundLayer scatters the level's wind streaks, scrolled by the
// layer offset so the backdrop rises past the diver.
func (r *TerminalRenderer) DrawBackgroundLayer(layer game.BackgroundLayer) {
	b, ok := backdrops[layer.Name]
	if !ok {
		b = backdrops["sky"]
	}
	r.backdrop = b

	shift := int(layer.Offset)
	for y := range r.screen.Height() {
		for x := range r.screen.Width() {
			if streak(x, y+shift) {
				r.screen.SetColor(x, y, b.glyph, b.color)
			}
		}
	}
}

// streak reports whether a backdrop glyph sits at (x, y) in scroll space.
func streak(x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return h%53 == 0
}

// DrawGameObject blits the sprite art for s, or a filled block for unknown names.
func (r *TerminalRenderer) DrawGameObject(s game.Sprite) {
	x0 := int(math.Floor(float64(s.Bounds.X)))
	y0 := int(math.Floor(float64(s.Bounds.Y)))

	art, ok := sprites[s.Name]
	if !ok {
		r.screen.DrawRect(x0, y0, int(s.Bounds.W), int(s.Bounds.H), '#', core.ColorWhite)
		return
	}

	color := art.color
	if s.Category == game.CategoryBackground {
		color = r.backdrop.cloud
	}
	for dy, row := range art.rows {
		for dx, ch := range []rune(row) {
			if ch == ' ' {
				continue
			}
			r.screen.SetColor(x0+dx, y0+dy, ch, color)
		}
	}
}

// DrawUIElement writes a HUD label at pos.
func (r *TerminalRenderer) DrawUIElement(label string, pos core.Vector2) {
	r.screen.DrawTextColor(int(pos.X), int(pos.Y), label, core.ColorBrightWhite)
}

// DrawMessageOverlay draws a centered box holding one line per text line.
func (r *TerminalRenderer) DrawMessageOverlay(text string) {
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	w, h := width+4, len(lines)+2
	x0 := (r.screen.Width() - w) / 2
	y0 := (r.screen.Height() - h) / 2
	r.screen.DrawRect(x0, y0, w, h, ' ', core.ColorDefault)
	r.screen.DrawBox(x0, y0, w, h, core.ColorBrightCyan)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		r.screen.DrawTextCentered(y0+1+i, l, color)
	}
}

// DrawParticleEffect draws four glyphs moving outward from pos as progress
// runs from 0 to 1.
func (r *TerminalRenderer) DrawParticleEffect(pos core.Vector2, kind game.ParticleKind, progress float32) {
	p, ok := particleGlyphs[kind]
	if !ok {
		return
	}
	reach := 1 + progress*2
	cx, cy := float64(pos.X), float64(pos.Y)
	for _, d := range []core.Vector2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
		x := int(math.Floor(cx + float64(d.X*reach*2)))
		y := int(math.Floor(cy + float64(d.Y*reach)))
		r.screen.SetColor(x, y, p.glyph, p.color)
	}
}

// Flush captures the finished frame.
func (r *TerminalRenderer) Flush() {
	r.frame = RenderScreen(r.screen)
}
