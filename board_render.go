package colorific

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// hudPrinter formats HUD numbers with thousands separators.
var hudPrinter = message.NewPrinter(language.English)

// FormatScore renders n the way the HUD shows it ("12,345").
func FormatScore(n int) string {
	return hudPrinter.Sprintf("%d", n)
}

const (
	hudTextSize   = 24
	cellInset     = 2
	hoverOutline  = 2
	badgeWidth    = 120
	badgeHeight   = 50
	badgeY        = 50
	multiplierX   = 30
	dividerX      = 170
	textShadowOff = 2
)

// Hover records the pointer position so the group under it is outlined. Pass
// coordinates outside the board to clear it.
func (b *Board) Hover(x, y float64) {
	row, col, ok := b.CellAt(x, y)
	if !ok || b.phase != PhaseAwaitingInput {
		b.hover = b.hover[:0]
		b.hoverAt = CellPos{Row: -1, Col: -1}
		return
	}
	at := CellPos{Row: row, Col: col}
	if at == b.hoverAt && len(b.hover) > 0 {
		return
	}
	b.hoverAt = at
	b.hover = append(b.hover[:0], b.Region(row, col)...)
}

// Render draws the board, its effects and the HUD.
func (b *Board) Render(s Surface, dt float64) {
	s.Fill(ColorBlack)

	if b.phase == PhaseAwaitingInput {
		for _, p := range b.hover {
			b.renderHover(s, b.grid[p.Row][p.Col])
		}
	}
	for _, row := range b.grid {
		for _, cell := range row {
			b.renderCell(s, cell)
		}
	}
	b.effects.Render(s, dt)
	b.renderHUD(s)
}

func (b *Board) cellCenter(c *Cell) (x, y float64) {
	return c.X + b.cfg.OriginX + b.cfg.CellWidth/2,
		c.Y + b.cfg.OriginY + b.cfg.CellHeight/2
}

func (b *Board) renderCell(s Surface, c *Cell) {
	x, y := b.cellCenter(c)
	r := b.cfg.CellWidth / 2
	if c.Color.IsWildcard() {
		b.starBuf = StarPoints(x, y, r, 4, b.starBuf)
		s.FillPolygon(b.starBuf, ColorWhite)
		return
	}
	s.FillRect(x-r+cellInset, y-r+cellInset, 2*(r-cellInset), 2*(r-cellInset), b.cfg.Palette.Color(c.Color))
}

func (b *Board) renderHover(s Surface, c *Cell) {
	x, y := b.cellCenter(c)
	r := b.cfg.CellWidth/2 - cellInset + hoverOutline
	s.FillRect(x-r, y-r, 2*r, 2*r, ColorWhite)
}

func (b *Board) renderHUD(s Surface) {
	w, h := s.Size()
	s.DrawText("Score: "+FormatScore(b.score), w, 30, hudTextSize, TextAlignRight, ColorWhite)
	s.DrawText("Turns Left: "+FormatScore(b.turnsRemaining), 0, 30, hudTextSize, TextAlignLeft, ColorWhite)
	s.DrawText("Last Score: "+FormatScore(b.lastTurnScore), 0, h-2, hudTextSize, TextAlignLeft, ColorWhite)

	if c, ok := b.Multiplier(); ok {
		b.renderBadge(s, multiplierX, "2x", b.cfg.Palette.Color(c))
	}
	if c, ok := b.Divider(); ok {
		b.renderBadge(s, dividerX, "1/2", b.cfg.Palette.Color(c))
	}
}

func (b *Board) renderBadge(s Surface, x float64, label string, c Color) {
	s.FillRect(x, badgeY, badgeWidth, badgeHeight, c)
	cx := x + badgeWidth/2
	cy := float64(badgeY + 30)
	s.DrawText(label, cx+textShadowOff, cy+textShadowOff, hudTextSize, TextAlignCenter, ColorBlack)
	s.DrawText(label, cx, cy, hudTextSize, TextAlignCenter, ColorWhite)
}
