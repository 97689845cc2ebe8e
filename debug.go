package colorific

import (
	"time"

	"go.uber.org/zap"
)

// SetDebugMode enables or disables debug mode. When enabled, the active
// board's invariants are checked after every Update (violations panic) and
// per-frame stats are logged at debug level.
func (d *Director) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// debugFrame checks the active board and logs frame stats.
func (d *Director) debugFrame(elapsed time.Duration) {
	fields := []zap.Field{
		zap.Int("frame", d.frames),
		zap.String("screen", screenName(d.current)),
		zap.Duration("update", elapsed),
	}
	if b := d.Board(); b != nil {
		b.checkInvariants()
		fields = append(fields,
			zap.Stringer("phase", b.Phase()),
			zap.Int("falling", b.Falling()),
			zap.Int("effects", b.Effects().Len()))
	}
	d.log.Debug("frame", fields...)
}

// checkInvariants panics when the board is in a state no sequence of Tick
// and Click calls can legally produce.
func (b *Board) checkInvariants() {
	for r, row := range b.grid {
		for c, cell := range row {
			if cell == nil {
				b.invariantFailed("empty slot (%d,%d)", r, c)
			}
			if cell.Row != r || cell.Col != c {
				b.invariantFailed("cell at (%d,%d) believes it is at (%d,%d)", r, c, cell.Row, cell.Col)
			}
			if !cell.Color.IsWildcard() && (cell.Color < 0 || int(cell.Color) >= len(b.cfg.Palette)) {
				b.invariantFailed("cell at (%d,%d) has color %d outside palette", r, c, cell.Color)
			}
			if cell.selected {
				b.invariantFailed("cell at (%d,%d) still selected", r, c)
			}
		}
	}
	if b.multiplier != noColor && b.multiplier == b.divider {
		b.invariantFailed("multiplier and divider are both %d", b.multiplier)
	}
	if (b.multiplier == noColor) != (b.divider == noColor) && len(b.cfg.Palette) > 1 {
		b.invariantFailed("multiplier and divider must be assigned together")
	}
}
