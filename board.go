package colorific

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Logical screen size the board layout is designed for.
const (
	ScreenWidth  = 320
	ScreenHeight = 480
)

// noColor marks an unassigned multiplier or divider.
const noColor ColorIndex = -2

// Phase is the board's top-level state.
type Phase uint8

const (
	PhaseSettling      Phase = iota // cells are falling; clicks are ignored
	PhaseAwaitingInput              // cells at rest, bonus colors drawn, clicks accepted
	PhaseFinished                   // no turns left; terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSettling:
		return "settling"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// BoardConfig controls the board geometry and rules.
type BoardConfig struct {
	// Size is the number of rows and of columns.
	Size int
	// CellWidth and CellHeight are the slot dimensions in logical pixels.
	CellWidth  float64
	CellHeight float64
	// OriginX and OriginY place the top-left slot on screen.
	OriginX float64
	OriginY float64
	// Gravity is the per-second increase of the per-tick fall velocity.
	Gravity float64
	// Turns is the number of clicks a game allows.
	Turns int
	// Palette holds the playable colors. Spawned cells use every entry.
	Palette Palette
	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64
}

// DefaultBoardConfig returns the 7x7, 25 turn, four color layout.
func DefaultBoardConfig() BoardConfig {
	const size = 7
	cell := math.Floor(ScreenWidth / size)
	return BoardConfig{
		Size:       size,
		CellWidth:  cell,
		CellHeight: cell,
		OriginX:    (ScreenWidth - cell*size) / 2,
		OriginY:    135,
		Gravity:    10,
		Turns:      25,
		Palette:    DefaultPalette,
	}
}

// Board owns the grid and runs the settle / input / finished state machine.
// It is driven by Tick, Render and Click from a single goroutine.
type Board struct {
	cfg  BoardConfig
	rng  *Rand
	log  *zap.Logger
	sink EventSink

	grid [][]*Cell

	phase          Phase
	score          int
	lastTurnScore  int
	turnsRemaining int
	highScore      int
	multiplier     ColorIndex
	divider        ColorIndex
	lastTurn       TurnResult
	elapsed        float64

	effects *EntityManager

	// flood-fill scratch
	stack    []CellPos
	selected []*Cell
	starBuf  []Vec2

	hover   []CellPos
	hoverAt CellPos

	// OnTurn, when set, is called after every resolved click.
	OnTurn func(TurnResult)
	// OnFinished, when set, is called once when the board becomes terminal
	// with the final score and the updated high score.
	OnFinished func(finalScore, highScore int)
}

// NewBoard creates a board whose cells all start above the visible area, so
// the board begins in PhaseSettling.
func NewBoard(cfg BoardConfig, highScore int) *Board {
	b := newBoard(cfg, highScore)
	for r := 0; r < b.cfg.Size; r++ {
		for c := 0; c < b.cfg.Size; c++ {
			b.grid[r][c] = b.spawnCell(r, c)
		}
	}
	return b
}

// NewBoardFromColors creates a board with the given colors already at rest.
// colors is indexed [row][col] and must be cfg.Size square.
func NewBoardFromColors(cfg BoardConfig, colors [][]ColorIndex, highScore int) (*Board, error) {
	b := newBoard(cfg, highScore)
	if len(colors) != b.cfg.Size {
		return nil, fmt.Errorf("new board: %d rows, want %d", len(colors), b.cfg.Size)
	}
	for r, row := range colors {
		if len(row) != b.cfg.Size {
			return nil, fmt.Errorf("new board: row %d has %d columns, want %d", r, len(row), b.cfg.Size)
		}
		for c, col := range row {
			if !col.IsWildcard() && (col < 0 || int(col) >= len(b.cfg.Palette)) {
				return nil, fmt.Errorf("new board: color %d at (%d,%d) outside palette", col, r, c)
			}
			b.grid[r][c] = &Cell{
				Col:   c,
				Row:   r,
				X:     float64(c) * b.cfg.CellWidth,
				Y:     float64(r) * b.cfg.CellHeight,
				Color: col,
			}
		}
	}
	return b, nil
}

func newBoard(cfg BoardConfig, highScore int) *Board {
	def := DefaultBoardConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = def.CellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = def.CellHeight
	}
	if cfg.Gravity <= 0 {
		cfg.Gravity = def.Gravity
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = def.Palette
	}

	rng := DefaultRand()
	if cfg.Seed != 0 {
		rng = NewRand(cfg.Seed)
	}

	grid := make([][]*Cell, cfg.Size)
	for r := range grid {
		grid[r] = make([]*Cell, cfg.Size)
	}

	return &Board{
		cfg:            cfg,
		rng:            rng,
		log:            zap.NewNop(),
		grid:           grid,
		phase:          PhaseSettling,
		turnsRemaining: cfg.Turns,
		highScore:      highScore,
		multiplier:     noColor,
		divider:        noColor,
		effects:        NewEntityManager(),
		hoverAt:        CellPos{Row: -1, Col: -1},
	}
}

// SetLogger sets the logger used for turn and game-over records.
func (b *Board) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	b.log = log
}

// SetEventSink sets the optional event bridge.
func (b *Board) SetEventSink(sink EventSink) {
	b.sink = sink
}

// spawnCell creates a cell above the board, staggered by a random offset and
// a small upward kick so columns do not land in lockstep.
func (b *Board) spawnCell(row, col int) *Cell {
	return &Cell{
		Col:   col,
		Row:   row,
		X:     float64(col) * b.cfg.CellWidth,
		Y:     float64(row-b.cfg.Size)*b.cfg.CellHeight - b.rng.Float(b.cfg.CellHeight),
		VY:    b.rng.Float(-1),
		Color: ColorIndex(b.rng.Int(len(b.cfg.Palette))),
	}
}

// Tick advances effects and cell physics, then runs the phase transitions.
// The settle check only happens after every cell advanced.
func (b *Board) Tick(dt float64) {
	b.elapsed += dt
	b.effects.Tick(dt)

	falling := false
	for r, row := range b.grid {
		for c, cell := range row {
			if cell == nil {
				b.invariantFailed("empty slot (%d,%d) during tick", r, c)
			}
			cell.Advance(dt, b.cfg.CellHeight, b.cfg.Gravity)
			falling = falling || cell.falling
		}
	}

	switch b.phase {
	case PhaseAwaitingInput:
		if b.turnsRemaining <= 0 {
			b.finish()
		}
	case PhaseSettling:
		if !falling {
			b.beginTurn()
		}
	}
}

// beginTurn draws the multiplier and a distinct divider and opens input.
func (b *Board) beginTurn() {
	n := len(b.cfg.Palette)
	b.multiplier = ColorIndex(b.rng.Int(n))
	b.divider = noColor
	if n > 1 {
		for {
			b.divider = ColorIndex(b.rng.Int(n))
			if b.divider != b.multiplier {
				break
			}
		}
	}
	b.phase = PhaseAwaitingInput
	b.emit(EventSettled, TurnResult{})
}

func (b *Board) finish() {
	b.phase = PhaseFinished
	b.highScore = max(b.score, b.highScore)
	b.log.Info("game over",
		zap.Int("score", b.score),
		zap.Int("high_score", b.highScore))
	b.emit(EventFinished, TurnResult{})
	if b.OnFinished != nil {
		b.OnFinished(b.score, b.highScore)
	}
}

// CellAt maps board-space pixel coordinates to a grid slot.
func (b *Board) CellAt(x, y float64) (row, col int, ok bool) {
	fc := math.Floor((x - b.cfg.OriginX) / b.cfg.CellWidth)
	fr := math.Floor((y - b.cfg.OriginY) / b.cfg.CellHeight)
	n := float64(b.cfg.Size)
	// Written so NaN lands on the rejecting side.
	if !(fc >= 0 && fc < n && fr >= 0 && fr < n) {
		return 0, 0, false
	}
	return int(fr), int(fc), true
}

// Click plays a turn at board-space (x, y). It reports whether a turn was
// resolved; clicks outside the grid, while settling, after the game ended or
// with no turns left are ignored.
func (b *Board) Click(x, y float64) bool {
	if b.phase != PhaseAwaitingInput || b.turnsRemaining <= 0 {
		return false
	}
	row, col, ok := b.CellAt(x, y)
	if !ok {
		return false
	}
	b.resolveTurn(row, col)
	return true
}

func (b *Board) resolveTurn(row, col int) {
	color := b.grid[row][col].Color
	group := b.selectRegion(row, col)
	foundAll := b.allSelected(color)

	res := TurnResult{
		Selected: make([]CellPos, len(group)),
		Color:    color,
		Base:     TriangularScore(len(group)),
		Factor:   ScoreFactor(color, b.multiplier, b.divider, b.multiplier != noColor, foundAll),
		FoundAll: foundAll,
	}
	for i, cell := range group {
		res.Selected[i] = CellPos{Row: cell.Row, Col: cell.Col}
	}
	res.Score = RoundHalfUp(float64(res.Base) * res.Factor)

	w, h := b.cfg.CellWidth, b.cfg.CellHeight
	for _, cell := range group {
		b.effects.Add(NewExplosion(
			cell.X+b.cfg.OriginX+w/2,
			cell.Y+b.cfg.OriginY+h/2,
			w/2,
			b.cfg.Palette.Color(cell.Color),
		))
		b.removeAndCollapse(cell)
	}
	b.refill()
	b.effects.Add(NewScorePopup(
		float64(col)*w+b.cfg.OriginX+w/2,
		float64(row)*h+b.cfg.OriginY+h/2,
		res.Score,
	))

	b.lastTurnScore = res.Score
	b.score += res.Score
	b.lastTurn = res
	b.multiplier = noColor
	b.divider = noColor
	b.hover = b.hover[:0]
	b.hoverAt = CellPos{Row: -1, Col: -1}
	b.turnsRemaining--
	b.phase = PhaseSettling

	b.log.Debug("turn resolved",
		zap.Int("color", int(color)),
		zap.Int("cells", len(group)),
		zap.Int("base", res.Base),
		zap.Float64("factor", res.Factor),
		zap.Bool("found_all", foundAll),
		zap.Int("score", res.Score),
		zap.Int("turns_left", b.turnsRemaining))
	b.emit(EventTurnResolved, res)
	if b.OnTurn != nil {
		b.OnTurn(res)
	}
}

// removeAndCollapse empties cell's slot and pushes every cell above it one
// row down. Cells are processed one removal at a time, so several removals in
// the same column cascade correctly.
func (b *Board) removeAndCollapse(cell *Cell) {
	cell.selected = false
	col := cell.Col
	b.grid[cell.Row][col] = nil
	for r := cell.Row - 1; r >= 0; r-- {
		above := b.grid[r][col]
		if above == nil {
			continue
		}
		above.Row++
		b.grid[above.Row][col] = above
		b.grid[r][col] = nil
		above.VY = -b.rng.Float(1)
	}
}

// refill spawns a new cell into every empty slot.
func (b *Board) refill() {
	for r, row := range b.grid {
		for c, cell := range row {
			if cell == nil {
				row[c] = b.spawnCell(r, c)
			}
		}
	}
}

// allSelected reports whether every cell of color is in the current
// selection.
func (b *Board) allSelected(color ColorIndex) bool {
	for _, row := range b.grid {
		for _, cell := range row {
			if cell.Color == color && !cell.selected {
				return false
			}
		}
	}
	return true
}

func (b *Board) emit(t BoardEventType, turn TurnResult) {
	if b.sink == nil {
		return
	}
	b.sink.EmitEvent(BoardEvent{
		Type:           t,
		Score:          b.score,
		HighScore:      b.highScore,
		TurnsRemaining: b.turnsRemaining,
		Turn:           turn,
	})
}

// invariantFailed panics. The grid must be fully populated outside the
// clear/refill window of a click.
func (b *Board) invariantFailed(format string, args ...any) {
	panic(fmt.Sprintf("colorific: board invariant: "+format, args...))
}

// Phase returns the current phase.
func (b *Board) Phase() Phase { return b.phase }

// Score returns the cumulative score.
func (b *Board) Score() int { return b.score }

// LastTurnScore returns the score of the most recent turn.
func (b *Board) LastTurnScore() int { return b.lastTurnScore }

// LastTurn returns the details of the most recent turn.
func (b *Board) LastTurn() TurnResult { return b.lastTurn }

// TurnsRemaining returns how many clicks are left.
func (b *Board) TurnsRemaining() int { return b.turnsRemaining }

// HighScore returns the high score passed in at construction, raised to the
// final score once the board finishes.
func (b *Board) HighScore() int { return b.highScore }

// Multiplier returns the color that doubles this turn's score, if assigned.
func (b *Board) Multiplier() (ColorIndex, bool) {
	return b.multiplier, b.multiplier != noColor
}

// Divider returns the color that halves this turn's score, if assigned.
func (b *Board) Divider() (ColorIndex, bool) {
	return b.divider, b.divider != noColor
}

// Size returns the number of rows (and columns).
func (b *Board) Size() int { return b.cfg.Size }

// Config returns the board configuration after defaults were applied.
func (b *Board) Config() BoardConfig { return b.cfg }

// Cell returns the cell at (row, col), or nil when out of range.
func (b *Board) Cell(row, col int) *Cell {
	if row < 0 || row >= b.cfg.Size || col < 0 || col >= b.cfg.Size {
		return nil
	}
	return b.grid[row][col]
}

// Effects returns the manager holding explosions and score popups.
func (b *Board) Effects() *EntityManager { return b.effects }

// Elapsed returns the total simulated time in seconds.
func (b *Board) Elapsed() float64 { return b.elapsed }

// Falling returns how many cells are still above their target row.
func (b *Board) Falling() int {
	n := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell.falling {
				n++
			}
		}
	}
	return n
}
