package colorific

// InjectClick queues a synthetic click at the given logical coordinates. One
// queued click is delivered at the start of each Update, before the active
// screen ticks, exactly as if the host had called Click.
func (d *Director) InjectClick(x, y float64) {
	d.injectQueue = append(d.injectQueue, Vec2{X: x, Y: y})
}

// InjectCell queues a click on the centre of a board slot using the default
// layout of cfg.
func (d *Director) InjectCell(cfg BoardConfig, row, col int) {
	d.InjectClick(
		cfg.OriginX+(float64(col)+0.5)*cfg.CellWidth,
		cfg.OriginY+(float64(row)+0.5)*cfg.CellHeight,
	)
}

// PendingInjections returns the number of queued synthetic clicks.
func (d *Director) PendingInjections() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one queued click and delivers it. Returns true
// if a click was consumed.
func (d *Director) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	p := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	d.Click(p.X, p.Y)
	return true
}
