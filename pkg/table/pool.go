package table

// DefaultMaxIdleCells is the per-identifier cap on retained idle cells.
// A fling can briefly construct more cells than one screen needs; the cap
// keeps that transient surplus from lingering forever.
const DefaultMaxIdleCells = 24

// CellFactory constructs a new cell for a reuse identifier.
type CellFactory func() *Cell

// ReusePool owns the idle cells of a table view, partitioned by reuse
// identifier. Partitioning guarantees a caller never receives a cell
// shaped for a different row type.
//
// The pool is owned by a single View and must only be mutated on the
// host's control thread.
type ReusePool struct {
	factories    map[ReuseID]CellFactory
	idle         map[ReuseID][]*Cell
	maxIdlePerID int
	constructed  int
}

// NewReusePool creates a pool retaining at most maxIdlePerID idle cells
// per identifier. Values <= 0 select [DefaultMaxIdleCells].
func NewReusePool(maxIdlePerID int) *ReusePool {
	if maxIdlePerID <= 0 {
		maxIdlePerID = DefaultMaxIdleCells
	}
	return &ReusePool{
		factories:    make(map[ReuseID]CellFactory),
		idle:         make(map[ReuseID][]*Cell),
		maxIdlePerID: maxIdlePerID,
	}
}

// Register associates a factory with a reuse identifier. Every cell the
// pool constructs for the identifier comes from this factory, which is what
// makes recycling structurally safe. Re-registering replaces the factory.
func (p *ReusePool) Register(id ReuseID, factory CellFactory) {
	if factory == nil {
		contractViolation("table.ReusePool.Register", "nil factory for identifier "+string(id))
		return
	}
	p.factories[id] = factory
}

// Acquire removes and returns an idle cell for the identifier, or
// constructs a new one when none is pooled. It always succeeds. The caller
// must overwrite the cell's content before display; the pool does not
// reset it.
func (p *ReusePool) Acquire(id ReuseID) *Cell {
	if stack := p.idle[id]; len(stack) > 0 {
		cell := stack[len(stack)-1]
		p.idle[id] = stack[:len(stack)-1]
		cell.idle = false
		return cell
	}
	factory := p.factories[id]
	if factory == nil {
		contractViolation("table.ReusePool.Acquire", "no factory registered for identifier "+string(id))
		factory = func() *Cell { return NewCell(id) }
	}
	cell := factory()
	if cell == nil || cell.reuseID != id {
		contractViolation("table.ReusePool.Acquire", "factory for identifier "+string(id)+" returned a mismatched cell")
		cell = NewCell(id)
	}
	p.constructed++
	return cell
}

// Release files a cell into the idle pool under its identifier, making it
// eligible for a future Acquire with the same identifier. When the pool
// already holds the per-identifier maximum, the oldest idle cell is
// evicted. Precondition: the cell is currently bound.
func (p *ReusePool) Release(cell *Cell) {
	if cell == nil {
		contractViolation("table.ReusePool.Release", "nil cell")
		return
	}
	if cell.idle {
		contractViolation("table.ReusePool.Release", "cell "+string(cell.reuseID)+" released twice")
		return
	}
	cell.unbind()
	cell.idle = true
	stack := append(p.idle[cell.reuseID], cell)
	if len(stack) > p.maxIdlePerID {
		evicted := stack[0]
		evicted.idle = false
		// Shift in place and drop the tail reference so the evicted
		// cell is collectable immediately.
		copy(stack, stack[1:])
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
	}
	p.idle[cell.reuseID] = stack
}

// IdleCount returns the number of idle cells pooled for the identifier.
func (p *ReusePool) IdleCount(id ReuseID) int {
	return len(p.idle[id])
}

// Constructed returns how many cells the pool has ever constructed. Under
// any scroll sequence this stays bounded by the concurrently visible
// positions plus a small transition slack, independent of row count.
func (p *ReusePool) Constructed() int {
	return p.constructed
}
