package table

// ReuseID classifies structurally interchangeable cells for pooling. All
// cells constructed under one identifier must share the same layout so a
// recycled cell is always safe to rebind.
type ReuseID string

// Cell is a reusable visual unit bound to at most one logical row at a
// time. A cell is constructed once, then recycled indefinitely: its content
// is overwritten on every rebind and it is never destroyed explicitly
// (beyond idle-pool eviction).
type Cell struct {
	// Text is the primary label content.
	Text string
	// Detail is the secondary label content.
	Detail string

	reuseID     ReuseID
	highlighted bool
	idle        bool
	bound       bool
	path        IndexPath
}

// NewCell constructs a cell tagged with the given reuse identifier. The
// identifier is fixed for the cell's lifetime.
func NewCell(id ReuseID) *Cell {
	return &Cell{reuseID: id}
}

// ReuseID returns the identifier the cell was constructed with.
func (c *Cell) ReuseID() ReuseID {
	return c.reuseID
}

// Path returns the row the cell is currently bound to, if any.
func (c *Cell) Path() (IndexPath, bool) {
	return c.path, c.bound
}

// Highlighted reports whether the cell is in its transient activated state.
func (c *Cell) Highlighted() bool {
	return c.highlighted
}

func (c *Cell) bind(path IndexPath) {
	c.path = path
	c.bound = true
}

func (c *Cell) unbind() {
	c.path = IndexPath{}
	c.bound = false
	c.highlighted = false
}

func (c *Cell) setHighlighted(highlighted bool) {
	c.highlighted = highlighted
}
