package table

import "testing"

func newTestPool(maxIdle int, ids ...ReuseID) *ReusePool {
	pool := NewReusePool(maxIdle)
	for _, id := range ids {
		id := id
		pool.Register(id, func() *Cell { return NewCell(id) })
	}
	return pool
}

func TestPoolAcquireConstructsWhenEmpty(t *testing.T) {
	pool := newTestPool(0, "plain")

	cell := pool.Acquire("plain")
	if cell == nil {
		t.Fatal("Acquire returned nil")
	}
	if cell.ReuseID() != "plain" {
		t.Errorf("ReuseID = %q, want plain", cell.ReuseID())
	}
	if got := pool.Constructed(); got != 1 {
		t.Errorf("Constructed = %d, want 1", got)
	}
}

func TestPoolReleaseThenAcquireReuses(t *testing.T) {
	pool := newTestPool(0, "plain")

	first := pool.Acquire("plain")
	pool.Release(first)
	if got := pool.IdleCount("plain"); got != 1 {
		t.Fatalf("IdleCount = %d, want 1", got)
	}

	second := pool.Acquire("plain")
	if second != first {
		t.Error("Acquire did not return the released cell")
	}
	if got := pool.Constructed(); got != 1 {
		t.Errorf("Constructed = %d, want 1", got)
	}
	if got := pool.IdleCount("plain"); got != 0 {
		t.Errorf("IdleCount after reuse = %d, want 0", got)
	}
}

func TestPoolAcquireIsLIFO(t *testing.T) {
	pool := newTestPool(0, "plain")

	a := pool.Acquire("plain")
	b := pool.Acquire("plain")
	pool.Release(a)
	pool.Release(b)

	if got := pool.Acquire("plain"); got != b {
		t.Error("first Acquire should return the most recently released cell")
	}
	if got := pool.Acquire("plain"); got != a {
		t.Error("second Acquire should return the earlier released cell")
	}
}

func TestPoolPartitionsByIdentifier(t *testing.T) {
	pool := newTestPool(0, "name", "detail")

	name := pool.Acquire("name")
	pool.Release(name)

	detail := pool.Acquire("detail")
	if detail == name {
		t.Fatal("Acquire crossed identifier partitions")
	}
	if detail.ReuseID() != "detail" {
		t.Errorf("ReuseID = %q, want detail", detail.ReuseID())
	}
	if got := pool.IdleCount("name"); got != 1 {
		t.Errorf("IdleCount(name) = %d, want 1", got)
	}
}

func TestPoolEvictsOldestIdleOverCap(t *testing.T) {
	pool := newTestPool(2, "plain")

	a := pool.Acquire("plain")
	b := pool.Acquire("plain")
	c := pool.Acquire("plain")
	pool.Release(a)
	pool.Release(b)
	pool.Release(c)

	if got := pool.IdleCount("plain"); got != 2 {
		t.Fatalf("IdleCount = %d, want cap of 2", got)
	}
	// a was released first and evicted; the newest two remain.
	if got := pool.Acquire("plain"); got != c {
		t.Error("expected newest idle cell first")
	}
	if got := pool.Acquire("plain"); got != b {
		t.Error("expected second newest idle cell next")
	}
	if got := pool.Acquire("plain"); got == a {
		t.Error("evicted cell resurfaced from the pool")
	}
}

func TestPoolEvictionUnderChurn(t *testing.T) {
	pool := newTestPool(2, "plain")

	cells := make([]*Cell, 5)
	for i := range cells {
		cells[i] = pool.Acquire("plain")
	}
	for _, cell := range cells {
		pool.Release(cell)
	}

	if got := pool.IdleCount("plain"); got != 2 {
		t.Fatalf("IdleCount = %d, want cap of 2", got)
	}
	// Only the two newest survive repeated evictions, in release order.
	if got := pool.idle["plain"][0]; got != cells[3] {
		t.Error("oldest surviving slot holds the wrong cell")
	}
	if got := pool.idle["plain"][1]; got != cells[4] {
		t.Error("newest surviving slot holds the wrong cell")
	}
	// Evicted cells are no longer referenced through the idle stack's
	// backing array.
	full := pool.idle["plain"][:cap(pool.idle["plain"])]
	for i := 2; i < len(full); i++ {
		if full[i] != nil {
			t.Errorf("backing slot %d still references an evicted cell", i)
		}
	}
	for _, evicted := range cells[:3] {
		if evicted.idle {
			t.Error("evicted cell still marked idle")
		}
	}
}

func TestPoolDefaultCap(t *testing.T) {
	pool := newTestPool(0, "plain")

	cells := make([]*Cell, DefaultMaxIdleCells+5)
	for i := range cells {
		cells[i] = pool.Acquire("plain")
	}
	for _, cell := range cells {
		pool.Release(cell)
	}
	if got := pool.IdleCount("plain"); got != DefaultMaxIdleCells {
		t.Errorf("IdleCount = %d, want %d", got, DefaultMaxIdleCells)
	}
}

func TestPoolReleaseClearsBinding(t *testing.T) {
	pool := newTestPool(0, "plain")

	cell := pool.Acquire("plain")
	cell.bind(IndexPath{Section: 0, Row: 7})
	cell.setHighlighted(true)
	pool.Release(cell)

	if _, bound := cell.Path(); bound {
		t.Error("released cell still reports a bound path")
	}
	if cell.Highlighted() {
		t.Error("released cell still highlighted")
	}
}

func TestPoolDoubleReleasePanicsInDebugMode(t *testing.T) {
	pool := newTestPool(0, "plain")
	cell := pool.Acquire("plain")
	pool.Release(cell)

	defer func() {
		if recover() == nil {
			t.Error("double release did not panic in debug mode")
		}
	}()
	pool.Release(cell)
}

func TestPoolUnregisteredAcquireDegradesOutsideDebugMode(t *testing.T) {
	SetDebugMode(false)
	defer SetDebugMode(true)

	pool := NewReusePool(0)
	cell := pool.Acquire("mystery")
	if cell == nil {
		t.Fatal("Acquire returned nil for unregistered identifier")
	}
	if cell.ReuseID() != "mystery" {
		t.Errorf("ReuseID = %q, want mystery", cell.ReuseID())
	}
}

func TestPoolMismatchedFactoryDegradesOutsideDebugMode(t *testing.T) {
	SetDebugMode(false)
	defer SetDebugMode(true)

	pool := NewReusePool(0)
	pool.Register("wanted", func() *Cell { return NewCell("other") })
	cell := pool.Acquire("wanted")
	if cell.ReuseID() != "wanted" {
		t.Errorf("ReuseID = %q, want wanted", cell.ReuseID())
	}
}
