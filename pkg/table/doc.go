// Package table implements a virtualized table view: an unbounded logical
// sequence of rows displayed through a bounded pool of reusable cells.
//
// # Core Types
//
// View drives the mechanism. It asks a caller-registered [DataSource] for
// section and row counts, binds a [Cell] to every row inside the visible
// scroll range, and releases cells back to a [ReusePool] as rows leave the
// range. The working set of live cells is bounded by the viewport, not by
// the number of rows: a table with ten rows and a table with a million rows
// use the same constant number of cells.
//
// # Cell Reuse
//
// Cells are classified by an opaque [ReuseID]. Callers register one
// [CellFactory] per identifier, so every cell filed under an identifier is
// structurally interchangeable and recycling is safe:
//
//	view.RegisterCell("contact", func() *table.Cell {
//	    return table.NewCell("contact")
//	})
//
// The data source dequeues inside CellForRow and must overwrite the cell's
// content; recycled cells keep their previous payload:
//
//	func (s *contacts) CellForRow(v *table.View, path table.IndexPath) *table.Cell {
//	    cell := v.DequeueReusableCell("contact")
//	    cell.Text = s.names[path.Row]
//	    return cell
//	}
//
// # Activation
//
// A tap inside the viewport (or an explicit ActivateRow call) notifies the
// registered [ActivationHandler] exactly once with the row's [IndexPath].
// The transient highlighted state on the cell is reverted after the handler
// returns; no persistent selection is kept.
//
// # Threading
//
// All View, ReusePool and ScrollPosition mutations must happen on one
// control thread. Hosts that step ballistic scrolling from a ticker should
// post a wake-up to their event loop rather than touching the view from
// the ticker goroutine.
package table
