package table

// ActivateRow dispatches a single activation notification for the row to
// the registered handler. The bound cell (if the row is onscreen) enters
// its transient highlighted state before the handler runs and reverts to
// idle after the handler returns, including when the handler panics; the
// panic itself propagates to the host's event boundary unmodified.
//
// Returns true if a handler was notified.
func (v *View) ActivateRow(path IndexPath) bool {
	if _, ok := v.flatIndex(path); !ok {
		contractViolation("table.View.ActivateRow", "row "+path.String()+" out of range")
		return false
	}
	if v.handler == nil {
		return false
	}

	if cell, ok := v.bound[path]; ok {
		cell.setHighlighted(true)
		v.notifyHost()
		defer func() {
			cell.setHighlighted(false)
			v.notifyHost()
		}()
	}

	v.handler.RowActivated(v, path)
	return true
}
