package table

// DataSource supplies row counts and cell content to a View. The view
// treats it as read-only and queries counts on demand rather than caching
// them; the data source remains the single source of truth.
type DataSource interface {
	// NumberOfSections returns how many sections the table has.
	// Must be non-negative.
	NumberOfSections() int
	// NumberOfRows returns how many rows the given section has.
	// Must be non-negative.
	NumberOfRows(section int) int
	// CellForRow returns a content-ready cell for the row at path.
	// Implementations dequeue via view.DequeueReusableCell and must
	// overwrite the cell's content; recycled cells keep stale payloads.
	// Must not return nil.
	CellForRow(view *View, path IndexPath) *Cell
}

// ActivationHandler is notified when a displayed row is activated.
type ActivationHandler interface {
	// RowActivated is invoked at most once per discrete activation
	// gesture. Panics are propagated to the host's event boundary.
	RowActivated(view *View, path IndexPath)
}

// ActivationHandlerFunc adapts a function to the ActivationHandler
// interface.
type ActivationHandlerFunc func(view *View, path IndexPath)

// RowActivated implements ActivationHandler.
func (f ActivationHandlerFunc) RowActivated(view *View, path IndexPath) {
	f(view, path)
}
