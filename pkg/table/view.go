package table

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-drift/tableview/pkg/gestures"
	"github.com/go-drift/tableview/pkg/graphics"
	"github.com/go-drift/tableview/pkg/theme"
)

// Config configures a View. The zero value selects the default theme,
// clamping physics and a private gesture arena.
type Config struct {
	// Theme supplies metrics and palette. Nil means the default theme.
	Theme *theme.TableThemeData
	// RowExtent overrides the theme's fixed row height when positive.
	RowExtent float64
	// CacheExtent overrides the theme's cache region when positive.
	// A negative value disables the cache region entirely.
	CacheExtent float64
	// MaxIdleCells overrides the theme's idle-pool cap when positive.
	MaxIdleCells int
	// Physics determines how the view responds to drags and flings.
	Physics ScrollPhysics
	// Arena is the gesture arena the view's recognizers compete in.
	// Nil means a private arena owned by this view.
	Arena *gestures.GestureArena
	// OnUpdate is called whenever the view needs repainting (scroll
	// changes, binding changes, highlight changes).
	OnUpdate func()
}

// View maintains a one-to-one mapping from visible screen positions to
// bound cells, recycling cells through a [ReusePool] as the visible range
// shifts. One View owns one pool; pools are never shared across views.
type View struct {
	theme       *theme.TableThemeData
	rowExtent   float64
	cacheExtent float64

	dataSource DataSource
	handler    ActivationHandler

	pool     *ReusePool
	position *ScrollPosition
	viewport graphics.Size
	bound    map[IndexPath]*Cell

	arena *gestures.GestureArena
	tap   *gestures.TapGestureRecognizer
	drag  *gestures.VerticalDragGestureRecognizer

	onUpdate func()
	inLayout bool
}

// NewView creates a view with the given configuration.
func NewView(config Config) *View {
	themed := config.Theme
	if themed == nil {
		themed = theme.DefaultTableTheme()
	}
	rowExtent := config.RowExtent
	if rowExtent <= 0 {
		rowExtent = themed.RowExtent
	}
	cacheExtent := config.CacheExtent
	if cacheExtent == 0 {
		cacheExtent = themed.CacheExtent
	} else if cacheExtent < 0 {
		cacheExtent = 0
	}
	maxIdle := config.MaxIdleCells
	if maxIdle <= 0 {
		maxIdle = themed.MaxIdleCells
	}
	arena := config.Arena
	if arena == nil {
		arena = gestures.NewGestureArena()
	}

	v := &View{
		theme:       themed,
		rowExtent:   rowExtent,
		cacheExtent: cacheExtent,
		pool:        NewReusePool(maxIdle),
		viewport:    graphics.Size{},
		bound:       make(map[IndexPath]*Cell),
		arena:       arena,
		onUpdate:    config.OnUpdate,
	}
	v.position = NewScrollPosition(config.Physics, v.handleScroll)
	v.configureGestures()
	return v
}

// SetDataSource registers the data source and reloads all bindings.
func (v *View) SetDataSource(source DataSource) {
	v.dataSource = source
	v.ReloadData()
}

// SetActivationHandler registers the handler notified on row activation.
func (v *View) SetActivationHandler(handler ActivationHandler) {
	v.handler = handler
}

// RegisterCell associates a cell factory with a reuse identifier.
func (v *View) RegisterCell(id ReuseID, factory CellFactory) {
	v.pool.Register(id, factory)
}

// DequeueReusableCell returns a recycled or newly constructed cell for the
// identifier. Data sources call this inside CellForRow and must overwrite
// the cell's content before returning it.
func (v *View) DequeueReusableCell(id ReuseID) *Cell {
	return v.pool.Acquire(id)
}

// SetViewport sets the visible area and rebinds the visible range.
func (v *View) SetViewport(size graphics.Size) {
	v.viewport = size
	v.position.setViewportExtent(size.Height)
	v.refreshExtents()
	v.layoutRows()
}

// Viewport returns the current visible area.
func (v *View) Viewport() graphics.Size {
	return v.viewport
}

// Theme returns the theme data the view was configured with.
func (v *View) Theme() *theme.TableThemeData {
	return v.theme
}

// RowExtent returns the fixed height of every row.
func (v *View) RowExtent() float64 {
	return v.rowExtent
}

// Position returns the view's scroll position.
func (v *View) Position() *ScrollPosition {
	return v.position
}

// Pool returns the view's reuse pool, mainly for diagnostics and tests.
func (v *View) Pool() *ReusePool {
	return v.pool
}

// SectionCount returns the number of sections reported by the data source.
func (v *View) SectionCount() int {
	if v.dataSource == nil {
		return 0
	}
	n := v.dataSource.NumberOfSections()
	if n < 0 {
		contractViolation("table.View.SectionCount", "data source returned a negative section count")
		return 0
	}
	return n
}

// RowCount returns the number of rows in the section, delegating to the
// data source on demand. Counts are never cached; the data source is the
// source of truth and may change between calls.
func (v *View) RowCount(section int) int {
	if v.dataSource == nil {
		return 0
	}
	if section < 0 || section >= v.SectionCount() {
		contractViolation("table.View.RowCount", "section "+strconv.Itoa(section)+" out of range")
		return 0
	}
	n := v.dataSource.NumberOfRows(section)
	if n < 0 {
		contractViolation("table.View.RowCount", "data source returned a negative row count")
		return 0
	}
	return n
}

// ReloadData discards every binding and rebinds the visible range from the
// data source's current state.
func (v *View) ReloadData() {
	for path := range v.bound {
		v.releaseRow(path)
	}
	v.refreshExtents()
	v.layoutRows()
	v.notifyHost()
}

// ScrollToRow jumps so the given row sits at the top of the viewport
// (clamped to the scrollable extents).
func (v *View) ScrollToRow(path IndexPath) {
	index, ok := v.flatIndex(path)
	if !ok {
		contractViolation("table.View.ScrollToRow", "row "+path.String()+" out of range")
		return
	}
	v.position.JumpTo(float64(index) * v.rowExtent)
}

// CellAt returns the cell currently bound to the row, if the row is inside
// the bound range.
func (v *View) CellAt(path IndexPath) (*Cell, bool) {
	cell, ok := v.bound[path]
	return cell, ok
}

// VisiblePaths returns the currently bound rows in order.
func (v *View) VisiblePaths() []IndexPath {
	paths := make([]IndexPath, 0, len(v.bound))
	for path := range v.bound {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })
	return paths
}

// BoundCount returns how many cells are currently bound to rows.
func (v *View) BoundCount() int {
	return len(v.bound)
}

// PathAtPoint maps a point in viewport coordinates to the row displayed
// there, accounting for the scroll offset.
func (v *View) PathAtPoint(point graphics.Offset) (IndexPath, bool) {
	if !v.viewportContains(point) {
		return IndexPath{}, false
	}
	y := point.Y + v.position.Offset()
	if y < 0 || v.rowExtent <= 0 {
		return IndexPath{}, false
	}
	return v.pathForFlatIndex(int(math.Floor(y / v.rowExtent)))
}

// RectForRow returns the row's rectangle in viewport coordinates.
func (v *View) RectForRow(path IndexPath) (graphics.Rect, bool) {
	index, ok := v.flatIndex(path)
	if !ok {
		return graphics.Rect{}, false
	}
	top := float64(index)*v.rowExtent - v.position.Offset()
	return graphics.RectFromLTWH(0, top, v.viewport.Width, v.rowExtent), true
}

// HandlePointer feeds a pointer event to the view's gesture recognizers.
// Hosts call this for every pointer event that hits the view.
func (v *View) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		if !v.viewportContains(event.Position) {
			return
		}
		v.position.StopBallistic()
		v.tap.AddPointer(event)
		v.drag.AddPointer(event)
		v.arena.Close(event.PointerID)
	case gestures.PointerPhaseMove:
		v.tap.HandleEvent(event)
		v.drag.HandleEvent(event)
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		v.tap.HandleEvent(event)
		v.drag.HandleEvent(event)
		v.arena.Sweep(event.PointerID)
	}
}

func (v *View) configureGestures() {
	v.tap = gestures.NewTapGestureRecognizer(v.arena)
	v.tap.OnTapUp = func(details gestures.TapUpDetails) {
		if path, ok := v.PathAtPoint(details.Position); ok {
			v.ActivateRow(path)
		}
	}

	v.drag = gestures.NewVerticalDragGestureRecognizer(v.arena)
	v.drag.OnStart = func(gestures.DragStartDetails) {
		v.position.StopBallistic()
	}
	v.drag.OnUpdate = func(details gestures.DragUpdateDetails) {
		v.position.ApplyUserOffset(-details.PrimaryDelta)
	}
	v.drag.OnEnd = func(details gestures.DragEndDetails) {
		v.position.StartBallistic(-details.PrimaryVelocity)
	}
	v.drag.OnCancel = func() {
		v.position.StopBallistic()
	}
}

func (v *View) handleScroll() {
	v.layoutRows()
	v.notifyHost()
}

func (v *View) notifyHost() {
	if v.onUpdate != nil {
		v.onUpdate()
	}
}

func (v *View) viewportContains(point graphics.Offset) bool {
	return point.X >= 0 && point.Y >= 0 &&
		point.X < v.viewport.Width && point.Y < v.viewport.Height
}

func (v *View) totalRows() int {
	total := 0
	for section := 0; section < v.SectionCount(); section++ {
		total += v.RowCount(section)
	}
	return total
}

func (v *View) refreshExtents() {
	content := float64(v.totalRows()) * v.rowExtent
	max := content - v.viewport.Height
	if max < 0 {
		max = 0
	}
	v.position.SetExtents(0, max)
}

// layoutRows reconciles the bound set with the visible scroll range:
// rows that left the range release their cells to the pool before the
// positions stop being tracked, and newly visible rows are bound.
func (v *View) layoutRows() {
	if v.inLayout {
		return
	}
	v.inLayout = true
	defer func() { v.inLayout = false }()

	start, end := v.visibleRange()
	wanted := make(map[IndexPath]struct{}, end-start)
	for index := start; index < end; index++ {
		if path, ok := v.pathForFlatIndex(index); ok {
			wanted[path] = struct{}{}
		}
	}

	for path := range v.bound {
		if _, keep := wanted[path]; !keep {
			v.releaseRow(path)
		}
	}
	for path := range wanted {
		if _, alreadyBound := v.bound[path]; !alreadyBound {
			v.bindRow(path)
		}
	}
}

// visibleRange returns the half-open flat row range [start, end) covered
// by the viewport plus the cache region.
func (v *View) visibleRange() (int, int) {
	total := v.totalRows()
	if total == 0 || v.rowExtent <= 0 || v.viewport.Height <= 0 {
		return 0, 0
	}
	offset := v.position.Offset()
	startPx := offset - v.cacheExtent
	endPx := offset + v.viewport.Height + v.cacheExtent
	start := int(math.Floor(startPx / v.rowExtent))
	end := int(math.Ceil(endPx / v.rowExtent))
	if start < 0 {
		start = 0
	}
	if end > total {
		end = total
	}
	if end < start {
		end = start
	}
	return start, end
}

func (v *View) bindRow(path IndexPath) {
	cell := v.dataSource.CellForRow(v, path)
	if cell == nil {
		contractViolation("table.View.bindRow", "data source returned nil cell for "+path.String())
		return
	}
	if cell.bound {
		contractViolation("table.View.bindRow", "cell for "+path.String()+" is already bound to "+cell.path.String())
		return
	}
	cell.bind(path)
	v.bound[path] = cell
}

func (v *View) releaseRow(path IndexPath) {
	cell, ok := v.bound[path]
	if !ok {
		return
	}
	delete(v.bound, path)
	v.pool.Release(cell)
}

func (v *View) pathForFlatIndex(index int) (IndexPath, bool) {
	if index < 0 {
		return IndexPath{}, false
	}
	for section := 0; section < v.SectionCount(); section++ {
		rows := v.RowCount(section)
		if index < rows {
			return IndexPath{Section: section, Row: index}, true
		}
		index -= rows
	}
	return IndexPath{}, false
}

func (v *View) flatIndex(path IndexPath) (int, bool) {
	if path.Section < 0 || path.Row < 0 || path.Section >= v.SectionCount() {
		return 0, false
	}
	if path.Row >= v.RowCount(path.Section) {
		return 0, false
	}
	index := path.Row
	for section := 0; section < path.Section; section++ {
		index += v.RowCount(section)
	}
	return index, true
}
