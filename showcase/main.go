// Command showcase runs a terminal host for the table view: a contact list
// with wheel/fling scrolling, click and Enter activation, and an optional
// tableview.yaml theme in the working directory.
//
// Keys: Up/Down move the cursor, PgUp/PgDn page, Enter activates,
// q or Esc quits. The mouse wheel scrolls and a click activates a row.
package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/atomic"

	"github.com/go-drift/tableview/pkg/errors"
	"github.com/go-drift/tableview/pkg/gestures"
	"github.com/go-drift/tableview/pkg/graphics"
	"github.com/go-drift/tableview/pkg/table"
	"github.com/go-drift/tableview/pkg/theme"
)

const contactCellID table.ReuseID = "contact"

// wheelStep is how many rows one wheel notch scrolls.
const wheelStep = 3.0

type contact struct {
	name  string
	phone string
}

type contactSection struct {
	title string
	rows  []contact
}

// contactSource provides demo rows grouped into sections.
type contactSource struct {
	sections []contactSection
}

func newContactSource() *contactSource {
	source := &contactSource{}
	groups := []struct {
		title string
		count int
	}{
		{"Favorites", 8},
		{"Contacts", 2000},
	}
	for _, group := range groups {
		section := contactSection{title: group.title}
		for i := 0; i < group.count; i++ {
			section.rows = append(section.rows, contact{
				name:  fmt.Sprintf("%s %d", group.title, i+1),
				phone: fmt.Sprintf("555-01%02d", i%100),
			})
		}
		source.sections = append(source.sections, section)
	}
	return source
}

func (s *contactSource) NumberOfSections() int {
	return len(s.sections)
}

func (s *contactSource) NumberOfRows(section int) int {
	return len(s.sections[section].rows)
}

func (s *contactSource) CellForRow(v *table.View, path table.IndexPath) *table.Cell {
	cell := v.DequeueReusableCell(contactCellID)
	row := s.sections[path.Section].rows[path.Row]
	cell.Text = row.name
	cell.Detail = row.phone
	return cell
}

// app owns the terminal screen and drives the view from the event loop.
// All view mutations happen on the event loop goroutine; the frame ticker
// only posts wake-up events.
type app struct {
	screen tcell.Screen
	view   *table.View
	source *contactSource
	themed *theme.TableThemeData
	dirty  *atomic.Bool
	mouse  mouseTranslator
	cursor table.IndexPath
	status string
}

// mouseTranslator converts tcell mouse state into pointer events. tcell
// reports drag motion as repeated events with the button still set, so the
// translator tracks the held state to emit one Down, Moves while held, and
// one Up on the release transition.
type mouseTranslator struct {
	held bool
	last graphics.Offset
}

func (m *mouseTranslator) translate(held bool, pos graphics.Offset) (gestures.PointerEvent, bool) {
	switch {
	case held && !m.held:
		m.held = true
		m.last = pos
		return gestures.PointerEvent{
			PointerID: 1,
			Position:  pos,
			Phase:     gestures.PointerPhaseDown,
		}, true
	case held && m.held:
		if pos == m.last {
			// tcell repeats the event for motion within a cell.
			return gestures.PointerEvent{}, false
		}
		delta := graphics.Offset{X: pos.X - m.last.X, Y: pos.Y - m.last.Y}
		m.last = pos
		return gestures.PointerEvent{
			PointerID: 1,
			Position:  pos,
			Delta:     delta,
			Phase:     gestures.PointerPhaseMove,
		}, true
	case !held && m.held:
		m.held = false
		delta := graphics.Offset{X: pos.X - m.last.X, Y: pos.Y - m.last.Y}
		return gestures.PointerEvent{
			PointerID: 1,
			Position:  pos,
			Delta:     delta,
			Phase:     gestures.PointerPhaseUp,
		}, true
	default:
		return gestures.PointerEvent{}, false
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	themed, err := theme.LoadOptional(".")
	if err != nil {
		var tableErr *errors.TableError
		if stderrors.As(err, &tableErr) {
			errors.Report(tableErr)
		}
		themed = theme.DefaultTableTheme()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("showcase: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("showcase: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := &app{
		screen: screen,
		source: newContactSource(),
		themed: themed,
		dirty:  atomic.NewBool(true),
		status: "Up/Down move, Enter activates, q quits",
	}

	a.view = table.NewView(table.Config{
		Theme: themed,
		// One terminal row per cell; the terminal is the pixel grid here.
		RowExtent:   1,
		CacheExtent: 2,
		Physics:     table.ClampingScrollPhysics{},
		OnUpdate:    func() { a.dirty.Store(true) },
	})
	a.view.RegisterCell(contactCellID, func() *table.Cell {
		return table.NewCell(contactCellID)
	})
	a.view.SetActivationHandler(table.ActivationHandlerFunc(func(_ *table.View, path table.IndexPath) {
		row := a.source.sections[path.Section].rows[path.Row]
		a.status = fmt.Sprintf("Activated %s %s (%s)", path, row.name, row.phone)
	}))
	a.view.SetDataSource(a.source)
	a.resize()

	quit := make(chan struct{})
	defer close(quit)
	go a.frameTicker(quit)

	return a.eventLoop()
}

// frameTicker wakes the event loop while a fling simulation is running.
// It only marks the redraw flag and posts a wake-up event; the view is
// never touched from this goroutine.
func (a *app) frameTicker(quit <-chan struct{}) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			if table.HasActiveBallistics() {
				a.dirty.Store(true)
				_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}
}

func (a *app) eventLoop() (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			errors.ReportPanic(&errors.PanicError{Op: "showcase.eventLoop", Value: r})
			err = fmt.Errorf("showcase: panic: %v", r)
		}
	}()

	for {
		if a.dirty.Swap(false) {
			a.render()
		}
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.resize()
		case *tcell.EventInterrupt:
			table.StepBallistics()
		case *tcell.EventKey:
			if done := a.handleKey(ev); done {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case nil:
			return nil
		}
	}
}

func (a *app) resize() {
	width, height := a.screen.Size()
	if height < 2 {
		height = 2
	}
	// Reserve the bottom line for the status bar.
	a.view.SetViewport(graphics.Size{Width: float64(width), Height: float64(height - 1)})
	a.dirty.Store(true)
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	case tcell.KeyUp:
		a.moveCursor(-1)
	case tcell.KeyDown:
		a.moveCursor(1)
	case tcell.KeyPgUp:
		a.view.Position().JumpTo(a.view.Position().Offset() - a.view.Viewport().Height)
	case tcell.KeyPgDn:
		a.view.Position().JumpTo(a.view.Position().Offset() + a.view.Viewport().Height)
	case tcell.KeyEnter:
		a.view.ActivateRow(a.cursor)
	}
	a.dirty.Store(true)
	return false
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := graphics.Offset{X: float64(x), Y: float64(y)}
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.view.Position().ApplyUserOffset(-wheelStep)
	case ev.Buttons()&tcell.WheelDown != 0:
		a.view.Position().ApplyUserOffset(wheelStep)
	default:
		event, ok := a.mouse.translate(ev.Buttons()&tcell.Button1 != 0, pos)
		if !ok {
			return
		}
		a.view.HandlePointer(event)
	}
	a.dirty.Store(true)
}

// moveCursor shifts the keyboard cursor across section boundaries and
// keeps it scrolled into view.
func (a *app) moveCursor(delta int) {
	next := a.cursor
	next.Row += delta
	for next.Row < 0 && next.Section > 0 {
		next.Section--
		next.Row = a.view.RowCount(next.Section) - 1
	}
	for next.Section < a.view.SectionCount() && next.Row >= a.view.RowCount(next.Section) {
		if next.Section == a.view.SectionCount()-1 {
			next.Row = a.view.RowCount(next.Section) - 1
			break
		}
		next.Section++
		next.Row = 0
	}
	if next.Row < 0 || next.Section >= a.view.SectionCount() {
		return
	}
	a.cursor = next

	rect, ok := a.view.RectForRow(a.cursor)
	if !ok {
		return
	}
	if rect.Top < 0 {
		a.view.Position().JumpTo(a.view.Position().Offset() + rect.Top)
	} else if rect.Bottom > a.view.Viewport().Height {
		a.view.Position().JumpTo(a.view.Position().Offset() + rect.Bottom - a.view.Viewport().Height)
	}
}

func (a *app) render() {
	width, height := a.screen.Size()
	base := styleFromColors(a.themed.Text, a.themed.Background)
	a.screen.Fill(' ', base)

	for _, path := range a.view.VisiblePaths() {
		cell, ok := a.view.CellAt(path)
		if !ok {
			continue
		}
		rect, ok := a.view.RectForRow(path)
		if !ok {
			continue
		}
		y := int(rect.Top)
		if y < 0 || y >= height-1 {
			continue
		}

		style := styleFromColors(a.themed.Text, a.themed.CellBackground)
		if cell.Highlighted() {
			style = styleFromColors(a.themed.Text, a.themed.Highlight)
		}
		if path == a.cursor {
			style = style.Reverse(true)
		}

		detail := cell.Detail
		nameWidth := width - runewidth.StringWidth(detail) - 3
		if nameWidth < 0 {
			nameWidth = 0
		}
		line := runewidth.FillRight(runewidth.Truncate(cell.Text, nameWidth, "…"), nameWidth)
		line = line + "   " + detail
		drawLine(a.screen, 0, y, width, line, style)
	}

	statusStyle := styleFromColors(a.themed.Detail, a.themed.Background).Reverse(true)
	drawLine(a.screen, 0, height-1, width, runewidth.Truncate(" "+a.status, width, "…"), statusStyle)
	a.screen.Show()
}

func drawLine(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= x+width {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < x+width; col++ {
		screen.SetContent(col, y, ' ', nil, style)
	}
}

func styleFromColors(fg, bg graphics.Color) tcell.Style {
	fr, fg8, fb := fg.RGB8()
	br, bg8, bb := bg.RGB8()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fr), int32(fg8), int32(fb))).
		Background(tcell.NewRGBColor(int32(br), int32(bg8), int32(bb)))
}
