package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/ui"
)

const (
	widgetGap   = 2 // Columns between widgets of a row
	widgetPad   = 1 // Columns of padding on each side of a clickable
	menuPadding = 2
)

// HandleEvent turns keyboard navigation and mouse clicks into the action of the activated widget
// awaiting suppresses key navigation so the next key can be bound by the remap listener
func (r *TerminalRenderer) HandleEvent(ev tcell.Event, awaiting bool) (ui.Action, bool) {
	if r.menu == nil {
		return ui.Action{}, false
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if awaiting {
			return ui.Action{}, false
		}
		return r.handleKey(ev)
	case *tcell.EventMouse:
		return r.handleMouse(ev)
	}
	return ui.Action{}, false
}

func (r *TerminalRenderer) handleKey(ev *tcell.EventKey) (ui.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyLeft, tcell.KeyBacktab:
		r.moveFocus(-1)
	case tcell.KeyDown, tcell.KeyRight, tcell.KeyTab:
		r.moveFocus(1)
	case tcell.KeyEnter:
		return r.activate(r.focus)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'h':
			r.moveFocus(-1)
		case 'j', 'l':
			r.moveFocus(1)
		case ' ':
			return r.activate(r.focus)
		}
	}
	return ui.Action{}, false
}

func (r *TerminalRenderer) handleMouse(ev *tcell.EventMouse) (ui.Action, bool) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0
	r.buttons = buttons
	if !pressed {
		return ui.Action{}, false
	}

	x, y := ev.Position()
	for _, h := range r.hits {
		if y == h.y && x >= h.x0 && x < h.x1 {
			r.focus = h.index
			return r.activate(h.index)
		}
	}
	return ui.Action{}, false
}

// moveFocus steps through focusable widgets, wrapping at both ends
func (r *TerminalRenderer) moveFocus(delta int) {
	n := len(r.menu.Focusable())
	if n == 0 {
		return
	}
	r.focus = ((r.focus+delta)%n + n) % n
}

func (r *TerminalRenderer) activate(index int) (ui.Action, bool) {
	focusable := r.menu.Focusable()
	if index < 0 || index >= len(focusable) {
		return ui.Action{}, false
	}
	return focusable[index].Action, true
}

// drawMenu draws the menu centered on screen and records clickable spans
func (r *TerminalRenderer) drawMenu() {
	r.hits = r.hits[:0]
	if r.menu == nil {
		return
	}

	width := textWidth(r.menu.Title)
	for i := range r.menu.Rows {
		width = max(width, rowWidth(&r.menu.Rows[i]))
	}
	height := 2 + 2*len(r.menu.Rows)
	width += 2 * menuPadding

	left := (r.width - width) / 2
	top := max(0, (r.height-height)/2)

	boxStyle := baseStyle().Background(RgbMenuBox)
	for y := top - 1; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			r.set(x, y, ' ', boxStyle)
		}
	}

	r.drawCentered(top, r.menu.Title, boxStyle.Foreground(RgbMenuTitle).Bold(true))

	index := 0
	for i := range r.menu.Rows {
		row := &r.menu.Rows[i]
		y := top + 2 + 2*i
		x := (r.width - rowWidth(row)) / 2
		if row.Kind == ui.WidgetRow {
			for j := range row.Children {
				x = r.drawWidget(x, y, &row.Children[j], &index, boxStyle) + widgetGap
			}
			continue
		}
		r.drawWidget(x, y, row, &index, boxStyle)
	}
}

// drawWidget draws one leaf widget at x and returns the column after it
func (r *TerminalRenderer) drawWidget(x, y int, w *ui.Widget, index *int, box tcell.Style) int {
	if !w.Interactive() {
		return r.drawText(x, y, w.Text, box.Foreground(RgbMenuText))
	}

	style := box.Foreground(RgbMenuText)
	if w.Selected {
		style = style.Foreground(RgbMenuSelected).Bold(true)
	}
	if *index == r.focus {
		style = style.Background(RgbMenuFocus).Underline(true)
	}

	start := x
	x = r.drawText(x, y, " ", style)
	x = r.drawText(x, y, w.Text, style)
	x = r.drawText(x, y, " ", style)
	r.hits = append(r.hits, hitBox{x0: start, x1: x, y: y, index: *index})
	*index++
	return x
}

func widgetWidth(w *ui.Widget) int {
	if w.Interactive() {
		return textWidth(w.Text) + 2*widgetPad
	}
	return textWidth(w.Text)
}

func rowWidth(w *ui.Widget) int {
	if w.Kind != ui.WidgetRow {
		return widgetWidth(w)
	}
	total := 0
	for i := range w.Children {
		if i > 0 {
			total += widgetGap
		}
		total += widgetWidth(&w.Children[i])
	}
	return total
}
