package ui

// WidgetKind discriminates Widget
type WidgetKind uint8

const (
	WidgetLabel WidgetKind = iota
	WidgetButton
	WidgetSelectable
	WidgetRow
)

// Widget is a declarative menu element; Row groups children horizontally
type Widget struct {
	Kind     WidgetKind
	Text     string
	Action   Action
	Selected bool
	Children []Widget
}

// Interactive reports whether the widget owns an action
func (w *Widget) Interactive() bool {
	return w.Kind == WidgetButton || w.Kind == WidgetSelectable
}

func Label(text string) Widget {
	return Widget{Kind: WidgetLabel, Text: text}
}

func Button(text string, action Action) Widget {
	return Widget{Kind: WidgetButton, Text: text, Action: action}
}

// Selectable is a button that renders highlighted when selected
func Selectable(text string, selected bool, action Action) Widget {
	return Widget{Kind: WidgetSelectable, Text: text, Action: action, Selected: selected}
}

func Horizontal(children ...Widget) Widget {
	return Widget{Kind: WidgetRow, Children: children}
}

// Menu is an ordered list of rows, identified so a presenter can keep focus across rebuilds
type Menu struct {
	ID    string
	Title string
	Rows  []Widget
}

func NewMenu(id, title string, rows ...Widget) *Menu {
	return &Menu{ID: id, Title: title, Rows: rows}
}

// Focusable returns the interactive widgets in row-major order
func (m *Menu) Focusable() []*Widget {
	var out []*Widget
	for i := range m.Rows {
		out = appendFocusable(out, &m.Rows[i])
	}
	return out
}

func appendFocusable(out []*Widget, w *Widget) []*Widget {
	if w.Interactive() {
		return append(out, w)
	}
	for i := range w.Children {
		out = appendFocusable(out, &w.Children[i])
	}
	return out
}

// Presenter draws what the core hands it; it never writes simulation state
type Presenter interface {
	// ShowMenu replaces the visible menu, nil hides it
	ShowMenu(menu *Menu)
	// ShowScore replaces the scoreboard text, empty hides it
	ShowScore(text string)
}
