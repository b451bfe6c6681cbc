package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/ui"
	"github.com/lixenwraith/vi-pong/vmath"
)

// statusKeys are the metrics shown on the debug status line
var statusKeys = []string{
	status.KeyMode,
	status.KeyTicks,
	status.KeyFrames,
	status.KeyDroppedSteps,
	status.KeyBodies,
	status.KeyCollisions,
	status.KeyBallSpeed,
	status.KeyMuted,
}

// TerminalRenderer draws the field, the scoreboard and the current menu to a tcell screen
// It implements ui.Presenter; the core hands it menus and score text, it never writes simulation state
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Debug draws sensor zones and the metrics status line
	Debug bool

	menu    *ui.Menu
	focus   int
	hits    []hitBox
	buttons tcell.ButtonMask

	score string
}

// hitBox is the screen span of a focusable widget, index into Menu.Focusable
type hitBox struct {
	x0, x1, y int
	index     int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, debug bool) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h, Debug: debug}
}

// ShowMenu implements ui.Presenter
// Focus is kept when the rebuilt menu has the same ID
func (r *TerminalRenderer) ShowMenu(menu *ui.Menu) {
	if menu == nil || r.menu == nil || menu.ID != r.menu.ID {
		r.focus = 0
	}
	r.menu = menu
	r.clampFocus()
}

// ShowScore implements ui.Presenter
func (r *TerminalRenderer) ShowScore(text string) {
	r.score = text
}

// Menu returns the visible menu, nil when hidden
func (r *TerminalRenderer) Menu() *ui.Menu {
	return r.menu
}

// Score returns the visible scoreboard text
func (r *TerminalRenderer) Score() string {
	return r.score
}

// Focus returns the index of the focused widget in Menu().Focusable()
func (r *TerminalRenderer) Focus() int {
	return r.focus
}

// Resize records new terminal dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

func (r *TerminalRenderer) clampFocus() {
	if r.menu == nil {
		r.focus = 0
		return
	}
	n := len(r.menu.Focusable())
	r.focus = max(0, min(r.focus, n-1))
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(ctx *engine.Context) {
	r.screen.Clear()
	r.fill(baseStyle())

	if ctx.Session.Mode() == session.ModePlaying {
		v := r.view(ctx)
		r.drawField(ctx, v)
		r.drawScore(v)
	}
	r.drawMenu()
	if r.Debug {
		r.drawStatusBar(ctx)
	}
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// fieldView maps world points to cells for one frame
// The board keeps the size it was built for; after a resize it is centered on the new screen
type fieldView struct {
	size   vmath.Vec2
	ox, oy int
}

func (r *TerminalRenderer) view(ctx *engine.Context) fieldView {
	size := ctx.Field
	if size.X <= 0 || size.Y <= 0 {
		size = ctx.Viewport
	}
	cols := int(math.Round(size.X / parameter.CellWidth))
	rows := int(math.Round(size.Y / parameter.CellHeight))
	return fieldView{size: size, ox: (r.width - cols) / 2, oy: (r.height - rows) / 2}
}

// project maps a world point to a terminal cell; the world origin is the board center, y up
func (v fieldView) project(p vmath.Vec2) (int, int) {
	x := (p.X + v.size.X/2) / parameter.CellWidth
	y := (v.size.Y/2 - p.Y) / parameter.CellHeight
	return int(math.Floor(x)) + v.ox, int(math.Floor(y)) + v.oy
}

// drawField draws every body of the physics world
func (r *TerminalRenderer) drawField(ctx *engine.Context, v fieldView) {
	ctx.Physics.ForEach(func(b *physics.Body) {
		switch {
		case b.Sensor:
			if r.Debug {
				r.drawRect(v, b, parameter.SensorChar, baseStyle().Foreground(RgbSensor))
			}
		case b.Shape.Kind == physics.ShapeCircle:
			x, y := v.project(b.Pos)
			r.set(x, y, parameter.BallChar, baseStyle().Foreground(RgbBall))
		case b.Kind == physics.BodyKinematic:
			r.drawRect(v, b, parameter.PaddleChar, baseStyle().Foreground(RgbPaddle))
		default:
			r.drawRect(v, b, parameter.WallChar, baseStyle().Foreground(RgbWall))
		}
	})
}

// drawRect fills the cells covered by a rectangle body, at least one cell wide and tall
func (r *TerminalRenderer) drawRect(v fieldView, b *physics.Body, ch rune, style tcell.Style) {
	lo, hi := b.Min(), b.Max()
	x0, y0 := v.project(vmath.V2(lo.X, hi.Y))
	x1, y1 := v.project(vmath.V2(hi.X, lo.Y))
	x1 = max(x0, x1-1)
	y1 = max(y0, y1-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.set(x, y, ch, style)
		}
	}
}

func (r *TerminalRenderer) drawScore(v fieldView) {
	if r.score == "" {
		return
	}
	_, y := v.project(vmath.V2(0, v.size.Y/2-parameter.ScoreboardOffset))
	r.drawCentered(y, r.score, baseStyle().Foreground(RgbScore).Bold(true))
}

func (r *TerminalRenderer) drawStatusBar(ctx *engine.Context) {
	line := ctx.Status.Line(statusKeys...)
	r.drawText(0, r.height-1, line, baseStyle().Foreground(RgbStatusBar))
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText writes text from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.set(x, y, ch, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	r.drawText((r.width-textWidth(text))/2, y, text, style)
}

func textWidth(s string) int {
	return len([]rune(s))
}
