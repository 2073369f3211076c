// Package guitest provides a scriptable fake GUI context for tests.
//
// The fake keeps real display-order and focus-order lists, resolves child
// windows, and records frame and render calls, so session and ordering
// logic can be exercised without the real library.
package guitest

import "github.com/Crystalwarrior/imtui/internal/gui"

// Window is a fake GUI window.
type Window struct {
	WinName string
	Kids    []gui.Window
	Parent  *Window
}

// Name returns the window name.
func (w *Window) Name() string { return w.WinName }

// Children returns the direct child windows.
func (w *Window) Children() []gui.Window { return w.Kids }

// NewWindow creates a fake window.
func NewWindow(name string, children ...*Window) *Window {
	w := &Window{WinName: name}
	for _, c := range children {
		c.Parent = w
		w.Kids = append(w.Kids, c)
	}
	return w
}

// RenderCall records one Render invocation.
type RenderCall struct {
	Subset []gui.Window
	Full   bool
}

// Context is a fake gui.Context.
type Context struct {
	Display []gui.Window
	Focus   []gui.Window

	// Current is returned by CurrentWindow.
	Current gui.Window

	// Data is returned by DrawData after a Render call.
	Data *gui.DrawData

	// Recorded activity.
	BeginInputs []gui.Input
	EndFrames   int
	InputResets int
	Renders     []RenderCall
	Sheet       gui.StyleSheet
	Styled      bool
	Closed      bool
}

// New creates a fake context over the given windows. The initial display
// and focus orders both follow the argument order.
func New(wins ...*Window) *Context {
	ctx := &Context{Data: &gui.DrawData{FramebufferScale: gui.Vec2{X: 1, Y: 1}}}
	for _, w := range wins {
		ctx.Display = append(ctx.Display, w)
		ctx.Focus = append(ctx.Focus, w)
	}
	return ctx
}

// BeginFrame records the input snapshot.
func (c *Context) BeginFrame(in gui.Input) {
	c.BeginInputs = append(c.BeginInputs, in)
}

// EndFrame records frame completion.
func (c *Context) EndFrame() {
	c.EndFrames++
}

// ResetInput records an input reset.
func (c *Context) ResetInput() {
	c.InputResets++
}

// Render records the call; DrawData afterwards returns Data.
func (c *Context) Render(subset []gui.Window, full bool) {
	c.Renders = append(c.Renders, RenderCall{Subset: append([]gui.Window(nil), subset...), Full: full})
}

// DrawData returns the configured draw data.
func (c *Context) DrawData() *gui.DrawData { return c.Data }

// CurrentWindow returns the configured current window.
func (c *Context) CurrentWindow() gui.Window { return c.Current }

// DisplayOrder returns a copy of the display-order list.
func (c *Context) DisplayOrder() []gui.Window {
	return append([]gui.Window(nil), c.Display...)
}

// SetDisplayOrder replaces the display-order list.
func (c *Context) SetDisplayOrder(wins []gui.Window) {
	c.Display = append([]gui.Window(nil), wins...)
}

// FocusOrder returns a copy of the focus-order list.
func (c *Context) FocusOrder() []gui.Window {
	return append([]gui.Window(nil), c.Focus...)
}

// SetFocusOrder replaces the focus-order list.
func (c *Context) SetFocusOrder(wins []gui.Window) {
	c.Focus = append([]gui.Window(nil), wins...)
}

// SortSubset applies a child-aware sort: each window is followed by its
// descendants, in input order otherwise. This mirrors the shape of the
// library's native sort closely enough for ordering tests.
func (c *Context) SortSubset(wins []gui.Window) []gui.Window {
	in := make(map[gui.Window]bool, len(wins))
	for _, w := range wins {
		in[w] = true
	}
	isChild := make(map[gui.Window]bool)
	for _, w := range wins {
		for _, k := range w.Children() {
			if in[k] {
				isChild[k] = true
			}
		}
	}
	var out []gui.Window
	var emit func(w gui.Window)
	emit = func(w gui.Window) {
		out = append(out, w)
		for _, k := range w.Children() {
			if in[k] {
				emit(k)
			}
		}
	}
	for _, w := range wins {
		if !isChild[w] {
			emit(w)
		}
	}
	return out
}

// ApplyStyle records the sheet.
func (c *Context) ApplyStyle(sheet gui.StyleSheet) {
	c.Sheet = sheet
	c.Styled = true
}

// Close marks the context destroyed.
func (c *Context) Close() {
	c.Closed = true
}
