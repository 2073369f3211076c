package gui

import "github.com/Crystalwarrior/imtui/internal/host"

// Window is one of the library's windows. The bridge reads windows, it
// never creates or destroys them.
type Window interface {
	// Name returns the window's name, unique within its context.
	Name() string

	// Children returns the window's direct child windows.
	Children() []Window
}

// Input is the per-frame input snapshot consumed at frame begin.
type Input struct {
	// Keys is the set of key events down this frame, after the translator's
	// directional disambiguation.
	Keys host.KeySet

	// Text is the printable text entered this frame, in key order.
	Text []rune

	// DisplayWidth and DisplayHeight are the host display dimensions.
	DisplayWidth, DisplayHeight int

	// MouseX and MouseY are the mouse position in cell coordinates.
	MouseX, MouseY int

	// MouseLeft and MouseRight report held mouse buttons.
	MouseLeft, MouseRight bool

	// DeltaTime is the nominal frame interval in seconds.
	DeltaTime float32
}

// WidgetRole identifies a semantic widget element for palette assignment.
type WidgetRole int

// Widget roles with host palette assignments.
const (
	RoleText WidgetRole = iota
	RoleTextDisabled
	RoleTextSelectedBg
	RoleTitleBg
	RoleTitleBgActive
	RoleTitleBgCollapsed
	RoleMenuBarBg
	RoleCheckMark
	RoleSliderGrab
	RoleSliderGrabActive
	RoleButton
	RoleButtonHovered
	RoleButtonActive
	RoleHeader
	RoleHeaderHovered
	RoleHeaderActive
	RoleSeparator
	RoleSeparatorHovered
	RoleSeparatorActive
	RoleResizeGrip
	RoleResizeGripHovered
	RoleResizeGripActive
	RoleTableBorderStrong
	RoleTableBorderLight
	RoleNavHighlight
	RoleNavWindowingHighlight
	RoleNavWindowingDimBg
	RoleCount
)

// FunctionKey identifies one of the library's logical key functions that
// must be bound to a host key event.
type FunctionKey int

// Logical key functions the bridge remaps.
const (
	FnBackspace FunctionKey = iota
	FnEscape
	// FnActivate toggles/activates the focused widget. The library binds it
	// to space by default; the host expects its confirm key instead.
	FnActivate
	FnLeft
	FnRight
	FnUp
	FnDown
	FnCount
)

// StyleSheet is the one-time style and key-map configuration applied to a
// fresh context: zero-padding cell layout, a closed palette assignment per
// widget role, and the host bindings for the library's logical keys.
type StyleSheet struct {
	// Roles maps widget roles to composed palette colors. Roles absent from
	// the map render as black-on-black.
	Roles map[WidgetRole]Vec4

	// Keys binds the library's logical key functions to host key events.
	Keys map[FunctionKey]host.Key
}

// Context is the capability surface of one GUI library context.
//
// The display-order list is back to front: the last window paints on top.
// The focus-order list is least- to most-recently focused.
type Context interface {
	// BeginFrame starts a new frame from the given input snapshot.
	BeginFrame(in Input)

	// EndFrame finalizes the frame without rendering.
	EndFrame()

	// ResetInput forces every tracked key and mouse button to the released
	// state, outside the frame cycle.
	ResetInput()

	// Render produces draw data for a subset of windows, in the given
	// order. When full is set, windows outside the subset are rendered too.
	Render(subset []Window, full bool)

	// DrawData returns the draw data produced by the last Render call.
	DrawData() *DrawData

	// CurrentWindow returns the window currently being built by widget
	// code, or nil outside a window.
	CurrentWindow() Window

	// DisplayOrder returns the global window list in paint order.
	DisplayOrder() []Window

	// SetDisplayOrder replaces the global window list. The new list must be
	// a permutation of the old one.
	SetDisplayOrder(wins []Window)

	// FocusOrder returns the global focus-order list.
	FocusOrder() []Window

	// SetFocusOrder replaces the global focus-order list.
	SetFocusOrder(wins []Window)

	// SortSubset runs the library's child-aware topological sort over the
	// given windows and returns the sorted list.
	SortSubset(wins []Window) []Window

	// ApplyStyle applies the one-time style and key-map configuration.
	ApplyStyle(sheet StyleSheet)

	// Close destroys the context. The context must not be used afterwards.
	Close()
}

// current tracks the library's single active context. The library supports
// one active context per process; nesting beyond one level of save/restore
// is not supported.
var current Context

// Current returns the active context, or nil.
func Current() Context {
	return current
}

// SetCurrent makes ctx the active context. Passing nil clears it.
func SetCurrent(ctx Context) {
	current = ctx
}
