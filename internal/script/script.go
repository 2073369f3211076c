// Package script exposes the bridge's layer API to Lua.
//
// The host application drives most of its interface from Lua overlay
// scripts, and those scripts are where windows get claimed and keys get
// suppressed. The runtime registers an "imtui" module with the operations
// a script may call between layer enter and exit:
//
//	imtui.claim_window()             -- tag the current window to this layer
//	imtui.suppress_key("CURSOR_UP")  -- keep a key from reaching the host
//	imtui.feed_upwards()             -- let unconsumed keys propagate
//	imtui.suppress_next_keyboard()   -- veto the next keyboard passthrough
//	imtui.suppress_next_mouse()      -- veto the next mouse passthrough
//	imtui.nearest_color(r, g, b)     -- palette index closest to an RGB value
//
// The state opens only the base, table, string, and math libraries; overlay
// scripts have no business doing I/O.
package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/Crystalwarrior/imtui/internal/host"
	"github.com/Crystalwarrior/imtui/internal/overlay"
	"github.com/Crystalwarrior/imtui/internal/palette"
)

// ErrClosed is returned when running scripts on a closed runtime.
var ErrClosed = errors.New("script runtime is closed")

// Runtime hosts Lua overlay scripts over one reconciler.
//
// Like the rest of the bridge, a Runtime is single-threaded: scripts run
// on the host's render/input thread between layer enter and exit.
type Runtime struct {
	L      *lua.LState
	rec    *overlay.Reconciler
	closed bool
}

// New creates a runtime bound to the given reconciler.
func New(rec *overlay.Reconciler) *Runtime {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage}, // require()
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(open.fn))
		L.Push(lua.LString(open.name))
		L.Call(1, 0)
	}

	r := &Runtime{L: L, rec: rec}
	L.PreloadModule("imtui", r.loader)
	return r
}

// loader builds the imtui module table.
func (r *Runtime) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"claim_window":           r.luaClaimWindow,
		"suppress_key":           r.luaSuppressKey,
		"feed_upwards":           r.luaFeedUpwards,
		"suppress_next_keyboard": r.luaSuppressNextKeyboard,
		"suppress_next_mouse":    r.luaSuppressNextMouse,
		"nearest_color":          r.luaNearestColor,
	})
	L.Push(mod)
	return 1
}

func (r *Runtime) luaClaimWindow(L *lua.LState) int {
	r.rec.ClaimWindow()
	return 0
}

func (r *Runtime) luaSuppressKey(L *lua.LState) int {
	name := L.CheckString(1)
	key, err := host.ParseKey(name)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	r.rec.SuppressKey(key)
	return 0
}

func (r *Runtime) luaFeedUpwards(L *lua.LState) int {
	r.rec.RequestPassthrough()
	return 0
}

func (r *Runtime) luaSuppressNextKeyboard(L *lua.LState) int {
	r.rec.SuppressNextKeyboard()
	return 0
}

func (r *Runtime) luaSuppressNextMouse(L *lua.LState) int {
	r.rec.SuppressNextMouse()
	return 0
}

func (r *Runtime) luaNearestColor(L *lua.LState) int {
	red := L.CheckInt(1)
	green := L.CheckInt(2)
	blue := L.CheckInt(3)
	L.Push(lua.LNumber(palette.Nearest(clampByte(red), clampByte(green), clampByte(blue))))
	return 1
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RunFile executes a script file.
func (r *Runtime) RunFile(path string) error {
	if r.closed {
		return ErrClosed
	}
	if err := r.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// RunString executes Lua source directly.
func (r *Runtime) RunString(src string) error {
	if r.closed {
		return ErrClosed
	}
	if err := r.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// Close shuts the Lua state down.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
