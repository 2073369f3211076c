package session

import (
	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
	"github.com/Crystalwarrior/imtui/internal/palette"
)

type roleSpec struct {
	fg, bg string
	bold   bool
}

// roleColors assigns a palette color to each widget role. Roles not listed
// fall back to black-on-black, which reads as "no drawing" on the host.
var roleColors = map[gui.WidgetRole]roleSpec{
	gui.RoleText:             {fg: "WHITE", bg: "WHITE"},
	gui.RoleTextDisabled:     {fg: "GREY", bg: "GREY"},
	gui.RoleTitleBg:          {fg: "BLACK", bg: "BLUE"},
	gui.RoleTitleBgActive:    {fg: "BLACK", bg: "LIGHTBLUE"},
	gui.RoleTitleBgCollapsed: {fg: "BLACK", bg: "BLUE"},
	gui.RoleMenuBarBg:        {fg: "BLACK", bg: "BLUE"},
	gui.RoleTextSelectedBg:   {fg: "BLACK", bg: "RED"},

	gui.RoleCheckMark:        {fg: "WHITE", bg: "BLACK"},
	gui.RoleSliderGrab:       {fg: "WHITE", bg: "BLACK"},
	gui.RoleSliderGrabActive: {fg: "WHITE", bg: "BLACK"},
	gui.RoleButton:           {fg: "WHITE", bg: "BLACK"},
	gui.RoleButtonHovered:    {fg: "BLACK", bg: "RED"},
	gui.RoleButtonActive:     {fg: "BLACK", bg: "GREEN"},
	gui.RoleHeader:           {fg: "BLACK", bg: "BLUE"},
	gui.RoleHeaderHovered:    {fg: "BLACK", bg: "BLUE"},
	gui.RoleHeaderActive:     {fg: "BLACK", bg: "BLUE"},

	gui.RoleSeparator:         {fg: "WHITE", bg: "WHITE"},
	gui.RoleSeparatorHovered:  {fg: "WHITE", bg: "WHITE"},
	gui.RoleSeparatorActive:   {fg: "WHITE", bg: "WHITE"},
	gui.RoleResizeGrip:        {fg: "WHITE", bg: "BLACK"},
	gui.RoleResizeGripHovered: {fg: "WHITE", bg: "BLACK"},
	gui.RoleResizeGripActive:  {fg: "WHITE", bg: "BLACK"},

	gui.RoleTableBorderStrong: {fg: "WHITE", bg: "WHITE"},
	gui.RoleTableBorderLight:  {fg: "WHITE", bg: "WHITE"},
}

// defaultStyleSheet builds the one-time style configuration for a fresh
// context: the widget-role palette and the host key bindings.
//
// The library activates the focused widget with space and confirms text
// entry with enter; the host expects a single confirm key for both, so the
// activation function is bound to the host's confirm key.
func defaultStyleSheet() (gui.StyleSheet, error) {
	roles := make(map[gui.WidgetRole]gui.Vec4, int(gui.RoleCount))

	blackOnBlack, err := palette.Compose("BLACK", "BLACK", false)
	if err != nil {
		return gui.StyleSheet{}, err
	}
	for role := gui.WidgetRole(0); role < gui.RoleCount; role++ {
		roles[role] = blackOnBlack
	}

	for role, spec := range roleColors {
		col, err := palette.Compose(spec.fg, spec.bg, spec.bold)
		if err != nil {
			return gui.StyleSheet{}, err
		}
		roles[role] = col
	}

	// Navigation highlights have no sensible cell rendering; leave them
	// fully transparent rather than black-on-black so they never paint.
	roles[gui.RoleNavHighlight] = gui.Vec4{}
	roles[gui.RoleNavWindowingHighlight] = gui.Vec4{}
	roles[gui.RoleNavWindowingDimBg] = gui.Vec4{}

	keys := map[gui.FunctionKey]host.Key{
		gui.FnBackspace: host.KeyBackspace,
		gui.FnEscape:    host.KeyLeave,
		gui.FnActivate:  host.KeySelect,
		gui.FnLeft:      host.KeyCursorLeft,
		gui.FnRight:     host.KeyCursorRight,
		gui.FnUp:        host.KeyCursorUp,
		gui.FnDown:      host.KeyCursorDown,
	}

	return gui.StyleSheet{Roles: roles, Keys: keys}, nil
}
