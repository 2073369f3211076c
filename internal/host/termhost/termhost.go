// Package termhost adapts a tcell terminal screen to the host capability
// surface.
//
// The terminal plays the part of the host display: a fixed palette of 16
// colors, one glyph per cell, and discrete key events. Text is carried in
// code page 437, the host's native single-byte encoding; cell writes map
// 437 bytes back to runes for the terminal.
package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/Crystalwarrior/imtui/internal/host"
)

// Screen implements host.Screen over a tcell terminal.
type Screen struct {
	screen tcell.Screen

	mouseX, mouseY int
	left, right    bool
}

// New initializes a terminal screen with mouse support enabled.
func New() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	scr.EnableMouse()
	return &Screen{screen: scr}, nil
}

// NewSimulation returns a Screen over tcell's in-process simulation
// backend, for tests.
func NewSimulation(width, height int) (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		panic(err)
	}
	sim.SetSize(width, height)
	return &Screen{screen: sim}, sim
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Show flushes pending cell writes to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// ReadCell returns the cell at x,y. Out-of-bounds reads return an empty
// cell.
func (s *Screen) ReadCell(x, y int) host.Cell {
	w, h := s.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return host.EmptyCell()
	}

	primary, _, style, _ := s.screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()

	glyph, ok := charmap.CodePage437.EncodeRune(primary)
	if !ok {
		glyph = '?'
	}
	return host.Cell{Glyph: glyph, Fg: paletteIndex(fg), Bg: paletteIndex(bg)}
}

// WriteCell sets the cell at x,y. Out-of-bounds writes are dropped by
// tcell.
func (s *Screen) WriteCell(x, y int, c host.Cell) {
	style := tcell.StyleDefault.
		Foreground(paletteColor(c.Fg)).
		Background(paletteColor(c.Bg))
	s.screen.SetContent(x, y, charmap.CodePage437.DecodeByte(c.Glyph), nil, style)
}

// MousePos returns the last observed mouse position.
func (s *Screen) MousePos() (int, int) {
	return s.mouseX, s.mouseY
}

// MouseButtons reports the held mouse buttons as of the last event.
func (s *Screen) MouseButtons() (bool, bool) {
	return s.left, s.right
}

// PollEvent blocks for the next terminal event and returns the key events
// it maps to. Mouse and resize events update internal state and return an
// empty set. ok is false when the terminal is shutting down.
func (s *Screen) PollEvent() (keys host.KeySet, ok bool) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return nil, false
	}
	return s.TranslateEvent(ev), true
}

// TranslateEvent converts one tcell event into host key events, updating
// mouse state as a side effect.
func (s *Screen) TranslateEvent(ev tcell.Event) host.KeySet {
	keys := make(host.KeySet)

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			keys.Add(host.KeyCursorLeft)
		case tcell.KeyRight:
			keys.Add(host.KeyCursorRight)
		case tcell.KeyUp:
			keys.Add(host.KeyCursorUp)
		case tcell.KeyDown:
			keys.Add(host.KeyCursorDown)
		case tcell.KeyEnter:
			keys.Add(host.KeySelect)
		case tcell.KeyEscape:
			keys.Add(host.KeyLeave)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			keys.Add(host.KeyBackspace)
		case tcell.KeyRune:
			r := ev.Rune()
			if b, ok := charmap.CodePage437.EncodeRune(r); ok {
				keys.Add(host.KeyForChar(b))
			}
		}

	case *tcell.EventMouse:
		s.mouseX, s.mouseY = ev.Position()
		mask := ev.Buttons()
		s.left = mask&tcell.Button1 != 0
		s.right = mask&tcell.Button2 != 0

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return keys
}

// paletteIndex maps a tcell color to a host palette index.
func paletteIndex(c tcell.Color) int {
	if c == tcell.ColorDefault || !c.Valid() {
		return -1
	}
	if c.IsRGB() {
		return -1
	}
	idx := int(c - tcell.ColorValid)
	if idx < 0 || idx > 255 {
		return -1
	}
	return idx
}

// paletteColor maps a host palette index to a tcell color.
func paletteColor(idx int) tcell.Color {
	if idx < 0 || idx > 255 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}
