package render

import (
	"testing"

	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
)

// asciiCharset maps single ASCII characters to themselves and rejects
// everything else, standing in for the host encoding.
type asciiCharset struct{}

func (asciiCharset) Encode(s string) []byte {
	if len(s) == 1 && s[0] < 0x80 {
		return []byte{s[0]}
	}
	return nil
}

func appendFill(list *gui.DrawList, p0, p1, p2 gui.Vec2, col uint32) {
	base := len(list.VtxBuffer)
	uv := gui.Vec2{X: 0, Y: 0}
	list.VtxBuffer = append(list.VtxBuffer,
		gui.DrawVert{Pos: p0, UV: uv, Col: col},
		gui.DrawVert{Pos: p1, UV: uv, Col: col},
		gui.DrawVert{Pos: p2, UV: uv, Col: col})
	list.IdxBuffer = append(list.IdxBuffer, base, base+1, base+2)
}

// appendGlyph emits the two-triangle pair the library produces for one
// character, a unit quad centered on (cx, cy-0.5) so the averaged position
// plus the half-row bias lands on (cx, cy).
func appendGlyph(list *gui.DrawList, cx, cy float32, glyph string, col uint32) {
	base := len(list.VtxBuffer)
	c0 := gui.Vec2{X: cx - 0.5, Y: cy - 1}
	c1 := gui.Vec2{X: cx + 0.5, Y: cy - 1}
	c2 := gui.Vec2{X: cx + 0.5, Y: cy}
	c3 := gui.Vec2{X: cx - 0.5, Y: cy}
	list.VtxBuffer = append(list.VtxBuffer,
		gui.DrawVert{Pos: c0, UV: gui.Vec2{X: 0, Y: 0}, Col: col, Glyph: glyph},
		gui.DrawVert{Pos: c1, UV: gui.Vec2{X: 1, Y: 0}, Col: col, Glyph: glyph},
		gui.DrawVert{Pos: c2, UV: gui.Vec2{X: 1, Y: 1}, Col: col, Glyph: glyph},
		gui.DrawVert{Pos: c3, UV: gui.Vec2{X: 0, Y: 1}, Col: col, Glyph: glyph})
	list.IdxBuffer = append(list.IdxBuffer,
		base, base+1, base+2,
		base, base+2, base+3)
}

func frame(list *gui.DrawList, w, h float32) *gui.DrawData {
	return frameClipped(list, w, h, gui.Vec4{X: 0, Y: 0, Z: w, W: h})
}

func frameClipped(list *gui.DrawList, w, h float32, clip gui.Vec4) *gui.DrawData {
	list.CmdBuffer = []gui.DrawCmd{{
		ClipRect:  clip,
		IdxOffset: 0,
		ElemCount: len(list.IdxBuffer),
	}}
	return &gui.DrawData{
		DisplaySize:      gui.Vec2{X: w, Y: h},
		FramebufferScale: gui.Vec2{X: 1, Y: 1},
		CmdLists:         []*gui.DrawList{list},
	}
}

func TestFrameFillPrimitive(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 2, Y: 1, Z: 0, W: 1})
	appendFill(list, gui.Vec2{X: 1, Y: 1}, gui.Vec2{X: 3, Y: 1}, gui.Vec2{X: 1, Y: 3}, col)

	r.Frame(frame(list, 10, 10))

	c := scr.ReadCell(1, 1)
	if c.Glyph != ' ' || c.Fg != 2 || c.Bg != 1 {
		t.Fatalf("fill cell = %+v, want space green on blue", c)
	}
	if got := scr.ReadCell(5, 5); got != host.EmptyCell() {
		t.Fatalf("cell outside the triangle = %+v, want empty", got)
	}
}

func TestFrameGlyphPrimitive(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	// Pre-existing background must survive the glyph write.
	scr.WriteCell(2, 1, host.Cell{Glyph: ' ', Fg: 0, Bg: 4})

	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 15, Y: 0, Z: 0, W: 1})
	appendGlyph(list, 2.5, 1.5, "A", col)

	r.Frame(frame(list, 10, 10))

	c := scr.ReadCell(2, 1)
	if c.Glyph != 'A' {
		t.Fatalf("glyph = %q, want 'A'", c.Glyph)
	}
	if c.Fg != 15 {
		t.Errorf("fg = %d, want 15", c.Fg)
	}
	if c.Bg != 4 {
		t.Errorf("bg = %d, want 4 (existing background kept)", c.Bg)
	}
}

func TestFrameGlyphFallback(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	scr.WriteCell(2, 1, host.Cell{Glyph: ' ', Fg: 0, Bg: 6})

	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 15, Y: 0, Z: 0, W: 1})
	appendGlyph(list, 2.5, 1.5, "é", col)

	r.Frame(frame(list, 10, 10))

	c := scr.ReadCell(2, 1)
	if c.Glyph != '?' {
		t.Fatalf("glyph = %q, want fallback '?'", c.Glyph)
	}
	if c.Bg != 6 {
		t.Errorf("bg = %d, want 6", c.Bg)
	}
}

func TestFrameGlyphFallbackOverride(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})
	r.SetFallbackGlyph('#')

	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 15, Y: 0, Z: 0, W: 1})
	appendGlyph(list, 2.5, 1.5, "é", col)

	r.Frame(frame(list, 10, 10))

	if c := scr.ReadCell(2, 1); c.Glyph != '#' {
		t.Fatalf("glyph = %q, want '#'", c.Glyph)
	}
}

func TestFrameGlyphOverlapNudge(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	// Two glyphs less than half a cell apart would floor to the same cell;
	// the second is pushed one column right instead.
	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 15, Y: 0, Z: 0, W: 1})
	appendGlyph(list, 2.5, 1.5, "a", col)
	appendGlyph(list, 2.7, 1.6, "b", col)

	r.Frame(frame(list, 10, 10))

	if c := scr.ReadCell(2, 1); c.Glyph != 'a' {
		t.Fatalf("cell (2,1) = %q, want 'a'", c.Glyph)
	}
	if c := scr.ReadCell(3, 1); c.Glyph != 'b' {
		t.Fatalf("cell (3,1) = %q, want 'b'", c.Glyph)
	}
}

func TestFrameGlyphClipped(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 15, Y: 0, Z: 0, W: 1})
	appendGlyph(list, 2.5, 1.5, "A", col)

	// Clip rectangle excludes the glyph's cell entirely.
	r.Frame(frameClipped(list, 10, 10, gui.Vec4{X: 5, Y: 0, Z: 10, W: 10}))

	if c := scr.ReadCell(2, 1); c != host.EmptyCell() {
		t.Fatalf("cell (2,1) = %+v, want untouched", c)
	}
}

func TestFrameTrailingGlyphTriangle(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	// A lone glyph-classified triangle with no partner cannot form a pair;
	// the walk stops without painting.
	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 15, Y: 0, Z: 0, W: 1})
	base := len(list.VtxBuffer)
	list.VtxBuffer = append(list.VtxBuffer,
		gui.DrawVert{Pos: gui.Vec2{X: 2, Y: 1}, UV: gui.Vec2{X: 0, Y: 0}, Col: col, Glyph: "A"},
		gui.DrawVert{Pos: gui.Vec2{X: 3, Y: 1}, UV: gui.Vec2{X: 1, Y: 0}, Col: col, Glyph: "A"},
		gui.DrawVert{Pos: gui.Vec2{X: 3, Y: 2}, UV: gui.Vec2{X: 1, Y: 1}, Col: col, Glyph: "A"})
	list.IdxBuffer = append(list.IdxBuffer, base, base+1, base+2)

	r.Frame(frame(list, 10, 10))

	w, h := scr.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := scr.ReadCell(x, y); c != host.EmptyCell() {
				t.Fatalf("cell (%d,%d) = %+v, want untouched", x, y, c)
			}
		}
	}
}

func TestFrameZeroAreaFramebuffer(t *testing.T) {
	scr := host.NewMemoryScreen(10, 10)
	r := NewInterpreter(scr, asciiCharset{})

	list := &gui.DrawList{}
	col := gui.PackColor(gui.Vec4{X: 2, Y: 1, Z: 0, W: 1})
	appendFill(list, gui.Vec2{X: 1, Y: 1}, gui.Vec2{X: 3, Y: 1}, gui.Vec2{X: 1, Y: 3}, col)

	data := frame(list, 10, 10)
	data.DisplaySize = gui.Vec2{X: 0, Y: 10}
	r.Frame(data)

	if c := scr.ReadCell(1, 1); c != host.EmptyCell() {
		t.Fatalf("cell (1,1) = %+v, want untouched", c)
	}

	r.Frame(nil)
}
