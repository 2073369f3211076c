// Package main is a rendering demo for the imtui bridge.
//
// It plays a synthetic draw-data frame (solid fills plus glyph runs, the
// same primitives the GUI library emits) through the draw-command
// interpreter onto a live terminal. Useful for eyeballing the rasterizer
// without a host application attached.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Crystalwarrior/imtui/internal/config"
	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
	"github.com/Crystalwarrior/imtui/internal/host/termhost"
	"github.com/Crystalwarrior/imtui/internal/palette"
	"github.com/Crystalwarrior/imtui/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to imtui.toml")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		return 1
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	scr, err := termhost.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer scr.Fini()

	interp := render.NewInterpreter(scr, termhost.NewCharset())
	if cfg.Render.FallbackGlyph != "" {
		interp.SetFallbackGlyph(cfg.Render.FallbackGlyph[0])
	}

	for {
		w, h := scr.Size()
		interp.Frame(demoFrame(w, h))
		scr.Show()

		keys, ok := scr.PollEvent()
		if !ok {
			return 0
		}
		if keys.Has(host.KeyLeave) || keys.Has(host.KeyForChar('q')) {
			return 0
		}
	}
}

// demoFrame builds one frame of draw data: a window-like panel, a title
// bar, text, and a free triangle, all in the library's emit convention.
func demoFrame(w, h int) *gui.DrawData {
	list := &gui.DrawList{}

	panel := mustPack("BLACK", "BLUE")
	title := mustPack("WHITE", "LIGHTBLUE")
	text := mustPack("WHITE", "BLACK")
	accent := mustPack("RED", "RED")

	x0 := float32(4)
	y0 := float32(2)
	x1 := x0 + 40
	y1 := y0 + 12

	fillRect(list, x0, y0, x1, y1, panel)
	fillRect(list, x0, y0, x1, y0+1, title)
	glyphRun(list, x0+1, y0, " imtui demo ", title)
	glyphRun(list, x0+2, y0+2, "Triangles and glyphs on a cell grid.", text)
	glyphRun(list, x0+2, y0+4, "Press q or Escape to quit.", text)

	// A free-standing triangle through the scanline fill path.
	fillTri(list,
		gui.Vec2{X: x0 + 6, Y: y1 + 1},
		gui.Vec2{X: x0 + 20, Y: y1 + 1},
		gui.Vec2{X: x0 + 13, Y: y1 + 6},
		accent)

	list.CmdBuffer = append(list.CmdBuffer, gui.DrawCmd{
		ClipRect:  gui.Vec4{X: 0, Y: 0, Z: float32(w), W: float32(h)},
		IdxOffset: 0,
		ElemCount: len(list.IdxBuffer),
	})

	return &gui.DrawData{
		DisplaySize:      gui.Vec2{X: float32(w), Y: float32(h)},
		FramebufferScale: gui.Vec2{X: 1, Y: 1},
		CmdLists:         []*gui.DrawList{list},
	}
}

func mustPack(fg, bg string) uint32 {
	col, err := palette.Compose(fg, bg, false)
	if err != nil {
		panic(err)
	}
	return gui.PackColor(col)
}

// fillTri appends one solid triangle: uniform texture coordinates select
// the fill path.
func fillTri(list *gui.DrawList, p0, p1, p2 gui.Vec2, col uint32) {
	base := len(list.VtxBuffer)
	for _, p := range []gui.Vec2{p0, p1, p2} {
		list.VtxBuffer = append(list.VtxBuffer, gui.DrawVert{Pos: p, Col: col})
	}
	list.IdxBuffer = append(list.IdxBuffer, base, base+1, base+2)
}

// fillRect appends a rectangle as two solid triangles.
func fillRect(list *gui.DrawList, x0, y0, x1, y1 float32, col uint32) {
	fillTri(list, gui.Vec2{X: x0, Y: y0}, gui.Vec2{X: x1, Y: y0}, gui.Vec2{X: x1, Y: y1}, col)
	fillTri(list, gui.Vec2{X: x0, Y: y0}, gui.Vec2{X: x1, Y: y1}, gui.Vec2{X: x0, Y: y1}, col)
}

// glyph appends one character quad in the library's convention: two
// triangles with distinct texture coordinates and the text payload on the
// vertices.
func glyph(list *gui.DrawList, x, y float32, s string, col uint32) {
	base := len(list.VtxBuffer)
	// The quad straddles the cell center; the interpreter's +0.5 row bias
	// floors the 6-vertex average back onto row y.
	corners := []gui.Vec2{
		{X: x, Y: y - 0.5},
		{X: x + 1, Y: y - 0.5},
		{X: x + 1, Y: y + 0.5},
		{X: x, Y: y + 0.5},
	}
	uvs := []gui.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i := range corners {
		list.VtxBuffer = append(list.VtxBuffer, gui.DrawVert{
			Pos:   corners[i],
			UV:    uvs[i],
			Col:   col,
			Glyph: s,
		})
	}
	list.IdxBuffer = append(list.IdxBuffer,
		base, base+1, base+2,
		base, base+2, base+3)
}

func glyphRun(list *gui.DrawList, x, y float32, s string, col uint32) {
	for i, r := range s {
		glyph(list, x+float32(i), y, string(r), col)
	}
}
