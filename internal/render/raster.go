// Package render converts the GUI library's per-frame draw data into host
// display cells.
//
// Two paths exist. Glyph primitives (paired triangles sharing texture
// coordinates) become single-cell character writes. Everything else is
// flat-shaded triangle fill via a classic min/max scanline algorithm.
package render

import (
	"math"

	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
)

// scanLine walks the line (x1,y1)-(x2,y2) with a Bresenham step and widens
// the per-row [min,max] interval for every row it touches. Rows are stored
// pairwise in xrange: xrange[2*y] is the row minimum, xrange[2*y+1] the
// maximum. Rows outside [0,ymax) are ignored.
func scanLine(x1, y1, x2, y2, ymax int, xrange []int) {
	sx := x2 - x1
	sy := y2 - y1

	dx1 := sign(sx)
	dy1 := sign(sy)

	m := abs(sx)
	n := abs(sy)
	dx2 := dx1
	dy2 := 0

	if m < n {
		m, n = n, m
		dx2 = 0
		dy2 = dy1
	}

	x, y := x1, y1
	cnt := m + 1
	k := n / 2

	for ; cnt > 0; cnt-- {
		if y >= 0 && y < ymax {
			if x < xrange[2*y] {
				xrange[2*y] = x
			}
			if x > xrange[2*y+1] {
				xrange[2*y+1] = x
			}
		}

		k += n
		if k < m {
			x += dx2
			y += dy2
		} else {
			k -= m
			x += dx1
			y += dy1
		}
	}
}

// FillTriangle paints every cell inside the triangle p0,p1,p2 with a space
// glyph in the given packed color. Cells outside the display are clipped
// individually. Vertex order does not matter.
func FillTriangle(scr host.Screen, p0, p1, p2 gui.Vec2, col uint32) {
	w, h := scr.Size()
	clip := gui.Vec4{X: 0, Y: 0, Z: float32(w), W: float32(h)}
	fillTriangle(scr, p0, p1, p2, col, clip)
}

// fillTriangle is FillTriangle restricted to a clip rectangle (x1,y1,x2,y2,
// half-open). Each cell must pass both the triangle membership test and the
// clip bounds; clipping is per cell, not per row.
func fillTriangle(scr host.Screen, p0, p1, p2 gui.Vec2, col uint32, clip gui.Vec4) {
	width, height := scr.Size()

	ymin := int(math.Floor(math.Min(math.Min(float64(p0.Y), float64(p1.Y)), float64(p2.Y))))
	ymax := int(math.Floor(math.Max(math.Max(float64(p0.Y), float64(p1.Y)), float64(p2.Y))))

	ydelta := ymax - ymin + 1
	if ydelta <= 0 {
		return
	}

	xrange := make([]int, 2*ydelta)
	for y := 0; y < ydelta; y++ {
		xrange[2*y] = math.MaxInt
		xrange[2*y+1] = math.MinInt
	}

	x0, y0 := floor(p0.X), floor(p0.Y)
	x1, y1 := floor(p1.X), floor(p1.Y)
	x2, y2 := floor(p2.X), floor(p2.Y)

	scanLine(x0, y0-ymin, x1, y1-ymin, ydelta, xrange)
	scanLine(x1, y1-ymin, x2, y2-ymin, ydelta, xrange)
	scanLine(x2, y2-ymin, x0, y0-ymin, ydelta, xrange)

	fg, bg, _ := gui.UnpackColor(col)
	cell := host.Cell{Glyph: ' ', Fg: fg, Bg: bg}

	for y := 0; y < ydelta; y++ {
		lo, hi := xrange[2*y], xrange[2*y+1]
		if hi < lo {
			continue
		}
		row := y + ymin
		if row < 0 || row >= height {
			continue
		}
		if float32(row) < clip.Y || float32(row) >= clip.W {
			continue
		}
		for x := lo; x <= hi; x++ {
			if x < 0 || x >= width {
				continue
			}
			if float32(x) < clip.X || float32(x) >= clip.Z {
				continue
			}
			scr.WriteCell(x, row, cell)
		}
	}
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
