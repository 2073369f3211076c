package render

import (
	"math"

	"github.com/rivo/uniseg"

	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
)

// FallbackGlyph substitutes for glyph payloads with no single-byte
// representation in the host encoding.
const FallbackGlyph = '?'

// Interpreter walks a frame's draw data and paints it onto the host
// display.
type Interpreter struct {
	scr      host.Screen
	cs       host.Charset
	fallback byte
}

// NewInterpreter creates an interpreter painting to scr, converting glyph
// text through cs.
func NewInterpreter(scr host.Screen, cs host.Charset) *Interpreter {
	return &Interpreter{scr: scr, cs: cs, fallback: FallbackGlyph}
}

// SetFallbackGlyph overrides the substitute for unmappable glyphs.
func (r *Interpreter) SetFallbackGlyph(b byte) {
	r.fallback = b
}

// Frame rasterizes one frame of draw data. Primitives outside the display
// or their command's clip rectangle are clipped silently; a zero-area
// framebuffer is a no-op. The only side effect is cell writes to the host
// display.
func (r *Interpreter) Frame(data *gui.DrawData) {
	if data == nil {
		return
	}

	fbWidth := int(data.DisplaySize.X * data.FramebufferScale.X)
	fbHeight := int(data.DisplaySize.Y * data.FramebufferScale.Y)
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	// Project clip rectangles into framebuffer space. Offset and scale are
	// identity without multi-viewport.
	clipOff := data.DisplayPos
	clipScale := data.FramebufferScale

	for _, list := range data.CmdLists {
		for _, cmd := range list.CmdBuffer {
			clip := gui.Vec4{
				X: (cmd.ClipRect.X - clipOff.X) * clipScale.X,
				Y: (cmd.ClipRect.Y - clipOff.Y) * clipScale.Y,
				Z: (cmd.ClipRect.Z - clipOff.X) * clipScale.X,
				W: (cmd.ClipRect.W - clipOff.Y) * clipScale.Y,
			}

			if clip.X >= float32(fbWidth) || clip.Y >= float32(fbHeight) || clip.Z < 0 || clip.W < 0 {
				continue
			}

			r.command(list, cmd, clip)
		}
	}
}

// command rasterizes one draw command's triangle range.
func (r *Interpreter) command(list *gui.DrawList, cmd gui.DrawCmd, clip gui.Vec4) {
	// Cell of the previous glyph, for the sub-cell overlap nudge.
	lastX := float32(-10000)
	lastY := float32(-10000)

	for i := 0; i+2 < cmd.ElemCount; i += 3 {
		v0 := list.VtxBuffer[list.IdxBuffer[cmd.IdxOffset+i]]
		v1 := list.VtxBuffer[list.IdxBuffer[cmd.IdxOffset+i+1]]
		v2 := list.VtxBuffer[list.IdxBuffer[cmd.IdxOffset+i+2]]

		if v0.UV == v1.UV && v0.UV == v2.UV {
			// Uniform texture coordinates: solid fill, flat-shaded from the
			// first vertex.
			fillTriangle(r.scr, v0.Pos, v1.Pos, v2.Pos, v0.Col, clip)
			continue
		}

		// Glyph primitive: the library emits the background quad first and
		// the foreground glyph quad immediately after, sharing its texture
		// region. Consume both triangles of the pair.
		if i+5 >= cmd.ElemCount {
			break
		}
		p0 := list.VtxBuffer[list.IdxBuffer[cmd.IdxOffset+i+3]].Pos
		p1 := list.VtxBuffer[list.IdxBuffer[cmd.IdxOffset+i+4]].Pos
		p2 := list.VtxBuffer[list.IdxBuffer[cmd.IdxOffset+i+5]].Pos
		i += 3

		x := (v0.Pos.X + v1.Pos.X + v2.Pos.X + p0.X + p1.X + p2.X) / 6
		y := (v0.Pos.Y+v1.Pos.Y+v2.Pos.Y+p0.Y+p1.Y+p2.Y)/6 + 0.5

		// Adjacent glyphs positioned at sub-cell offsets can land on the
		// same cell; nudge one column right of the previous glyph instead
		// of double-painting.
		if absf(y-lastY) < 0.5 && absf(x-lastX) < 0.5 {
			x = lastX + 1
			y = lastY
		}

		lastX = x
		lastY = y

		xx := floor(x)
		yy := floor(y)
		if float32(xx) < clip.X || float32(xx) >= clip.Z || float32(yy) < clip.Y || float32(yy) >= clip.W {
			continue
		}

		cur := r.scr.ReadCell(xx, yy)
		fg, _, _ := gui.UnpackColor(v0.Col)

		// The glyph is text over whatever is already on screen; keep the
		// existing background.
		cell := host.Cell{Glyph: r.decode(v0.Glyph), Fg: fg, Bg: cur.Bg}
		r.scr.WriteCell(xx, yy, cell)
	}
}

// decode converts a glyph payload to one host-encoding byte, substituting
// the fallback glyph when the text does not map to exactly one unit.
func (r *Interpreter) decode(payload string) byte {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(payload, -1)
	if cluster == "" {
		return r.fallback
	}
	encoded := r.cs.Encode(cluster)
	if len(encoded) != 1 {
		return r.fallback
	}
	return encoded[0]
}

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
