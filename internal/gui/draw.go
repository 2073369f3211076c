package gui

// Vec2 is a 2D position in the library's screen space (cell units).
type Vec2 struct {
	X, Y float32
}

// Vec4 is the library's 4-component value, used both for clip rectangles
// (x1,y1,x2,y2) and for colors.
//
// Colors in this bridge are not RGBA: X holds the foreground palette index,
// Y the background palette index, Z the boldness flag, and W is always 1
// (full opacity).
type Vec4 struct {
	X, Y, Z, W float32
}

// DrawVert is one vertex of a draw primitive.
type DrawVert struct {
	// Pos is the vertex position in screen space.
	Pos Vec2

	// UV is the texture coordinate. A triangle whose three vertices carry
	// pairwise-equal UVs is a solid fill; anything else is half of a glyph
	// pair.
	UV Vec2

	// Col is the packed cell color (see PackColor).
	Col uint32

	// Glyph is the UTF-8 text payload attached to glyph vertices by the
	// library's font buffer. Empty for fill vertices.
	Glyph string
}

// DrawCmd is one draw command: a range of the index buffer plus the clip
// rectangle it was recorded under.
type DrawCmd struct {
	// ClipRect bounds the command in screen space (x1,y1,x2,y2).
	ClipRect Vec4

	// IdxOffset is the first index of the command in the list's IdxBuffer.
	IdxOffset int

	// ElemCount is the number of indices (a multiple of 3).
	ElemCount int
}

// DrawList is one command list with its vertex and index buffers.
type DrawList struct {
	VtxBuffer []DrawVert
	IdxBuffer []int
	CmdBuffer []DrawCmd
}

// DrawData is everything the library emits for one frame, ordered back to
// front.
type DrawData struct {
	// DisplayPos is the top-left of the viewport (0,0 without multi-viewport).
	DisplayPos Vec2

	// DisplaySize is the viewport size in cells.
	DisplaySize Vec2

	// FramebufferScale is (1,1) on a character-cell display.
	FramebufferScale Vec2

	CmdLists []*DrawList
}

// PackColor packs a cell color composed by the palette into the 32-bit
// vertex color: foreground index in the low byte, background index in the
// second byte, boldness flag in the third. Index -1 (the host default)
// packs to 0xff.
func PackColor(c Vec4) uint32 {
	fg := uint32(uint8(int8(c.X)))
	bg := uint32(uint8(int8(c.Y)))
	var bold uint32
	if c.Z != 0 {
		bold = 1
	}
	return fg | bg<<8 | bold<<16
}

// UnpackColor reverses PackColor.
func UnpackColor(col uint32) (fg, bg int, bold bool) {
	fg = int(int8(uint8(col)))
	bg = int(int8(uint8(col >> 8)))
	bold = col&0x10000 != 0
	return fg, bg, bold
}
