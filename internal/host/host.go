package host

// Cell is a single character cell on the host display.
type Cell struct {
	// Glyph is the character in the host's native single-byte encoding.
	Glyph byte

	// Fg is the foreground palette index (0-15, or -1 for the host default).
	Fg int

	// Bg is the background palette index (0-15, or -1 for the host default).
	Bg int
}

// EmptyCell returns a blank cell: a space in default colors.
func EmptyCell() Cell {
	return Cell{Glyph: ' ', Fg: -1, Bg: -1}
}

// Screen is the host's character-cell display surface.
//
// Coordinates are zero-based with the origin at the top-left. Reads outside
// the display return an empty cell; writes outside the display are dropped.
type Screen interface {
	// Size returns the display dimensions in cells.
	Size() (width, height int)

	// ReadCell returns the cell at the given position.
	ReadCell(x, y int) Cell

	// WriteCell replaces the cell at the given position.
	WriteCell(x, y int, c Cell)

	// MousePos returns the mouse position in cell coordinates.
	MousePos() (x, y int)

	// MouseButtons reports which mouse buttons are currently held.
	MouseButtons() (left, right bool)
}

// Charset converts UTF-8 text into the host's native single-byte encoding.
type Charset interface {
	// Encode converts s. The result is variable length; a single byte means
	// the text maps to exactly one host glyph. A nil or multi-byte result
	// means the text has no single-glyph representation.
	Encode(s string) []byte
}

// MemoryScreen is an in-memory Screen implementation used by tests and by
// headless rendering. Mouse state is settable so input handling can be
// exercised without a terminal.
type MemoryScreen struct {
	width, height int
	cells         []Cell

	mouseX, mouseY int
	left, right    bool
}

// NewMemoryScreen creates a blank memory screen with the given dimensions.
func NewMemoryScreen(width, height int) *MemoryScreen {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &MemoryScreen{width: width, height: height, cells: cells}
}

// Size returns the screen dimensions.
func (s *MemoryScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *MemoryScreen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// ReadCell returns the cell at x,y, or an empty cell if out of bounds.
func (s *MemoryScreen) ReadCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return EmptyCell()
	}
	return s.cells[y*s.width+x]
}

// WriteCell sets the cell at x,y. Out-of-bounds writes are dropped.
func (s *MemoryScreen) WriteCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = c
}

// MousePos returns the current mouse position.
func (s *MemoryScreen) MousePos() (int, int) {
	return s.mouseX, s.mouseY
}

// MouseButtons reports the held mouse buttons.
func (s *MemoryScreen) MouseButtons() (bool, bool) {
	return s.left, s.right
}

// SetMouse updates the simulated mouse state.
func (s *MemoryScreen) SetMouse(x, y int, left, right bool) {
	s.mouseX, s.mouseY = x, y
	s.left, s.right = left, right
}
