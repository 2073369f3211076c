// Package palette maps symbolic color names and small numeric triples to
// the GUI library's color representation.
//
// The host display uses one fixed palette of sixteen named colors. A
// composed color is a gui.Vec4 carrying the foreground index, background
// index, and boldness flag, always at full opacity.
package palette

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Crystalwarrior/imtui/internal/gui"
)

// Palette indices for the host's named colors.
const (
	// Reset is the host's "no color" sentinel.
	Reset = -1

	Black        = 0
	Blue         = 1
	Green        = 2
	Cyan         = 3
	Red          = 4
	Magenta      = 5
	Brown        = 6
	Grey         = 7
	DarkGrey     = 8
	LightBlue    = 9
	LightGreen   = 10
	LightCyan    = 11
	LightRed     = 12
	LightMagenta = 13
	Yellow       = 14
	White        = 15

	// Max is one past the last palette index.
	Max = 16
)

// ErrUnknownColor is returned when a symbolic name is not in the palette.
var ErrUnknownColor = errors.New("unknown color name")

var names = map[string]int{
	"RESET":        Reset,
	"BLACK":        Black,
	"BLUE":         Blue,
	"GREEN":        Green,
	"CYAN":         Cyan,
	"RED":          Red,
	"MAGENTA":      Magenta,
	"BROWN":        Brown,
	"GREY":         Grey,
	"DARKGREY":     DarkGrey,
	"LIGHTBLUE":    LightBlue,
	"LIGHTGREEN":   LightGreen,
	"LIGHTCYAN":    LightCyan,
	"LIGHTRED":     LightRed,
	"LIGHTMAGENTA": LightMagenta,
	"YELLOW":       Yellow,
	"WHITE":        White,
	"MAX":          Max,
}

// Resolve looks up the palette index for a symbolic color name.
func Resolve(name string) (int, error) {
	idx, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return idx, nil
}

// FromTriple composes a color from a numeric triple: foreground index,
// background index, boldness. The slice is padded with zeros or truncated
// to exactly three components first. Opacity is always full.
func FromTriple(triple []float64) gui.Vec4 {
	var vals [3]float64
	copy(vals[:], triple)
	return gui.Vec4{
		X: float32(vals[0]),
		Y: float32(vals[1]),
		Z: float32(vals[2]),
		W: 1,
	}
}

// Compose resolves two color names and a boldness flag into a composed
// color. It fails only on an unknown name.
func Compose(fg, bg string, bold bool) (gui.Vec4, error) {
	fgIdx, err := Resolve(fg)
	if err != nil {
		return gui.Vec4{}, err
	}
	bgIdx, err := Resolve(bg)
	if err != nil {
		return gui.Vec4{}, err
	}
	var b float64
	if bold {
		b = 1
	}
	return FromTriple([]float64{float64(fgIdx), float64(bgIdx), b}), nil
}

// rgb holds the reference RGB value for each palette entry (the standard
// VGA text-mode palette the host ships with).
var rgb = [Max]colorful.Color{
	Black:        {R: 0, G: 0, B: 0},
	Blue:         {R: 0, G: 0, B: 0.66},
	Green:        {R: 0, G: 0.66, B: 0},
	Cyan:         {R: 0, G: 0.66, B: 0.66},
	Red:          {R: 0.66, G: 0, B: 0},
	Magenta:      {R: 0.66, G: 0, B: 0.66},
	Brown:        {R: 0.66, G: 0.33, B: 0},
	Grey:         {R: 0.66, G: 0.66, B: 0.66},
	DarkGrey:     {R: 0.33, G: 0.33, B: 0.33},
	LightBlue:    {R: 0.33, G: 0.33, B: 1},
	LightGreen:   {R: 0.33, G: 1, B: 0.33},
	LightCyan:    {R: 0.33, G: 1, B: 1},
	LightRed:     {R: 1, G: 0.33, B: 0.33},
	LightMagenta: {R: 1, G: 0.33, B: 1},
	Yellow:       {R: 1, G: 1, B: 0.33},
	White:        {R: 1, G: 1, B: 1},
}

// Nearest returns the palette index whose reference color is perceptually
// closest to the given RGB value (components in 0-255). Scripts configure
// colors as RGB; the host only speaks palette indices.
func Nearest(r, g, b uint8) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := Black
	bestDist := target.DistanceLab(rgb[Black])
	for i := Black + 1; i < Max; i++ {
		if d := target.DistanceLab(rgb[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
