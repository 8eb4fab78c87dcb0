package genpdf

import "strings"

// ColorKind tags which variant a Color holds.
type ColorKind int

const (
	ColorRGB ColorKind = iota
	ColorCMYK
	ColorGrey
)

// Color is a tagged union of the three color spaces the PDF writer
// understands. Zero value is opaque black RGB.
type Color struct {
	Kind          ColorKind
	R, G, B       uint8
	C, M, Y, K    float64
	Grey          float64
}

func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

func CMYK(c, m, y, k float64) Color {
	return Color{Kind: ColorCMYK, C: c, M: m, Y: y, K: k}
}

func Greyscale(v float64) Color {
	return Color{Kind: ColorGrey, Grey: v}
}

// RGB8 returns the color reduced to 8-bit RGB, approximating CMYK/grey
// conversions for writers that only accept RGB (as gofpdf's text/fill
// color setters do).
func (c Color) RGB8() (r, g, b uint8) {
	switch c.Kind {
	case ColorRGB:
		return c.R, c.G, c.B
	case ColorCMYK:
		r = uint8(255 * (1 - c.C) * (1 - c.K))
		g = uint8(255 * (1 - c.M) * (1 - c.K))
		b = uint8(255 * (1 - c.Y) * (1 - c.K))
		return
	case ColorGrey:
		v := uint8(255 * c.Grey)
		return v, v, v
	}
	return 0, 0, 0
}

// namedColors is the case-insensitive color table exposed to callers.
var namedColors = map[string]Color{
	"RED":     RGB(255, 0, 0),
	"BLUE":    RGB(0, 0, 255),
	"GREY":    RGB(128, 128, 128),
	"GRAY":    RGB(128, 128, 128),
	"CYAN":    RGB(0, 255, 255),
	"PURPLE":  RGB(128, 0, 128),
	"GREEN":   RGB(0, 128, 0),
	"YELLOW":  RGB(255, 255, 0),
	"MAGENTA": RGB(255, 0, 255),
	"PINK":    RGB(255, 192, 203),
	"WHITE":   RGB(255, 255, 255),
	"BLACK":   RGB(0, 0, 0),
	"ORANGE":  RGB(255, 165, 0),
}

// NamedColor looks up a color by case-insensitive name.
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

// LineStyle describes a drawn line or border edge.
type LineStyle struct {
	Thickness Mm
	Color     Color
}

func DefaultLineStyle() LineStyle {
	return LineStyle{Thickness: 0.2, Color: RGB(0, 0, 0)}
}

func (l LineStyle) WithThickness(t Mm) LineStyle {
	l.Thickness = t
	return l
}

func (l LineStyle) WithColor(c Color) LineStyle {
	l.Color = c
	return l
}
