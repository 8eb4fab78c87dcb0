package genpdf

import "math"

// Mm is a length in millimetres, the engine's native unit throughout the
// layout and pagination pipeline.
type Mm float64

// Pt converts a millimetre length to PDF points (1/72 inch).
func (m Mm) Pt() float64 {
	return float64(m) * 72.0 / 25.4
}

// PtToMm converts a length in PDF points to millimetres, the inverse of
// Mm.Pt(). Font metrics are expressed relative to a point-sized em and
// must pass through this before they reach an Area drawing in mm.
func PtToMm(pt float64) Mm {
	return Mm(pt * 25.4 / 72.0)
}

func (m Mm) Add(other Mm) Mm { return m + other }
func (m Mm) Sub(other Mm) Mm { return m - other }
func (m Mm) Mul(factor float64) Mm { return Mm(float64(m) * factor) }
func (m Mm) Div(factor float64) Mm { return Mm(float64(m) / factor) }

func (m Mm) Max(other Mm) Mm {
	if m > other {
		return m
	}
	return other
}

func (m Mm) Min(other Mm) Mm {
	if m < other {
		return m
	}
	return other
}

// Position is a point in millimetres relative to some origin.
type Position struct {
	X Mm
	Y Mm
}

// Size is a width/height pair in millimetres.
type Size struct {
	Width  Mm
	Height Mm
}

func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Margins are per-side insets in millimetres. Zero value is no margin.
type Margins struct {
	Top    Mm
	Right  Mm
	Bottom Mm
	Left   Mm
}

// MarginsAll returns uniform margins on every side.
func MarginsAll(m Mm) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// MarginsVH returns vertical/horizontal margins (top&bottom, left&right).
func MarginsVH(v, h Mm) Margins {
	return Margins{Top: v, Right: h, Bottom: v, Left: h}
}

func (m Margins) Horizontal() Mm { return m.Left + m.Right }
func (m Margins) Vertical() Mm   { return m.Top + m.Bottom }

// Scale is a non-uniform scale factor applied to an image.
type Scale struct {
	X float64
	Y float64
}

func ScaleUniform(f float64) Scale { return Scale{X: f, Y: f} }

// Rotation is a clockwise rotation in degrees, normalised to [0, 360).
type Rotation float64

func (r Rotation) Normalized() Rotation {
	v := math.Mod(float64(r), 360)
	if v < 0 {
		v += 360
	}
	return Rotation(v)
}

// PageSize is a predefined or custom page size in millimetres (portrait
// orientation; swap Width/Height for landscape).
type PageSize Size

var (
	A4     = PageSize{Width: 210, Height: 297}
	Letter = PageSize{Width: 216, Height: 279}
	Legal  = PageSize{Width: 216, Height: 356}
	A3     = PageSize{Width: 297, Height: 420}
	A5     = PageSize{Width: 148, Height: 210}
)

func (p PageSize) Landscape() PageSize {
	return PageSize{Width: p.Height, Height: p.Width}
}
