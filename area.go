package genpdf

// RenderResult is returned by every Element.Render call: how much space
// was actually consumed, whether the element has more content pending
// for a later page, and an optional horizontal offset hint a parent
// container may use (Line uses this to report a vertical rule's x shift).
type RenderResult struct {
	Size    Size
	HasMore bool
	XOffset *Mm
}

// ColumnWidthsKind tags a ColumnWidths variant.
type ColumnWidthsKind int

const (
	ColumnWeights ColumnWidthsKind = iota
	ColumnPixels
)

// ColumnWidths configures how TableLayout splits its area horizontally.
type ColumnWidths struct {
	Kind    ColumnWidthsKind
	Weights []float64
	Pixels  []Mm
}

func Weights(w ...float64) ColumnWidths  { return ColumnWidths{Kind: ColumnWeights, Weights: w} }
func PixelWidths(px ...Mm) ColumnWidths   { return ColumnWidths{Kind: ColumnPixels, Pixels: px} }

func (c ColumnWidths) Count() int {
	if c.Kind == ColumnWeights {
		return len(c.Weights)
	}
	return len(c.Pixels)
}

// Area is a rectangular, draw-capable view onto a page layer's origin
// and size. Cheap to copy; multiple Areas may reference the same Layer,
// with drawing serialised by render call order.
type Area struct {
	layer     *Layer
	origin    Position
	size      Size
	marginTop Mm
	cache     *Cache
}

func NewArea(layer *Layer, origin Position, size Size, cache *Cache) Area {
	return Area{layer: layer, origin: origin, size: size, cache: cache}
}

func (a Area) Size() Size       { return a.size }
func (a Area) Origin() Position { return a.origin }
func (a Area) MarginTop() Mm    { return a.marginTop }

// AddMargins returns a new Area inset by m on every side.
func (a Area) AddMargins(m Margins) Area {
	out := a
	out.origin.X += m.Left
	out.origin.Y += m.Top
	out.size.Width -= m.Horizontal()
	out.size.Height -= m.Vertical()
	out.marginTop = m.Top
	return out
}

// AddOffset shrinks the area by moving its origin down/right by off,
// reducing size accordingly. Used to advance past already-rendered
// content within the same area.
func (a Area) AddOffset(off Position) Area {
	out := a
	out.origin.X += off.X
	out.origin.Y += off.Y
	out.size.Width -= off.X
	out.size.Height -= off.Y
	return out
}

func (a Area) AddLeft(x Mm) Area {
	out := a
	out.origin.X += x
	out.size.Width -= x
	return out
}

func (a Area) SetWidth(w Mm) Area  { out := a; out.size.Width = w; return out }
func (a Area) SetHeight(h Mm) Area { out := a; out.size.Height = h; return out }

func (a Area) StartX() Mm { return a.origin.X }
func (a Area) StartY() Mm { return a.origin.Y }

// SplitHorizontally divides the area into len(widths) sub-areas sharing
// the same layer, per the weight or absolute-pixel rule.
func (a Area) SplitHorizontally(widths ColumnWidths) []Area {
	n := widths.Count()
	out := make([]Area, n)
	var x Mm
	switch widths.Kind {
	case ColumnWeights:
		var total float64
		for _, w := range widths.Weights {
			total += w
		}
		for i, w := range widths.Weights {
			colW := a.size.Width.Mul(w / total)
			out[i] = Area{
				layer:  a.layer,
				origin: Position{X: a.origin.X + x, Y: a.origin.Y},
				size:   Size{Width: colW, Height: a.size.Height},
				cache:  a.cache,
			}
			x += colW
		}
	case ColumnPixels:
		for i, px := range widths.Pixels {
			out[i] = Area{
				layer:  a.layer,
				origin: Position{X: a.origin.X + x, Y: a.origin.Y},
				size:   Size{Width: px, Height: a.size.Height},
				cache:  a.cache,
			}
			x += px
		}
	}
	return out
}

// WithBox returns a new Area over the same layer/cache with an explicit
// origin and size, bypassing the margin/offset helpers.
func (a Area) WithBox(origin Position, size Size) Area {
	out := a
	out.origin = origin
	out.size = size
	return out
}

func (a Area) DrawLine(x1, y1, x2, y2 Mm, style LineStyle) {
	a.layer.drawLine(a.origin.X+x1, a.origin.Y+y1, a.origin.X+x2, a.origin.Y+y2, style)
}

func (a Area) DrawFilledRect(x, y, w, h Mm, fill Color) {
	a.layer.drawFilledRect(a.origin.X+x, a.origin.Y+y, w, h, fill)
}

// TextSection is an open run of text-printing calls against a single
// line's worth of vertical space within an Area. It is created once per
// wrapped line via Area.TextSection.
type TextSection struct {
	area       Area
	cursorY    Mm
	lineHeight Mm
	isFirst    bool
}

// TextSection opens a text section at the area's origin for a line with
// the given height and ascent. It returns ok=false — the sole overflow
// signal for text — when the line's height exceeds the area's remaining
// height.
func (a Area) TextSection(lineHeight, ascent Mm) (*TextSection, bool) {
	if lineHeight > a.size.Height {
		return nil, false
	}
	return &TextSection{area: a, cursorY: ascent, lineHeight: lineHeight, isFirst: true}, true
}

// PrintStr prints one token at the given x offset (relative to the
// section's area) on the section's current line, in the token's style.
func (t *TextSection) PrintStr(xOffset Mm, text string, style Style, cache *Cache) error {
	x := t.area.origin.X + xOffset
	y := t.area.origin.Y + t.cursorY
	return t.area.layer.printStr(x, y, text, style, cache)
}

// UnderlineAt draws an underline segment under a token just printed,
// positioned near the bottom of the line box rather than the baseline.
func (t *TextSection) UnderlineAt(xOffset, width Mm, style Style) {
	const underlineThickness Mm = 0.2
	y := t.lineHeight - underlineThickness/2
	t.area.DrawLine(xOffset, y, xOffset+width, y, LineStyle{Thickness: underlineThickness, Color: style.Color()})
}
