package genpdf

// Break reserves vertical space equal to a number of line heights
// (fractional allowed), splitting the reservation across a page break if
// it does not fit in the remaining area.
type Break struct {
	lines float64
}

// NewBreak reserves n line-heights of vertical space.
func NewBreak(n float64) *Break {
	return &Break{lines: n}
}

func (b *Break) lineHeight(ctx *Context, style Style) Mm {
	fam, ok := ctx.Cache.Family(style.Font())
	var m Metrics
	if ok {
		m = fam.Resolve(style.IsBold(), style.IsItalic())
	} else {
		m = newBuiltinMetrics()
	}
	return LineHeight(m, float64(style.FontSize()), style.LineSpacing())
}

// Measure never mutates b.lines: the number of remaining lines must stay
// observable-stable across repeated measurement.
func (b *Break) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	return b.lineHeight(ctx, style).Mul(b.lines), nil
}

func (b *Break) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	lh := b.lineHeight(ctx, style)
	wanted := lh.Mul(b.lines)
	if wanted <= a.Size().Height {
		b.lines = 0
		return RenderResult{Size: Size{Width: a.Size().Width, Height: wanted}}, nil
	}
	consumedLines := float64(a.Size().Height) / float64(lh)
	b.lines -= consumedLines
	return RenderResult{Size: Size{Width: a.Size().Width, Height: a.Size().Height}, HasMore: true}, nil
}
