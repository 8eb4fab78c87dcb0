package genpdf

// Text is a single unwrapped, unstyled-beyond-inheritance run of text
// rendered as one line; it never wraps and never spans pages. Intended
// for short labels where Paragraph's wrapping machinery is unnecessary.
type Text struct {
	content string
	style   Style
}

func NewText(content string) *Text {
	return &Text{content: content}
}

func (t *Text) WithStyle(s Style) *Text {
	t.style = s
	return t
}

func (t *Text) Measure(ctx *Context, style Style, area Area) (Mm, error) {
	effective := style.And(t.style)
	fam, ok := ctx.Cache.Family(effective.Font())
	var m Metrics
	if ok {
		m = fam.Resolve(effective.IsBold(), effective.IsItalic())
	} else {
		m = newBuiltinMetrics()
	}
	return LineHeight(m, float64(effective.FontSize()), effective.LineSpacing()), nil
}

func (t *Text) Render(ctx *Context, area Area, style Style) (RenderResult, error) {
	effective := style.And(t.style)
	fam, ok := ctx.Cache.Family(effective.Font())
	var m Metrics
	if ok {
		m = fam.Resolve(effective.IsBold(), effective.IsItalic())
	} else {
		m = newBuiltinMetrics()
	}
	lh := LineHeight(m, float64(effective.FontSize()), effective.LineSpacing())
	ascent := Mm(float64(m.Ascent()) / 1000.0 * float64(effective.FontSize()))

	section, ok := area.TextSection(lh, ascent)
	if !ok {
		return RenderResult{HasMore: true}, nil
	}
	if err := section.PrintStr(0, t.content, effective, ctx.Cache); err != nil {
		return RenderResult{}, err
	}
	return RenderResult{Size: Size{Width: area.Size().Width, Height: lh}}, nil
}
