package genpdf

// Paragraph wraps one or more styled text runs onto lines that fit the
// available width, printing as many lines as fit per page and resuming
// from the first unrendered word on the next.
type Paragraph struct {
	runs         []StyledString
	queue        []Token
	started      bool
	styleApplied bool
	margins      *Margins
	alignment    Alignment
	style        Style
}

func NewParagraph(text string) *Paragraph {
	return &Paragraph{runs: []StyledString{{Text: text}}}
}

// Styled appends an additional styled run to the paragraph.
func (p *Paragraph) Styled(text string, style Style) *Paragraph {
	p.runs = append(p.runs, StyledString{Text: text, Style: style})
	return p
}

func (p *Paragraph) WithStyle(s Style) *Paragraph {
	p.style = s
	return p
}

func (p *Paragraph) Aligned(a Alignment) *Paragraph {
	p.alignment = a
	return p
}

func (p *Paragraph) WithMargins(m Margins) *Paragraph {
	p.margins = &m
	return p
}

func (p *Paragraph) applyStyle(parent Style) {
	if p.styleApplied {
		return
	}
	merged := parent.And(p.style)
	for i := range p.runs {
		p.runs[i].Style = merged.And(p.runs[i].Style)
	}
	p.styleApplied = true
}

func (p *Paragraph) area(a Area) Area {
	if p.margins != nil {
		return a.AddMargins(*p.margins)
	}
	return a
}

func (p *Paragraph) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	runs := make([]StyledString, len(p.runs))
	copy(runs, p.runs)
	if !p.styleApplied {
		merged := style.And(p.style)
		for i := range runs {
			runs[i].Style = merged.And(runs[i].Style)
		}
	}

	var toks []Token
	if p.started {
		toks = append(toks, p.queue...)
	} else {
		toks = Tokenize(runs, ctx.Page)
	}

	measure := measureFuncFor(ctx)
	width := p.area(a).Size().Width
	var total Mm
	for len(toks) > 0 {
		line, overflow := NextLine(toks, measure, ctx.Cache, width)
		if overflow {
			return 0, NewError(PageSizeExceeded, "word wider than the available area")
		}
		if line.Consumed == 0 {
			break
		}
		total += line.LineHeight
		toks = toks[line.Consumed:]
	}
	if p.margins != nil {
		total += p.margins.Top + p.margins.Bottom
	}
	return total, nil
}

func (p *Paragraph) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	p.applyStyle(style)

	if !p.started {
		p.queue = Tokenize(p.runs, ctx.Page)
		p.started = true
	}

	body := p.area(a)
	measure := measureFuncFor(ctx)
	width := body.Size().Width

	var consumedHeight Mm
	hasMore := false
	for len(p.queue) > 0 {
		line, overflow := NextLine(p.queue, measure, ctx.Cache, width)
		if overflow {
			return RenderResult{}, NewError(PageSizeExceeded, "word wider than the available area")
		}
		if line.Consumed == 0 {
			break
		}

		section, ok := body.TextSection(line.LineHeight, line.Ascent)
		if !ok {
			hasMore = true
			break
		}

		x := XOffset(p.alignment, width, line.Width)
		for i, tok := range line.Tokens {
			if i > 0 {
				x += measureFuncFor(ctx)(" ", tok.Style)
			}
			if err := section.PrintStr(x, tok.Text, tok.Style, ctx.Cache); err != nil {
				return RenderResult{}, err
			}
			tokWidth := measure(tok.Text, tok.Style)
			if tok.Style.IsUnderline() {
				section.UnderlineAt(x, tokWidth, tok.Style)
			}
			x += tokWidth
		}

		body = body.AddOffset(Position{Y: line.LineHeight})
		consumedHeight += line.LineHeight
		p.queue = p.queue[line.Consumed:]
	}

	if len(p.queue) > 0 {
		hasMore = true
	}

	size := Size{Width: a.Size().Width, Height: consumedHeight}
	if p.margins != nil {
		size.Height += p.margins.Top + p.margins.Bottom
	}
	return RenderResult{Size: size, HasMore: hasMore}, nil
}
