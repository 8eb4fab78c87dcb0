package genpdf

// LinearLayout stacks child elements vertically, resuming from the
// first child that reported HasMore on the previous render.
type LinearLayout struct {
	children  []Element
	renderIdx int
	margins   *Margins
	spacing   Mm
}

func NewLinearLayout() *LinearLayout {
	return &LinearLayout{}
}

func (l *LinearLayout) Push(e Element) *LinearLayout {
	l.children = append(l.children, e)
	return l
}

func (l *LinearLayout) WithMargins(m Margins) *LinearLayout {
	l.margins = &m
	return l
}

func (l *LinearLayout) WithItemSpacing(s Mm) *LinearLayout {
	l.spacing = s
	return l
}

func (l *LinearLayout) area(a Area) Area {
	if l.margins != nil {
		return a.AddMargins(*l.margins)
	}
	return a
}

func (l *LinearLayout) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	body := l.area(a)
	var total Mm
	for i := l.renderIdx; i < len(l.children); i++ {
		h, err := l.children[i].Measure(ctx, style, body)
		if err != nil {
			return 0, err
		}
		if i > l.renderIdx {
			total += l.spacing
		}
		total += h
	}
	if l.margins != nil {
		total += l.margins.Top + l.margins.Bottom
	}
	return total, nil
}

func (l *LinearLayout) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	body := l.area(a)
	var consumed Mm
	hasMore := false

	for l.renderIdx < len(l.children) {
		child := l.children[l.renderIdx]
		result, err := child.Render(ctx, body, style)
		if err != nil {
			return RenderResult{}, err
		}

		body = body.AddOffset(Position{Y: result.Size.Height})
		consumed += result.Size.Height

		if result.HasMore {
			hasMore = true
			break
		}
		l.renderIdx++
		if l.renderIdx < len(l.children) {
			body = body.AddOffset(Position{Y: l.spacing})
			consumed += l.spacing
		}
	}

	size := Size{Width: a.Size().Width, Height: consumed}
	if l.margins != nil {
		size.Height += l.margins.Top + l.margins.Bottom
	}
	return RenderResult{Size: size, HasMore: hasMore}, nil
}
