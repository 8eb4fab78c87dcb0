package genpdf

// PaddedElement insets its child by padding on every side, with the
// bottom inset deferred until after the child renders so a continuation
// on a later page is not charged the bottom padding twice.
type PaddedElement struct {
	child   Element
	padding Margins
}

func NewPaddedElement(child Element, padding Margins) *PaddedElement {
	return &PaddedElement{child: child, padding: padding}
}

func (p *PaddedElement) innerArea(a Area) Area {
	top := Margins{Top: p.padding.Top, Left: p.padding.Left, Right: p.padding.Right}
	return a.AddMargins(top)
}

func (p *PaddedElement) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	h, err := p.child.Measure(ctx, style, p.innerArea(a))
	if err != nil {
		return 0, err
	}
	return h + p.padding.Top + p.padding.Bottom, nil
}

func (p *PaddedElement) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	result, err := p.child.Render(ctx, p.innerArea(a), style)
	if err != nil {
		return RenderResult{}, err
	}
	result.Size.Height += p.padding.Top
	if !result.HasMore {
		result.Size.Height += p.padding.Bottom
	}
	result.Size.Width += p.padding.Left + p.padding.Right
	return result, nil
}
