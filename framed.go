package genpdf

// FramedElement draws a rectangular border around its child, splitting
// the border across pages: the top edge only on the first render, the
// bottom edge and both vertical edges together only once the child has
// no more content, otherwise just the two vertical edges on this page.
type FramedElement struct {
	child   Element
	style   LineStyle
	isFirst bool
}

func NewFramedElement(child Element, style LineStyle) *FramedElement {
	return &FramedElement{child: child, style: style, isFirst: true}
}

// Measure deliberately ignores the frame's thickness, matching the
// upstream probable-height approximation.
func (f *FramedElement) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	return f.child.Measure(ctx, style, a)
}

func (f *FramedElement) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	t := f.style.Thickness
	insetTop := Mm(0)
	if f.isFirst {
		insetTop = t
	}

	elementSize := Size{
		Width:  a.Size().Width - 2*t,
		Height: a.Size().Height - insetTop - t,
	}
	elementOrigin := Position{X: a.Origin().X + t, Y: a.Origin().Y + insetTop}
	elementArea := a.WithBox(elementOrigin, elementSize)

	result, err := f.child.Render(ctx, elementArea, style)
	if err != nil {
		return RenderResult{}, err
	}

	half := t / 2
	x0 := half
	x1 := a.Size().Width - half
	consumed := insetTop + result.Size.Height
	if !result.HasMore {
		consumed += t
	}
	yBottom := consumed - half

	if f.isFirst {
		a.DrawLine(x0, half, x1, half, f.style)
	}
	a.DrawLine(x0, half, x0, yBottom, f.style)
	a.DrawLine(x1, half, x1, yBottom, f.style)
	if !result.HasMore {
		a.DrawLine(x0, yBottom, x1, yBottom, f.style)
	}

	f.isFirst = false

	return RenderResult{
		Size:    Size{Width: a.Size().Width, Height: consumed},
		HasMore: result.HasMore,
	}, nil
}
