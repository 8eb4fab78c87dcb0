package genpdf

// StyledElement merges its own style into the inherited style before
// delegating to the wrapped child.
type StyledElement struct {
	child Element
	style Style
}

func NewStyledElement(child Element, style Style) *StyledElement {
	return &StyledElement{child: child, style: style}
}

func (s *StyledElement) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	return s.child.Measure(ctx, style.And(s.style), a)
}

func (s *StyledElement) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	return s.child.Render(ctx, a, style.And(s.style))
}
