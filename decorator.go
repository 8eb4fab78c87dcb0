package genpdf

// Borders configures the four page-edge lines a PageDecorator may draw.
type Borders struct {
	Top, Right, Bottom, Left *LineStyle
}

func BordersAll(style LineStyle) Borders {
	return Borders{Top: &style, Right: &style, Bottom: &style, Left: &style}
}

// PageDecorator configures per-page margins, borders, header and footer.
// Every method may return a zero value to mean "nothing configured for
// this page"; it is invoked exactly once per produced page.
type PageDecorator interface {
	Margins(page int) *Margins
	Borders(page int) *Borders
	Header(page int) Element
	Footer(page int) Element
}

// SimplePageDecorator supports a margin override and a header callback
// only — the common case.
type SimplePageDecorator struct {
	margins *Margins
	header  func(page int) Element
}

func NewSimplePageDecorator() *SimplePageDecorator {
	return &SimplePageDecorator{}
}

func (d *SimplePageDecorator) SetMargins(m Margins) *SimplePageDecorator {
	d.margins = &m
	return d
}

func (d *SimplePageDecorator) SetHeader(fn func(page int) Element) *SimplePageDecorator {
	d.header = fn
	return d
}

func (d *SimplePageDecorator) Margins(page int) *Margins { return d.margins }
func (d *SimplePageDecorator) Borders(page int) *Borders { return nil }
func (d *SimplePageDecorator) Header(page int) Element {
	if d.header == nil {
		return nil
	}
	return d.header(page)
}
func (d *SimplePageDecorator) Footer(page int) Element { return nil }

// CustomPageDecorator additionally supports page borders and a footer
// callback.
type CustomPageDecorator struct {
	margins *Margins
	borders *Borders
	header  func(page int) Element
	footer  func(page int) Element
}

func NewCustomPageDecorator() *CustomPageDecorator {
	return &CustomPageDecorator{}
}

func (d *CustomPageDecorator) SetMargins(m *Margins) *CustomPageDecorator {
	d.margins = m
	return d
}

func (d *CustomPageDecorator) SetBorders(b Borders) *CustomPageDecorator {
	d.borders = &b
	return d
}

func (d *CustomPageDecorator) SetHeader(fn func(page int) Element) *CustomPageDecorator {
	d.header = fn
	return d
}

func (d *CustomPageDecorator) SetFooter(fn func(page int) Element) *CustomPageDecorator {
	d.footer = fn
	return d
}

func (d *CustomPageDecorator) Margins(page int) *Margins { return d.margins }
func (d *CustomPageDecorator) Borders(page int) *Borders { return d.borders }
func (d *CustomPageDecorator) Header(page int) Element {
	if d.header == nil {
		return nil
	}
	return d.header(page)
}
func (d *CustomPageDecorator) Footer(page int) Element {
	if d.footer == nil {
		return nil
	}
	return d.footer(page)
}
