package genpdf

// BulletPoint indents a single child element and prints a bullet glyph
// to its left exactly once, even if the child's content spans several
// pages.
type BulletPoint struct {
	child          Element
	indent         Mm
	gap            Mm
	bullet         string
	bulletRendered bool
	style          *Style
	margins        *Margins
	prefix         string // stored for parity with the upstream setter; never read by Render.
}

func NewBulletPoint(child Element) *BulletPoint {
	return &BulletPoint{child: child, indent: 10, gap: 2, bullet: "–"}
}

func (b *BulletPoint) WithBullet(s string) *BulletPoint {
	b.bullet = s
	return b
}

func (b *BulletPoint) WithIndent(i Mm) *BulletPoint {
	b.indent = i
	return b
}

func (b *BulletPoint) WithBulletGap(g Mm) *BulletPoint {
	b.gap = g
	return b
}

func (b *BulletPoint) WithBulletStyle(s Style) *BulletPoint {
	b.style = &s
	return b
}

// WithBulletPrefix stores a prefix string that, like upstream, is never
// consulted during Render.
func (b *BulletPoint) WithBulletPrefix(p string) *BulletPoint {
	b.prefix = p
	return b
}

func (b *BulletPoint) body(a Area) Area {
	if b.margins != nil {
		return a.AddMargins(*b.margins)
	}
	return a
}

func (b *BulletPoint) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	body := b.body(a)
	return b.child.Measure(ctx, style, body.AddLeft(b.indent))
}

func (b *BulletPoint) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	body := b.body(a)
	effective := style
	if b.style != nil {
		effective = style.And(*b.style)
	}

	if !b.bulletRendered && b.bullet != "" {
		fam, ok := ctx.Cache.Family(effective.Font())
		var m Metrics
		if ok {
			m = fam.Resolve(effective.IsBold(), effective.IsItalic())
		} else {
			m = newBuiltinMetrics()
		}
		lh := LineHeight(m, float64(effective.FontSize()), effective.LineSpacing())
		ascent := Mm(float64(m.Ascent()) / 1000.0 * float64(effective.FontSize()))
		bulletWidth := measureFuncFor(ctx)(b.bullet, effective)

		section, ok2 := body.TextSection(lh, ascent)
		if ok2 {
			x := b.indent - bulletWidth - b.gap
			if err := section.PrintStr(x, b.bullet, effective, ctx.Cache); err != nil {
				return RenderResult{}, err
			}
			if effective.IsUnderline() {
				section.UnderlineAt(x, bulletWidth, effective)
			}
		}
		b.bulletRendered = true
	}

	result, err := b.child.Render(ctx, body.AddLeft(b.indent), style)
	if err != nil {
		return RenderResult{}, err
	}
	size := Size{Width: a.Size().Width, Height: result.Size.Height}
	if b.margins != nil {
		size.Height += b.margins.Top
		if !result.HasMore {
			size.Height += b.margins.Bottom
		}
	}
	return RenderResult{Size: size, HasMore: result.HasMore}, nil
}
