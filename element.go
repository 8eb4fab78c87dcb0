package genpdf

// Context carries the per-render resources every element needs: the
// font cache (read-only during render) and the current 1-based page
// number, consulted for the "#{page}" placeholder and header/footer
// callbacks.
type Context struct {
	Cache *Cache
	Page  int
}

// Element is the uniform contract every document node satisfies.
//
// Measure returns the height the element would consume in area's width,
// without drawing anything or mutating resumption state; it may
// overestimate slightly but must never underestimate content that fully
// fits.
//
// Render draws as much of the element as fits in area (top-anchored),
// returning the size actually consumed and HasMore=true iff content
// remains for a later page. Re-entrant Render on the same element is
// well-defined only when the prior call returned HasMore=true.
type Element interface {
	Measure(ctx *Context, style Style, area Area) (Mm, error)
	Render(ctx *Context, area Area, style Style) (RenderResult, error)
}

func measureFuncFor(ctx *Context) MeasureFunc {
	return func(text string, style Style) Mm {
		fam, ok := ctx.Cache.Family(style.Font())
		var m Metrics
		if ok {
			m = fam.Resolve(style.IsBold(), style.IsItalic())
		} else {
			m = newBuiltinMetrics()
		}
		sizePt := float64(style.FontSize())
		var w Mm
		runes := []rune(text)
		for i, r := range runes {
			w += m.GlyphAdvance(r, sizePt)
			if i+1 < len(runes) {
				w += m.Kerning(r, runes[i+1], sizePt)
			}
		}
		return w
	}
}
