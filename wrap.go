package genpdf

import "strings"

// Token is a single whitespace-delimited word carrying the style of the
// run it was split from.
type Token struct {
	Text  string
	Style Style
}

// Tokenize splits each run on ASCII whitespace, substituting the literal
// "#{page}" placeholder with the decimal page number and stripping
// embedded newlines from every token first.
func Tokenize(runs []StyledString, pageNum int) []Token {
	var tokens []Token
	for _, run := range runs {
		for _, word := range strings.Fields(run.Text) {
			word = strings.ReplaceAll(word, "\n", "")
			word = strings.ReplaceAll(word, "#{page}", itoa(pageNum))
			tokens = append(tokens, Token{Text: word, Style: run.Style})
		}
	}
	return tokens
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// MeasureFunc returns the rendered width of a string in the given style.
type MeasureFunc func(text string, style Style) Mm

// WrappedLine is one packed output line of the word wrapper.
type WrappedLine struct {
	Tokens     []Token
	Width      Mm
	Ascent     Mm
	Descent    Mm
	LineHeight Mm
	// Consumed is the number of leading tokens from the input slice this
	// line accounted for; callers advance their queue by this amount.
	Consumed int
}

const spaceToken = " "

// NextLine packs tokens from the front of toks into one line no wider
// than maxWidth, space-separated. It never mutates toks. overflow is
// true iff the very first token alone is wider than maxWidth, which the
// caller must turn into a PageSizeExceeded error.
func NextLine(toks []Token, measure MeasureFunc, cache *Cache, maxWidth Mm) (line WrappedLine, overflow bool) {
	if len(toks) == 0 {
		return WrappedLine{}, false
	}

	spaceWidth := func(s Style) Mm { return measure(spaceToken, s) }

	firstWidth := measure(toks[0].Text, toks[0].Style)
	if firstWidth > maxWidth {
		return WrappedLine{}, true
	}

	var width Mm
	var selected []Token
	for i, t := range toks {
		w := measure(t.Text, t.Style)
		addition := w
		if i > 0 {
			addition += spaceWidth(t.Style)
		}
		if width+addition > maxWidth && len(selected) > 0 {
			break
		}
		width += addition
		selected = append(selected, t)
	}

	line = WrappedLine{Tokens: selected, Width: width, Consumed: len(selected)}
	for _, t := range selected {
		fam, ok := cache.Family(t.Style.Font())
		var m Metrics
		if ok {
			m = fam.Resolve(t.Style.IsBold(), t.Style.IsItalic())
		} else {
			m = newBuiltinMetrics()
		}
		sizePt := float64(t.Style.FontSize())
		lh := LineHeight(m, sizePt, t.Style.LineSpacing())
		asc := Mm(float64(m.Ascent()) / 1000.0 * sizePt)
		desc := Mm(float64(m.Descent()) / 1000.0 * sizePt)
		line.LineHeight = line.LineHeight.Max(lh)
		line.Ascent = line.Ascent.Max(asc)
		line.Descent = line.Descent.Max(desc)
	}
	return line, false
}

// XOffset computes the horizontal offset of a line of width w within an
// area of width areaW, per the requested alignment.
func XOffset(align Alignment, areaW, w Mm) Mm {
	switch align {
	case AlignCenter:
		return (areaW - w) / 2
	case AlignRight:
		return areaW - w
	default:
		return 0
	}
}
