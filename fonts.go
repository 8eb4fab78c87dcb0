package genpdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics exposes the glyph measurements the word wrapper, paragraph
// renderer and PDF writer need, independent of whether the backing font
// is an embedded TrueType face or one of the PDF writer's builtin
// standard-14 fonts.
//
// Ascent, Descent and LineGap are per-mille-of-em fractions already run
// through PtToMm; callers still scale by sizePt/1000 to size them for a
// given font size, same as GlyphAdvance/Kerning/LeftSideBearing, which
// take sizePt directly and return an already-scaled mm length.
type Metrics interface {
	Ascent() Mm
	Descent() Mm
	LineGap() Mm
	GlyphAdvance(r rune, sizePt float64) Mm
	Kerning(a, b rune, sizePt float64) Mm
	LeftSideBearing(r rune, sizePt float64) Mm
	Builtin() bool
}

func LineHeight(m Metrics, sizePt float64, spacing float64) Mm {
	unscaled := m.Ascent() + m.Descent() + m.LineGap()
	return Mm(float64(unscaled) * sizePt / 1000.0 * spacing)
}

// ttfMetrics wraps a parsed TrueType/OpenType face.
type ttfMetrics struct {
	font *truetype.Font
	face font.Face
}

func newTTFMetrics(data []byte) (*ttfMetrics, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, WrapError(InvalidFont, "parsing font data", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 1000, DPI: 72, Hinting: font.HintingNone})
	return &ttfMetrics{font: f, face: face}, nil
}

func (t *ttfMetrics) Ascent() Mm {
	return PtToMm(fixedToEm(t.font.FUnitsPerEm(), t.font.Bounds(1000).Max.Y))
}

func (t *ttfMetrics) Descent() Mm {
	return PtToMm(-fixedToEm(t.font.FUnitsPerEm(), t.font.Bounds(1000).Min.Y))
}

func (t *ttfMetrics) LineGap() Mm {
	return 0
}

func (t *ttfMetrics) GlyphAdvance(r rune, sizePt float64) Mm {
	idx := t.font.Index(r)
	adv := t.font.HMetric(fixed.Int26_6(t.font.FUnitsPerEm()), idx).AdvanceWidth
	return PtToMm(float64(adv) / float64(t.font.FUnitsPerEm()) * sizePt)
}

func (t *ttfMetrics) Kerning(a, b rune, sizePt float64) Mm {
	ia := t.font.Index(a)
	ib := t.font.Index(b)
	k := t.font.Kern(fixed.Int26_6(t.font.FUnitsPerEm()), ia, ib)
	return PtToMm(float64(k) / float64(t.font.FUnitsPerEm()) * sizePt)
}

func (t *ttfMetrics) LeftSideBearing(r rune, sizePt float64) Mm {
	idx := t.font.Index(r)
	lsb := t.font.HMetric(fixed.Int26_6(t.font.FUnitsPerEm()), idx).LeftSideBearing
	return PtToMm(float64(lsb) / float64(t.font.FUnitsPerEm()) * sizePt)
}

func (t *ttfMetrics) Builtin() bool { return false }

func fixedToEm(unitsPerEm int32, v fixed.Int26_6) float64 {
	return float64(v) / float64(unitsPerEm)
}

// builtinMetrics approximates the standard-14 Helvetica metrics the PDF
// writer falls back to when no TrueType family is supplied. Per-glyph
// advance widths come from the AFM core-font width table (in 1/1000 em).
type builtinMetrics struct {
	widths map[rune]int
}

func newBuiltinMetrics() *builtinMetrics {
	return &builtinMetrics{widths: helveticaWidths}
}

func (b *builtinMetrics) Ascent() Mm  { return PtToMm(718) }
func (b *builtinMetrics) Descent() Mm { return PtToMm(207) }
func (b *builtinMetrics) LineGap() Mm { return 0 }

func (b *builtinMetrics) width(r rune) int {
	if w, ok := b.widths[r]; ok {
		return w
	}
	return 556
}

func (b *builtinMetrics) GlyphAdvance(r rune, sizePt float64) Mm {
	return PtToMm(float64(b.width(r)) / 1000.0 * sizePt)
}

func (b *builtinMetrics) Kerning(a, b2 rune, sizePt float64) Mm { return 0 }

func (b *builtinMetrics) LeftSideBearing(r rune, sizePt float64) Mm { return 0 }

func (b *builtinMetrics) Builtin() bool { return true }

// helveticaWidths holds the widths of common ASCII glyphs in the
// standard Helvetica AFM, 1/1000 em.
var helveticaWidths = map[rune]int{
	' ': 278, '!': 278, '"': 355, '#': 556, '$': 556, '%': 889, '&': 667,
	'\'': 191, '(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333,
	'.': 278, '/': 278, '0': 556, '1': 556, '2': 556, '3': 556, '4': 556,
	'5': 556, '6': 556, '7': 556, '8': 556, '9': 556, ':': 278, ';': 278,
	'<': 584, '=': 584, '>': 584, '?': 556, '@': 1015,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556,
	'h': 556, 'i': 222, 'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556,
	'o': 556, 'p': 556, 'q': 556, 'r': 333, 's': 500, 't': 278, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 500,
}

// Family bundles the four faces of a font family. All four must resolve
// for the family to be usable.
type Family struct {
	Regular, Bold, Italic, BoldItalic Metrics
}

func (f Family) Resolve(bold, italic bool) Metrics {
	switch {
	case bold && italic:
		return f.BoldItalic
	case bold:
		return f.Bold
	case italic:
		return f.Italic
	default:
		return f.Regular
	}
}

// Cache owns every loaded font family for a document and the identifier
// of its default family. It is mutated only through FromFiles/
// AddBuiltinFamily/SetDefault and read freely (concurrently safe to read) during
// render.
type Cache struct {
	families map[FontID]Family
	names    map[FontID]string
	next     FontID
	defaultID FontID
}

func NewCache() *Cache {
	return &Cache{families: make(map[FontID]Family), names: make(map[FontID]string)}
}

// FromFiles loads a family from a directory following the
// {family}-Regular.ttf / -Bold.ttf / -Italic.ttf / -BoldItalic.ttf naming
// convention. When builtinFallback is true, a missing face file falls
// back to the builtin standard-14 metrics instead of failing.
func (c *Cache) FromFiles(dir, familyName string, builtinFallback bool) (FontID, error) {
	load := func(suffix string) (Metrics, error) {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.ttf", familyName, suffix))
		data, err := os.ReadFile(path)
		if err != nil {
			if builtinFallback {
				return newBuiltinMetrics(), nil
			}
			return nil, WrapError(InvalidFont, "reading font file "+path, err)
		}
		m, err := newTTFMetrics(data)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	regular, err := load("Regular")
	if err != nil {
		return 0, err
	}
	bold, err := load("Bold")
	if err != nil {
		return 0, err
	}
	italic, err := load("Italic")
	if err != nil {
		return 0, err
	}
	boldItalic, err := load("BoldItalic")
	if err != nil {
		return 0, err
	}

	id := c.next
	c.next++
	c.families[id] = Family{Regular: regular, Bold: bold, Italic: italic, BoldItalic: boldItalic}
	c.names[id] = familyName
	if len(c.families) == 1 {
		c.defaultID = id
	}
	return id, nil
}

// AddBuiltinFamily registers a family backed entirely by standard-14
// builtin metrics, addressed by the PDF writer's core font name.
func (c *Cache) AddBuiltinFamily(name string) FontID {
	id := c.next
	c.next++
	m := newBuiltinMetrics()
	c.families[id] = Family{Regular: m, Bold: m, Italic: m, BoldItalic: m}
	c.names[id] = name
	if len(c.families) == 1 {
		c.defaultID = id
	}
	return id
}

func (c *Cache) Family(id FontID) (Family, bool) {
	f, ok := c.families[id]
	return f, ok
}

func (c *Cache) Name(id FontID) string { return c.names[id] }

func (c *Cache) Default() FontID { return c.defaultID }

func (c *Cache) SetDefault(id FontID) { c.defaultID = id }
