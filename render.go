package genpdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
)

// Renderer owns the backing PDF document writer (gofpdf) across every
// page of a single render. It is held exclusively by Document and used
// only through Layer/Area in render order, per the single-writer-handle
// resource rule.
type Renderer struct {
	pdf        *gofpdf.Fpdf
	cache      *Cache
	fontHandle map[FontID]string // registered gofpdf font family name, embedded fonts only
	pageSize   PageSize
	pageCount  int
}

func NewRenderer(size PageSize, title string, cache *Cache) *Renderer {
	orientation := "P"
	w, h := size.Width, size.Height
	if w > h {
		orientation = "L"
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		SizeStr:        "",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
		FontDirStr:     "",
	})
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, 0)
	return &Renderer{pdf: pdf, cache: cache, fontHandle: make(map[FontID]string), pageSize: size}
}

func (r *Renderer) SetCreator(creator string) { r.pdf.SetCreator(creator, true) }
func (r *Renderer) SetAuthor(author string)    { r.pdf.SetAuthor(author, true) }

// AddEmbeddedFont registers a TrueType family's bytes with gofpdf so it
// can be addressed by name on later pages.
func (r *Renderer) AddEmbeddedFont(id FontID, name string, regular, bold, italic, boldItalic []byte) {
	if regular != nil {
		r.pdf.AddUTF8FontFromBytes(name, "", regular)
	}
	if bold != nil {
		r.pdf.AddUTF8FontFromBytes(name, "B", bold)
	}
	if italic != nil {
		r.pdf.AddUTF8FontFromBytes(name, "I", italic)
	}
	if boldItalic != nil {
		r.pdf.AddUTF8FontFromBytes(name, "BI", boldItalic)
	}
	r.fontHandle[id] = name
}

// AddPage starts a new page of the renderer's configured size and
// returns a Layer covering its full drawable surface.
func (r *Renderer) AddPage() *Layer {
	r.pdf.AddPage()
	r.pageCount++
	return &Layer{renderer: r, pageHeight: r.pageSize.Height}
}

func (r *Renderer) PageCount() int { return r.pageCount }

// Write emits the finished PDF to w. It is the only point at which the
// accumulated drawing calls are serialised to bytes.
func (r *Renderer) Write(w io.Writer) error {
	if err := r.pdf.Output(w); err != nil {
		return WrapError(Internal, "writing pdf output", err)
	}
	return nil
}

// Layer is a page's drawing surface. gofpdf has no native multi-layer
// concept, so one Layer per page is sufficient; it caches the last
// fill/outline color and outline thickness set so redundant PDF state
// operators are skipped, mirroring the writer's own dedup behaviour.
type Layer struct {
	renderer   *Renderer
	pageHeight Mm

	haveFill      bool
	fill          Color
	haveOutline   bool
	outline       Color
	haveThickness bool
	thickness     Mm
}

// toUserSpace converts a top-left-origin layout Y coordinate to PDF's
// bottom-left-origin user space.
func (l *Layer) toUserSpace(y Mm) Mm {
	return l.pageHeight - y
}

func (l *Layer) setFillColor(c Color) {
	if l.haveFill && l.fill == c {
		return
	}
	r, g, b := c.RGB8()
	l.renderer.pdf.SetFillColor(int(r), int(g), int(b))
	l.haveFill, l.fill = true, c
}

func (l *Layer) setOutlineColor(c Color) {
	if l.haveOutline && l.outline == c {
		return
	}
	r, g, b := c.RGB8()
	l.renderer.pdf.SetDrawColor(int(r), int(g), int(b))
	l.haveOutline, l.outline = true, c
}

func (l *Layer) setOutlineThickness(t Mm) {
	if l.haveThickness && l.thickness == t {
		return
	}
	l.renderer.pdf.SetLineWidth(float64(t))
	l.haveThickness, l.thickness = true, t
}

func (l *Layer) drawLine(x1, y1, x2, y2 Mm, style LineStyle) {
	l.setOutlineColor(style.Color)
	l.setOutlineThickness(style.Thickness)
	l.renderer.pdf.Line(float64(x1), float64(l.toUserSpace(y1)), float64(x2), float64(l.toUserSpace(y2)))
}

func (l *Layer) drawFilledRect(x, y, w, h Mm, fill Color) {
	l.setFillColor(fill)
	l.renderer.pdf.Rect(float64(x), float64(l.toUserSpace(y+h)), float64(w), float64(h), "F")
}

func (l *Layer) setFont(id FontID, bold, italic bool, sizePt float64) {
	family, ok := l.renderer.cache.Family(id)
	name := l.renderer.fontHandle[id]
	builtin := !ok || family.Resolve(bold, italic).Builtin()
	if name == "" || builtin {
		name = l.renderer.cache.Name(id)
		if name == "" {
			name = "Helvetica"
		}
	}
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	l.renderer.pdf.SetFont(name, style, sizePt)
}

func (l *Layer) printStr(x, y Mm, text string, style Style, cache *Cache) error {
	fam, ok := cache.Family(style.Font())
	builtin := !ok || fam.Resolve(style.IsBold(), style.IsItalic()).Builtin()
	out := text
	if builtin {
		encoded, err := encodeWin1252(text)
		if err != nil {
			return err
		}
		out = encoded
	}
	l.setFillColor(style.Color())
	l.setFont(style.Font(), style.IsBold(), style.IsItalic(), float64(style.FontSize()))
	l.renderer.pdf.Text(float64(x), float64(l.toUserSpace(y)), out)
	return nil
}

// encodeWin1252 round-trips text through the Windows-1252 code page;
// characters with no representation fail with UnsupportedEncoding.
func encodeWin1252(text string) (string, error) {
	enc := charmap.Windows1252.NewEncoder()
	out, err := enc.String(text)
	if err != nil {
		return "", WrapError(UnsupportedEncoding, fmt.Sprintf("encoding %q as windows-1252", text), err)
	}
	return out, nil
}
