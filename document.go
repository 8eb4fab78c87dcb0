package genpdf

import (
	"io"
	"os"
)

// Logger is the minimal structured-logging sink the core consults while
// rendering. The default is silent; genpdf/logging provides a zap-backed
// implementation for callers who want page-by-page diagnostics.
type Logger interface {
	Debug(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
	Warn(msg string, kv ...interface{})
	Error(msg string, kv ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Hyphenator splits a word into hyphenation points. Document stores it via
// SetHyphenator; neither the word wrapper nor Paragraph calls it, so a
// token wider than the available area still fails with PageSizeExceeded.
type Hyphenator func(word string) []string

// Document owns the root element tree, page geometry, fonts and
// decorator configuration for a single render. Build it, push content,
// then call Render or RenderToFile exactly once.
type Document struct {
	title        string
	pageSize     PageSize
	margins      Margins
	lineSpacing  float64
	defaultStyle Style
	decorator    PageDecorator
	root         *LinearLayout
	cache        *Cache
	hyphenator   Hyphenator
	logger       Logger

	minimalConformance bool
}

// NewDocument creates a document using defaultFont as its default style
// and an A4 portrait page with no margins until SetMargins is called.
func NewDocument(defaultFont FontID, cache *Cache) *Document {
	return &Document{
		pageSize:     A4,
		lineSpacing:  1.0,
		defaultStyle: StyleFromFont(defaultFont).WithFontSize(11),
		root:         NewLinearLayout(),
		cache:        cache,
		logger:       nopLogger{},
	}
}

func (d *Document) SetTitle(t string) *Document       { d.title = t; return d }
func (d *Document) SetPageSize(s PageSize) *Document  { d.pageSize = s; return d }
func (d *Document) SetMargins(m Margins) *Document     { d.margins = m; return d }
func (d *Document) SetLineSpacing(f float64) *Document { d.lineSpacing = f; return d }
func (d *Document) SetMinimalConformance(b bool) *Document { d.minimalConformance = b; return d }
func (d *Document) SetHyphenator(h Hyphenator) *Document   { d.hyphenator = h; return d }
func (d *Document) SetLogger(l Logger) *Document {
	if l != nil {
		d.logger = l
	}
	return d
}
func (d *Document) SetPageDecorator(dec PageDecorator) *Document { d.decorator = dec; return d }

func (d *Document) Push(e Element) *Document {
	d.root.Push(e)
	return d
}

func (d *Document) FontCache() *Cache { return d.cache }

// AddFontFamily loads a TrueType family from dir and registers it in the
// document's font cache.
func (d *Document) AddFontFamily(dir, name string, builtinFallback bool) (FontID, error) {
	return d.cache.FromFiles(dir, name, builtinFallback)
}

// Render drives the page loop described by the component design: for
// each page, apply the decorator's margins/borders/header/footer, then
// render the root layout into the remaining body area, opening further
// pages while it reports HasMore.
func (d *Document) Render(w io.Writer) error {
	renderer := NewRenderer(d.pageSize, d.title, d.cache)
	ctx := &Context{Cache: d.cache}

	for page := 1; ; page++ {
		ctx.Page = page
		d.logger.Debug("rendering page", "page", page)
		layer := renderer.AddPage()

		margins := d.margins
		var borders *Borders
		var header, footer Element
		if d.decorator != nil {
			if m := d.decorator.Margins(page); m != nil {
				margins = *m
			}
			borders = d.decorator.Borders(page)
			header = d.decorator.Header(page)
			footer = d.decorator.Footer(page)
		}

		full := NewArea(layer, Position{0, 0}, Size(d.pageSize), d.cache)
		if borders != nil {
			d.drawBorders(full, *borders)
		}

		body := full.AddMargins(margins)

		if footer != nil {
			footerHeight, err := footer.Measure(ctx, d.defaultStyle, body)
			if err != nil {
				return err
			}
			footerArea := body.WithBox(
				Position{X: body.Origin().X, Y: body.Origin().Y + body.Size().Height - footerHeight},
				Size{Width: body.Size().Width, Height: footerHeight},
			)
			if _, err := footer.Render(ctx, footerArea, d.defaultStyle); err != nil {
				return err
			}
			body = body.SetHeight(body.Size().Height - footerHeight)
		}

		if header != nil {
			result, err := header.Render(ctx, body, d.defaultStyle)
			if err != nil {
				return err
			}
			body = body.AddOffset(Position{Y: result.Size.Height})
		}

		result, err := d.root.Render(ctx, body, d.defaultStyle)
		if err != nil {
			return err
		}

		if !result.HasMore {
			break
		}
	}

	d.logger.Debug("render complete", "pages", renderer.PageCount())
	return renderer.Write(w)
}

// RenderToFile renders the document and writes it to path, creating or
// truncating the file. No partial file is left on failure.
func (d *Document) RenderToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return WrapError(Internal, "creating output file "+path, err)
	}
	if err := d.Render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (d *Document) drawBorders(a Area, b Borders) {
	w := a.Size().Width
	h := a.Size().Height
	if b.Top != nil {
		a.DrawLine(0, 0, w, 0, *b.Top)
	}
	if b.Bottom != nil {
		a.DrawLine(0, h, w, h, *b.Bottom)
	}
	if b.Left != nil {
		a.DrawLine(0, 0, 0, h, *b.Left)
	}
	if b.Right != nil {
		a.DrawLine(w, 0, w, h, *b.Right)
	}
}
