package genpdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// Image embeds a caller-supplied encoded raster image. The bytes are
// handed to the PDF writer unchanged: no alpha flattening is done, so an
// image with an alpha channel is embedded with that channel as is.
type Image struct {
	data      []byte
	format    string
	px        image.Rectangle
	alignment Alignment
	scale     Scale
	rotation  Rotation
	dpi       float64
	regName   string
}

// ImageFromPath decodes the image at path and measures its pixel size
// up front so Measure never has to touch the filesystem.
func ImageFromPath(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(InvalidData, "reading image file "+path, err)
	}
	return ImageFromBytes(data)
}

func ImageFromBytes(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, WrapError(InvalidData, "decoding image", err)
	}
	return &Image{
		data:   data,
		format: format,
		px:     image.Rect(0, 0, cfg.Width, cfg.Height),
		scale:  ScaleUniform(1),
		dpi:    300,
	}, nil
}

func (img *Image) WithAlignment(a Alignment) *Image { img.alignment = a; return img }
func (img *Image) WithScale(s Scale) *Image          { img.scale = s; return img }
func (img *Image) WithClockwiseRotation(r Rotation) *Image { img.rotation = r; return img }
func (img *Image) WithDPI(dpi float64) *Image        { img.dpi = dpi; return img }

func (img *Image) sizeMm() Size {
	mmPerPx := 25.4 / img.dpi
	w := Mm(float64(img.px.Dx()) * mmPerPx * img.scale.X)
	h := Mm(float64(img.px.Dy()) * mmPerPx * img.scale.Y)
	return Size{Width: w, Height: h}
}

func (img *Image) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	return img.sizeMm().Height, nil
}

func (img *Image) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	size := img.sizeMm()
	if size.Height > a.Size().Height {
		return RenderResult{}, NewError(PageSizeExceeded, "image taller than a full page")
	}

	var x Mm
	switch img.alignment {
	case AlignCenter:
		x = (a.Size().Width - size.Width) / 2
	case AlignRight:
		x = a.Size().Width - size.Width
	}

	if img.regName == "" {
		img.regName = fmt.Sprintf("img-%p", img)
	}
	a.layer.registerAndDrawImage(img.regName, img.format, img.data, a.origin.X+x, a.origin.Y, size.Width, size.Height, float64(img.rotation))

	return RenderResult{Size: Size{Width: a.Size().Width, Height: size.Height}}, nil
}

func (l *Layer) registerAndDrawImage(name, format string, data []byte, x, y, w, h Mm, rotationDeg float64) {
	pdf := l.renderer.pdf
	info := pdf.GetImageInfo(name)
	if info == nil {
		opt := gofpdf.ImageOptions{ImageType: format, ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
	}
	yTop := l.toUserSpace(y + h)
	if rotationDeg == 0 {
		pdf.ImageOptions(name, float64(x), float64(yTop), float64(w), float64(h), false, gofpdf.ImageOptions{ImageType: format}, 0, "")
		return
	}
	pdf.TransformBegin()
	cx, cy := float64(x)+float64(w)/2, float64(yTop)+float64(h)/2
	pdf.TransformRotate(rotationDeg, cx, cy)
	pdf.ImageOptions(name, float64(x), float64(yTop), float64(w), float64(h), false, gofpdf.ImageOptions{ImageType: format}, 0, "")
	pdf.TransformEnd()
}
