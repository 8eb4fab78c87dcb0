package genpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestDocument() (*Document, FontID) {
	cache := NewCache()
	font := cache.AddBuiltinFamily("Helvetica")
	doc := NewDocument(font, cache)
	doc.SetMargins(MarginsAll(10))
	return doc, font
}

func TestDocumentRenderSinglePageSingleLine(t *testing.T) {
	doc, _ := newTestDocument()
	doc.Push(NewParagraph("Hello world"))

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatal("rendered output does not look like a PDF")
	}
}

func TestDocumentRenderPaginatesLongContent(t *testing.T) {
	doc, _ := newTestDocument()
	for i := 0; i < 400; i++ {
		doc.Push(NewParagraph("line of body text to force pagination across pages"))
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestDocumentHeaderPageNumberSubstitution(t *testing.T) {
	doc, font := newTestDocument()
	dec := NewSimplePageDecorator()
	dec.SetMargins(MarginsAll(10))
	dec.SetHeader(func(page int) Element {
		return NewParagraph("Page #{page} of report").WithStyle(StyleFromFont(font))
	})
	doc.SetPageDecorator(dec)

	for i := 0; i < 400; i++ {
		doc.Push(NewParagraph("line of body text to force pagination across pages"))
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderToFileLeavesNoPartialFileOnFailure(t *testing.T) {
	cache := NewCache()
	font := cache.AddBuiltinFamily("Helvetica")
	doc := NewDocument(font, cache)
	doc.SetPageSize(PageSize{Width: 20, Height: 20})
	doc.SetMargins(MarginsAll(1))
	doc.Push(NewParagraph("supercalifragilisticexpialidocious-unbreakable-word"))

	path := filepath.Join(t.TempDir(), "out.pdf")
	err := doc.RenderToFile(path)
	if err == nil {
		t.Fatal("expected an error from an unbreakable oversized word")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("partial file left behind after failed render: %v", statErr)
	}
}
