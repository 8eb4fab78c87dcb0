package genpdf

import "testing"

func measureArea(w, h Mm) Area {
	return NewArea(nil, Position{}, Size{Width: w, Height: h}, NewCache())
}

func TestParagraphMeasureIdempotent(t *testing.T) {
	cache := NewCache()
	font := cache.AddBuiltinFamily("Helvetica")
	ctx := &Context{Cache: cache, Page: 1}
	style := StyleFromFont(font).WithFontSize(11)

	p := NewParagraph("the quick brown fox jumps over the lazy dog")
	area := measureArea(80, 1000)

	h1, err := p.Measure(ctx, style, area)
	if err != nil {
		t.Fatalf("first Measure: %v", err)
	}
	h2, err := p.Measure(ctx, style, area)
	if err != nil {
		t.Fatalf("second Measure: %v", err)
	}
	if h1 != h2 {
		t.Errorf("Measure not idempotent: first=%v second=%v", h1, h2)
	}
	if p.started {
		t.Error("Measure must not mark the paragraph as started")
	}
}

func TestBreakMeasureDoesNotMutate(t *testing.T) {
	cache := NewCache()
	font := cache.AddBuiltinFamily("Helvetica")
	ctx := &Context{Cache: cache, Page: 1}
	style := StyleFromFont(font).WithFontSize(11)

	b := NewBreak(3)
	area := measureArea(80, 1000)

	before := b.lines
	if _, err := b.Measure(ctx, style, area); err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if b.lines != before {
		t.Errorf("Break.Measure mutated lines: before=%v after=%v", before, b.lines)
	}
}
