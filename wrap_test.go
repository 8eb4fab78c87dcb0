package genpdf

import (
	"strings"
	"testing"
)

func TestTokenizeStripsNewlinesAndSplitsWhitespace(t *testing.T) {
	runs := []StyledString{NewStyledString("Hello\nworld   again", Style{})}
	toks := Tokenize(runs, 1)

	got := make([]string, len(toks))
	for i, tok := range toks {
		got[i] = tok.Text
	}
	want := []string{"Hello", "world", "again"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeSubstitutesPageNumber(t *testing.T) {
	runs := []StyledString{NewStyledString("Page #{page} of report", Style{})}

	page1 := Tokenize(runs, 1)
	page2 := Tokenize(runs, 2)

	if page1[1].Text != "1" {
		t.Errorf("page 1 placeholder = %q, want %q", page1[1].Text, "1")
	}
	if page2[1].Text != "2" {
		t.Errorf("page 2 placeholder = %q, want %q", page2[1].Text, "2")
	}
}

// fixedWidthMeasure charges 1mm per rune, independent of style, so wrap
// behavior can be checked without a real font cache.
func fixedWidthMeasure(text string, style Style) Mm {
	return Mm(len([]rune(text)))
}

func TestNextLineNeverExceedsMaxWidth(t *testing.T) {
	cache := NewCache()
	runs := []StyledString{NewStyledString("the quick brown fox jumps over lazy dogs", Style{})}
	toks := Tokenize(runs, 1)

	const maxWidth = Mm(12)
	var reconstructed []string
	for len(toks) > 0 {
		line, overflow := NextLine(toks, fixedWidthMeasure, cache, maxWidth)
		if overflow {
			t.Fatalf("unexpected overflow with maxWidth=%v", maxWidth)
		}
		if line.Consumed == 0 {
			t.Fatal("NextLine made no progress")
		}
		if line.Width > maxWidth {
			t.Errorf("line width %v exceeds maxWidth %v", line.Width, maxWidth)
		}
		for _, tok := range line.Tokens {
			reconstructed = append(reconstructed, tok.Text)
		}
		toks = toks[line.Consumed:]
	}

	want := "the quick brown fox jumps over lazy dogs"
	if strings.Join(reconstructed, " ") != want {
		t.Errorf("reconstructed text = %q, want %q", strings.Join(reconstructed, " "), want)
	}
}

func TestNextLineOverflowOnOversizedToken(t *testing.T) {
	cache := NewCache()
	toks := Tokenize([]StyledString{NewStyledString("supercalifragilistic", Style{})}, 1)

	_, overflow := NextLine(toks, fixedWidthMeasure, cache, Mm(5))
	if !overflow {
		t.Fatal("expected overflow when first token alone exceeds maxWidth")
	}
}

func TestXOffsetAlignment(t *testing.T) {
	const areaW, w = Mm(190), Mm(40)

	cases := []struct {
		align Alignment
		want  Mm
	}{
		{AlignLeft, 0},
		{AlignCenter, (areaW - w) / 2},
		{AlignRight, areaW - w},
	}
	for _, c := range cases {
		if got := XOffset(c.align, areaW, w); got != c.want {
			t.Errorf("XOffset(%v, %v, %v) = %v, want %v", c.align, areaW, w, got, c.want)
		}
	}
}
