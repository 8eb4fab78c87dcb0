package genpdf

// Alignment controls horizontal placement of a line within its area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// FontID identifies a registered font family within a FontCache.
type FontID int

// Style carries the font, size, emphasis, color and line-spacing for a
// run of text. Every field is optional (nil/zero-sentinel) so that
// merging two styles can tell "explicitly set" apart from "inherit".
// Style is copied by value everywhere; merges never allocate.
type Style struct {
	fontSet    bool
	font       FontID
	sizeSet    bool
	size       uint8 // points
	boldSet    bool
	bold       bool
	italicSet  bool
	italic     bool
	underlineSet bool
	underline  bool
	colorSet   bool
	color      Color
	spacingSet bool
	spacing    float64 // line spacing factor, default 1.0
}

// StyleFromFont starts a new style referencing the given font family.
func StyleFromFont(id FontID) Style {
	return Style{fontSet: true, font: id}
}

func (s Style) WithFontSize(pt uint8) Style { s.sizeSet, s.size = true, pt; return s }
func (s Style) Bold() Style                 { s.boldSet, s.bold = true, true; return s }
func (s Style) Italic() Style               { s.italicSet, s.italic = true, true; return s }
func (s Style) Underlined() Style           { s.underlineSet, s.underline = true, true; return s }
func (s Style) WithColor(c Color) Style     { s.colorSet, s.color = true, c; return s }
func (s Style) WithLineSpacing(f float64) Style {
	s.spacingSet, s.spacing = true, f
	return s
}

func (s Style) SetBold(b bool) Style           { s.boldSet, s.bold = true, b; return s }
func (s Style) SetItalic(b bool) Style         { s.italicSet, s.italic = true, b; return s }
func (s Style) SetUnderline(b bool) Style      { s.underlineSet, s.underline = true, b; return s }

func (s Style) IsBold() bool      { return s.boldSet && s.bold }
func (s Style) IsItalic() bool    { return s.italicSet && s.italic }
func (s Style) IsUnderline() bool { return s.underlineSet && s.underline }

func (s Style) FontSize() uint8 {
	if s.sizeSet {
		return s.size
	}
	return 11
}

func (s Style) Font() FontID {
	return s.font
}

func (s Style) Color() Color {
	if s.colorSet {
		return s.color
	}
	return RGB(0, 0, 0)
}

func (s Style) LineSpacing() float64 {
	if s.spacingSet {
		return s.spacing
	}
	return 1.0
}

// And merges child on top of the parent s: any field child has explicitly
// set wins; unset fields inherit from s. Associative: a.And(b).And(c)
// == a.And(b.And(c)).
func (s Style) And(child Style) Style {
	out := s
	if child.fontSet {
		out.fontSet, out.font = true, child.font
	}
	if child.sizeSet {
		out.sizeSet, out.size = true, child.size
	}
	if child.boldSet {
		out.boldSet, out.bold = true, child.bold
	}
	if child.italicSet {
		out.italicSet, out.italic = true, child.italic
	}
	if child.underlineSet {
		out.underlineSet, out.underline = true, child.underline
	}
	if child.colorSet {
		out.colorSet, out.color = true, child.color
	}
	if child.spacingSet {
		out.spacingSet, out.spacing = true, child.spacing
	}
	return out
}

// StyledString pairs a run of UTF-8 text with the style it should be
// rendered in. Text may be empty.
type StyledString struct {
	Text  string
	Style Style
}

func NewStyledString(text string, style Style) StyledString {
	return StyledString{Text: text, Style: style}
}
