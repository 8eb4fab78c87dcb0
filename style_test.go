package genpdf

import "testing"

func TestStyleAndAssociative(t *testing.T) {
	parent := StyleFromFont(1).WithFontSize(10)
	child := StyleFromFont(2).Bold()
	grandchild := StyleFromFont(3).WithFontSize(14)

	left := parent.And(child).And(grandchild)
	right := parent.And(child.And(grandchild))

	if left != right {
		t.Fatalf("And is not associative: left=%+v right=%+v", left, right)
	}
	if left.Font() != 3 {
		t.Errorf("Font() = %v, want 3 (most specific set wins)", left.Font())
	}
	if left.FontSize() != 14 {
		t.Errorf("FontSize() = %v, want 14", left.FontSize())
	}
	if !left.IsBold() {
		t.Error("IsBold() = false, want true (inherited from child)")
	}
}

func TestStyleAndChildOverridesParent(t *testing.T) {
	parent := StyleFromFont(1).WithFontSize(12).Bold()
	child := StyleFromFont(1).WithFontSize(18)

	merged := parent.And(child)

	if merged.FontSize() != 18 {
		t.Errorf("FontSize() = %v, want 18 (child explicit value)", merged.FontSize())
	}
	if !merged.IsBold() {
		t.Error("IsBold() = false, want true (unset in child, inherited from parent)")
	}
}

func TestStyleDefaults(t *testing.T) {
	var s Style
	if s.FontSize() != 11 {
		t.Errorf("default FontSize() = %v, want 11", s.FontSize())
	}
	if s.LineSpacing() != 1.0 {
		t.Errorf("default LineSpacing() = %v, want 1.0", s.LineSpacing())
	}
	if s.IsBold() || s.IsItalic() || s.IsUnderline() {
		t.Error("zero-value Style should have no emphasis set")
	}
}
