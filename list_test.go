package genpdf

import "testing"

func bulletsOf(l *LinearLayout) []string {
	out := make([]string, len(l.children))
	for i, c := range l.children {
		out[i] = c.(*BulletPoint).bullet
	}
	return out
}

func TestOrderedListNumbering(t *testing.T) {
	ol := NewOrderedList()
	ol.Push(NewText("a"))
	ol.Push(NewText("b"))
	ol.Push(NewText("c"))

	got := bulletsOf(ol.inner)
	want := []string{"1.", "2.", "3."}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bullet[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedListStartingAt(t *testing.T) {
	ol := NewOrderedList().StartingAt(5)
	ol.Push(NewText("x"))
	ol.Push(NewText("y"))

	got := bulletsOf(ol.inner)
	want := []string{"5.", "6."}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bullet[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedListNestedPrefix(t *testing.T) {
	outer := NewOrderedList()
	outer.Push(NewText("first"))
	outer.Push(NewText("second"))

	inner := NewOrderedList()
	inner.Push(NewText("nested-a"))
	inner.Push(NewText("nested-b"))
	outer.PushList(inner)

	outer.Push(NewText("third"))

	outerBullets := bulletsOf(outer.inner)
	want := []string{"1.", "2.", "", "3."}
	for i := range want {
		if outerBullets[i] != want[i] {
			t.Errorf("outer bullet[%d] = %q, want %q", i, outerBullets[i], want[i])
		}
	}

	innerBullets := bulletsOf(inner.inner)
	wantInner := []string{"2.1.", "2.2."}
	for i := range wantInner {
		if innerBullets[i] != wantInner[i] {
			t.Errorf("inner bullet[%d] = %q, want %q", i, innerBullets[i], wantInner[i])
		}
	}
}

func TestUnorderedListPushListHalvesIndent(t *testing.T) {
	u := NewUnorderedList()
	u.Push(NewText("a"))
	u.PushList(NewUnorderedList().Push(NewText("nested")))

	bp := u.inner.children[1].(*BulletPoint)
	if bp.indent != 5 {
		t.Errorf("nested list indent = %v, want 5 (half of default 10)", bp.indent)
	}
	if bp.bullet != "" {
		t.Errorf("nested list bullet = %q, want empty", bp.bullet)
	}
}
