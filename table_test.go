package genpdf

import "testing"

func TestTableLayoutPushRowValidatesColumnCount(t *testing.T) {
	table := NewTableLayout(Weights(1, 1))
	row := NewTableRow().Cell(NewText("only one cell"))

	err := table.PushRow(row)
	if err == nil {
		t.Fatal("expected an error for a row with the wrong cell count")
	}
	if !IsInvalidData(err) {
		t.Errorf("expected InvalidData error, got %v", err)
	}
}

func TestTableLayoutRowAtomicity(t *testing.T) {
	cache := NewCache()
	font := cache.AddBuiltinFamily("Helvetica")
	ctx := &Context{Cache: cache, Page: 1}
	style := StyleFromFont(font)

	table := NewTableLayout(Weights(1))
	row := NewTableRow().Cell(NewText("x")).WithMinHeight(1000)
	if err := table.PushRow(row); err != nil {
		t.Fatalf("PushRow: %v", err)
	}

	area := NewArea(nil, Position{}, Size{Width: 100, Height: 5}, cache)
	result, err := table.Render(ctx, area, style)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !result.HasMore {
		t.Fatal("expected HasMore=true when the row does not fit")
	}
	if result.Size.Height != 0 {
		t.Errorf("consumed height = %v, want 0 (row moved wholly to next page)", result.Size.Height)
	}
	if table.renderIdx != 0 {
		t.Errorf("renderIdx = %v, want 0 (row must not be partially committed)", table.renderIdx)
	}
}
