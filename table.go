package genpdf

// TableCell owns one element of a table row. The four border flags are
// purely advisory per-cell metadata: they are stored for callers that
// want to inspect a built table, but the actual border drawing is driven
// entirely by the table's CellDecorator, never by these flags.
type TableCell struct {
	child                                       Element
	Background                                  *Color
	BorderTop, BorderRight, BorderBottom, BorderLeft bool
}

func NewTableCell(e Element) TableCell {
	return TableCell{child: e}
}

func (c TableCell) WithBackground(bg Color) TableCell {
	c.Background = &bg
	return c
}

// TableRow is a fixed-length slice of cells, one per table column.
type TableRow struct {
	cells     []TableCell
	minHeight *Mm
}

func NewTableRow() *TableRow {
	return &TableRow{}
}

func (r *TableRow) Cell(e Element) *TableRow {
	r.cells = append(r.cells, NewTableCell(e))
	return r
}

func (r *TableRow) CellWithBackground(e Element, bg Color) *TableRow {
	r.cells = append(r.cells, NewTableCell(e).WithBackground(bg))
	return r
}

func (r *TableRow) WithMinHeight(h Mm) *TableRow {
	r.minHeight = &h
	return r
}

// CellDecorator prepares a cell's drawable sub-area before measurement
// and draws per-cell background/border decoration after the row's
// height is known.
type CellDecorator interface {
	PrepareCell(col, totalCols, row, totalRows int, a Area) Area
	DecorateCell(col, totalCols, row, totalRows int, rowHeight Mm, a Area)
}

// FrameCellDecorator draws a grid of borders around a table: outer
// borders on the table's own perimeter, inner borders between adjacent
// cells, each independently toggleable.
type FrameCellDecorator struct {
	Inner bool
	Outer bool
	Style LineStyle

	lastRow     int
	haveLastRow bool
}

func NewFrameCellDecorator(inner, outer bool) *FrameCellDecorator {
	return &FrameCellDecorator{Inner: inner, Outer: outer, Style: DefaultLineStyle()}
}

func (d *FrameCellDecorator) PrepareCell(col, totalCols, row, totalRows int, a Area) Area {
	t := d.Style.Thickness
	left := a.Origin().X
	width := a.Size().Width
	if col == 0 {
		left += t
		width -= t
	}
	if col == totalCols-1 {
		width -= t
	}
	return a.WithBox(Position{X: left, Y: a.Origin().Y}, Size{Width: width, Height: a.Size().Height})
}

func (d *FrameCellDecorator) DecorateCell(col, totalCols, row, totalRows int, rowHeight Mm, a Area) {
	continuation := d.haveLastRow && d.lastRow == row
	printTop := true
	printBottom := row == totalRows-1 || continuation
	printLeft := d.activeLeft(col)
	printRight := d.activeRight(col, totalCols)

	w := a.Size().Width
	if printTop && d.edgeEnabled(row == 0) {
		a.DrawLine(0, 0, w, 0, d.Style)
	}
	if printBottom && d.edgeEnabled(row == totalRows-1) {
		a.DrawLine(0, rowHeight, w, rowHeight, d.Style)
	}
	if printLeft && d.edgeEnabled(col == 0) {
		a.DrawLine(0, 0, 0, rowHeight, d.Style)
	}
	if printRight && d.edgeEnabled(col == totalCols-1) {
		a.DrawLine(w, 0, w, rowHeight, d.Style)
	}

	if col == totalCols-1 {
		d.lastRow = row
		d.haveLastRow = true
	}
}

func (d *FrameCellDecorator) activeLeft(col int) bool {
	if col == 0 {
		return true
	}
	return d.Inner
}

func (d *FrameCellDecorator) activeRight(col, totalCols int) bool {
	if col == totalCols-1 {
		return true
	}
	return false
}

func (d *FrameCellDecorator) edgeEnabled(outer bool) bool {
	if outer {
		return d.Outer
	}
	return d.Inner
}

// TableLayout lays out rows of cells whose widths are fixed once by
// ColumnWidths, pre-measuring each row before committing it to a page so
// a row never appears split across two pages.
type TableLayout struct {
	columns           ColumnWidths
	rows              []TableRow
	renderIdx         int
	decorator         CellDecorator
	headerCallback    func(page int) Element
	hasHeaderCallback bool
	margins           *Margins
}

func NewTableLayout(columns ColumnWidths) *TableLayout {
	return &TableLayout{columns: columns, decorator: NewFrameCellDecorator(true, true)}
}

func (t *TableLayout) SetCellDecorator(d CellDecorator) *TableLayout {
	t.decorator = d
	return t
}

func (t *TableLayout) WithMargins(m Margins) *TableLayout {
	t.margins = &m
	return t
}

// PushRow appends a row, failing with InvalidData if its cell count
// does not match the configured column count.
func (t *TableLayout) PushRow(row *TableRow) error {
	if len(row.cells) != t.columns.Count() {
		return NewError(InvalidData, "table row cell count does not match column count")
	}
	t.rows = append(t.rows, *row)
	return nil
}

// RegisterHeaderRowCallback installs a per-page header-row producer and
// turns on has-header-row rendering.
func (t *TableLayout) RegisterHeaderRowCallback(fn func(page int) Element) *TableLayout {
	t.headerCallback = fn
	t.hasHeaderCallback = true
	return t
}

// SetHasHeaderRowCallback toggles header rendering independently of
// whether a callback is registered, so a caller can suspend the header
// without discarding it.
func (t *TableLayout) SetHasHeaderRowCallback(on bool) *TableLayout {
	t.hasHeaderCallback = on
	return t
}

func (t *TableLayout) body(a Area) Area {
	if t.margins != nil {
		return a.AddMargins(*t.margins)
	}
	return a
}

// Measure approximates the remaining table height: the sum of the
// currently-unrendered rows, plus one header row's worth of height for
// the page the estimate is made on (the header repeats per page, but a
// single-page approximation is sufficient for pre-measurement callers
// such as an outer TableCell).
func (t *TableLayout) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	body := t.body(a)
	var total Mm
	if t.hasHeaderCallback && t.headerCallback != nil && t.renderIdx < len(t.rows) {
		h, err := t.headerCallback(ctx.Page).Measure(ctx, style, body)
		if err != nil {
			return 0, err
		}
		total += h
	}
	numCols := t.columns.Count()
	for i := t.renderIdx; i < len(t.rows); i++ {
		row := t.rows[i]
		cols := body.SplitHorizontally(t.columns)
		var rowH Mm
		for c, cell := range row.cells {
			prepared := t.decorator.PrepareCell(c, numCols, i, len(t.rows), cols[c])
			h, err := cell.child.Measure(ctx, style, prepared)
			if err != nil {
				return 0, err
			}
			rowH = rowH.Max(h)
		}
		if row.minHeight != nil {
			rowH = rowH.Max(*row.minHeight)
		}
		total += rowH
	}
	if t.margins != nil {
		total += t.margins.Top + t.margins.Bottom
	}
	return total, nil
}

func (t *TableLayout) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	body := t.body(a)
	var consumed Mm
	numCols := t.columns.Count()
	numRows := len(t.rows)

	if t.hasHeaderCallback && t.headerCallback != nil && t.renderIdx < numRows {
		header := t.headerCallback(ctx.Page)
		hh, err := header.Measure(ctx, style, body)
		if err != nil {
			return RenderResult{}, err
		}
		if hh > body.Size().Height {
			return RenderResult{HasMore: true}, nil
		}
		result, err := header.Render(ctx, body, style)
		if err != nil {
			return RenderResult{}, err
		}
		body = body.AddOffset(Position{Y: result.Size.Height})
		consumed += result.Size.Height
	}

	hasMore := false
	for t.renderIdx < numRows {
		row := t.rows[t.renderIdx]
		cols := body.SplitHorizontally(t.columns)
		prepared := make([]Area, numCols)
		var rowHeight Mm
		for c, cell := range row.cells {
			prepared[c] = t.decorator.PrepareCell(c, numCols, t.renderIdx, numRows, cols[c])
			h, err := cell.child.Measure(ctx, style, prepared[c])
			if err != nil {
				return RenderResult{}, err
			}
			rowHeight = rowHeight.Max(h)
		}
		if row.minHeight != nil {
			rowHeight = rowHeight.Max(*row.minHeight)
		}

		if rowHeight > body.Size().Height {
			hasMore = true
			break
		}

		for c, cell := range row.cells {
			cellArea := prepared[c].SetHeight(rowHeight)
			if cell.Background != nil {
				cellArea.DrawFilledRect(0, 0, cellArea.Size().Width, rowHeight, *cell.Background)
			}
			t.decorator.DecorateCell(c, numCols, t.renderIdx, numRows, rowHeight, cellArea)
			if _, err := cell.child.Render(ctx, cellArea, style); err != nil {
				return RenderResult{}, err
			}
		}

		body = body.AddOffset(Position{Y: rowHeight})
		consumed += rowHeight
		t.renderIdx++
	}

	size := Size{Width: a.Size().Width, Height: consumed}
	if t.margins != nil {
		size.Height += t.margins.Top
		if !hasMore && t.renderIdx >= numRows {
			size.Height += t.margins.Bottom
		}
	}
	return RenderResult{Size: size, HasMore: hasMore}, nil
}
