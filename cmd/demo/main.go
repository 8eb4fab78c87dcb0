// Command demo builds a small PDF exercising paragraphs,
// lists, a table and a page decorator, and writes it to out.pdf.
package main

import (
	"fmt"
	"log"

	"genpdf"
)

func main() {
	cache := genpdf.NewCache()
	helvetica := cache.AddBuiltinFamily("Helvetica")

	doc := genpdf.NewDocument(helvetica, cache)
	doc.SetTitle("Quarterly Report").
		SetMargins(genpdf.MarginsAll(20)).
		SetPageDecorator(headerDecorator())

	doc.Push(genpdf.NewParagraph("Quarterly Report").
		WithStyle(genpdf.StyleFromFont(helvetica).WithFontSize(20).Bold()).
		Aligned(genpdf.AlignCenter).
		WithMargins(genpdf.MarginsVH(0, 10)))

	doc.Push(genpdf.NewParagraph("Prepared for distribution to the board. " +
		"Figures below are illustrative."))

	list := genpdf.NewUnorderedList()
	list.Push(genpdf.NewText("Revenue grew quarter over quarter"))
	list.Push(genpdf.NewText("Headcount held flat"))
	list.Push(genpdf.NewText("Two new regions opened"))
	doc.Push(list)

	table := genpdf.NewTableLayout(genpdf.Weights(1, 1, 1))
	table.SetCellDecorator(genpdf.NewFrameCellDecorator(true, true))
	header := genpdf.NewTableRow()
	header.Cell(genpdf.NewText("Region"))
	header.Cell(genpdf.NewText("Revenue"))
	header.Cell(genpdf.NewText("Growth"))
	if err := table.PushRow(header); err != nil {
		log.Fatalf("building table: %v", err)
	}
	for _, row := range [][3]string{
		{"North", "$1.2M", "+4%"},
		{"South", "$0.9M", "+1%"},
		{"East", "$1.5M", "+7%"},
	} {
		r := genpdf.NewTableRow()
		r.Cell(genpdf.NewText(row[0]))
		r.Cell(genpdf.NewText(row[1]))
		r.Cell(genpdf.NewText(row[2]))
		if err := table.PushRow(r); err != nil {
			log.Fatalf("building table: %v", err)
		}
	}
	doc.Push(table)

	if err := doc.RenderToFile("out.pdf"); err != nil {
		log.Fatalf("rendering document: %v", err)
	}
	fmt.Println("wrote out.pdf")
}

func headerDecorator() *genpdf.SimplePageDecorator {
	margins := genpdf.MarginsAll(20)
	dec := genpdf.NewSimplePageDecorator()
	dec.SetMargins(margins)
	dec.SetHeader(func(page int) genpdf.Element {
		return genpdf.NewParagraph(fmt.Sprintf("Page #{page}")).
			Aligned(genpdf.AlignRight)
	})
	return dec
}
