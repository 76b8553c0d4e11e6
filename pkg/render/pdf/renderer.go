// Package pdf renders layout blocks into a paginated PDF document. It is the
// only package that knows about the PDF backend; assembly code deals in
// blocks alone so the backend can be swapped out.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/de-tools/shift-report/pkg/models/domain"
	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 36
	rowHeight  = 18
	bodyFont   = "Helvetica"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays the blocks out on US Letter pages and returns the PDF bytes.
func (r *Renderer) Render(blocks []domain.Block) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	// Core fonts are cp1252; the report labels carry Portuguese diacritics.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, block := range blocks {
		switch b := block.(type) {
		case domain.Title:
			doc.SetFont(bodyFont, "B", 16)
			doc.CellFormat(0, 22, tr(b.Text), "", 1, "C", false, 0, "")
		case domain.Paragraph:
			renderParagraph(doc, tr, b)
		case domain.KeyValueTable:
			renderKeyValueTable(doc, tr, b)
		case domain.DataTable:
			renderDataTable(doc, tr, b)
		case domain.Spacer:
			doc.Ln(b.Height)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderParagraph(doc *fpdf.Fpdf, tr func(string) string, p domain.Paragraph) {
	if p.Style == domain.StyleHeading {
		doc.SetFont(bodyFont, "B", 12)
		doc.CellFormat(0, 14, tr(p.Text), "", 1, "L", false, 0, "")
		doc.Ln(6)
		return
	}
	doc.SetFont(bodyFont, "", 10)
	doc.MultiCell(0, 12, tr(p.Text), "", "L", false)
}

func renderKeyValueTable(doc *fpdf.Fpdf, tr func(string) string, t domain.KeyValueTable) {
	doc.SetFont(bodyFont, "", 10)
	doc.SetDrawColor(128, 128, 128)
	doc.SetLineWidth(0.25)

	for i, row := range t.Rows {
		// Alternate row shading, same as the front-end print layout.
		if i%2 == 0 {
			doc.SetFillColor(245, 245, 245)
		} else {
			doc.SetFillColor(211, 211, 211)
		}
		doc.CellFormat(colWidth(t.Widths, 0), rowHeight, tr(row[0]), "1", 0, "L", true, 0, "")
		doc.CellFormat(colWidth(t.Widths, 1), rowHeight, tr(row[1]), "1", 1, "L", true, 0, "")
	}
}

func renderDataTable(doc *fpdf.Fpdf, tr func(string) string, t domain.DataTable) {
	doc.SetFont(bodyFont, "", 9)
	doc.SetDrawColor(128, 128, 128)
	doc.SetLineWidth(0.25)

	doc.SetFillColor(211, 211, 211)
	for i, cell := range t.Header {
		ln := 0
		if i == len(t.Header)-1 {
			ln = 1
		}
		doc.CellFormat(colWidth(t.Widths, i), rowHeight, tr(cell), "1", ln, "L", true, 0, "")
	}

	for rowIdx, row := range t.Rows {
		if rowIdx%2 == 0 {
			doc.SetFillColor(245, 245, 245)
		} else {
			doc.SetFillColor(255, 255, 255)
		}
		for i, cell := range row {
			ln := 0
			if i == len(row)-1 {
				ln = 1
			}
			doc.CellFormat(colWidth(t.Widths, i), rowHeight, tr(cell), "1", ln, "L", true, 0, "")
		}
	}
}

func colWidth(widths []float64, i int) float64 {
	if i < len(widths) {
		return widths[i]
	}
	return 100
}
