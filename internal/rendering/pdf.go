package rendering

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// Fixed-layout constants for the paginated format, in millimeters and
// points.
const (
	pdfTitleSize   = 16.0
	pdfHeadingSize = 12.0
	pdfBodySize    = 10.0

	pdfTitleHeight   = 10.0
	pdfHeadingHeight = 10.0
	pdfLineHeight    = 5.0

	pdfHeaderGap  = 5.0
	pdfEntryGap   = 3.0
	pdfSectionGap = 2.0
)

// renderPDF produces the fixed-page-layout document: A4 portrait, one column,
// section headings in upper case.
func renderPDF(resume *types.Resume) ([]byte, error) {
	fonts := fontsFor(resume.Template)
	font := fonts.PDF

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	// Core fonts are cp1252; translate UTF-8 input into it.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	// Header
	doc.SetFont(font, "B", pdfTitleSize)
	doc.CellFormat(0, pdfTitleHeight, tr(resume.FullName), "", 1, "C", false, 0, "")
	doc.SetFont(font, "", pdfBodySize)
	doc.CellFormat(0, pdfLineHeight, tr(contactLine(resume)), "", 1, "C", false, 0, "")
	doc.Ln(pdfHeaderGap)

	for _, section := range buildSections(resume) {
		doc.SetFont(font, "B", pdfHeadingSize)
		doc.CellFormat(0, pdfHeadingHeight, tr(strings.ToUpper(section.Heading)), "", 1, "L", false, 0, "")

		for _, block := range section.Blocks {
			doc.SetFont(font, blockStyle(block), pdfBodySize)
			if block.Wrapped {
				doc.MultiCell(0, pdfLineHeight, tr(block.Text), "", "L", false)
			} else {
				doc.CellFormat(0, pdfLineHeight, tr(block.Text), "", 1, "L", false, 0, "")
			}
			if block.Gap {
				doc.Ln(pdfEntryGap)
			}
		}
		doc.Ln(pdfSectionGap)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to produce PDF output", Cause: err}
	}
	return buf.Bytes(), nil
}

// blockStyle maps block emphasis to an fpdf font style string.
func blockStyle(block Block) string {
	switch {
	case block.Bold:
		return "B"
	case block.Italic:
		return "I"
	default:
		return ""
	}
}
