package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry for the rendered report, in millimetres on A4.
const (
	marginLeft  = 25.0
	marginTop   = 20.0
	lineHeight  = 8.0
	titleHeight = 12.0
)

// Document renders a titled list of text lines as a PDF. Lines that do not
// fit on one page flow onto the next; pagination is owned here, the caller
// only supplies an ordered sequence of lines.
func Document(title string, lines []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, titleHeight, translate(title), "", 1, "L", false, 0, "")
	pdf.Ln(lineHeight / 2)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		pdf.CellFormat(0, lineHeight, translate(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
