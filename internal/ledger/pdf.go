package ledger

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	contentWidth = 210.0 - marginLeft - marginRight
	amountWidth  = 45.0
)

// WritePDF renders v as an A4 statement. The core fonts have no rupee sign,
// so amounts are written with the "Rs." prefix.
func WritePDF(w io.Writer, v View, generated time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, "Expense Statement", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(contentWidth, 6, "Generated: "+generated.Format("2 January 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth-amountWidth, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if len(v.Entries) == 0 {
		pdf.CellFormat(contentWidth, 8, "No expenses", "1", 1, "C", false, 0, "")
	}
	for _, e := range v.Entries {
		pdf.CellFormat(contentWidth-amountWidth, 8, tr(e.Desc), "1", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, 8, "Rs. "+e.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(contentWidth-amountWidth, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, "Rs. "+v.Total.StringFixed(2), "1", 1, "R", true, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
