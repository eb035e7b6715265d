// Package pdf renders debit and credit notes as A4 PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// Layout constants, in points. Column widths cover S.No, Particulars,
// Remarks, Qty, Rate, Tax % and Amount.
const (
	margin    = 20.0
	rightX    = 330.0
	rowHeight = 20.0
)

var colWidths = [7]float64{40, 150, 100, 50, 60, 60, 75}

var headers = [7]string{"S.No", "Particulars", "Remarks", "Qty", "Rate", "Tax %", "Amount"}

// two formats a decimal with two places.
func two(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// plain formats a nullable decimal, blank when absent.
func plain(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// fixed formats a nullable decimal with two places, blank when absent.
func fixed(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return two(d.Decimal)
}

// Render produces the PDF bytes for an assembled note document. Row amounts
// are recomputed here from qty, rate and tax percentage; the summary box
// totals are the sums of those recomputed values.
func Render(doc *domain.NoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	tableWidth := pageWidth - 2*margin

	// Company header, top left
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(280, 22, doc.CompanyName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(margin)
	pdf.MultiCell(150, 12, doc.CompanyAddress, "", "L", false)
	if doc.CompanyContact != "" {
		pdf.SetX(margin)
		pdf.CellFormat(280, 12, "Contact: "+doc.CompanyContact, "", 1, "L", false, 0, "")
	}
	if doc.CompanyPhone != "" {
		pdf.SetX(margin)
		pdf.CellFormat(280, 12, "Phone: "+doc.CompanyPhone, "", 1, "L", false, 0, "")
	}
	if doc.CompanyGST != "" {
		pdf.SetX(margin)
		pdf.CellFormat(280, 12, "GSTIN: "+doc.CompanyGST, "", 1, "L", false, 0, "")
	}
	companyEndY := pdf.GetY()

	// Note block, top right
	noteType := doc.NoteType
	if noteType == "" {
		noteType = string(domain.Credit)
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(rightX, 40)
	pdf.CellFormat(tableWidth-rightX+margin, 20, strings.ToUpper(noteType)+" NOTE", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	labelWidth := 120.0
	valueX := rightX + labelWidth + 5
	noteLines := []struct {
		label, value string
		y            float64
	}{
		{"Credit/Debit Note No", doc.NoteNo, 70},
		{"Date", doc.Date, 90},
		{"Invoice No", doc.InvoiceNo, 110},
	}
	for _, line := range noteLines {
		pdf.SetXY(rightX, line.y)
		pdf.CellFormat(labelWidth, 12, line.label, "", 0, "L", false, 0, "")
		pdf.SetXY(valueX, line.y)
		pdf.CellFormat(pageWidth-margin-valueX, 12, ":  "+line.value, "", 0, "L", false, 0, "")
	}

	// Vendor block
	y := companyEndY + 30
	if y < 130 {
		y = 130
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(margin, y)
	pdf.CellFormat(280, 14, "Vender:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetX(margin)
	pdf.CellFormat(280, 16, doc.CustomerName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(margin)
	pdf.MultiCell(150, 12, doc.CustomerAddress, "", "L", false)
	if doc.CustomerContact != "" {
		pdf.SetX(margin)
		pdf.CellFormat(280, 12, "Contact: "+doc.CustomerContact, "", 1, "L", false, 0, "")
	}
	if doc.CustomerPhone != "" {
		pdf.SetX(margin)
		pdf.CellFormat(280, 12, "Phone: "+doc.CustomerPhone, "", 1, "L", false, 0, "")
	}
	if doc.CustomerGST != "" {
		pdf.SetX(margin)
		pdf.CellFormat(280, 12, "GSTIN: "+doc.CustomerGST, "", 1, "L", false, 0, "")
	}

	// Items table
	y = pdf.GetY() + 14
	y = drawTableHeader(pdf, y, tableWidth)

	totalBasic := decimal.Zero
	totalTax := decimal.Zero
	grandTotal := decimal.Zero

	for i, row := range doc.Rows {
		if y > pageHeight-margin-150 {
			pdf.AddPage()
			y = drawTableHeader(pdf, margin, tableWidth)
		}

		basic := row.Qty.Decimal.Mul(row.Rate.Decimal)
		tax := basic.Mul(row.TaxPercent.Decimal).Div(decimal.NewFromInt(100))
		amount := basic.Add(tax)
		totalBasic = totalBasic.Add(basic)
		totalTax = totalTax.Add(tax)
		grandTotal = grandTotal.Add(amount)

		pdf.Rect(margin, y, tableWidth, rowHeight, "D")

		// Absent inputs leave their cell blank, and an amount computed
		// from a blank input stays blank too.
		taxCell := ""
		if row.TaxPercent.Valid {
			taxCell = row.TaxPercent.Decimal.String() + " %"
		}
		amountCell := two(amount)
		if !row.Qty.Valid || !row.Rate.Valid {
			amountCell = ""
		}
		cells := [7]string{
			fmt.Sprintf("%d", i+1),
			row.Particulars,
			row.Remarks,
			plain(row.Qty),
			fixed(row.Rate),
			taxCell,
			amountCell,
		}
		x := margin
		pdf.SetFont("Helvetica", "", 10)
		for c, val := range cells {
			align := "L"
			if c >= 3 {
				align = "R"
			}
			pdf.SetXY(x+5, y+5)
			pdf.CellFormat(colWidths[c]-10, 10, val, "", 0, align, false, 0, "")
			x += colWidths[c]
		}
		y += rowHeight
	}
	tableBottom := y

	if tableBottom > pageHeight-margin-180 {
		pdf.AddPage()
		tableBottom = margin
	}

	// Amount in words, bottom left
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(margin, tableBottom+20)
	pdf.CellFormat(300, 13, "Amount in Words:", "", 1, "L", false, 0, "")
	pdf.SetXY(margin, tableBottom+36)
	pdf.MultiCell(300, 13, doc.AmountInWords, "", "L", false)

	// Summary box, bottom right, aligned under the last two columns
	boxX := margin + colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3] + colWidths[4] - 30
	boxWidth := colWidths[5] + colWidths[6] + 50
	boxY := tableBottom + 20
	pdf.Rect(boxX, boxY, boxWidth, 70, "D")

	pdf.SetFont("Helvetica", "", 10)
	summary := []struct {
		label string
		value decimal.Decimal
		dy    float64
	}{
		{"Amount", totalBasic, 10},
		{"Tax Amount", totalTax, 30},
		{"Total Amount", grandTotal, 50},
	}
	for _, line := range summary {
		pdf.SetXY(boxX+8, boxY+line.dy)
		pdf.CellFormat(90, 12, line.label, "", 0, "L", false, 0, "")
		pdf.SetXY(boxX+boxWidth-98, boxY+line.dy)
		pdf.CellFormat(90, 12, ":  "+two(line.value), "", 0, "R", false, 0, "")
	}

	// Signature block, bottom right
	sigWidth := 200.0
	sigX := pageWidth - margin - sigWidth
	sigY := pageHeight - margin - 150
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(sigX, sigY)
	pdf.CellFormat(sigWidth, 14, "For "+doc.CompanyName, "", 0, "R", false, 0, "")
	pdf.SetXY(sigX, sigY+60)
	pdf.CellFormat(sigWidth, 14, "Authorized Signatory", "", 0, "R", false, 0, "")

	// Watermark, only for the exact spelling "Canceled"
	if doc.Status == domain.StatusCanceled {
		pdf.SetFont("Helvetica", "B", 100)
		pdf.SetTextColor(255, 0, 0)
		pdf.SetAlpha(0.15, "Normal")
		pdf.TransformBegin()
		pdf.TransformRotate(30, pageWidth/2, pageHeight/2)
		pdf.SetXY(margin, pageHeight/2-50)
		pdf.CellFormat(pageWidth-2*margin, 100, "CANCELED", "", 0, "C", false, 0, "")
		pdf.TransformEnd()
		pdf.SetAlpha(1, "Normal")
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render note pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawTableHeader draws the filled header row at y and returns the y of the
// first body row.
func drawTableHeader(pdf *gofpdf.Fpdf, y, tableWidth float64) float64 {
	pdf.SetFillColor(224, 224, 224)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(margin, y, tableWidth, rowHeight, "FD")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	x := margin
	for i, h := range headers {
		pdf.SetXY(x+5, y+5)
		pdf.CellFormat(colWidths[i]-10, 10, h, "", 0, "L", false, 0, "")
		x += colWidths[i]
	}
	return y + rowHeight
}
