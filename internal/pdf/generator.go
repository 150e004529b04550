package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/amberdrive/backoffice/internal/model"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a printable quote document: header, client block,
// one pricing row per car and the total.
func (g *Generator) Generate(quote model.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, "Amber Drive Rental Quote", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quote %s - %s", quote.QuoteNumber, formatDate(quote.QuoteDate)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Client", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, quote.ClientName, "", 1, "L", false, 0, "")
	if quote.ClientEmail != nil && *quote.ClientEmail != "" {
		pdf.CellFormat(0, 6, *quote.ClientEmail, "", 1, "L", false, 0, "")
	}
	if quote.Destination != nil && *quote.Destination != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Destination: %s", *quote.Destination), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Vehicles", "", 1, "L", false, 0, "")

	headers := []string{"Car", "Price", "Km included", "Extra km", "Deposit"}
	colWidths := []float64{70, 28, 28, 28, 28}
	drawTableRow(pdf, headers, colWidths, true)

	for _, line := range quote.Lines {
		name := fmt.Sprintf("Car #%d", line.CarID)
		if line.Car != nil {
			name = fmt.Sprintf("%s %s", line.Car.Brand, line.Car.Name)
		}
		row := []string{
			name,
			formatAmount(line.CustomPrice),
			fmt.Sprintf("%d", line.CustomKm),
			formatAmount(line.CustomExtraKm),
			formatAmount(line.CustomDeposit),
		}
		drawTableRow(pdf, row, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s", formatAmount(quote.TotalAmount)), "", 1, "R", false, 0, "")

	if quote.Notes != nil && strings.TrimSpace(*quote.Notes) != "" {
		pdf.Ln(2)
		pdf.SetFont(fontName, "", 10)
		pdf.MultiCell(0, 5, *quote.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f EUR", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
