package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/amberdrive/backoffice/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the quote register workbook: a summary sheet with
// per-status counts and a flat register sheet with one row per quote.
func (g *Generator) Generate(quotes []model.Quote) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, quotes); err != nil {
		return nil, err
	}

	registerSheet := "Quotes"
	if _, err := file.NewSheet(registerSheet); err != nil {
		return nil, err
	}
	if err := g.writeRegister(file, registerSheet, quotes); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, quotes []model.Quote) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	statusCounts := map[model.QuoteStatus]int{}
	total := 0.0
	for _, quote := range quotes {
		statusCounts[quote.Status]++
		total += quote.TotalAmount
	}

	set("A1", "Quotes")
	set("B1", len(quotes))
	set("A2", "Total amount")
	set("B2", total)
	set("A3", "Generated")
	set("B3", time.Now().Format("2006-01-02 15:04:05"))

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Count")
	statuses := []model.QuoteStatus{
		model.QuoteStatusDraft,
		model.QuoteStatusSent,
		model.QuoteStatusConfirmed,
		model.QuoteStatusCancelled,
	}
	for i, status := range statuses {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), statusCounts[status])
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeRegister(file *excelize.File, sheet string, quotes []model.Quote) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Quote number",
		"Date",
		"Client",
		"Email",
		"Destination",
		"Cars",
		"Total",
		"Status",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, quote := range quotes {
		row := i + 2
		values := []interface{}{
			quote.QuoteNumber,
			formatDate(quote.QuoteDate),
			quote.ClientName,
			formatString(quote.ClientEmail),
			formatString(quote.Destination),
			carNames(quote.Lines),
			quote.TotalAmount,
			string(quote.Status),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	_ = file.SetColWidth(sheet, "C", "E", 24)
	_ = file.SetColWidth(sheet, "F", "F", 40)
	return nil
}

func carNames(lines []model.QuoteLine) string {
	result := ""
	for i, line := range lines {
		if i > 0 {
			result += ", "
		}
		if line.Car != nil {
			result += fmt.Sprintf("%s %s", line.Car.Brand, line.Car.Name)
		} else {
			result += fmt.Sprintf("car #%d", line.CarID)
		}
	}
	return result
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
