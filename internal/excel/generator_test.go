package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/amberdrive/backoffice/internal/excel"
	"github.com/amberdrive/backoffice/internal/model"
)

func TestGenerator_Generate(t *testing.T) {
	email := "marco@example.com"
	quotes := []model.Quote{
		{
			QuoteNumber: "QT-20260115-A1B2C3",
			QuoteDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			ClientName:  "Marco Rossi",
			ClientEmail: &email,
			TotalAmount: 1200,
			Status:      model.QuoteStatusDraft,
			Lines: []model.QuoteLine{
				{CarID: 1, Car: &model.Car{Name: "911 Carrera", Brand: "Porsche"}},
				{CarID: 2},
			},
		},
		{
			QuoteNumber: "QT-20260116-D4E5F6",
			QuoteDate:   time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			ClientName:  "Giulia Bianchi",
			TotalAmount: 900,
			Status:      model.QuoteStatusSent,
		},
	}

	gen := excel.NewGenerator()
	content, err := gen.Generate(quotes)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Summary", "Quotes"}, file.GetSheetList())

	count, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	number, err := file.GetCellValue("Quotes", "A2")
	require.NoError(t, err)
	assert.Equal(t, "QT-20260115-A1B2C3", number)

	cars, err := file.GetCellValue("Quotes", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Porsche 911 Carrera, car #2", cars)

	status, err := file.GetCellValue("Quotes", "H3")
	require.NoError(t, err)
	assert.Equal(t, "sent", status)
}

func TestGenerator_Generate_Empty(t *testing.T) {
	gen := excel.NewGenerator()
	content, err := gen.Generate(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	count, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "0", count)
}
