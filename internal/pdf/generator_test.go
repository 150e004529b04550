package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/pdf"
)

func TestGenerator_Generate(t *testing.T) {
	notes := "Delivery to the hotel on arrival."
	quote := model.Quote{
		QuoteNumber: "QT-20260115-A1B2C3",
		QuoteDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		ClientName:  "Marco Rossi",
		TotalAmount: 1200,
		Status:      model.QuoteStatusDraft,
		Notes:       &notes,
		Lines: []model.QuoteLine{
			{
				CarID:         1,
				CustomPrice:   500,
				CustomKm:      300,
				CustomExtraKm: 2.5,
				CustomDeposit: 5000,
				Car:           &model.Car{Name: "911 Carrera", Brand: "Porsche"},
			},
			{CarID: 2, CustomPrice: 700},
		},
	}

	gen := pdf.NewGenerator()
	content, err := gen.Generate(quote)
	require.NoError(t, err)

	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestGenerator_Generate_NoLines(t *testing.T) {
	gen := pdf.NewGenerator()
	content, err := gen.Generate(model.Quote{
		QuoteNumber: "QT-20260115-A1B2C3",
		ClientName:  "Marco Rossi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
