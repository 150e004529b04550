package service_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/repository"
	"github.com/amberdrive/backoffice/internal/service"
)

var quoteNumberPattern = regexp.MustCompile(`^QT-\d{8}-[0-9A-F]{6}$`)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func testCar(id int64, price float64) model.Car {
	return model.Car{
		ID:             id,
		Name:           "Test Car",
		Brand:          "Porsche",
		Category:       "Coupe",
		DefaultPrice:   price,
		DefaultKm:      300,
		DefaultExtraKm: 2.5,
		DefaultDeposit: 5000,
		Status:         model.CarStatusActive,
	}
}

func TestQuoteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	cars.EXPECT().
		GetByIDs(gomock.Any(), []int64{1, 2}).
		Return([]model.Car{testCar(1, 500), testCar(2, 700)}, nil)

	var created model.Quote
	quotes.EXPECT().
		CreateWithLines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, quote model.Quote) (*model.Quote, error) {
			created = quote
			quote.ID = 10
			for i := range quote.Lines {
				quote.Lines[i].ID = int64(i + 1)
				quote.Lines[i].QuoteID = 10
			}
			return &quote, nil
		})

	got, err := svc.Create(context.Background(), service.CreateQuoteInput{
		ClientName:     "Marco Rossi",
		SelectedCarIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	assert.Regexp(t, quoteNumberPattern, created.QuoteNumber)
	assert.Equal(t, model.QuoteStatusDraft, created.Status)
	assert.Equal(t, 1200.0, created.TotalAmount)
	require.Len(t, created.Lines, 2)
	assert.Equal(t, 500.0, created.Lines[0].CustomPrice)
	assert.Equal(t, 700.0, created.Lines[1].CustomPrice)

	require.Len(t, got.Lines, 2)
	require.NotNil(t, got.Lines[0].Car)
	assert.Equal(t, int64(1), got.Lines[0].Car.ID)
}

func TestQuoteService_Create_PricingOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	cars.EXPECT().
		GetByIDs(gomock.Any(), []int64{1}).
		Return([]model.Car{testCar(1, 500)}, nil)

	var created model.Quote
	quotes.EXPECT().
		CreateWithLines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, quote model.Quote) (*model.Quote, error) {
			created = quote
			return &quote, nil
		})

	_, err := svc.Create(context.Background(), service.CreateQuoteInput{
		ClientName:     "Marco Rossi",
		SelectedCarIDs: []int64{1},
		Pricing: map[int64]service.PricingOverride{
			1: {Price: floatPtr(450), Km: intPtr(400)},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Lines, 1)
	line := created.Lines[0]
	assert.Equal(t, 450.0, line.CustomPrice)
	assert.Equal(t, 400, line.CustomKm)
	assert.Equal(t, 2.5, line.CustomExtraKm)
	assert.Equal(t, 5000.0, line.CustomDeposit)
	assert.Equal(t, 450.0, created.TotalAmount)
}

func TestQuoteService_Create_Validation(t *testing.T) {
	type testCase struct {
		name  string
		input service.CreateQuoteInput
	}

	tests := []testCase{
		{
			name:  "MissingClientName",
			input: service.CreateQuoteInput{SelectedCarIDs: []int64{1}},
		},
		{
			name:  "EmptySelection",
			input: service.CreateQuoteInput{ClientName: "Marco Rossi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quotes := service.NewMockQuoteStore(ctrl)
			cars := service.NewMockCarStore(ctrl)
			svc := service.NewQuoteService(quotes, cars, nil, nil)

			got, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
			assert.Nil(t, got)
		})
	}
}

func TestQuoteService_Create_UnknownCar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	cars.EXPECT().
		GetByIDs(gomock.Any(), []int64{1, 99}).
		Return([]model.Car{testCar(1, 500)}, nil)

	got, err := svc.Create(context.Background(), service.CreateQuoteInput{
		ClientName:     "Marco Rossi",
		SelectedCarIDs: []int64{1, 99},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Nil(t, got)
}

func TestQuoteService_Create_ArchivedCar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	archived := testCar(1, 500)
	archived.Status = model.CarStatusArchived
	cars.EXPECT().
		GetByIDs(gomock.Any(), []int64{1}).
		Return([]model.Car{archived}, nil)

	got, err := svc.Create(context.Background(), service.CreateQuoteInput{
		ClientName:     "Marco Rossi",
		SelectedCarIDs: []int64{1},
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Nil(t, got)
}

func TestQuoteService_Create_RetriesOnDuplicateNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	cars.EXPECT().
		GetByIDs(gomock.Any(), []int64{1}).
		Return([]model.Car{testCar(1, 500)}, nil)

	var numbers []string
	first := quotes.EXPECT().
		CreateWithLines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, quote model.Quote) (*model.Quote, error) {
			numbers = append(numbers, quote.QuoteNumber)
			return nil, gorm.ErrDuplicatedKey
		})
	quotes.EXPECT().
		CreateWithLines(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(_ context.Context, quote model.Quote) (*model.Quote, error) {
			numbers = append(numbers, quote.QuoteNumber)
			return &quote, nil
		})

	got, err := svc.Create(context.Background(), service.CreateQuoteInput{
		ClientName:     "Marco Rossi",
		SelectedCarIDs: []int64{1},
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, numbers, 2)
	for _, number := range numbers {
		assert.Regexp(t, quoteNumberPattern, number)
	}
}

func TestQuoteService_Create_ConflictAfterRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	cars.EXPECT().
		GetByIDs(gomock.Any(), []int64{1}).
		Return([]model.Car{testCar(1, 500)}, nil)
	quotes.EXPECT().
		CreateWithLines(gomock.Any(), gomock.Any()).
		Times(3).
		Return(nil, gorm.ErrDuplicatedKey)

	got, err := svc.Create(context.Background(), service.CreateQuoteInput{
		ClientName:     "Marco Rossi",
		SelectedCarIDs: []int64{1},
	})
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Nil(t, got)
}

func TestQuoteService_Update_Lines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	existing := &model.Quote{
		ID:          10,
		QuoteNumber: "QT-20260115-A1B2C3",
		ClientName:  "Marco Rossi",
		TotalAmount: 1200,
		Status:      model.QuoteStatusDraft,
		Lines: []model.QuoteLine{
			{QuoteID: 10, CarID: 1, CustomPrice: 500},
			{QuoteID: 10, CarID: 2, CustomPrice: 700},
		},
	}
	quotes.EXPECT().GetWithLines(gomock.Any(), int64(10)).Return(existing, nil).Times(2)

	quotes.EXPECT().
		UpdateLine(gomock.Any(), int64(10), int64(1), model.QuoteLine{
			CustomPrice: 600, CustomKm: 300, CustomExtraKm: 2.5, CustomDeposit: 5000,
		}).
		Return(nil)
	quotes.EXPECT().
		UpdateLine(gomock.Any(), int64(10), int64(2), model.QuoteLine{
			CustomPrice: 700, CustomKm: 300, CustomExtraKm: 2.5, CustomDeposit: 5000,
		}).
		Return(nil)

	var updates repository.QuoteFieldUpdates
	quotes.EXPECT().
		UpdateFields(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u repository.QuoteFieldUpdates) error {
			updates = u
			return nil
		})

	_, err := svc.Update(context.Background(), 10, service.UpdateQuoteInput{
		Lines: []service.UpdateQuoteLineInput{
			{CarID: 1, Price: 600, Km: 300, ExtraKm: 2.5, Deposit: 5000},
			{CarID: 2, Price: 700, Km: 300, ExtraKm: 2.5, Deposit: 5000},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, updates.TotalAmount)
	assert.Equal(t, 1300.0, *updates.TotalAmount)
}

// An edit payload that omits a line still drives the total, the omitted
// line's price is not counted.
func TestQuoteService_Update_TotalFromPayloadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	existing := &model.Quote{
		ID:          10,
		TotalAmount: 1200,
		Lines: []model.QuoteLine{
			{QuoteID: 10, CarID: 1, CustomPrice: 500},
			{QuoteID: 10, CarID: 2, CustomPrice: 700},
		},
	}
	quotes.EXPECT().GetWithLines(gomock.Any(), int64(10)).Return(existing, nil).Times(2)
	quotes.EXPECT().
		UpdateLine(gomock.Any(), int64(10), int64(1), gomock.Any()).
		Return(nil)

	var updates repository.QuoteFieldUpdates
	quotes.EXPECT().
		UpdateFields(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u repository.QuoteFieldUpdates) error {
			updates = u
			return nil
		})

	_, err := svc.Update(context.Background(), 10, service.UpdateQuoteInput{
		Lines: []service.UpdateQuoteLineInput{
			{CarID: 1, Price: 600},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, updates.TotalAmount)
	assert.Equal(t, 600.0, *updates.TotalAmount)
}

func TestQuoteService_Update_FieldsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	existing := &model.Quote{ID: 10, ClientName: "Marco Rossi", TotalAmount: 1200}
	quotes.EXPECT().GetWithLines(gomock.Any(), int64(10)).Return(existing, nil).Times(2)

	var updates repository.QuoteFieldUpdates
	quotes.EXPECT().
		UpdateFields(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u repository.QuoteFieldUpdates) error {
			updates = u
			return nil
		})

	_, err := svc.Update(context.Background(), 10, service.UpdateQuoteInput{
		ClientName:  strPtr("Giulia Bianchi"),
		Destination: strPtr("Lake Como"),
	})
	require.NoError(t, err)

	require.NotNil(t, updates.ClientName)
	assert.Equal(t, "Giulia Bianchi", *updates.ClientName)
	assert.Nil(t, updates.TotalAmount)
}

func TestQuoteService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	quotes.EXPECT().
		GetWithLines(gomock.Any(), int64(99)).
		Return(nil, gorm.ErrRecordNotFound)

	got, err := svc.Update(context.Background(), 99, service.UpdateQuoteInput{})
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Nil(t, got)
}

func TestQuoteService_SetStatus(t *testing.T) {
	type testCase struct {
		name      string
		status    model.QuoteStatus
		setupMock func(m *service.MockQuoteStore)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "DraftToSent",
			status: model.QuoteStatusSent,
			setupMock: func(m *service.MockQuoteStore) {
				m.EXPECT().UpdateStatus(gomock.Any(), int64(10), model.QuoteStatusSent).Return(nil)
				m.EXPECT().GetWithLines(gomock.Any(), int64(10)).
					Return(&model.Quote{ID: 10, Status: model.QuoteStatusSent}, nil)
			},
		},
		{
			name:   "SentBackToDraft",
			status: model.QuoteStatusDraft,
			setupMock: func(m *service.MockQuoteStore) {
				m.EXPECT().UpdateStatus(gomock.Any(), int64(10), model.QuoteStatusDraft).Return(nil)
				m.EXPECT().GetWithLines(gomock.Any(), int64(10)).
					Return(&model.Quote{ID: 10, Status: model.QuoteStatusDraft}, nil)
			},
		},
		{
			name:    "UnknownStatus",
			status:  model.QuoteStatus("approved"),
			wantErr: service.ErrInvalidInput,
		},
		{
			name:   "NotFound",
			status: model.QuoteStatusConfirmed,
			setupMock: func(m *service.MockQuoteStore) {
				m.EXPECT().UpdateStatus(gomock.Any(), int64(10), model.QuoteStatusConfirmed).
					Return(gorm.ErrRecordNotFound)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quotes := service.NewMockQuoteStore(ctrl)
			cars := service.NewMockCarStore(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(quotes)
			}

			svc := service.NewQuoteService(quotes, cars, nil, nil)
			got, err := svc.SetStatus(context.Background(), 10, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestQuoteService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	quotes.EXPECT().Delete(gomock.Any(), int64(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestQuoteService_BulkDelete_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, nil)

	err := svc.BulkDelete(context.Background(), nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestQuoteService_ExportPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	pdf := service.NewMockQuoteDocumentGenerator(ctrl)
	svc := service.NewQuoteService(quotes, cars, pdf, nil)

	quote := &model.Quote{ID: 10, QuoteNumber: "QT-20260115-A1B2C3"}
	quotes.EXPECT().GetWithLines(gomock.Any(), int64(10)).Return(quote, nil)
	pdf.EXPECT().Generate(*quote).Return([]byte("%PDF-1.3"), nil)

	got, err := svc.ExportPDF(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "quote-QT-20260115-A1B2C3.pdf", got.FileName)
	assert.NotEmpty(t, got.Content)
}

func TestQuoteService_ExportRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := service.NewMockQuoteStore(ctrl)
	cars := service.NewMockCarStore(ctrl)
	excel := service.NewMockQuoteRegisterGenerator(ctrl)
	svc := service.NewQuoteService(quotes, cars, nil, excel)

	list := []model.Quote{{ID: 10}, {ID: 11}}
	quotes.EXPECT().List(gomock.Any(), "").Return(list, nil)
	excel.EXPECT().Generate(list).Return([]byte("workbook"), nil)

	got, err := svc.ExportRegister(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "quotes-"+time.Now().Format("20060102")+".xlsx", got.FileName)
	assert.NotEmpty(t, got.Content)
}
