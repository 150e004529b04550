package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/repository"
)

const quoteNumberAttempts = 3

//go:generate mockgen -source=quote_service.go -destination=quote_service_mock.go -package=service
type QuoteStore interface {
	GetWithLines(ctx context.Context, id int64) (*model.Quote, error)
	List(ctx context.Context, search string) ([]model.Quote, error)
	ListRecent(ctx context.Context, limit int) ([]model.Quote, error)
	CreateWithLines(ctx context.Context, quote model.Quote) (*model.Quote, error)
	UpdateFields(ctx context.Context, id int64, updates repository.QuoteFieldUpdates) error
	UpdateLine(ctx context.Context, quoteID, carID int64, line model.QuoteLine) error
	UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error
	Delete(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) error
}

type QuoteDocumentGenerator interface {
	Generate(quote model.Quote) ([]byte, error)
}

type QuoteRegisterGenerator interface {
	Generate(quotes []model.Quote) ([]byte, error)
}

type QuoteService struct {
	quotes QuoteStore
	cars   CarStore
	pdf    QuoteDocumentGenerator
	excel  QuoteRegisterGenerator
}

func NewQuoteService(quotes QuoteStore, cars CarStore, pdf QuoteDocumentGenerator, excel QuoteRegisterGenerator) *QuoteService {
	return &QuoteService{
		quotes: quotes,
		cars:   cars,
		pdf:    pdf,
		excel:  excel,
	}
}

type PricingOverride struct {
	Price   *float64
	Km      *int
	ExtraKm *float64
	Deposit *float64
}

type CreateQuoteInput struct {
	ClientName     string
	ClientEmail    *string
	QuoteDate      time.Time
	Destination    *string
	SelectedCarIDs []int64
	Pricing        map[int64]PricingOverride
}

type UpdateQuoteLineInput struct {
	CarID   int64
	Price   float64
	Km      int
	ExtraKm float64
	Deposit float64
}

type UpdateQuoteInput struct {
	ClientName  *string
	ClientEmail *string
	Destination *string
	Lines       []UpdateQuoteLineInput
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Create builds a quote from the selected cars, snapshotting each car's
// pricing (or the supplied override) into a line and summing the line
// prices into the total.
func (s *QuoteService) Create(ctx context.Context, input CreateQuoteInput) (*model.Quote, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if len(input.SelectedCarIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one car", ErrInvalidInput)
	}

	cars, err := s.cars.GetByIDs(ctx, input.SelectedCarIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Car, len(cars))
	for _, car := range cars {
		byID[car.ID] = car
	}

	lines := make([]model.QuoteLine, 0, len(input.SelectedCarIDs))
	total := 0.0
	for _, carID := range input.SelectedCarIDs {
		car, ok := byID[carID]
		if !ok {
			return nil, fmt.Errorf("%w: car %d", ErrNotFound, carID)
		}
		if car.Status == model.CarStatusArchived {
			return nil, fmt.Errorf("%w: car %d is archived", ErrInvalidInput, carID)
		}

		line := model.QuoteLine{
			CarID:         car.ID,
			CustomPrice:   car.DefaultPrice,
			CustomKm:      car.DefaultKm,
			CustomExtraKm: car.DefaultExtraKm,
			CustomDeposit: car.DefaultDeposit,
		}
		if override, ok := input.Pricing[carID]; ok {
			if override.Price != nil {
				line.CustomPrice = *override.Price
			}
			if override.Km != nil {
				line.CustomKm = *override.Km
			}
			if override.ExtraKm != nil {
				line.CustomExtraKm = *override.ExtraKm
			}
			if override.Deposit != nil {
				line.CustomDeposit = *override.Deposit
			}
		}
		total += line.CustomPrice
		lines = append(lines, line)
	}

	quoteDate := input.QuoteDate
	if quoteDate.IsZero() {
		quoteDate = time.Now()
	}

	quote := model.Quote{
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		QuoteDate:   quoteDate,
		Destination: input.Destination,
		TotalAmount: total,
		Status:      model.QuoteStatusDraft,
		Lines:       lines,
	}

	// The random suffix is not guaranteed unique, so creation retries on
	// the quote_number unique index before giving up.
	var saved *model.Quote
	for attempt := 0; attempt < quoteNumberAttempts; attempt++ {
		number, err := generateQuoteNumber(time.Now())
		if err != nil {
			return nil, err
		}
		quote.QuoteNumber = number

		saved, err = s.quotes.CreateWithLines(ctx, quote)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			saved = nil
			continue
		}
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("%w: could not allocate a unique quote number", ErrConflict)
	}

	for i := range saved.Lines {
		if car, ok := byID[saved.Lines[i].CarID]; ok {
			carCopy := car
			saved.Lines[i].Car = &carCopy
		}
	}
	return saved, nil
}

// Update applies partial client-field edits and, when a lines payload is
// present, overwrites line pricing. The total is recomputed strictly from
// the supplied lines, so callers send the full line set on every pricing
// edit.
func (s *QuoteService) Update(ctx context.Context, id int64, input UpdateQuoteInput) (*model.Quote, error) {
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	updates := repository.QuoteFieldUpdates{
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		Destination: input.Destination,
	}

	if input.Lines != nil {
		total := 0.0
		for _, line := range input.Lines {
			err := s.quotes.UpdateLine(ctx, id, line.CarID, model.QuoteLine{
				CustomPrice:   line.Price,
				CustomKm:      line.Km,
				CustomExtraKm: line.ExtraKm,
				CustomDeposit: line.Deposit,
			})
			if err != nil {
				return nil, err
			}
			total += line.Price
		}
		updates.TotalAmount = &total
	}

	if err := s.quotes.UpdateFields(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quote %d", ErrNotFound, id)
		}
		return nil, err
	}
	return s.get(ctx, id)
}

// SetStatus moves a quote to any of the known statuses. There is no
// transition graph, any status may follow any other.
func (s *QuoteService) SetStatus(ctx context.Context, id int64, status model.QuoteStatus) (*model.Quote, error) {
	if !model.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if err := s.quotes.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quote %d", ErrNotFound, id)
		}
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *QuoteService) Get(ctx context.Context, id int64) (*model.Quote, error) {
	return s.get(ctx, id)
}

func (s *QuoteService) List(ctx context.Context, search string) ([]model.Quote, error) {
	return s.quotes.List(ctx, search)
}

func (s *QuoteService) Delete(ctx context.Context, id int64) error {
	if err := s.quotes.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: quote %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *QuoteService) BulkDelete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no ids provided", ErrInvalidInput)
	}
	return s.quotes.BulkDelete(ctx, ids)
}

func (s *QuoteService) ExportPDF(ctx context.Context, id int64) (*ExportResult, error) {
	quote, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*quote)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("quote-%s.pdf", sanitizeFileName(quote.QuoteNumber)),
		Content:  content,
	}, nil
}

func (s *QuoteService) ExportRegister(ctx context.Context, search string) (*ExportResult, error) {
	quotes, err := s.quotes.List(ctx, search)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(quotes)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("quotes-%s.xlsx", time.Now().Format("20060102")),
		Content:  content,
	}, nil
}

func (s *QuoteService) get(ctx context.Context, id int64) (*model.Quote, error) {
	quote, err := s.quotes.GetWithLines(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quote %d", ErrNotFound, id)
		}
		return nil, err
	}
	return quote, nil
}

func generateQuoteNumber(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("QT-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(suffix))), nil
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
