package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
)

const quoteColumns = `
	id,
	quote_number,
	client_name,
	client_email,
	quote_date,
	destination,
	total_amount,
	status,
	notes,
	created_at,
	updated_at
`

type QuoteFieldUpdates struct {
	ClientName  *string
	ClientEmail *string
	Destination *string
	TotalAmount *float64
}

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) GetWithLines(ctx context.Context, id int64) (*model.Quote, error) {
	var quote model.Quote
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&quote).Error
	if err != nil {
		return nil, err
	}
	if quote.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	lines, err := r.listLines(ctx, []int64{quote.ID})
	if err != nil {
		return nil, err
	}
	quote.Lines = lines[quote.ID]
	if quote.Lines == nil {
		quote.Lines = []model.QuoteLine{}
	}
	return &quote, nil
}

func (r *QuoteRepository) List(ctx context.Context, search string) ([]model.Quote, error) {
	baseQuery := `
		SELECT ` + quoteColumns + `
		FROM quotes
	`
	var args []interface{}
	if search != "" {
		pattern := "%" + search + "%"
		baseQuery += ` WHERE client_name ILIKE ? OR quote_number ILIKE ? OR destination ILIKE ?`
		args = append(args, pattern, pattern, pattern)
	}
	baseQuery += " ORDER BY created_at DESC"

	var quotes []model.Quote
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&quotes).Error; err != nil {
		return nil, err
	}
	return r.hydrate(ctx, quotes)
}

func (r *QuoteRepository) ListRecent(ctx context.Context, limit int) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		ORDER BY created_at DESC
		LIMIT ?
	`, limit).Scan(&quotes).Error
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, quotes)
}

// CreateWithLines persists the quote header and all of its lines in one
// transaction. A quote number collision surfaces as gorm.ErrDuplicatedKey.
func (r *QuoteRepository) CreateWithLines(ctx context.Context, quote model.Quote) (*model.Quote, error) {
	var saved model.Quote
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO quotes (
				quote_number,
				client_name,
				client_email,
				quote_date,
				destination,
				total_amount,
				status,
				notes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+quoteColumns,
			quote.QuoteNumber,
			quote.ClientName,
			quote.ClientEmail,
			quote.QuoteDate,
			quote.Destination,
			quote.TotalAmount,
			quote.Status,
			quote.Notes,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		for i := range quote.Lines {
			line := &quote.Lines[i]
			var lineID int64
			err := tx.Raw(`
				INSERT INTO quote_cars (
					quote_id,
					car_id,
					custom_price,
					custom_km,
					custom_extra_km,
					custom_deposit
				) VALUES (?, ?, ?, ?, ?, ?)
				RETURNING id
			`, saved.ID, line.CarID, line.CustomPrice, line.CustomKm, line.CustomExtraKm, line.CustomDeposit).
				Scan(&lineID).Error
			if err != nil {
				return err
			}
			line.ID = lineID
			line.QuoteID = saved.ID
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, gorm.ErrDuplicatedKey
		}
		return nil, err
	}
	saved.Lines = quote.Lines
	return &saved, nil
}

func (r *QuoteRepository) UpdateFields(ctx context.Context, id int64, updates QuoteFieldUpdates) error {
	var (
		sets []string
		args []interface{}
	)
	if updates.ClientName != nil {
		sets = append(sets, "client_name = ?")
		args = append(args, *updates.ClientName)
	}
	if updates.ClientEmail != nil {
		sets = append(sets, "client_email = ?")
		args = append(args, *updates.ClientEmail)
	}
	if updates.Destination != nil {
		sets = append(sets, "destination = ?")
		args = append(args, *updates.Destination)
	}
	if updates.TotalAmount != nil {
		sets = append(sets, "total_amount = ?")
		args = append(args, *updates.TotalAmount)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	result := r.db.WithContext(ctx).Exec(
		"UPDATE quotes SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuoteRepository) UpdateLine(ctx context.Context, quoteID, carID int64, line model.QuoteLine) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE quote_cars
		SET
			custom_price = ?,
			custom_km = ?,
			custom_extra_km = ?,
			custom_deposit = ?
		WHERE quote_id = ? AND car_id = ?
	`, line.CustomPrice, line.CustomKm, line.CustomExtraKm, line.CustomDeposit, quoteID, carID).Error
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE quotes
		SET status = ?, updated_at = NOW()
		WHERE id = ?
	`, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuoteRepository) BulkDelete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id IN ?`, ids).Error
}

func (r *QuoteRepository) hydrate(ctx context.Context, quotes []model.Quote) ([]model.Quote, error) {
	if len(quotes) == 0 {
		return []model.Quote{}, nil
	}
	ids := make([]int64, 0, len(quotes))
	for _, q := range quotes {
		ids = append(ids, q.ID)
	}
	lines, err := r.listLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		quotes[i].Lines = lines[quotes[i].ID]
		if quotes[i].Lines == nil {
			quotes[i].Lines = []model.QuoteLine{}
		}
	}
	return quotes, nil
}

func (r *QuoteRepository) listLines(ctx context.Context, quoteIDs []int64) (map[int64][]model.QuoteLine, error) {
	var rows []struct {
		ID            int64
		QuoteID       int64
		CarID         int64
		CustomPrice   float64
		CustomKm      int
		CustomExtraKm float64
		CustomDeposit float64

		CarRowID          *int64
		CarName           *string
		CarBrand          *string
		CarCategory       *string
		CarImage          *string
		CarDefaultPrice   *float64
		CarDefaultKm      *int
		CarDefaultExtraKm *float64
		CarDefaultDeposit *float64
		CarDescription    *string
		CarStatus         *string
		CarCreatedAt      *time.Time
		CarUpdatedAt      *time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			qc.id,
			qc.quote_id,
			qc.car_id,
			qc.custom_price,
			qc.custom_km,
			qc.custom_extra_km,
			qc.custom_deposit,
			c.id AS car_row_id,
			c.name AS car_name,
			c.brand AS car_brand,
			c.category AS car_category,
			c.image AS car_image,
			c.default_price AS car_default_price,
			c.default_km AS car_default_km,
			c.default_extra_km AS car_default_extra_km,
			c.default_deposit AS car_default_deposit,
			c.description AS car_description,
			c.status AS car_status,
			c.created_at AS car_created_at,
			c.updated_at AS car_updated_at
		FROM quote_cars qc
		LEFT JOIN cars c ON c.id = qc.car_id
		WHERE qc.quote_id IN ?
		ORDER BY qc.id ASC
	`, quoteIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]model.QuoteLine, len(quoteIDs))
	for _, row := range rows {
		line := model.QuoteLine{
			ID:            row.ID,
			QuoteID:       row.QuoteID,
			CarID:         row.CarID,
			CustomPrice:   row.CustomPrice,
			CustomKm:      row.CustomKm,
			CustomExtraKm: row.CustomExtraKm,
			CustomDeposit: row.CustomDeposit,
		}
		// The car may have been deleted from the catalog after the quote
		// was issued. The line survives without catalog details.
		if row.CarRowID != nil {
			line.Car = &model.Car{
				ID:             *row.CarRowID,
				Name:           derefString(row.CarName),
				Brand:          derefString(row.CarBrand),
				Category:       derefString(row.CarCategory),
				Image:          derefString(row.CarImage),
				DefaultPrice:   derefFloat(row.CarDefaultPrice),
				DefaultKm:      derefInt(row.CarDefaultKm),
				DefaultExtraKm: derefFloat(row.CarDefaultExtraKm),
				DefaultDeposit: derefFloat(row.CarDefaultDeposit),
				Description:    row.CarDescription,
				Status:         model.CarStatus(derefString(row.CarStatus)),
			}
			if row.CarCreatedAt != nil {
				line.Car.CreatedAt = *row.CarCreatedAt
			}
			if row.CarUpdatedAt != nil {
				line.Car.UpdatedAt = *row.CarUpdatedAt
			}
		}
		result[row.QuoteID] = append(result[row.QuoteID], line)
	}
	return result, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
