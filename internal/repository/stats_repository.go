package repository

import (
	"context"

	"gorm.io/gorm"
)

type Counts struct {
	TotalCars       int64
	ActiveCars      int64
	TotalQuotes     int64
	DraftQuotes     int64
	SentQuotes      int64
	ConfirmedQuotes int64
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (*Counts, error) {
	var counts Counts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM cars) AS total_cars,
			(SELECT COUNT(*) FROM cars WHERE status = 'active') AS active_cars,
			(SELECT COUNT(*) FROM quotes) AS total_quotes,
			(SELECT COUNT(*) FROM quotes WHERE status = 'draft') AS draft_quotes,
			(SELECT COUNT(*) FROM quotes WHERE status = 'sent') AS sent_quotes,
			(SELECT COUNT(*) FROM quotes WHERE status = 'confirmed') AS confirmed_quotes
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
