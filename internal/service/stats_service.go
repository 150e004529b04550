package service

import (
	"context"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/repository"
)

const recentQuotesLimit = 5

//go:generate mockgen -source=stats_service.go -destination=stats_service_mock.go -package=service
type StatsStore interface {
	Counts(ctx context.Context) (*repository.Counts, error)
}

type StatsService struct {
	stats  StatsStore
	quotes QuoteStore
}

func NewStatsService(stats StatsStore, quotes QuoteStore) *StatsService {
	return &StatsService{stats: stats, quotes: quotes}
}

func (s *StatsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	counts, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.quotes.ListRecent(ctx, recentQuotesLimit)
	if err != nil {
		return nil, err
	}
	return &model.DashboardStats{
		TotalCars:       counts.TotalCars,
		ActiveCars:      counts.ActiveCars,
		TotalQuotes:     counts.TotalQuotes,
		DraftQuotes:     counts.DraftQuotes,
		SentQuotes:      counts.SentQuotes,
		ConfirmedQuotes: counts.ConfirmedQuotes,
		RecentQuotes:    recent,
	}, nil
}
