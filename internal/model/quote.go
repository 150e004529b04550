package model

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

func ValidQuoteStatus(status QuoteStatus) bool {
	switch status {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusConfirmed, QuoteStatusCancelled:
		return true
	}
	return false
}

type Quote struct {
	ID          int64       `json:"id"`
	QuoteNumber string      `json:"quote_number"`
	ClientName  string      `json:"client_name"`
	ClientEmail *string     `json:"client_email"`
	QuoteDate   time.Time   `json:"quote_date"`
	Destination *string     `json:"destination"`
	TotalAmount float64     `json:"total_amount"`
	Status      QuoteStatus `json:"status"`
	Notes       *string     `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Lines       []QuoteLine `json:"cars" gorm:"-"`
}

// QuoteLine snapshots one car's pricing at quote creation or last edit.
// It is intentionally decoupled from the car's current defaults: catalog
// changes never alter an already issued quote.
type QuoteLine struct {
	ID            int64   `json:"id"`
	QuoteID       int64   `json:"quote_id"`
	CarID         int64   `json:"car_id"`
	CustomPrice   float64 `json:"custom_price"`
	CustomKm      int     `json:"custom_km"`
	CustomExtraKm float64 `json:"custom_extra_km"`
	CustomDeposit float64 `json:"custom_deposit"`
	Car           *Car    `json:"car,omitempty" gorm:"-"`
}
