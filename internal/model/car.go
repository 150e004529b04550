package model

import "time"

type CarStatus string

const (
	CarStatusActive   CarStatus = "active"
	CarStatusInactive CarStatus = "inactive"
	CarStatusArchived CarStatus = "archived"
)

var CarCategories = []string{"Cabrio", "Coupe", "SUV", "Sedan", "Van"}

func ValidCarCategory(category string) bool {
	for _, c := range CarCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidCarStatus(status CarStatus) bool {
	switch status {
	case CarStatusActive, CarStatusInactive, CarStatusArchived:
		return true
	}
	return false
}

type Car struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Category       string    `json:"category"`
	Image          string    `json:"image"`
	DefaultPrice   float64   `json:"default_price"`
	DefaultKm      int       `json:"default_km"`
	DefaultExtraKm float64   `json:"default_extra_km"`
	DefaultDeposit float64   `json:"default_deposit"`
	Description    *string   `json:"description"`
	Status         CarStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
