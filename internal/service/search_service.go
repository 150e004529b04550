package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const searchInstructions = `You are a car selection assistant for Amber Drive luxury car rental.
Available cars (ID|Name|Brand|Category|Price):
%s

Based on the user's request, return a JSON object with "car_ids" array containing the IDs of matching cars.
Only return cars that match. If unsure, return the closest matches.
Return ONLY valid JSON: {"car_ids": [1, 2, 3]}`

//go:generate mockgen -source=search_service.go -destination=search_service_mock.go -package=service
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type SearchService struct {
	cars   CarStore
	client CompletionClient
}

func NewSearchService(cars CarStore, client CompletionClient) *SearchService {
	return &SearchService{cars: cars, client: client}
}

type SearchResult struct {
	CarIDs  []int64 `json:"car_ids"`
	Message string  `json:"message"`
}

// Search forwards the prompt and the active catalog to the language model
// and returns the IDs it picked. No matching logic lives here; the model
// does the selection. IDs the model invents are dropped before returning.
func (s *SearchService) Search(ctx context.Context, prompt string) (*SearchResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	cars, err := s.cars.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	table := make([]string, 0, len(cars))
	active := make(map[int64]bool, len(cars))
	for _, car := range cars {
		table = append(table, fmt.Sprintf("%d|%s|%s|%s|%s",
			car.ID, car.Name, car.Brand, car.Category,
			strconv.FormatFloat(car.DefaultPrice, 'f', -1, 64)))
		active[car.ID] = true
	}

	system := fmt.Sprintf(searchInstructions, strings.Join(table, "\n"))
	raw, err := s.client.Complete(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var parsed struct {
		CarIDs  *[]int64 `json:"car_ids"`
		Message string   `json:"message"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: unparseable model response", ErrUpstream)
	}
	if parsed.CarIDs == nil {
		return nil, fmt.Errorf("%w: model response lacks car_ids", ErrUpstream)
	}

	ids := make([]int64, 0, len(*parsed.CarIDs))
	for _, id := range *parsed.CarIDs {
		if active[id] {
			ids = append(ids, id)
		}
	}
	return &SearchResult{CarIDs: ids, Message: parsed.Message}, nil
}
