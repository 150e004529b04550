package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/service"
)

func TestSearchService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cars := service.NewMockCarStore(ctrl)
	client := service.NewMockCompletionClient(ctrl)
	svc := service.NewSearchService(cars, client)

	catalog := []model.Car{
		{ID: 1, Name: "911 Carrera", Brand: "Porsche", Category: "Coupe", DefaultPrice: 500},
		{ID: 2, Name: "Urus", Brand: "Lamborghini", Category: "SUV", DefaultPrice: 900},
	}
	cars.EXPECT().ListActive(gomock.Any()).Return(catalog, nil)

	var system, user string
	client.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sys, usr string) (string, error) {
			system = sys
			user = usr
			return `{"car_ids": [2], "message": "The Urus fits a mountain trip."}`, nil
		})

	got, err := svc.Search(context.Background(), "something sporty for the mountains")
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, got.CarIDs)
	assert.Equal(t, "The Urus fits a mountain trip.", got.Message)
	assert.Equal(t, "something sporty for the mountains", user)
	assert.Contains(t, system, "1|911 Carrera|Porsche|Coupe|500")
	assert.Contains(t, system, "2|Urus|Lamborghini|SUV|900")
}

func TestSearchService_Search_DropsUnknownIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cars := service.NewMockCarStore(ctrl)
	client := service.NewMockCompletionClient(ctrl)
	svc := service.NewSearchService(cars, client)

	cars.EXPECT().ListActive(gomock.Any()).Return([]model.Car{{ID: 1, Name: "911"}}, nil)
	client.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"car_ids": [1, 42, 99]}`, nil)

	got, err := svc.Search(context.Background(), "anything fast")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got.CarIDs)
}

func TestSearchService_Search_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cars := service.NewMockCarStore(ctrl)
	client := service.NewMockCompletionClient(ctrl)
	svc := service.NewSearchService(cars, client)

	cars.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

	var system string
	client.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sys, _ string) (string, error) {
			system = sys
			return `{"car_ids": []}`, nil
		})

	got, err := svc.Search(context.Background(), "a convertible for the weekend")
	require.NoError(t, err)
	assert.Empty(t, got.CarIDs)
	assert.False(t, strings.Contains(system, "|"), "no catalog rows expected")
}

func TestSearchService_Search_Errors(t *testing.T) {
	type testCase struct {
		name      string
		prompt    string
		setupMock func(cars *service.MockCarStore, client *service.MockCompletionClient)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "EmptyPrompt",
			prompt:  "   ",
			wantErr: service.ErrInvalidInput,
		},
		{
			name:   "UpstreamFailure",
			prompt: "v8 coupe",
			setupMock: func(cars *service.MockCarStore, client *service.MockCompletionClient) {
				cars.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
				client.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("status 429"))
			},
			wantErr: service.ErrUpstream,
		},
		{
			name:   "MalformedResponse",
			prompt: "v8 coupe",
			setupMock: func(cars *service.MockCarStore, client *service.MockCompletionClient) {
				cars.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
				client.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("I would suggest the Urus.", nil)
			},
			wantErr: service.ErrUpstream,
		},
		{
			name:   "MissingCarIDs",
			prompt: "v8 coupe",
			setupMock: func(cars *service.MockCarStore, client *service.MockCompletionClient) {
				cars.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
				client.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(`{"message": "no idea"}`, nil)
			},
			wantErr: service.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cars := service.NewMockCarStore(ctrl)
			client := service.NewMockCompletionClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(cars, client)
			}

			svc := service.NewSearchService(cars, client)
			got, err := svc.Search(context.Background(), tt.prompt)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}
