package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &model.AdminUser{
		ID:           1,
		Username:     "admin",
		Email:        "admin@amberdrive.example",
		PasswordHash: string(hash),
	}

	type testCase struct {
		name      string
		username  string
		password  string
		setupMock func(users *service.MockUserStore, issuer *service.MockTokenIssuer)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			username: "admin",
			password: "s3cret",
			setupMock: func(users *service.MockUserStore, issuer *service.MockTokenIssuer) {
				users.EXPECT().GetByUsername(gomock.Any(), "admin").Return(admin, nil)
				issuer.EXPECT().
					Issue(model.Principal{ID: 1, Name: "admin", Email: "admin@amberdrive.example"}).
					Return("token-abc", nil)
			},
		},
		{
			name:     "WrongPassword",
			username: "admin",
			password: "nope",
			setupMock: func(users *service.MockUserStore, _ *service.MockTokenIssuer) {
				users.EXPECT().GetByUsername(gomock.Any(), "admin").Return(admin, nil)
			},
			wantErr: service.ErrUnauthorized,
		},
		{
			name:     "UnknownUser",
			username: "ghost",
			password: "s3cret",
			setupMock: func(users *service.MockUserStore, _ *service.MockTokenIssuer) {
				users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: service.ErrUnauthorized,
		},
		{
			name:     "MissingCredentials",
			username: "admin",
			password: "",
			wantErr:  service.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := service.NewMockUserStore(ctrl)
			issuer := service.NewMockTokenIssuer(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(users, issuer)
			}

			svc := service.NewAuthService(users, issuer)
			got, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "token-abc", got.Token)
			assert.Equal(t, int64(1), got.User.ID)
			assert.Equal(t, "admin", got.User.Name)
		})
	}
}
