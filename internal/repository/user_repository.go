package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, username, email, password_hash
		FROM admin_users
		WHERE username = ?
		LIMIT 1
	`, username).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}
