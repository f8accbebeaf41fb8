package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	userdomain "loanbook-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) List(ctx context.Context) ([]userdomain.User, error) {
	var out []userdomain.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userdomain.User, error) {
	var out userdomain.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userdomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
