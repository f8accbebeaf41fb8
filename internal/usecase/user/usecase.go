package user

import (
	"context"

	domain "loanbook-backend/internal/domain/user"
)

type Usecase struct{ users domain.Repository }

func NewUsecase(users domain.Repository) *Usecase { return &Usecase{users: users} }

func (u *Usecase) List(ctx context.Context) ([]domain.User, error) {
	return u.users.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return u.users.GetByUserID(ctx, userID)
}
